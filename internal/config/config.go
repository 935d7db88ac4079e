// Package config 提供应用配置管理。
//
// 配置加载优先级 (从低到高)：
//  1. 默认值 - DefaultConfig() 函数中定义
//  2. 配置文件 - .interp.yaml 等，见 cfgm.DefaultPaths
//  3. 环境变量 - INTERP_ 前缀
//  4. CLI flags
package config

import (
	"time"
	"unicode/utf8"

	"github.com/lwmacct/251208-go-pkg-interp/pkg/interp"
)

// AppName 应用名称，用于配置文件搜索路径。
const AppName = "interp"

// EnvPrefix 环境变量前缀。
const EnvPrefix = "INTERP_"

// Config 应用配置。
type Config struct {
	Syntax SyntaxConfig `json:"syntax" desc:"占位符语法"`
	Policy PolicyConfig `json:"policy" desc:"替换策略"`
	Vars   VarsConfig   `json:"vars" desc:"变量来源"`
	Server ServerConfig `json:"server" desc:"服务端配置"`
}

// SyntaxConfig 占位符语法。
type SyntaxConfig struct {
	Prefix    string `json:"prefix" desc:"占位符前缀"`
	Suffix    string `json:"suffix" desc:"占位符后缀"`
	Escape    string `json:"escape" desc:"转义字符，空表示禁用"`
	Delimiter string `json:"delimiter" desc:"默认值分隔符，空表示禁用"`
}

// PolicyConfig 替换策略。
type PolicyConfig struct {
	InVariables     bool `json:"in-variables" desc:"展开变量名中的占位符"`
	InValues        bool `json:"in-values" desc:"展开变量值中的占位符"`
	Strict          bool `json:"strict" desc:"未定义变量报错"`
	PreserveEscapes bool `json:"preserve-escapes" desc:"保留转义字符"`
	MaxDepth        int  `json:"max-depth" desc:"值递归展开的最大深度"`
}

// VarsConfig 变量来源。
type VarsConfig struct {
	Files []string `json:"files" desc:"变量文件 (yaml/json/toml)"`
	Set   []string `json:"set" desc:"key=value 形式的变量"`
	Env   bool     `json:"env" desc:"加载环境变量"`
}

// ServerConfig 服务端配置。
type ServerConfig struct {
	Addr      string        `json:"addr" desc:"服务器监听地址"`
	Timeout   time.Duration `json:"timeout" desc:"HTTP 读写超时"`
	Idletime  time.Duration `json:"idletime" desc:"HTTP 空闲超时"`
	MaxBody   int64         `json:"max-body" desc:"请求体最大字节数"`
	MaxOutput int           `json:"max-output" desc:"单次渲染输出与占位符解析次数上限，0 表示不限制"`
}

// DefaultConfig 返回默认配置。
// 注意：internal/command/command.go 中的 Defaults 变量引用此函数以实现单一配置来源。
func DefaultConfig() Config {
	return Config{
		Syntax: SyntaxConfig{
			Prefix:    interp.DefaultPrefix,
			Suffix:    interp.DefaultSuffix,
			Escape:    string(interp.DefaultEscape),
			Delimiter: interp.DefaultValueDelimiter,
		},
		Policy: PolicyConfig{
			MaxDepth: interp.DefaultMaxDepth,
		},
		Server: ServerConfig{
			Addr:      ":40118",
			Timeout:   15 * time.Second,
			Idletime:  60 * time.Second,
			MaxBody:   1 << 20,
		MaxOutput: 4 << 20,
		},
	}
}

// InterpOptions 将语法与策略转换为插值器选项。
//
// Escape 取第一个字符，空字符串禁用转义。
func (c Config) InterpOptions() []interp.Option {
	escape, _ := utf8.DecodeRuneInString(c.Syntax.Escape)
	if escape == utf8.RuneError {
		escape = 0
	}

	return []interp.Option{
		interp.WithConfig(interp.Config{
			Prefix:                c.Syntax.Prefix,
			Suffix:                c.Syntax.Suffix,
			Escape:                escape,
			ValueDelimiter:        c.Syntax.Delimiter,
			SubstituteInVariables: c.Policy.InVariables,
			SubstituteInValues:    c.Policy.InValues,
			FailOnUndefined:       c.Policy.Strict,
			PreserveEscapes:       c.Policy.PreserveEscapes,
			MaxDepth:              c.Policy.MaxDepth,
		}),
	}
}
