package cfgm

import (
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251208-go-pkg-interp/pkg/interp"
)

// options 配置加载选项。
type options struct {
	appName             string // 应用名称，用于生成默认配置路径
	cmd                 *cli.Command
	configPaths         []string
	envPrefix           string
	noTemplateExpansion bool
	templateOpts        []interp.Option
}

// Option 配置加载选项函数。
type Option func(*options)

// WithCommand 绑定 CLI 命令，读取显式设置的 flags 以覆盖配置（最高优先级）。
func WithCommand(cmd *cli.Command) Option {
	return func(o *options) {
		o.cmd = cmd
	}
}

// WithAppName 设置应用名称，用于生成默认搜索路径（见 [DefaultPaths]）。
func WithAppName(name string) Option {
	return func(o *options) {
		o.appName = name
	}
}

// WithConfigPaths 设置配置文件搜索路径，按顺序查找，命中首个文件即停止。
func WithConfigPaths(paths ...string) Option {
	return func(o *options) {
		o.configPaths = paths
	}
}

// WithEnvPrefix 启用环境变量前缀解析。
//
// 命名规则：前缀 + 大写的配置 key，"." 和 "-" 转为 "_"。
// 只匹配结构体中定义的 key。
func WithEnvPrefix(prefix string) Option {
	return func(o *options) {
		o.envPrefix = prefix
	}
}

// WithoutTemplateExpansion 禁用字符串的模板展开。
func WithoutTemplateExpansion() Option {
	return func(o *options) {
		o.noTemplateExpansion = true
	}
}

// WithTemplateOptions 追加模板展开使用的 [interp.Option]，如改用 ":-" 作为默认值分隔符：
//
//	cfgm.WithTemplateOptions(interp.WithValueDelimiter(":-"))
func WithTemplateOptions(opts ...interp.Option) Option {
	return func(o *options) {
		o.templateOpts = append(o.templateOpts, opts...)
	}
}
