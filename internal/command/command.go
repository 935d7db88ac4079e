// Package command 提供 render、vars 与 serve 命令的公共部分。
package command

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251208-go-pkg-interp/internal/config"
	"github.com/lwmacct/251208-go-pkg-interp/internal/varsource"
	"github.com/lwmacct/251208-go-pkg-interp/pkg/cfgm"
	"github.com/lwmacct/251208-go-pkg-interp/pkg/interp"
)

// Defaults 为默认配置的单一来源。
var Defaults = config.DefaultConfig()

// Load 按 默认值 → 配置文件 → INTERP_ 环境变量 → CLI flags 加载配置。
//
// 指定 --config 时只读取该文件，且文件必须存在；否则按 cfgm.DefaultPaths 搜索。
func Load(cmd *cli.Command) (*config.Config, error) {
	opts := []cfgm.Option{cfgm.WithEnvPrefix(config.EnvPrefix)}
	if path := cmd.String("config"); path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
		opts = append(opts, cfgm.WithConfigPaths(path))
	}

	return cfgm.LoadCmd(cmd, config.DefaultConfig(), config.AppName, opts...)
}

// ConfigFlag 配置文件路径 flag。
func ConfigFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "配置文件路径，默认搜索 .interp.yaml、~/.interp.yaml、/etc/interp/config.yaml",
	}
}

// NewInterpolator 根据配置装载变量并创建插值器。
func NewInterpolator(cfg *config.Config) (*interp.Interpolator, error) {
	store, err := varsource.Build(cfg.Vars)
	if err != nil {
		return nil, err
	}

	return interp.WithStore(store, cfg.InterpOptions()...), nil
}

// SyntaxFlags 占位符语法与替换策略 flags。
func SyntaxFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "syntax-prefix",
			Value: Defaults.Syntax.Prefix,
			Usage: "占位符前缀",
		},
		&cli.StringFlag{
			Name:  "syntax-suffix",
			Value: Defaults.Syntax.Suffix,
			Usage: "占位符后缀",
		},
		&cli.StringFlag{
			Name:  "syntax-escape",
			Value: Defaults.Syntax.Escape,
			Usage: "转义字符，空表示禁用",
		},
		&cli.StringFlag{
			Name:  "syntax-delimiter",
			Value: Defaults.Syntax.Delimiter,
			Usage: "默认值分隔符，空表示禁用",
		},
		&cli.BoolFlag{
			Name:  "policy-in-variables",
			Usage: "展开变量名中的占位符",
		},
		&cli.BoolFlag{
			Name:  "policy-in-values",
			Usage: "展开变量值中的占位符",
		},
		&cli.BoolFlag{
			Name:  "policy-strict",
			Usage: "未定义变量报错",
		},
		&cli.BoolFlag{
			Name:  "policy-preserve-escapes",
			Usage: "保留转义字符",
		},
		&cli.IntFlag{
			Name:  "policy-max-depth",
			Value: Defaults.Policy.MaxDepth,
			Usage: "值递归展开的最大深度",
		},
	}
}

// VarsFlags 变量来源 flags。
func VarsFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:    "vars-files",
			Aliases: []string{"f"},
			Usage:   "变量文件 (yaml/json/toml)，可重复",
		},
		&cli.StringSliceFlag{
			Name:    "vars-set",
			Aliases: []string{"s"},
			Usage:   "key=value 形式的变量，可重复",
		},
		&cli.BoolFlag{
			Name:    "vars-env",
			Aliases: []string{"e"},
			Usage:   "加载环境变量",
		},
	}
}
