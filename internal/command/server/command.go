// Package server 提供 HTTP 渲染服务命令。
package server

import (
	"slices"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251208-go-pkg-interp/internal/command"
	"github.com/lwmacct/251208-go-pkg-interp/internal/version"
)

// Command 服务器命令
var Command = &cli.Command{
	Name:     "serve",
	Usage:    "启动 HTTP 渲染服务",
	Action:   action,
	Commands: []*cli.Command{version.Command},
	Flags: slices.Concat(command.SyntaxFlags(), command.VarsFlags(), []cli.Flag{
		command.ConfigFlag(),
		&cli.StringFlag{
			Name:    "server-addr",
			Aliases: []string{"a"},
			Value:   command.Defaults.Server.Addr,
			Usage:   "服务器监听地址",
		},
		&cli.DurationFlag{
			Name:  "server-timeout",
			Value: command.Defaults.Server.Timeout,
			Usage: "HTTP 读写超时",
		},
		&cli.DurationFlag{
			Name:  "server-idletime",
			Value: command.Defaults.Server.Idletime,
			Usage: "HTTP 空闲超时",
		},
		&cli.Int64Flag{
			Name:  "server-max-body",
			Value: command.Defaults.Server.MaxBody,
			Usage: "请求体最大字节数",
		},
		&cli.IntFlag{
			Name:  "server-max-output",
			Value: command.Defaults.Server.MaxOutput,
			Usage: "单次渲染输出与占位符解析次数上限，0 表示不限制",
		},
	}),
}
