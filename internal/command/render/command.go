// Package render 提供模板渲染命令。
package render

import (
	"slices"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251208-go-pkg-interp/internal/command"
)

// Command 渲染命令
var Command = NewCommand()

// NewCommand 创建渲染命令，每次调用返回独立的 flag 状态。
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:      "render",
		Usage:     "渲染模板文件中的占位符",
		ArgsUsage: "[file]",
		Description: "从文件或标准输入读取模板，替换 ${...} 占位符后输出。\n" +
			"不指定文件或文件为 \"-\" 时读取标准输入。",
		Flags: slices.Concat(command.SyntaxFlags(), command.VarsFlags(), []cli.Flag{
			command.ConfigFlag(),
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "输出文件，默认标准输出",
			},
		}),
		Action: action,
	}
}
