// Package vars 提供变量查看命令。
package vars

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
	yamlv3 "go.yaml.in/yaml/v3"

	"github.com/lwmacct/251208-go-pkg-interp/internal/command"
)

// Command 变量命令
var Command = NewCommand()

// NewCommand 创建变量命令。
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:   "vars",
		Usage:  "以 YAML 输出合并后的变量",
		Flags:  append(command.VarsFlags(), command.ConfigFlag()),
		Action: action,
	}
}

func action(_ context.Context, cmd *cli.Command) error {
	cfg, err := command.Load(cmd)
	if err != nil {
		return err
	}

	ip, err := command.NewInterpolator(cfg)
	if err != nil {
		return err
	}

	data, err := yamlv3.Marshal(ip.Values().Map())
	if err != nil {
		return fmt.Errorf("marshal vars: %w", err)
	}
	_, err = cmd.Root().Writer.Write(data)

	return err
}
