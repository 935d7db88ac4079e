// Package version 提供构建信息与 version 子命令。
//
// 构建时通过 ldflags 注入：
//
//	go build -ldflags "-X github.com/lwmacct/251208-go-pkg-interp/internal/version.Version=v1.0.0"
package version

import (
	"context"
	"fmt"
	"runtime"

	"github.com/urfave/cli/v3"
)

var (
	AppRawName = "interp"
	Version    = "dev"
	Commit     = "unknown"
	BuildTime  = "unknown"
)

// GetVersion 返回版本号。
func GetVersion() string {
	return Version
}

// Info 返回完整的构建信息。
func Info() string {
	return fmt.Sprintf("%s %s (commit %s, built %s, %s/%s)",
		AppRawName, Version, Commit, BuildTime, runtime.GOOS, runtime.GOARCH)
}

// Command 版本命令
var Command = &cli.Command{
	Name:  "version",
	Usage: "显示版本信息",
	Action: func(_ context.Context, cmd *cli.Command) error {
		_, err := fmt.Fprintln(cmd.Root().Writer, Info())

		return err
	},
}
