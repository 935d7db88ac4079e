package render

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251208-go-pkg-interp/internal/command"
)

func action(_ context.Context, cmd *cli.Command) error {
	cfg, err := command.Load(cmd)
	if err != nil {
		return err
	}

	ip, err := command.NewInterpolator(cfg)
	if err != nil {
		return err
	}

	src, err := readTemplate(cmd)
	if err != nil {
		return err
	}

	out, err := ip.Parse(string(src))
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	slog.Debug("Template rendered", "vars", ip.Store().Len(), "bytes", len(out))

	return writeOutput(cmd, out)
}

func readTemplate(cmd *cli.Command) ([]byte, error) {
	path := cmd.Args().First()
	if path == "" || path == "-" {
		return io.ReadAll(cmd.Root().Reader)
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by the user
	if err != nil {
		return nil, fmt.Errorf("read template: %w", err)
	}

	return data, nil
}

func writeOutput(cmd *cli.Command, out string) error {
	path := cmd.String("output")
	if path == "" || path == "-" {
		_, err := io.WriteString(cmd.Root().Writer, out)

		return err
	}

	if err := os.WriteFile(path, []byte(out), 0o644); err != nil { //nolint:gosec // rendered output is not secret
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}
