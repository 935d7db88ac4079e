package render_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251208-go-pkg-interp/internal/command/render"
	"github.com/lwmacct/251208-go-pkg-interp/pkg/interp"
)

// emptyConfig 返回空配置文件路径，使测试不受本机 .interp.yaml 等文件影响。
func emptyConfig(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "interp.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	return path
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	if !slices.Contains(args, "--config") {
		args = append([]string{"--config", emptyConfig(t)}, args...)
	}

	var out bytes.Buffer
	root := &cli.Command{
		Name:     "interp",
		Reader:   strings.NewReader(stdin),
		Writer:   &out,
		Commands: []*cli.Command{render.NewCommand()},
	}
	err := root.Run(context.Background(), append([]string{"interp", "render"}, args...))

	return out.String(), err
}

func TestRender_Stdin(t *testing.T) {
	got, err := run(t, "${NAME}==${ID}==${age:20}==$${ID}==${nick}",
		"--vars-set", "NAME=zs", "-s", "ID=123456")
	require.NoError(t, err)
	assert.Equal(t, "zs==123456==20==${ID}==${nick}", got)
}

func TestRender_FileAndOutput(t *testing.T) {
	dir := t.TempDir()
	tpl := filepath.Join(dir, "app.tpl")
	vars := filepath.Join(dir, "vars.yaml")
	dst := filepath.Join(dir, "app.conf")
	require.NoError(t, os.WriteFile(tpl, []byte("host={{db.host}}\n"), 0o600))
	require.NoError(t, os.WriteFile(vars, []byte("db:\n  host: localhost\n"), 0o600))

	_, err := run(t, "",
		"--syntax-prefix", "{{",
		"--syntax-suffix", "}}",
		"-f", vars,
		"-o", dst,
		tpl,
	)
	require.NoError(t, err)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "host=localhost\n", string(data))
}

func TestRender_Strict(t *testing.T) {
	_, err := run(t, "${missing}", "--policy-strict")
	require.ErrorIs(t, err, interp.ErrUndefinedVariable)
}

func TestRender_RecursionLimit(t *testing.T) {
	_, err := run(t, "${a}", "--policy-in-values", "--policy-max-depth", "4", "-s", "a=${a}")
	require.ErrorIs(t, err, interp.ErrRecursionLimit)
}

func TestRender_InvalidAssignment(t *testing.T) {
	_, err := run(t, "x", "-s", "novalue")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid assignment")
}

func TestRender_LongVarsFlags(t *testing.T) {
	vars := filepath.Join(t.TempDir(), "vars.toml")
	require.NoError(t, os.WriteFile(vars, []byte("NAME = \"zs\"\n"), 0o600))

	got, err := run(t, "${NAME}-${ID}-${HOME_DIR}",
		"--vars-files", vars,
		"--vars-set", "ID=1",
		"--vars-env",
		"--vars-set", "HOME_DIR=/root",
	)
	require.NoError(t, err)
	assert.Equal(t, "zs-1-/root", got)
}

func TestRender_ConfigFile(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "interp.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("syntax:\n  prefix: \"<\"\n  suffix: \">\"\n"), 0o600))

	got, err := run(t, "<NAME> ${NAME}", "--config", cfg, "-s", "NAME=zs")
	require.NoError(t, err)
	assert.Equal(t, "zs ${NAME}", got)

	got, err = run(t, "<NAME>", "--config", cfg, "--syntax-prefix", "${", "--syntax-suffix", "}", "-s", "NAME=zs")
	require.NoError(t, err)
	assert.Equal(t, "<NAME>", got, "flags override the config file")
}

func TestRender_MissingConfigFile(t *testing.T) {
	_, err := run(t, "x", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file")
}
