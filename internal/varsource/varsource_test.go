package varsource_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/251208-go-pkg-interp/internal/config"
	"github.com/lwmacct/251208-go-pkg-interp/internal/varsource"
	"github.com/lwmacct/251208-go-pkg-interp/pkg/interp"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		ext     string
		content string
		want    map[string]any
	}{
		{
			name:    "yaml nested",
			ext:     ".yaml",
			content: "name: app\ndb:\n  host: localhost\n",
			want:    map[string]any{"name": "app", "db.host": "localhost"},
		},
		{
			name:    "yml extension",
			ext:     ".YML",
			content: "a: b\n",
			want:    map[string]any{"a": "b"},
		},
		{
			name:    "json nested",
			ext:     ".json",
			content: `{"db": {"host": "localhost"}, "debug": true}`,
			want:    map[string]any{"db.host": "localhost", "debug": true},
		},
		{
			name:    "toml table",
			ext:     ".toml",
			content: "name = \"app\"\n\n[db]\nhost = \"localhost\"\n",
			want:    map[string]any{"name": "app", "db.host": "localhost"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := varsource.Decode(tt.ext, []byte(tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	_, err := varsource.Decode(".ini", []byte("a=b"))
	require.ErrorIs(t, err, varsource.ErrUnsupportedFormat)

	_, err = varsource.Decode(".json", []byte("{"))
	require.Error(t, err)
}

func TestParseAssignments(t *testing.T) {
	got, err := varsource.ParseAssignments([]string{"a=1", "b=", "c=x=y"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": "1", "b": "", "c": "x=y"}, got)

	_, err = varsource.ParseAssignments([]string{"novalue"})
	require.Error(t, err)

	_, err = varsource.ParseAssignments([]string{"=value"})
	require.Error(t, err)
}

func TestBuild(t *testing.T) {
	t.Setenv("VARSOURCE_TEST_ENV", "from-env")

	dir := t.TempDir()
	first := filepath.Join(dir, "first.yaml")
	second := filepath.Join(dir, "second.toml")
	require.NoError(t, os.WriteFile(first, []byte("name: first\nport: 80\n"), 0o600))
	require.NoError(t, os.WriteFile(second, []byte("name = \"second\"\n"), 0o600))

	store, err := varsource.Build(config.VarsConfig{
		Files: []string{first, second},
		Set:   []string{"port=8080"},
		Env:   true,
	})
	require.NoError(t, err)

	out, err := interp.WithStore(store).Parse("${name}:${port} ${VARSOURCE_TEST_ENV}")
	require.NoError(t, err)
	assert.Equal(t, "second:8080 from-env", out)
}

func TestBuild_MissingFile(t *testing.T) {
	_, err := varsource.Build(config.VarsConfig{Files: []string{filepath.Join(t.TempDir(), "none.yaml")}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read vars file")
}
