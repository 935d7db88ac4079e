// Package varsource 将变量文件、key=value 赋值与环境变量装载为 interp.Store。
//
// 合并顺序 (后者覆盖前者)：环境变量 → 变量文件 (按给定顺序) → key=value。
// 文件中的嵌套对象展开为 "a.b" 形式的 key。
package varsource

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	yamlv3 "go.yaml.in/yaml/v3"

	"github.com/lwmacct/251208-go-pkg-interp/internal/config"
	"github.com/lwmacct/251208-go-pkg-interp/pkg/interp"
)

// ErrUnsupportedFormat 变量文件扩展名不受支持。
var ErrUnsupportedFormat = errors.New("unsupported vars file format")

// Build 按 cfg 构建变量存储。
func Build(cfg config.VarsConfig) (*interp.Store, error) {
	store := interp.NewStore()
	if cfg.Env {
		store = interp.EnvStore()
	}

	for _, path := range cfg.Files {
		vars, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		store.Add(vars)
	}

	sets, err := ParseAssignments(cfg.Set)
	if err != nil {
		return nil, err
	}

	return store.Add(sets), nil
}

// LoadFile 读取变量文件，按扩展名选择 YAML、JSON 或 TOML 解析。
func LoadFile(path string) (map[string]any, error) {
	content, err := os.ReadFile(path) //nolint:gosec // path is provided by the user
	if err != nil {
		return nil, fmt.Errorf("read vars file: %w", err)
	}

	vars, err := Decode(filepath.Ext(path), content)
	if err != nil {
		return nil, fmt.Errorf("parse vars file %s: %w", path, err)
	}

	return vars, nil
}

// Decode 解析变量内容，ext 为带点的扩展名。
func Decode(ext string, content []byte) (map[string]any, error) {
	var raw map[string]any
	var err error

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		err = yamlv3.Unmarshal(content, &raw)
	case ".json":
		err = json.Unmarshal(content, &raw)
	case ".toml":
		err = toml.Unmarshal(content, &raw)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, err
	}

	return interp.Flatten(raw), nil
}

// ParseAssignments 解析 key=value 列表，value 可以为空，key 不能为空。
func ParseAssignments(pairs []string) (map[string]any, error) {
	out := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid assignment %q: want key=value", pair)
		}
		out[key] = value
	}

	return out, nil
}
