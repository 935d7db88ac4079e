package cfgm

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251208-go-pkg-interp/pkg/interp"
)

// DefaultPaths 返回默认配置文件的搜索顺序，先命中的文件生效。
//
// 提供 appName 时依次为：
//  1. ./.appname.yaml
//  2. ~/.appname.yaml
//  3. /etc/appname/config.yaml
//
// 最后总是追加 config.yaml 与 config/config.yaml。
func DefaultPaths(appName ...string) []string {
	var paths []string

	if len(appName) > 0 && appName[0] != "" {
		name := appName[0]
		paths = append(paths, "."+name+".yaml")
		if home, err := os.UserHomeDir(); err == nil {
			paths = append(paths, filepath.Join(home, "."+name+".yaml"))
		}
		paths = append(paths, "/etc/"+name+"/config.yaml")
	}

	return append(paths, "config.yaml", "config/config.yaml")
}

// Load 读取配置并按优先级合并：默认值 → 配置文件 → 环境变量 → CLI flags。
func Load[T any](defaultConfig T, opts ...Option) (*T, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if len(o.configPaths) == 0 {
		o.configPaths = DefaultPaths(o.appName)
	}

	configMap := structToMap(defaultConfig)

	// 配置文件：按顺序搜索，找到第一个即停止
	loaded := false
	for _, path := range o.configPaths {
		content, err := os.ReadFile(path) //nolint:gosec // path is from trusted config
		if err != nil {
			continue
		}

		fileMap, err := parseConfigBytes(path, content)
		if err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
		mergeMaps(configMap, fileMap)

		slog.Debug("Loaded config from file", "path", path)
		loaded = true

		break
	}
	if !loaded {
		slog.Debug("No config file found, using defaults")
	}

	// 默认值与配置文件中的 ${...} 在环境变量与 flags 覆盖之前展开
	if !o.noTemplateExpansion {
		ip := interp.WithStore(interp.EnvStore(), append([]interp.Option{
			interp.WithSubstitutionInVariables(true),
			interp.WithSubstitutionInValues(true),
		}, o.templateOpts...)...)
		if err := expandStrings(ip, configMap, ""); err != nil {
			return nil, fmt.Errorf("expand template: %w", err)
		}
	}

	if o.envPrefix != "" {
		applyEnv(o.envPrefix, configMap, reflect.TypeOf(defaultConfig))
	}

	if o.cmd != nil {
		applyFlags(o.cmd, configMap, reflect.TypeOf(defaultConfig))
	}

	var cfg T
	if err := decodeConfigMap(configMap, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// LoadCmd 是 [Load] 的 CLI 版本，注入 [WithCommand]，appName 非空时注入 [WithAppName]。
func LoadCmd[T any](cmd *cli.Command, defaultConfig T, appName string, opts ...Option) (*T, error) {
	base := []Option{WithCommand(cmd)}
	if appName != "" {
		base = append(base, WithAppName(appName))
	}

	return Load(defaultConfig, append(base, opts...)...)
}

// MustLoad 调用 [Load] 并在失败时 panic，适合启动阶段。
func MustLoad[T any](defaultConfig T, opts ...Option) *T {
	cfg, err := Load(defaultConfig, opts...)
	if err != nil {
		panic(fmt.Sprintf("cfgm: failed to load config: %v", err))
	}

	return cfg
}

// MustLoadCmd 调用 [LoadCmd] 并在失败时 panic。
func MustLoadCmd[T any](cmd *cli.Command, defaultConfig T, appName string, opts ...Option) *T {
	cfg, err := LoadCmd(cmd, defaultConfig, appName, opts...)
	if err != nil {
		panic(fmt.Sprintf("cfgm: failed to load config: %v", err))
	}

	return cfg
}

// EnvName 返回配置 key 对应的环境变量名。
//
//	EnvName("APP_", "server.idle-timeout") // APP_SERVER_IDLE_TIMEOUT
func EnvName(prefix, key string) string {
	return prefix + strings.ToUpper(strings.NewReplacer(".", "_", "-", "_").Replace(key))
}

// FlagName 返回配置 key 对应的 CLI flag 名称。
func FlagName(key string) string {
	return strings.ReplaceAll(key, ".", "-")
}

// applyEnv 将非空的前缀环境变量写入配置 map。
func applyEnv(prefix string, config map[string]any, typ reflect.Type) {
	count := 0
	walkKeys(typ, "", func(key string, _ reflect.Type) {
		envKey := EnvName(prefix, key)
		if val := os.Getenv(envKey); val != "" {
			setByPath(config, key, val)
			slog.Debug("Loaded env binding", "env", envKey, "path", key)
			count++
		}
	})
	slog.Debug("Applied env bindings", "prefix", prefix, "count", count)
}

// applyFlags 将用户显式设置的 CLI flags 写入配置 map。
func applyFlags(cmd *cli.Command, config map[string]any, typ reflect.Type) {
	walkKeys(typ, "", func(key string, fieldType reflect.Type) {
		name := FlagName(key)
		if !cmd.IsSet(name) {
			return
		}
		if val, ok := flagValue(cmd, name, fieldType); ok {
			setByPath(config, key, val)
		}
	})
}

// flagValue 按字段类型读取 CLI 值，不支持的类型返回 false。
func flagValue(cmd *cli.Command, name string, fieldType reflect.Type) (any, bool) {
	if fieldType == durationType {
		return cmd.Duration(name), true
	}
	if fieldType == reflect.TypeFor[time.Time]() {
		return cmd.Timestamp(name), true
	}

	switch fieldType.Kind() {
	case reflect.String:
		return cmd.String(name), true
	case reflect.Bool:
		return cmd.Bool(name), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32:
		return cmd.Int(name), true
	case reflect.Int64:
		return cmd.Int64(name), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return cmd.Uint(name), true
	case reflect.Float32, reflect.Float64:
		return cmd.Float64(name), true
	case reflect.Slice:
		switch fieldType.Elem().Kind() {
		case reflect.String:
			return cmd.StringSlice(name), true
		case reflect.Int:
			return cmd.IntSlice(name), true
		default:
			return nil, false
		}
	case reflect.Map:
		if fieldType.Key().Kind() == reflect.String && fieldType.Elem().Kind() == reflect.String {
			return cmd.StringMap(name), true
		}

		return nil, false
	default:
		return nil, false
	}
}
