package cfgm

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	yamlv3 "go.yaml.in/yaml/v3"

	"github.com/lwmacct/251208-go-pkg-interp/pkg/interp"
)

var (
	durationType = reflect.TypeFor[time.Duration]()
	timeType     = reflect.TypeFor[time.Time]()
)

// ═══════════════════════════════════════════════════════════════════════════
// 结构体 ↔ map
// ═══════════════════════════════════════════════════════════════════════════

// tagName 返回字段的 json key，忽略的字段返回空字符串。
func tagName(field reflect.StructField) string {
	if field.PkgPath != "" {
		return ""
	}
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}

	return name
}

func isStructType(typ reflect.Type) bool {
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}

	return typ.Kind() == reflect.Struct && typ != durationType && typ != timeType
}

// structToMap 将默认配置转为以 json key 组织的嵌套 map。
func structToMap(cfg any) map[string]any {
	val := reflect.Indirect(reflect.ValueOf(cfg))
	if !val.IsValid() || !isStructType(val.Type()) {
		return map[string]any{}
	}

	out := make(map[string]any)
	typ := val.Type()
	for i := range typ.NumField() {
		key := tagName(typ.Field(i))
		if key == "" {
			continue
		}

		fieldVal := val.Field(i)
		if isStructType(fieldVal.Type()) {
			if fieldVal.Kind() == reflect.Pointer && fieldVal.IsNil() {
				continue
			}
			out[key] = structToMap(fieldVal.Interface())

			continue
		}
		out[key] = fieldVal.Interface()
	}

	return out
}

// walkKeys 遍历结构体叶子字段，回调完整 key 与字段类型。
func walkKeys(typ reflect.Type, prefix string, fn func(key string, typ reflect.Type)) {
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return
	}

	for i := range typ.NumField() {
		field := typ.Field(i)
		key := tagName(field)
		if key == "" {
			continue
		}
		if prefix != "" {
			key = prefix + "." + key
		}

		if isStructType(field.Type) {
			walkKeys(field.Type, key, fn)

			continue
		}
		fn(key, field.Type)
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// 配置文件
// ═══════════════════════════════════════════════════════════════════════════

// parseConfigBytes 按扩展名解析配置文件，根节点必须是对象。
func parseConfigBytes(path string, content []byte) (map[string]any, error) {
	var raw any
	var err error
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(content, &raw)
	} else {
		err = yamlv3.Unmarshal(content, &raw)
	}
	if err != nil {
		return nil, err
	}

	switch root := normalizeKeys(raw).(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return root, nil
	default:
		return nil, errors.New("config root must be object")
	}
}

// normalizeKeys 将 map[any]any 统一为 map[string]any。
func normalizeKeys(val any) any {
	switch typed := val.(type) {
	case map[string]any:
		for key, value := range typed {
			typed[key] = normalizeKeys(value)
		}

		return typed
	case map[any]any:
		out := make(map[string]any, len(typed))
		for key, value := range typed {
			out[fmt.Sprint(key)] = normalizeKeys(value)
		}

		return out
	case []any:
		for i := range typed {
			typed[i] = normalizeKeys(typed[i])
		}

		return typed
	default:
		return val
	}
}

// mergeMaps 递归合并，src 覆盖 dst。
func mergeMaps(dst, src map[string]any) {
	for key, value := range src {
		if srcMap, ok := value.(map[string]any); ok {
			if dstMap, ok := dst[key].(map[string]any); ok {
				mergeMaps(dstMap, srcMap)

				continue
			}
		}
		dst[key] = value
	}
}

// setByPath 按 "a.b.c" 写入嵌套 map，缺失的中间层自动创建。
func setByPath(dst map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := dst
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = value
}

// ═══════════════════════════════════════════════════════════════════════════
// 模板展开与解码
// ═══════════════════════════════════════════════════════════════════════════

// expandStrings 展开 data 中所有字符串叶子节点，path 用于错误信息。
func expandStrings(ip *interp.Interpolator, data map[string]any, path string) error {
	for key, value := range data {
		fullKey := key
		if path != "" {
			fullKey = path + "." + key
		}

		expanded, err := expandValue(ip, value, fullKey)
		if err != nil {
			return err
		}
		data[key] = expanded
	}

	return nil
}

func expandValue(ip *interp.Interpolator, value any, key string) (any, error) {
	switch typed := value.(type) {
	case string:
		out, err := ip.Parse(typed)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}

		return out, nil
	case map[string]any:
		return typed, expandStrings(ip, typed, key)
	case []any:
		for i, item := range typed {
			out, err := expandValue(ip, item, fmt.Sprintf("%s[%d]", key, i))
			if err != nil {
				return nil, err
			}
			typed[i] = out
		}

		return typed, nil
	case []string:
		if typed == nil {
			return typed, nil
		}
		out := make([]string, len(typed))
		for i, item := range typed {
			s, err := ip.Parse(item)
			if err != nil {
				return nil, fmt.Errorf("%s[%d]: %w", key, i, err)
			}
			out[i] = s
		}

		return out, nil
	default:
		return value, nil
	}
}

func decodeConfigMap(data map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
			mapstructure.TextUnmarshallerHookFunc(),
		),
		Result:           out,
		WeaklyTypedInput: true,
		TagName:          "json",
	})
	if err != nil {
		return err
	}

	return decoder.Decode(data)
}
