package interp

import "maps"

// Tuple 带别名的定长值序列，按别名提供 [Source] 数据。
//
//	t := interp.TupleOf("zs", 123456).Alias("NAME", "ID")
type Tuple struct {
	values  []any
	aliases []string
}

// TupleOf 创建元组。
func TupleOf(values ...any) Tuple {
	return Tuple{values: values}
}

// Alias 为元素依次命名，多余的别名被忽略。
func (t Tuple) Alias(names ...string) Tuple {
	n := min(len(names), len(t.values))
	t.aliases = names[:n:n]

	return t
}

// Arity 返回元素个数。
func (t Tuple) Arity() int {
	return len(t.values)
}

// Entries 返回已命名元素，没有别名的元素不出现在结果中。
func (t Tuple) Entries() map[string]any {
	out := make(map[string]any, len(t.aliases))
	for i, name := range t.aliases {
		out[name] = t.values[i]
	}

	return out
}

// Vars 包装普通 map 为 [Source]。
type Vars map[string]any

// Entries 返回 map 的副本。
func (m Vars) Entries() map[string]any {
	return maps.Clone(m)
}

// Flatten 将嵌套 map 展开为 "a.b.c" 形式的 key，非 map 值保持不变。
func Flatten(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	flattenInto(out, "", m)

	return out
}

func flattenInto(out map[string]any, prefix string, m map[string]any) {
	for key, value := range m {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch child := value.(type) {
		case map[string]any:
			if len(child) == 0 {
				out[fullKey] = child

				continue
			}
			flattenInto(out, fullKey, child)
		default:
			out[fullKey] = value
		}
	}
}
