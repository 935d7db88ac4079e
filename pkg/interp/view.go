package interp

import (
	"iter"
	"maps"
	"slices"
	"strings"
)

// View 是 [Store] 的只读实时视图。
//
// 视图不复制数据；所有写方法都返回 [ErrUnsupportedMutation]。
type View struct {
	store *Store
}

// Get 返回 key 对应的值。
func (v View) Get(key string) (any, bool) {
	if v.store == nil {
		return nil, false
	}

	return v.store.Lookup(key)
}

// Len 返回 key 数量。
func (v View) Len() int {
	if v.store == nil {
		return 0
	}

	return v.store.Len()
}

// Keys 返回排序后的 key 列表。
func (v View) Keys() []string {
	if v.store == nil {
		return nil
	}

	return slices.Sorted(maps.Keys(v.store.values))
}

// All 按 key 排序遍历。
func (v View) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, key := range v.Keys() {
			if !yield(key, v.store.values[key]) {
				return
			}
		}
	}
}

// Map 返回当前内容的副本。
func (v View) Map() map[string]any {
	if v.store == nil {
		return map[string]any{}
	}

	return maps.Clone(v.store.values)
}

// String 以 {k=v, ...} 形式输出，key 有序。
func (v View) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	for key, val := range v.All() {
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(key)
		b.WriteByte('=')
		if val == nil {
			b.WriteString("<nil>")
		} else {
			b.WriteString(render(val))
		}
	}
	b.WriteByte('}')

	return b.String()
}

// Put 总是返回 [ErrUnsupportedMutation]。
func (v View) Put(key string, _ any) error {
	return mutationError("put", key)
}

// Delete 总是返回 [ErrUnsupportedMutation]。
func (v View) Delete(keys ...string) error {
	return mutationError("delete", strings.Join(keys, ","))
}

// Clear 总是返回 [ErrUnsupportedMutation]。
func (v View) Clear() error {
	return mutationError("clear", "")
}
