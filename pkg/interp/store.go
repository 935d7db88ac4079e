package interp

import (
	"fmt"
	"maps"

	"github.com/go-viper/mapstructure/v2"
)

// Source 能以 string key 提供数据的任意来源，如 [Tuple]。
type Source interface {
	Entries() map[string]any
}

// Store 可变的 name→value 存储，所有修改方法返回自身以便链式调用。
//
// 零值可直接使用。Store 不加锁，见包文档的并发说明。
type Store struct {
	values map[string]any
}

// NewStore 创建存储并依次合并 entries。
func NewStore(entries ...map[string]any) *Store {
	s := &Store{values: make(map[string]any)}
	for _, e := range entries {
		s.Add(e)
	}

	return s
}

// Add 合并 entries，已存在的 key 被覆盖；nil 不做任何事。
func (s *Store) Add(entries map[string]any) *Store {
	if s.values == nil {
		s.values = make(map[string]any, len(entries))
	}
	maps.Copy(s.values, entries)

	return s
}

// AddFrom 依次合并每个来源，nil 来源被跳过。
func (s *Store) AddFrom(sources ...Source) *Store {
	for _, src := range sources {
		if src == nil {
			continue
		}
		s.Add(src.Entries())
	}

	return s
}

// AddStruct 将结构体或 map 按 json tag 展开后合并，嵌套字段使用 "a.b" 形式的 key。
func (s *Store) AddStruct(v any) (*Store, error) {
	if v == nil {
		return s, nil
	}

	var raw map[string]any
	conf := &mapstructure.DecoderConfig{
		Result:  &raw,
		TagName: "json",
	}
	decoder, err := mapstructure.NewDecoder(conf)
	if err != nil {
		return s, err
	}
	if err := decoder.Decode(v); err != nil {
		return s, fmt.Errorf("interp: decode %T: %w", v, err)
	}

	return s.Add(Flatten(raw)), nil
}

// Set 清空存储后合并 entries。
func (s *Store) Set(entries map[string]any) *Store {
	clear(s.values)

	return s.Add(entries)
}

// SetFrom 清空存储后合并各来源。
func (s *Store) SetFrom(sources ...Source) *Store {
	clear(s.values)

	return s.AddFrom(sources...)
}

// Delete 删除指定 key，不存在的 key 被忽略。
func (s *Store) Delete(keys ...string) *Store {
	for _, key := range keys {
		delete(s.values, key)
	}

	return s
}

// Lookup 返回 key 对应的原始值。
func (s *Store) Lookup(key string) (any, bool) {
	v, ok := s.values[key]

	return v, ok
}

// Len 返回 key 数量。
func (s *Store) Len() int {
	return len(s.values)
}

// Clone 返回内容相同的独立存储。
func (s *Store) Clone() *Store {
	return &Store{values: maps.Clone(s.values)}
}

// Snapshot 返回只读的实时视图，之后对存储的修改在视图中可见。
func (s *Store) Snapshot() View {
	return View{store: s}
}

// lookupText 查找并渲染变量，值为 nil 视为未定义。
func (s *Store) lookupText(key string) (string, bool) {
	v, ok := s.values[key]
	if !ok || v == nil {
		return "", false
	}

	return render(v), true
}

// render 将值转为文本。
func render(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case []byte:
		return string(val)
	case fmt.Stringer:
		return val.String()
	case error:
		return val.Error()
	default:
		return fmt.Sprint(val)
	}
}
