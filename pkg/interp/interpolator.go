package interp

import "fmt"

// Interpolator 绑定一个 [Store] 与一份配置。
//
// 解析时直接读取所持有的存储，修改存储后无需任何同步步骤。
type Interpolator struct {
	store *Store
	opts  *options
}

// New 创建空存储的插值器。
func New(opts ...Option) *Interpolator {
	return &Interpolator{store: NewStore(), opts: newOptions(opts)}
}

// Of 创建插值器并合并 entries。
func Of(entries map[string]any, opts ...Option) *Interpolator {
	return New(opts...).Add(entries)
}

// OfSources 创建插值器并依次合并各来源，nil 来源被跳过。
func OfSources(sources []Source, opts ...Option) *Interpolator {
	return New(opts...).AddFrom(sources...)
}

// WithStore 创建使用现有存储的插值器，之后对 store 的修改直接生效。
func WithStore(store *Store, opts ...Option) *Interpolator {
	if store == nil {
		store = NewStore()
	}

	return &Interpolator{store: store, opts: newOptions(opts)}
}

// Add 合并 entries。
func (ip *Interpolator) Add(entries map[string]any) *Interpolator {
	ip.store.Add(entries)

	return ip
}

// AddFrom 合并各来源。
func (ip *Interpolator) AddFrom(sources ...Source) *Interpolator {
	ip.store.AddFrom(sources...)

	return ip
}

// Set 替换全部变量。
func (ip *Interpolator) Set(entries map[string]any) *Interpolator {
	ip.store.Set(entries)

	return ip
}

// SetFrom 用各来源替换全部变量。
func (ip *Interpolator) SetFrom(sources ...Source) *Interpolator {
	ip.store.SetFrom(sources...)

	return ip
}

// Delete 删除变量。
func (ip *Interpolator) Delete(keys ...string) *Interpolator {
	ip.store.Delete(keys...)

	return ip
}

// Store 返回底层存储。
func (ip *Interpolator) Store() *Store {
	return ip.store
}

// Values 返回存储的只读实时视图。
func (ip *Interpolator) Values() View {
	return ip.store.Snapshot()
}

// Config 返回生效的配置。
func (ip *Interpolator) Config() Config {
	return ip.opts.cfg
}

// Parse 替换 src 中的占位符，语义见 [Parse]。
func (ip *Interpolator) Parse(src string) (string, error) {
	e := &engine{store: ip.store, cfg: ip.opts.cfg, logger: ip.opts.logger}

	return e.expand(src, 0, nil)
}

// ParseBytes 与 [Interpolator.Parse] 相同，输入输出为字节切片。
func (ip *Interpolator) ParseBytes(src []byte) ([]byte, error) {
	out, err := ip.Parse(string(src))
	if err != nil {
		return nil, err
	}

	return []byte(out), nil
}

// MustParse 调用 [Interpolator.Parse] 并在失败时 panic，适合模板确定可解析的场景。
func (ip *Interpolator) MustParse(src string) string {
	out, err := ip.Parse(src)
	if err != nil {
		panic(fmt.Sprintf("interp: parse failed: %v", err))
	}

	return out
}
