package interp

import "log/slog"

const (
	DefaultPrefix         = "${"
	DefaultSuffix         = "}"
	DefaultEscape         = '$'
	DefaultValueDelimiter = ":"

	// DefaultMaxDepth 值递归展开的最大层数。
	DefaultMaxDepth = 32
)

// Config 单次解析使用的语法与策略，解析过程中只读。
type Config struct {
	Prefix         string
	Suffix         string
	Escape         rune // 0 表示不支持转义
	ValueDelimiter string // 空字符串表示不支持默认值

	SubstituteInVariables bool // 展开变量名中的占位符
	SubstituteInValues    bool // 展开解析结果中的占位符
	FailOnUndefined       bool // 未定义变量返回 UndefinedVariableError
	PreserveEscapes       bool // 输出时保留转义字符

	MaxDepth int

	// MaxOutput 单次解析的输出字节上限，同时限制占位符解析次数；0 表示不限制
	MaxOutput int
}

// DefaultConfig 返回默认语法：${name:default}，'$' 转义，所有策略关闭。
func DefaultConfig() Config {
	return Config{
		Prefix:         DefaultPrefix,
		Suffix:         DefaultSuffix,
		Escape:         DefaultEscape,
		ValueDelimiter: DefaultValueDelimiter,
		MaxDepth:       DefaultMaxDepth,
	}
}

// normalized 用默认值填充无效字段，配置本身不会导致解析失败。
func (c Config) normalized() Config {
	if c.Prefix == "" {
		c.Prefix = DefaultPrefix
	}
	if c.Suffix == "" {
		c.Suffix = DefaultSuffix
	}
	if c.MaxDepth <= 0 {
		c.MaxDepth = DefaultMaxDepth
	}
	if c.MaxOutput < 0 {
		c.MaxOutput = 0
	}

	return c
}

// options 插值器构造选项。
type options struct {
	cfg    Config
	logger *slog.Logger
}

// Option 插值器选项函数。
type Option func(*options)

func newOptions(opts []Option) *options {
	o := &options{cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(o)
	}
	o.cfg = o.cfg.normalized()

	return o
}

// WithConfig 整体替换配置，之后的选项仍可覆盖单个字段。
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.cfg = cfg
	}
}

// WithPrefix 设置占位符前缀，如 "{{"。
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.cfg.Prefix = prefix
	}
}

// WithSuffix 设置占位符后缀，如 "}}"。
func WithSuffix(suffix string) Option {
	return func(o *options) {
		o.cfg.Suffix = suffix
	}
}

// WithEscape 设置转义字符。
func WithEscape(escape rune) Option {
	return func(o *options) {
		o.cfg.Escape = escape
	}
}

// WithoutEscape 禁用转义。
func WithoutEscape() Option {
	return func(o *options) {
		o.cfg.Escape = 0
	}
}

// WithValueDelimiter 设置默认值分隔符，空字符串表示禁用默认值。
func WithValueDelimiter(delimiter string) Option {
	return func(o *options) {
		o.cfg.ValueDelimiter = delimiter
	}
}

// WithSubstitutionInVariables 允许变量名中嵌套占位符。
func WithSubstitutionInVariables(enable bool) Option {
	return func(o *options) {
		o.cfg.SubstituteInVariables = enable
	}
}

// WithSubstitutionInValues 继续展开解析结果中的占位符。
func WithSubstitutionInValues(enable bool) Option {
	return func(o *options) {
		o.cfg.SubstituteInValues = enable
	}
}

// WithUndefinedVariableError 未定义变量时返回错误而不是保持原样。
func WithUndefinedVariableError(enable bool) Option {
	return func(o *options) {
		o.cfg.FailOnUndefined = enable
	}
}

// WithPreserveEscapes 输出被转义的占位符时保留转义字符。
func WithPreserveEscapes(enable bool) Option {
	return func(o *options) {
		o.cfg.PreserveEscapes = enable
	}
}

// WithMaxDepth 设置值递归展开的最大层数。
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		o.cfg.MaxDepth = depth
	}
}

// WithMaxOutput 设置单次解析的输出字节上限，0 表示不限制。
func WithMaxOutput(limit int) Option {
	return func(o *options) {
		o.cfg.MaxOutput = limit
	}
}

// WithLogger 设置调试日志，nil 表示不输出。
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
