package interp

import (
	"context"
	"log/slog"
	"strings"
)

// ═══════════════════════════════════════════════════════════════════════════
// 表达式解析
// ═══════════════════════════════════════════════════════════════════════════

// expression 占位符内部文本：name 与可选的默认值。
type expression struct {
	name       string
	def        string
	hasDefault bool
}

// splitExpression 在第一个不处于嵌套占位符内的分隔符处切分。
//
// 对不含嵌套的表达式等同于按第一个分隔符切分："age::20" → "age", ":20"。
func splitExpression(inner string, cfg Config) expression {
	delim := cfg.ValueDelimiter
	if delim == "" || !strings.Contains(inner, delim) {
		return expression{name: inner}
	}

	nested := cfg.Prefix != cfg.Suffix
	depth := 0
	for i := 0; i < len(inner); {
		switch {
		case nested && strings.HasPrefix(inner[i:], cfg.Prefix):
			depth++
			i += len(cfg.Prefix)
		case depth > 0 && strings.HasPrefix(inner[i:], cfg.Suffix):
			depth--
			i += len(cfg.Suffix)
		case depth == 0 && strings.HasPrefix(inner[i:], delim):
			return expression{name: inner[:i], def: inner[i+len(delim):], hasDefault: true}
		default:
			i++
		}
	}

	return expression{name: inner}
}

// ═══════════════════════════════════════════════════════════════════════════
// 替换引擎
// ═══════════════════════════════════════════════════════════════════════════

// Parse 使用 store 中的变量替换 src 中的占位符。
//
// 相同输入总是得到相同输出；失败时不返回部分结果。
// 可能的错误：[*UndefinedVariableError]、[*RecursionLimitError]、[*OutputLimitError]。
func Parse(src string, store *Store, cfg Config) (string, error) {
	e := &engine{store: store, cfg: cfg.normalized()}

	return e.expand(src, 0, nil)
}

type engine struct {
	store  *Store
	cfg    Config
	logger *slog.Logger

	resolved int // 已解析的占位符数量
}

// expand 替换 text 中的占位符。depth 为值递归展开的层数，chain 为展开链。
func (e *engine) expand(text string, depth int, chain []string) (string, error) {
	if !strings.Contains(text, e.cfg.Prefix) {
		if err := e.checkOutput(len(text)); err != nil {
			return "", err
		}

		return text, nil
	}

	var buf strings.Builder
	buf.Grow(len(text))

	last := 0
	sc := NewScanner(text, e.cfg)
	for span, ok := sc.Next(); ok; span, ok = sc.Next() {
		buf.WriteString(text[last:span.Start])
		last = span.End

		if span.Kind == SpanEscaped {
			if e.cfg.PreserveEscapes {
				buf.WriteString(text[span.Start:span.End])
			} else {
				buf.WriteString(e.cfg.Prefix)
			}

			continue
		}

		raw := text[span.Start:span.End]
		inner := raw[len(e.cfg.Prefix) : len(raw)-len(e.cfg.Suffix)]
		resolved, err := e.resolve(raw, inner, depth, chain)
		if err != nil {
			return "", err
		}
		buf.WriteString(resolved)
		if err := e.checkOutput(buf.Len()); err != nil {
			return "", err
		}
	}
	buf.WriteString(text[last:])
	if err := e.checkOutput(buf.Len()); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// checkOutput 检查输出大小与占位符解析次数是否超过 MaxOutput。
func (e *engine) checkOutput(size int) error {
	limit := e.cfg.MaxOutput
	if limit == 0 || (size <= limit && e.resolved <= limit) {
		return nil
	}
	e.debug("output limit exceeded", slog.Int("limit", limit), slog.Int("size", size))

	return &OutputLimitError{Limit: limit}
}

// resolve 解析单个占位符，未定义时返回 raw。
func (e *engine) resolve(raw, inner string, depth int, chain []string) (string, error) {
	e.resolved++
	if err := e.checkOutput(0); err != nil {
		return "", err
	}

	expr := splitExpression(inner, e.cfg)

	name := expr.name
	if e.cfg.SubstituteInVariables {
		var err error
		name, err = e.expand(name, depth, chain)
		if err != nil {
			return "", err
		}
	}

	value, found := e.lookup(name)
	if !found {
		if !expr.hasDefault {
			if e.cfg.FailOnUndefined {
				return "", &UndefinedVariableError{Name: name}
			}
			e.debug("variable undefined, kept as is", slog.String("name", name))

			return raw, nil
		}

		value = expr.def
		if e.cfg.SubstituteInVariables && !e.cfg.SubstituteInValues {
			return e.expand(value, depth, chain)
		}
	}

	if !e.cfg.SubstituteInValues || !strings.Contains(value, e.cfg.Prefix) {
		return value, nil
	}

	next := append(chain[:len(chain):len(chain)], name)
	if depth+1 > e.cfg.MaxDepth {
		e.debug("recursion limit exceeded", slog.Int("limit", e.cfg.MaxDepth), slog.String("name", name))

		return "", &RecursionLimitError{Limit: e.cfg.MaxDepth, Chain: next}
	}

	return e.expand(value, depth+1, next)
}

func (e *engine) lookup(name string) (string, bool) {
	if e.store == nil {
		return "", false
	}

	return e.store.lookupText(name)
}

func (e *engine) debug(msg string, attrs ...slog.Attr) {
	if e.logger == nil {
		return
	}
	e.logger.LogAttrs(context.Background(), slog.LevelDebug, msg, attrs...)
}
