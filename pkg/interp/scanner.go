package interp

import (
	"iter"
	"strings"
	"unicode/utf8"
)

// SpanKind 占位符片段类型。
type SpanKind int

const (
	SpanPlain   SpanKind = iota // 完整的 <prefix>...<suffix>
	SpanEscaped                 // <escape><prefix>，不匹配后缀
)

func (k SpanKind) String() string {
	switch k {
	case SpanPlain:
		return "plain"
	case SpanEscaped:
		return "escaped"
	default:
		return "unknown"
	}
}

// Span 源文本中的占位符区间 [Start, End)。
//
// SpanEscaped 的区间从转义字符开始，到前缀结束。
type Span struct {
	Kind  SpanKind
	Start int
	End   int
}

// Scanner 按从左到右的顺序惰性地查找占位符，结果互不重叠。
type Scanner struct {
	src  string
	cfg  Config
	pos  int // 下一次查找前缀的起点
	last int // 上一个片段的结束位置，转义字符不能落在它之前
}

// NewScanner 创建扫描器。
func NewScanner(src string, cfg Config) *Scanner {
	return &Scanner{src: src, cfg: cfg.normalized()}
}

// Next 返回下一个占位符片段，没有更多片段时返回 false。
func (s *Scanner) Next() (Span, bool) {
	prefix := s.cfg.Prefix
	for s.pos < len(s.src) {
		i := strings.Index(s.src[s.pos:], prefix)
		if i < 0 {
			s.pos = len(s.src)

			return Span{}, false
		}

		start := s.pos + i
		afterPrefix := start + len(prefix)

		if escStart, ok := s.escapedAt(start); ok {
			s.pos = afterPrefix
			s.last = afterPrefix

			return Span{Kind: SpanEscaped, Start: escStart, End: afterPrefix}, true
		}

		end, ok := s.matchSuffix(afterPrefix)
		if !ok {
			// 没有闭合的后缀，余下文本全部按字面输出
			s.pos = len(s.src)

			return Span{}, false
		}

		s.pos = end
		s.last = end

		return Span{Kind: SpanPlain, Start: start, End: end}, true
	}

	return Span{}, false
}

// escapedAt 检查 start 处的前缀是否被转义，返回转义字符的位置。
func (s *Scanner) escapedAt(start int) (int, bool) {
	if s.cfg.Escape == 0 || start <= s.last {
		return 0, false
	}
	r, size := utf8.DecodeLastRuneInString(s.src[s.last:start])
	if r != s.cfg.Escape {
		return 0, false
	}

	return start - size, true
}

// matchSuffix 从 from 开始按原始的前缀/后缀计数查找闭合后缀，返回片段结束位置。
func (s *Scanner) matchSuffix(from int) (int, bool) {
	end, ok := findClosing(s.src, from, s.cfg.Prefix, s.cfg.Suffix)
	if !ok {
		return 0, false
	}

	return end + len(s.cfg.Suffix), true
}

// findClosing 返回与已打开前缀匹配的后缀位置。
//
// 前缀与后缀相同时不计嵌套，下一个后缀即闭合。
func findClosing(text string, from int, prefix, suffix string) (int, bool) {
	nested := prefix != suffix
	depth := 0
	for i := from; i < len(text); {
		if nested && strings.HasPrefix(text[i:], prefix) {
			depth++
			i += len(prefix)

			continue
		}
		if strings.HasPrefix(text[i:], suffix) {
			if depth == 0 {
				return i, true
			}
			depth--
			i += len(suffix)

			continue
		}
		i++
	}

	return -1, false
}

// Spans 以迭代器形式返回 src 中的全部占位符片段。
func Spans(src string, cfg Config) iter.Seq[Span] {
	return func(yield func(Span) bool) {
		sc := NewScanner(src, cfg)
		for {
			span, ok := sc.Next()
			if !ok || !yield(span) {
				return
			}
		}
	}
}
