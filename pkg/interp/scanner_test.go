package interp_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lwmacct/251208-go-pkg-interp/pkg/interp"
)

func TestSpans(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []interp.Span
	}{
		{
			name: "empty",
			src:  "",
			want: nil,
		},
		{
			name: "plain",
			src:  "a${b}c",
			want: []interp.Span{{Kind: interp.SpanPlain, Start: 1, End: 5}},
		},
		{
			name: "unclosed discarded",
			src:  "a${b}c${d",
			want: []interp.Span{{Kind: interp.SpanPlain, Start: 1, End: 5}},
		},
		{
			name: "nested counted by raw markers",
			src:  "${a:${b}}",
			want: []interp.Span{{Kind: interp.SpanPlain, Start: 0, End: 9}},
		},
		{
			name: "escaped span covers escape and prefix",
			src:  "$$${ID}",
			want: []interp.Span{{Kind: interp.SpanEscaped, Start: 1, End: 4}},
		},
		{
			name: "escape resumes after prefix",
			src:  "$${${ID}",
			want: []interp.Span{
				{Kind: interp.SpanEscaped, Start: 0, End: 3},
				{Kind: interp.SpanPlain, Start: 3, End: 8},
			},
		},
		{
			name: "escape right after span",
			src:  "${x}$${y}",
			want: []interp.Span{
				{Kind: interp.SpanPlain, Start: 0, End: 4},
				{Kind: interp.SpanEscaped, Start: 4, End: 7},
			},
		},
		{
			name: "unclosed prefix ends scanning",
			src:  "${a ${b}",
			want: nil,
		},
		{
			name: "spans before unclosed prefix kept",
			src:  "${a}$${b ${c",
			want: []interp.Span{
				{Kind: interp.SpanPlain, Start: 0, End: 4},
				{Kind: interp.SpanEscaped, Start: 4, End: 7},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Collect(interp.Spans(tt.src, interp.DefaultConfig()))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSpans_StopEarly(t *testing.T) {
	var got []interp.Span
	for span := range interp.Spans("${a}${b}${c}", interp.DefaultConfig()) {
		got = append(got, span)
		if len(got) == 2 {
			break
		}
	}

	assert.Len(t, got, 2)
	assert.Equal(t, 4, got[1].Start)
}

func TestScanner_Next(t *testing.T) {
	sc := interp.NewScanner("x{{a}}y", interp.Config{Prefix: "{{", Suffix: "}}"})

	span, ok := sc.Next()
	assert.True(t, ok)
	assert.Equal(t, interp.Span{Kind: interp.SpanPlain, Start: 1, End: 6}, span)
	assert.Equal(t, "plain", span.Kind.String())

	_, ok = sc.Next()
	assert.False(t, ok)
	_, ok = sc.Next()
	assert.False(t, ok, "exhausted scanner stays exhausted")
}
