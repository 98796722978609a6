package lexer

import (
	"reflect"
	"testing"
)

// 驱动扫描器直至结束，返回全部 token（含 Eof）
func scanAll(t *testing.T, source string) []Token {
	t.Helper()
	tokens := make([]Token, 0)
	s := NewScanner(source)
	for {
		tok, ok := s.Next()
		if !ok {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

func TestScanner_Next(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []Token
	}{
		{
			name:   "empty",
			source: "",
			want:   []Token{{Type: Eof}},
		},
		{
			name:   "whitespace-run",
			source: "   \n\t  ",
			want: []Token{
				{Type: WhiteSpace, Value: "   \n\t  "},
				{Type: Eof},
			},
		},
		{
			name:   "single-identifier",
			source: "r+",
			want: []Token{
				{Type: Identifier, Value: "r+"},
				{Type: Eof},
			},
		},
		{
			name:   "identifiers-and-whitespace",
			source: "r+ @bob",
			want: []Token{
				{Type: Identifier, Value: "r+"},
				{Type: WhiteSpace, Value: " "},
				{Type: Identifier, Value: "@bob"},
				{Type: Eof},
			},
		},
		{
			name:   "leading-whitespace",
			source: "  hello",
			want: []Token{
				{Type: WhiteSpace, Value: "  "},
				{Type: Identifier, Value: "hello"},
				{Type: Eof},
			},
		},
		{
			// 标识符中途的 | 和 & 被吸收，不会中断标识符
			name:   "fragment-inside-identifier",
			source: "a|b&&c",
			want: []Token{
				{Type: Identifier, Value: "a|b&&c"},
				{Type: Eof},
			},
		},
		{
			name:   "operator-or",
			source: "||",
			want: []Token{
				{Type: Operator, Value: "||"},
				{Type: Eof},
			},
		},
		{
			name:   "operator-and",
			source: "&&",
			want: []Token{
				{Type: Operator, Value: "&&"},
				{Type: Eof},
			},
		},
		{
			// 孤立的 | 在输入末尾
			name:   "fragment-at-end",
			source: "|",
			want: []Token{
				{Type: Invalid, Value: "|"},
				{Type: Eof},
			},
		},
		{
			// | 后面跟普通字符：该字符被丢弃，不会出现在任何 token 里
			name:   "fragment-then-other-discards",
			source: "|x",
			want: []Token{
				{Type: Invalid, Value: "|"},
				{Type: Eof},
			},
		},
		{
			// | 后面跟 &：& 被退回，单独参与下一轮扫描
			name:   "fragment-then-different-fragment",
			source: "|&",
			want: []Token{
				{Type: Invalid, Value: "|"},
				{Type: Invalid, Value: "&"},
				{Type: Eof},
			},
		},
		{
			name:   "fragment-then-whitespace-discards",
			source: "| x",
			want: []Token{
				{Type: Invalid, Value: "|"},
				{Type: Identifier, Value: "x"},
				{Type: Eof},
			},
		},
		{
			name:   "mixed",
			source: "r? @alice && done",
			want: []Token{
				{Type: Identifier, Value: "r?"},
				{Type: WhiteSpace, Value: " "},
				{Type: Identifier, Value: "@alice"},
				{Type: WhiteSpace, Value: " "},
				{Type: Operator, Value: "&&"},
				{Type: WhiteSpace, Value: " "},
				{Type: Identifier, Value: "done"},
				{Type: Eof},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scanAll(t, tt.source)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("scan(%q) = %v, want %v", tt.source, got, tt.want)
			}
		})
	}
}

// Eof 之后扫描器永久关闭
func TestScanner_closed(t *testing.T) {
	s := NewScanner("a")
	for {
		tok, ok := s.Next()
		if !ok {
			t.Fatalf("scanner reported done before producing Eof")
		}
		if tok.Type == Eof {
			break
		}
	}
	for i := 0; i < 3; i++ {
		if _, ok := s.Next(); ok {
			t.Errorf("Next() after Eof ok = true, want false")
		}
	}
}
