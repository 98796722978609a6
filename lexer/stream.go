package lexer

// charStream 将源文本包装为一个可回退的字符流
// next() 返回下一个字符，back() 将最近一次 next() 返回的字符退回流中，
// 下一次 next() 会原样重放该字符，且只重放一次
// 缓冲槽最多只有一个字符
type charStream struct {
	source []rune
	pos    int

	// 最近一次 next() 返回的字符
	last rune

	// last 是否可以被 back() 退回
	// 仅在 next() 成功返回字符后为 true
	canBack bool

	// back() 之后为 true，表示下一次 next() 重放 last
	pending bool
}

func newCharStream(source string) *charStream {
	return &charStream{
		source: []rune(source),
	}
}

// 返回下一个字符
// 第二个返回值为 false 表示输入已耗尽
func (s *charStream) next() (rune, bool) {
	// 重放被退回的字符，不消耗新字符
	if s.pending {
		s.pending = false
		s.canBack = true
		return s.last, true
	}

	if s.pos >= len(s.source) {
		s.canBack = false
		return 0, false
	}

	s.last = s.source[s.pos]
	s.pos++
	s.canBack = true
	return s.last, true
}

// 退回最近一次 next() 返回的字符
// 仅在 next() 成功返回字符之后可以调用一次
// 在流耗尽后调用、在 next() 之前调用、或连续调用两次，都是调用方的 bug
func (s *charStream) back() {
	if !s.canBack {
		panic("lexer: back() without a character to push back")
	}
	s.pending = true
	s.canBack = false
}
