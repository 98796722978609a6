// lexer 包实现指令文本的低级扫描
// 扫描器把一段评论文本切分为低级 token（空白符、标识符、操作符等），
// 指令语义由 instruction 包在此之上解析
package lexer

import (
	"strings"
	"unicode"
)

// 操作符的组成字符
const (
	fragmentOr  = '|'
	fragmentAnd = '&'
)

func isFragment(r rune) bool {
	return r == fragmentOr || r == fragmentAnd
}

// Scanner 从一段源文本产生低级 token 序列
// 单次使用：产生 Eof 后即关闭，重新扫描需构造新的 Scanner
type Scanner struct {
	stream *charStream
	closed bool
}

func NewScanner(source string) *Scanner {
	return &Scanner{
		stream: newCharStream(source),
	}
}

// 返回下一个低级 token
// 第二个返回值为 false 表示扫描已结束（Eof 已经产生过）
// 扫描策略是单字符前瞻 + 最长匹配：
// 连续的空白符合并为一个 WhiteSpace，
// 连续的非空白符合并为一个 Identifier（中途出现的 | 和 & 会被吸收进标识符），
// 只有以 | 或 & 开头时才会尝试匹配操作符
func (s *Scanner) Next() (Token, bool) {
	if s.closed {
		return Token{}, false
	}

	r, ok := s.stream.next()
	if !ok {
		s.closed = true
		return Token{Type: Eof}, true
	}

	switch {
	case unicode.IsSpace(r):
		return s.scanWhiteSpace(r), true
	case isFragment(r):
		return s.scanOperator(r), true
	default:
		return s.scanIdentifier(r), true
	}
}

// 从一个空白字符开始，贪婪地消费后续空白字符
// 终止空白的那个字符会被退回流中
func (s *Scanner) scanWhiteSpace(first rune) Token {
	var b strings.Builder
	b.WriteRune(first)
	for {
		r, ok := s.stream.next()
		if !ok {
			break
		}
		if !unicode.IsSpace(r) {
			s.stream.back()
			break
		}
		b.WriteRune(r)
	}
	return Token{Type: WhiteSpace, Value: b.String()}
}

// 从一个非空白字符开始，贪婪地消费到下一个空白字符为止
// 只有空白字符才会终止标识符，| 和 & 在标识符内部不做特殊处理
func (s *Scanner) scanIdentifier(first rune) Token {
	var b strings.Builder
	b.WriteRune(first)
	for {
		r, ok := s.stream.next()
		if !ok {
			break
		}
		if unicode.IsSpace(r) {
			s.stream.back()
			break
		}
		b.WriteRune(r)
	}
	return Token{Type: Identifier, Value: b.String()}
}

// 尝试把 | 或 & 匹配为完整的 || 或 && 操作符
// 匹配失败时产生 Invalid，其中：
// 后续字符不是操作符字符时，该字符被直接丢弃，不退回；
// 后续字符是另一种操作符字符时（如 |&），该字符被退回，留待下一轮扫描。
// 这一不对称行为是有意保留的，不要"修正"
func (s *Scanner) scanOperator(first rune) Token {
	r, ok := s.stream.next()
	if !ok {
		return Token{Type: Invalid, Value: string(first)}
	}
	if !isFragment(r) {
		return Token{Type: Invalid, Value: string(first)}
	}
	if r != first {
		s.stream.back()
		return Token{Type: Invalid, Value: string(first)}
	}
	return Token{Type: Operator, Value: string([]rune{first, r})}
}
