// instruction 包在 lexer 包的低级 token 之上解析指令语义
// 支持的指令拼写：
//		r+	批准
//		r-	拒绝
//		r?	指派 reviewer
//		@xx	提及某个用户
// 拼写匹配是精确且区分大小写的，R+ 不是指令
package instruction

import (
	"review-man/lexer"
	"strings"
)

// 指令拼写
const (
	SpellAccept = "r+"
	SpellReject = "r-"
	SpellAssign = "r?"

	// 用户名前缀
	Sigil = "@"
)

// Tokenizer 从一段评论文本产生语义 token 序列
// 内部驱动一个低级 Scanner，空白符、操作符和 Invalid token 被直接丢弃，
// 一个标识符可能展开为 0 到 2 个语义 token
// 单次使用：迭代结束后需构造新的 Tokenizer
type Tokenizer struct {
	scanner *lexer.Scanner

	// 展开出的、尚未交给调用方的 token
	queue []Token

	done bool
}

func NewTokenizer(source string) *Tokenizer {
	return &Tokenizer{
		scanner: lexer.NewScanner(source),
	}
}

// 返回下一个语义 token
// 第二个返回值为 false 表示序列已结束，不会产生 Eof token
func (t *Tokenizer) Next() (Token, bool) {
	for {
		// 先清空展开队列
		if len(t.queue) > 0 {
			tok := t.queue[0]
			t.queue = t.queue[1:]
			return tok, true
		}

		if t.done {
			return Token{}, false
		}

		low, ok := t.scanner.Next()
		if !ok || low.Type == lexer.Eof {
			t.done = true
			return Token{}, false
		}

		// 只有标识符参与语义解析
		if low.Type != lexer.Identifier {
			continue
		}

		t.queue = expand(low.Value)
	}
}

// 将一个标识符展开为语义 token
// 指令拼写展开为 Directive + 对应标记两个 token
func expand(ident string) []Token {
	switch ident {
	case SpellAssign:
		return []Token{{Kind: Directive}, {Kind: AssignReviewer}}
	case SpellReject:
		return []Token{{Kind: Directive}, {Kind: RejectPullRequest}}
	case SpellAccept:
		return []Token{{Kind: Directive}, {Kind: AcceptPullRequest}}
	}
	if strings.HasPrefix(ident, Sigil) {
		return []Token{{Kind: UserName, User: strings.TrimPrefix(ident, Sigil)}}
	}
	return []Token{{Kind: Unknown}}
}

// Tokenize 解析整段文本，返回完整的语义 token 序列
// 等价于构造 Tokenizer 并迭代至结束
func Tokenize(body string) []Token {
	tokens := make([]Token, 0)
	t := NewTokenizer(body)
	for {
		tok, ok := t.Next()
		if !ok {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}
