package lexer

// 低级 token 的类型
type Type int

const (
	// 空白符，值为连续的空白字符
	WhiteSpace Type = iota

	// 输入结束，值为空
	Eof

	// 标识符，即被空白符分割的一段连续文本
	Identifier

	// 完整的双字符操作符，|| 或 &&
	Operator

	// 无法组成操作符的孤立 | 或 &
	Invalid
)

func (t Type) String() string {
	switch t {
	case WhiteSpace:
		return "WhiteSpace"
	case Eof:
		return "Eof"
	case Identifier:
		return "Identifier"
	case Operator:
		return "Operator"
	case Invalid:
		return "Invalid"
	}
	return "Unknown"
}

// 低级 token
// 由 Scanner 产生，构造后不再修改
// Value 为源文本里被匹配的原文，Eof 的 Value 为空
type Token struct {
	Type  Type
	Value string
}
