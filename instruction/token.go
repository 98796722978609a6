package instruction

// 语义 token 的类型
type Kind int

const (
	// 指令标记，表示紧随其后的 token 是一条指令
	Directive Kind = iota

	// r+，批准 pull request
	AcceptPullRequest

	// r-，拒绝 pull request
	RejectPullRequest

	// r?，指派 reviewer
	AssignReviewer

	// @someone，User 字段保存去掉 @ 后的用户名
	UserName

	// 未识别的标识符
	Unknown

	// 输入结束
	// 正常迭代不会产生该 token，Next() 以第二个返回值表示结束
	Eof
)

func (k Kind) String() string {
	switch k {
	case Directive:
		return "Directive"
	case AcceptPullRequest:
		return "AcceptPullRequest"
	case RejectPullRequest:
		return "RejectPullRequest"
	case AssignReviewer:
		return "AssignReviewer"
	case UserName:
		return "UserName"
	case Unknown:
		return "Unknown"
	case Eof:
		return "Eof"
	}
	return "Unknown"
}

// 语义 token
// 仅 UserName 类型携带 User，其余类型 User 为空
// 注意 @ 本身也是合法输入，此时 User 为空字符串
type Token struct {
	Kind Kind
	User string
}
