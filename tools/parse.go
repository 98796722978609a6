package tools

import (
	"review-man/instruction"
)

// 解析指令
// 尝试根据给定的文本解析指令
// 支持一条指令 @ 多人，例如：r? @noone @someone
// 也支持多条指令，例如：
//		r? @noone
//		r+
// 是否支持某条指令，决定权交给 operation 处理。
// 返回值结构为 key-value，其中：
// key 为指令名，为 accept、reject、assign 之一
// value 为提及人员，可能为空
//
// 分组规则：
// 每个 Directive 消费紧随其后的一个指令标记；
// UserName 归属于最近一次出现的指令；
// 出现在任何指令之前的 UserName 视为普通提及，不做处理；
// Unknown 不影响归属。
func (p parseFunctions) Commands(body string) (commands map[string][]string) {
	commands = make(map[string][]string)

	tokens := instruction.Tokenize(body)

	// 当前归属的指令名，为空表示还没有出现指令
	current := ""

	for i := 0; i < len(tokens); i++ {
		switch tokens[i].Kind {
		case instruction.Directive:
			// Directive 之后必然跟着一个指令标记
			if i+1 >= len(tokens) {
				return
			}
			i++
			current = commandName(tokens[i].Kind)
			if commands[current] == nil {
				commands[current] = make([]string, 0)
			}
		case instruction.UserName:
			if current == "" {
				continue
			}
			commands[current] = append(commands[current], tokens[i].User)
		}
	}
	return
}

// 指令标记对应的指令名
func commandName(k instruction.Kind) string {
	switch k {
	case instruction.AcceptPullRequest:
		return "accept"
	case instruction.RejectPullRequest:
		return "reject"
	case instruction.AssignReviewer:
		return "assign"
	}
	return ""
}
