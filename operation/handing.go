package operation

import (
	"context"
	"gopkg.in/go-playground/webhooks.v5/github"
	"review-man/client"
	"review-man/comm"
	"review-man/config"
	"review-man/global"
	"review-man/tools"
)

// 指令名，与配置文件中 ReviewCommand 的 metadata.name 对应
const (
	CmdAccept = "accept"
	CmdReject = "reject"
	CmdAssign = "assign"
)

// 处理一条 pull request 评论
// cs 是解析出的指令 map，其中：
// key 为指令名
// value 为该指令提及的人员，可能为空
func IssueHanding(payload github.IssueCommentPayload, cs map[string][]string) {
	if len(cs) == 0 {
		return
	}

	// 基本信息
	info := GetInfo(payload)

	// 确认评论对象确实是 pull request，顺便拿到作者
	// issue 上的指令不做处理
	pr, _, err := client.Get().PullRequests.Get(context.Background(),
		info.Owner, info.Repository, info.PRNumber)
	if err != nil {
		global.Sugar.Infow("issue handing",
			"step", "skip",
			"reason", "not a pull request",
			"number", info.PRNumber,
			"err", err.Error(),
		)
		return
	}
	info.Author = pr.GetUser().GetLogin()

	for name, mention := range cs {
		if _, ok := config.Commands[name]; ok {
			do(name, mention, info)
		} else {
			global.Sugar.Infow("issue handing",
				"step", "skip",
				"reason", "command not enabled",
				"command", name,
			)
		}
	}
}

// 执行流程如下：
// 权限检查
// 执行指令对应的 API 操作
// 根据结果 comment 反馈
func do(name string, mention []string, info Info) {
	global.Sugar.Infow("do command",
		"command", name,
		"mention", mention,
		"number", info.PRNumber,
		"login", info.Login,
	)

	info.Mention = mention
	cmd := config.Commands[name]

	// 权限检查
	if !CheckPermission(cmd.Spec.Rules.Permissions, info) {
		if cmd.Spec.Rules.PermissionFeedback == "" {
			return
		}
		IssueComment(info, handComment(cmd.Spec.Rules.PermissionFeedback, info))
		return
	}

	// 执行对应的操作
	var err error
	switch name {
	case CmdAccept:
		err = Approve(info)
	case CmdReject:
		err = Reject(info)
	case CmdAssign:
		err = AssignReviewers(info)
	}

	if err != nil {
		if cmd.Spec.Action.FailFeedback != "" {
			IssueComment(info, handComment(cmd.Spec.Action.FailFeedback, info))
		}
		return
	}
	if cmd.Spec.Action.SuccessFeedback != "" {
		IssueComment(info, handComment(cmd.Spec.Action.SuccessFeedback, info))
	}
}

// 替换提示语内的占位符
func handComment(text string, info Info) string {
	return comm.Comment{
		Login:     info.Login,
		PRAuthor:  info.Author,
		Reviewers: info.Mention,
	}.HandComment(text)
}

// 从评论文本解析指令
// 解析工作由 tools.Parse 完成，这里只是个入口
func ParseCommands(body string) map[string][]string {
	return tools.Parse.Commands(body)
}
