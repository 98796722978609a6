package operation

import (
	"gopkg.in/go-playground/webhooks.v5/github"
	"review-man/global"
	"strings"
)

// 存储 IssueCommentPayload 里的一些信息
// 基本是目前进行各种操作需要用到的信息
type Info struct {
	// 仓库信息
	Owner      string
	Repository string

	// 评论人信息
	Login string
	// 评论提及到的人
	Mention []string

	// pull request 目前的信息
	// GitHub 将 pull request 的评论作为 issue comment 事件推送，
	// 所以这里的 number 既是 issue number，也是 pull request number
	PRNumber int
	Title    string
	State    string

	// pull request 的作者，需要调用 API 获取，见 handing.go
	Author string
}

// 从 IssueCommentPayload 里提取信息
// 避免多次书写出现错误
func GetInfo(payload github.IssueCommentPayload) (info Info) {
	defer func() {
		if p := recover(); p != nil {
			global.Sugar.Errorw("get info from payload",
				"panic", p)
		}
	}()
	ss := strings.SplitN(payload.Repository.FullName, "/", -1)
	info.Owner = ss[0]
	info.Repository = ss[1]

	info.Login = payload.Sender.Login

	info.PRNumber = int(payload.Issue.Number)
	info.Title = payload.Issue.Title
	info.State = payload.Issue.State
	return
}
