package server

import (
	"github.com/gin-gonic/gin"
	"gopkg.in/go-playground/webhooks.v5/github"
	"net/http"
	"review-man/global"
	"review-man/operation"
)

// 解析的事件列表
var events = []github.Event{
	github.IssueCommentEvent,
	github.MembershipEvent,
	github.OrganizationEvent,
}

// review-man 会对事件做一些验证，例如：事件的类型、仓库是否为配置的仓库、issue 的状态。
// 通过验证后，评论文本交给 tokenizer 解析为指令，再由 operation 执行。
// operation 最终都会以某种方式调用某个 GitHub API V3 的接口。
// membership 和 organization 事件则用于更新本地的成员列表缓存。
func handler(c *gin.Context) {
	payload, err := hook.Parse(c.Request, events...)
	if err != nil {
		// 未监听的事件直接忽略
		if err == github.ErrEventNotFound {
			c.JSON(http.StatusOK, []string{})
			return
		}
		global.Sugar.Errorw("parse webhook payload",
			"err", err.Error())
		c.JSON(http.StatusBadRequest, []string{})
		return
	}

	switch p := payload.(type) {
	case github.IssueCommentPayload:
		go handleIssueComment(p)
	case github.MembershipPayload:
		// 团队成员变动，重新加载 maintainer 列表
		go global.LoadMaintainers()
	case github.OrganizationPayload:
		// 组织成员变动，重新加载成员列表
		go global.LoadMembers()
	}

	c.JSON(http.StatusOK, []string{})
}

func handleIssueComment(payload github.IssueCommentPayload) {
	// 只处理新建的评论，编辑和删除不触发指令
	if payload.Action != "created" {
		return
	}

	// 不处理未知 repository 的事件
	if payload.Repository.FullName != global.Conf.Repository.GetFullName() {
		return
	}

	// 不处理已关闭的 issue
	if payload.Issue.State == "closed" {
		return
	}

	operation.IssueHanding(payload, operation.ParseCommands(payload.Comment.Body))
}
