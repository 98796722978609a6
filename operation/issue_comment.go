package operation

import (
	"context"
	gg "github.com/google/go-github/v30/github"
	"net/http"
	"review-man/client"
	"review-man/global"
)

// 尝试 comment
// 如果 body 为空，则不做任何操作
func IssueComment(info Info, body string) {
	if body == "" {
		return
	}

	comment := &gg.IssueComment{}
	comment.Body = &body
	_, resp, err := client.Get().Issues.CreateComment(context.Background(),
		info.Owner, info.Repository, info.PRNumber, comment)
	if err != nil {
		global.Sugar.Errorw("create comment",
			"call api", "failed",
			"number", info.PRNumber,
			"err", err.Error(),
		)
		return
	}

	if resp.StatusCode != http.StatusCreated {
		global.Sugar.Errorw("create comment",
			"call api", "unexpect status code",
			"number", info.PRNumber,
			"status", resp.Status,
			"status code", resp.StatusCode,
		)
		return
	}
}
