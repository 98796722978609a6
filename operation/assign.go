package operation

import (
	"context"
	"fmt"
	gg "github.com/google/go-github/v30/github"
	"net/http"
	"review-man/client"
	"review-man/global"
)

// r? @someone
// 将提及的人添加为该 pull request 的 reviewer
// 不允许将 pull request 的作者添加为 reviewer，GitHub 会直接报错，这里提前过滤
func AssignReviewers(info Info) error {
	reviewers := make([]string, 0, len(info.Mention))
	for _, v := range info.Mention {
		// 空用户名来自孤立的 @，没有意义
		if v == "" || v == info.Author {
			continue
		}
		reviewers = append(reviewers, v)
	}

	// 没有提及任何人的 r? 视为执行失败，交给 feedback 提示用法
	if len(reviewers) == 0 {
		return fmt.Errorf("no reviewer mentioned")
	}

	_, resp, err := client.Get().PullRequests.RequestReviewers(context.Background(),
		info.Owner, info.Repository, info.PRNumber,
		gg.ReviewersRequest{
			Reviewers: reviewers,
		})
	if err != nil {
		global.Sugar.Errorw("request reviewers",
			"call api", "failed",
			"number", info.PRNumber,
			"reviewers", reviewers,
			"err", err.Error(),
		)
		return err
	}
	if resp.StatusCode != http.StatusCreated {
		global.Sugar.Errorw("request reviewers",
			"call api", "unexpect status code",
			"number", info.PRNumber,
			"status", resp.Status,
			"status code", resp.StatusCode,
		)
		return fmt.Errorf("request reviewers unexpect status code: %d", resp.StatusCode)
	}

	global.Sugar.Infow("request reviewers",
		"step", "done",
		"number", info.PRNumber,
		"reviewers", reviewers,
	)
	return nil
}
