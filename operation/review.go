package operation

import (
	"context"
	"fmt"
	gg "github.com/google/go-github/v30/github"
	"net/http"
	"review-man/client"
	"review-man/global"
	"review-man/tools"
)

// review 事件类型
// https://developer.github.com/v3/pulls/reviews/#create-a-review-for-a-pull-request
const (
	eventApprove        = "APPROVE"
	eventRequestChanges = "REQUEST_CHANGES"
)

// r+
// 以评论人的名义批准该 pull request
func Approve(info Info) error {
	return review(info, eventApprove)
}

// r-
// 拒绝该 pull request，要求修改
func Reject(info Info) error {
	return review(info, eventRequestChanges)
}

// 提交一个 review
func review(info Info, event string) error {
	req := &gg.PullRequestReviewRequest{
		Event: tools.Get.String(event),
	}
	_, resp, err := client.Get().PullRequests.CreateReview(context.Background(),
		info.Owner, info.Repository, info.PRNumber, req)
	if err != nil {
		global.Sugar.Errorw("create review",
			"call api", "failed",
			"event", event,
			"number", info.PRNumber,
			"err", err.Error(),
		)
		return err
	}
	if resp.StatusCode != http.StatusOK {
		global.Sugar.Errorw("create review",
			"call api", "unexpect status code",
			"event", event,
			"number", info.PRNumber,
			"status", resp.Status,
			"status code", resp.StatusCode,
		)
		return fmt.Errorf("create review unexpect status code: %d", resp.StatusCode)
	}

	global.Sugar.Infow("create review",
		"step", "done",
		"event", event,
		"number", info.PRNumber,
	)
	return nil
}
