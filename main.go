// review-man 是一个 pull request review 机器人
// 它监听 pull request 的评论，从评论文本里解析指令，并调用 GitHub API 执行对应操作
// r+
//		批准该 pull request，即提交一个 APPROVE review
// r-
//		拒绝该 pull request，即提交一个 REQUEST_CHANGES review
// r? @someone
//		将 @someone 添加为该 pull request 的 reviewer
package main

import "review-man/cmd"

func main() {
	cmd.Execute()
}
