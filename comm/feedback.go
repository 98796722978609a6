package comm

import (
	"fmt"
	"strings"
)

const (
	Commenter = "@commenter"
	Reviewers = "@reviewers"
	Author    = "@author"
)

// 替换提示语里的特殊字符
// 后面可能会再增加一些特殊字符
type Comment struct {
	Login     string
	PRAuthor  string
	Reviewers []string
}

// 这里只对一些关键字做替换
// 具体的值需要自行计算
func (r Comment) HandComment(text string) string {
	text = strings.ReplaceAll(text, Commenter, fmt.Sprintf("@%s", r.Login))
	text = strings.ReplaceAll(text, Author, fmt.Sprintf("@%s", r.PRAuthor))
	if strings.Contains(text, Reviewers) {
		all := ""
		for k, v := range r.Reviewers {
			if k+1 == len(r.Reviewers) {
				all = fmt.Sprintf("%s@%s", all, v)
			} else {
				all = fmt.Sprintf("%s@%s, ", all, v)
			}
		}
		text = strings.ReplaceAll(text, Reviewers, all)
	}
	return text
}
