package operation

import (
	"context"
	"review-man/client"
	"review-man/global"
)

const (
	Maintainer = "maintainers"
	Author     = "author"
	Member     = "member"
	Anyone     = "anyone"
)

// 权限检查
// 行为：根据检查策略，对评论人进行权限检查
// 返回值为 true，则表示通过检测。
// 反之则表示未通过检测。
// 满足任一一个条件，则视为有权限。
func CheckPermission(permissions []string, info Info) bool {
	// 未配置任何权限，则不允许操作
	if len(permissions) == 0 {
		return false
	}

	// 权限 map
	ps := make(map[string]bool)
	for _, v := range permissions {
		ps[v] = true
	}

	// maintainer 可以操作
	if ps[Maintainer] && global.IsMaintainer(info.Login) {
		return true
	}

	// pull request 作者可以操作
	if ps[Author] && info.Login == info.Author {
		return true
	}

	// member 可以操作
	if ps[Member] && isMember(info) {
		return true
	}

	// anyone 可以操作
	if ps[Anyone] {
		return true
	}

	return false
}

// 判断评论人是否为组织成员
// 先查本地缓存，缓存没有再调用 API，以防止缓存落后于实际情况
func isMember(info Info) bool {
	if global.IsMember(info.Login) {
		return true
	}

	is, _, err := client.Get().Organizations.IsMember(context.Background(), info.Owner, info.Login)
	if err != nil {
		global.Sugar.Errorw("check permission",
			"call api", "is member",
			"login", info.Login,
			"err", err.Error(),
		)
		return false
	}
	return is
}
