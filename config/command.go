package config

// ReviewCommand 定义了一个指令的行为
// 每个指令对应一个 ReviewCommand，metadata.name 为指令名
// 目前支持的指令名为：accept（r+）、reject（r-）、assign（r?）
// 支持哪些指令、指令的权限和提示语，取决于配置文件内容
type ReviewCommand struct {
	Base `yaml:",inline"`
	Spec struct {
		Rules  *Rule   `yaml:"rules"`
		Action *Action `yaml:"action"`
	} `yaml:"spec"`
}

// 条件
type Rule struct {
	// 权限验证，指定可以执行该指令的人员。
	// 可选的参数有：anyone、member、author、maintainers，默认为空，表示不允许执行指令。
	// review-man 按照 maintainers、author、member、anyone 的顺序检查，满足其一即通过。
	// anyone 对执行该指令的人无要求
	// member 要求执行该指令的人是组织的 member
	// author 要求执行该指令的人是该 pull request 的作者
	// maintainers 要求执行该指令的人在 maintainer 团队内
	Permissions []string `yaml:"permissions"`

	// 未通过权限验证时的提示信息，为空则不提示
	// 文字内可以使用占位符，如 @commenter，会被替换为评论人
	PermissionFeedback string `yaml:"permissionFeedback"`
}

// 动作
type Action struct {
	// 执行成功后的提示信息，为空则不提示
	SuccessFeedback string `yaml:"successFeedback"`

	// 执行失败后的提示信息，为空则不提示
	FailFeedback string `yaml:"failFeedback"`
}
