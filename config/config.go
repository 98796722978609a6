package config

import (
	"fmt"
)

// 完整的配置
// 配置文件为多文档 YAML，按 kind 区分，其中：
// Repository 全局只有一个
// ReviewCommand 每个指令一个
type Config struct {
	Repository     *Repository
	ReviewCommands []*ReviewCommand
}

type Base struct {
	ApiVersion string `yaml:"apiVersion"`
	Kind       string `yaml:"kind"`
	Metadata   struct {
		Name string `yaml:"name"`
	} `yaml:"metadata"`
}

// 仓库及一些全局相关的配置
type Repository struct {
	Base `yaml:",inline"`
	Spec struct {
		// 仓库的组织和名字
		Owner      string `yaml:"owner"`
		Repository string `yaml:"repository"`

		// maintainer 团队的 slug
		// 为空则不加载 maintainer 列表
		MaintainerTeam string `yaml:"maintainerTeam"`

		// 监听端口，如 :8080
		Port string `yaml:"port"`

		// webhook 的签名密钥，与 GitHub webhook 设置里的 secret 一致
		// 为空则不校验签名
		WebhookSecret string `yaml:"webhookSecret"`

		// 日志级别，pro 或 dev
		LogLevel string `yaml:"logLevel"`
	} `yaml:"spec"`
}

// 拼装 owner 和 repository
func (r Repository) GetFullName() string {
	return fmt.Sprintf("%s/%s", r.Spec.Owner, r.Spec.Repository)
}
