package config

import (
	"github.com/spf13/viper"
)

// 指令及其对应的 ReviewCommand
// 每个指令对应一个 ReviewCommand
// 支持哪些指令，取决于配置文件内容
var Commands map[string]*ReviewCommand

func Init() {
	conf, ok := viper.Get("config").(*Config)
	if !ok {
		panic("viper get config fail")
	}

	Commands = make(map[string]*ReviewCommand)

	// command map
	for _, v := range conf.ReviewCommands {
		// 配置文件里可能省略 rules 或 action，这里统一补全
		// 空的 rules 不包含任何权限，效果是该指令不允许任何人执行
		if v.Spec.Rules == nil {
			v.Spec.Rules = &Rule{}
		}
		if v.Spec.Action == nil {
			v.Spec.Action = &Action{}
		}
		Commands[v.Metadata.Name] = v
	}
}
