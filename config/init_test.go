package config

import (
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
	"testing"
)

// 配置文件省略 spec.rules 或 spec.action 时，Init 负责补全，
// 后续使用时不需要判空
func TestInit_missingSections(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			name: "no-spec",
			data: `
apiVersion: v1
kind: ReviewCommand
metadata:
  name: accept
`,
		},
		{
			name: "rules-only",
			data: `
apiVersion: v1
kind: ReviewCommand
metadata:
  name: accept
spec:
  rules:
    permissions:
      - member
`,
		},
		{
			name: "action-only",
			data: `
apiVersion: v1
kind: ReviewCommand
metadata:
  name: accept
spec:
  action:
    successFeedback: "done"
`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &ReviewCommand{}
			if err := yaml.Unmarshal([]byte(tt.data), cmd); err != nil {
				t.Fatalf("unmarshal config: %v", err)
			}

			conf := &Config{ReviewCommands: []*ReviewCommand{cmd}}
			viper.Set("config", conf)
			Init()

			got, ok := Commands["accept"]
			if !ok {
				t.Fatalf("command accept not registered")
			}
			if got.Spec.Rules == nil {
				t.Fatalf("rules is nil after Init")
			}
			if got.Spec.Action == nil {
				t.Fatalf("action is nil after Init")
			}

			// 补全出的空 rules 不允许任何人执行
			if tt.name == "no-spec" && len(got.Spec.Rules.Permissions) != 0 {
				t.Errorf("permissions = %v, want empty", got.Spec.Rules.Permissions)
			}
			// 已有的内容不能被覆盖
			if tt.name == "rules-only" && len(got.Spec.Rules.Permissions) != 1 {
				t.Errorf("permissions = %v, want [member]", got.Spec.Rules.Permissions)
			}
			if tt.name == "action-only" && got.Spec.Action.SuccessFeedback != "done" {
				t.Errorf("successFeedback = %q, want done", got.Spec.Action.SuccessFeedback)
			}
		})
	}
}
