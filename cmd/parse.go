// parse.go 对应 parse 子命令的实现
// parse 将一段评论文本解析为语义 token 并打印，用于调试指令拼写
// 例如：review-man parse "r? @someone"
package cmd

import (
	"fmt"
	"github.com/spf13/cobra"
	"review-man/instruction"
)

var (
	parseCmd *cobra.Command
)

func init() {
	// parse
	parseCmd = &cobra.Command{
		Use:   "parse [text]",
		Short: "解析一段评论文本。",
		Long:  `解析一段评论文本，打印解析出的 token 列表，不调用任何 API。`,
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			for _, t := range instruction.Tokenize(args[0]) {
				if t.Kind == instruction.UserName {
					fmt.Printf("%s(%q)\n", t.Kind, t.User)
					continue
				}
				fmt.Println(t.Kind)
			}
		},
	}

	// 添加至 root 节点
	rootCmd.AddCommand(parseCmd)
}
