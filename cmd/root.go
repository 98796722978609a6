package cmd

import (
	"bytes"
	"fmt"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
	"os"
	"review-man/client"
	"review-man/config"
	"review-man/global"
	"strings"

	"github.com/spf13/cobra"
)

const (
	// 如果不想在命令行中指定 token，也可以选择在环境变量内指定。
	// 环境变量名为 GITHUB_TOKEN
	ReviewManToken = "GITHUB_TOKEN"
)

var (
	// token，支持通过命令行参数或者环境变量指定
	// 不支持写在配置文件内
	token string

	// 指定配置文件路径，默认为 ./config.yaml
	c string

	// 配置文件，同时也包含了指令的定义
	conf *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "review-man",
	Short: "pull request review 机器人",
	Long:  `review-man 一个通过评论指令管理 pull request review 的机器人。`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Usage()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// 通用的加载配置文件、初始化 log 组件函数
func loadAndInit() config.Config {
	// 如果 token 为空，则尝试从环境变量读取 token
	if token == "" {
		token = os.Getenv(ReviewManToken)
		// 没有 token 不能启动
		if token == "" {
			fmt.Printf("please input token with argument --token\n")
			os.Exit(0)
		}
	}
	// 如果配置文件为空，则自动尝试读取 ./ 目录下的 config
	if c == "" {
		c = "./config.yaml"
	}

	conf = &config.Config{}
	conf.ReviewCommands = make([]*config.ReviewCommand, 0)

	// 读取配置文件
	data, err := afero.ReadFile(afero.NewOsFs(), c)
	if err != nil {
		fmt.Printf("unable to load config file, %v\n", err)
		os.Exit(1)
	}
	bf := bytes.NewBuffer(data)
	// 拆分配置
	cfgs := strings.Split(bf.String(), "---")

	// 遍历读取
	for i := 0; i < len(cfgs); i++ {
		b := &config.Base{}
		err := yaml.Unmarshal([]byte(cfgs[i]), b)
		if err != nil {
			panic(err.Error())
		}
		switch b.Kind {
		// Repository 的配置
		case "Repository":
			tmp := &config.Repository{}
			err = yaml.Unmarshal([]byte(cfgs[i]), tmp)
			if err != nil {
				panic(err.Error())
			}
			conf.Repository = tmp
		// ReviewCommand 的配置
		case "ReviewCommand":
			tmp := &config.ReviewCommand{}
			err = yaml.Unmarshal([]byte(cfgs[i]), tmp)
			if err != nil {
				panic(err.Error())
			}
			conf.ReviewCommands = append(conf.ReviewCommands, tmp)
		// 不支持类型的配置
		default:
			fmt.Printf("Unsupport Type: %s\n", b.Kind)
		}
	}

	if conf.Repository == nil {
		fmt.Printf("config file has no Repository document\n")
		os.Exit(1)
	}

	// 初始化 GitHub Client
	client.Init(token)

	// 初始化一些全局变量
	viper.Set("config", conf)
	global.Init(conf)
	config.Init()

	// 返回配置对象
	return *conf
}
