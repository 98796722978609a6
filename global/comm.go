// comm.go 包含了各个子命令通用的一些全局对象
// 如：配置、日志等
package global

import (
	"go.uber.org/zap"
	"review-man/config"
	"sync"
)

// 各种全局对象
var (
	// 配置对象
	Conf *config.Config

	// 日志对象
	Sugar *zap.SugaredLogger

	// 保护下面两个成员列表
	Lock sync.RWMutex

	// maintainer 团队成员列表
	// 判断某个用户是否为 maintainer，推荐直接调用 IsMaintainer() 函数
	Maintainers = make(map[string]bool)

	// 组织成员
	// TODO 每次验证不通过，都更新一次 map？以防止成员修改用户名后验证不通过的隐患。
	Members = make(map[string]bool)
)

func Init(conf *config.Config) {
	Conf = conf

	// 生产环境
	if conf.Repository.Spec.LogLevel == "pro" {
		logger, err := zap.NewProduction()
		if err != nil {
			panic(err.Error())
		}
		Sugar = logger.Sugar()
	} else {
		// 开发环境
		logger, err := zap.NewDevelopment()
		if err != nil {
			panic(err.Error())
		}
		Sugar = logger.Sugar()
	}

	Sugar.Infow("finish load config",
		"config", Conf)
}

// 判断某个用户是否为 maintainer
func IsMaintainer(login string) bool {
	Lock.RLock()
	defer Lock.RUnlock()
	return Maintainers[login]
}

// 判断某个用户是否为组织成员
func IsMember(login string) bool {
	Lock.RLock()
	defer Lock.RUnlock()
	return Members[login]
}
