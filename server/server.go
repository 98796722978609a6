// server 包实现 webhook 服务
// 监听 Webhook 事件，响应 pull request 评论里的指令
package server

import (
	"github.com/gin-gonic/gin"
	"gopkg.in/go-playground/webhooks.v5/github"
	"log"
	"net/http"
	"review-man/config"
	"review-man/global"
)

var (
	// webhook 解析器
	hook *github.Webhook
)

func Start(conf config.Config) {
	var err error
	// 配置了 secret 则校验 webhook 签名，伪造的事件会在解析时被拒绝
	if secret := conf.Repository.Spec.WebhookSecret; secret != "" {
		hook, err = github.New(github.Options.Secret(secret))
	} else {
		hook, err = github.New()
	}
	if err != nil {
		log.Fatalf("init webhook parser: %s\n", err)
	}

	// 初始加载成员列表
	global.LoadMaintainers()
	global.LoadMembers()

	// 定义监听路由
	router := gin.Default()

	v1 := router.Group("/api/v1")
	v1.POST("/webhooks/", handler)

	srv := &http.Server{
		Addr:    conf.Repository.Spec.Port,
		Handler: router,
	}

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("listen: %s\n", err)
	}
}
