// Package main 是应用程序的入口点。
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"zyron-go/internal/config"
	"zyron-go/internal/handler"
	"zyron-go/internal/middleware"
	"zyron-go/internal/repository"
	"zyron-go/internal/service"
	"zyron-go/pkg/database"
	"zyron-go/pkg/events"
	"zyron-go/pkg/kafka"
	"zyron-go/pkg/log"
	"zyron-go/pkg/token"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. 初始化配置
	config.Init("./configs/config.yaml")
	cfg := config.Conf

	// 2. 初始化日志记录器
	log.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.OutputPath)
	defer log.Sync() // 确保在程序退出时刷新所有缓冲的日志条目
	log.Info("日志记录器初始化成功")

	// 3. 初始化 Redis（会话状态与统计的键值存储）
	database.InitRedis(cfg.Database.Redis.Addr, cfg.Database.Redis.Password, cfg.Database.Redis.DB)

	// 4. 初始化事件通道：启用 Kafka 时走消息队列，否则降级为丢弃
	var publisher events.Publisher = events.NopPublisher{}
	if cfg.Kafka.Enabled {
		kafka.InitProducer(cfg.Kafka)
		publisher = kafka.Publisher()
	}

	// 5. 初始化 Repository
	sessionRepo := repository.NewSessionRepository(database.RDB, cfg.Assistant.HistoryLimit)
	statsRepo := repository.NewStatsRepository(database.RDB)

	// 6. 初始化 Service (依赖注入)
	jwtManager := token.NewJWTManager(cfg.JWT.Secret, cfg.JWT.TokenExpireHours)
	intentService := service.NewIntentService()
	searchService := service.NewSearchService(service.NewCannedSearchProvider(), cfg.Assistant.Search)
	responseService := service.NewResponseService(searchService)
	sessionService := service.NewSessionService(sessionRepo, publisher)
	assistantService := service.NewAssistantService(intentService, responseService, sessionService, publisher)
	statsService := service.NewStatsService(statsRepo)

	// 7. 启动后台 Kafka 消费者，把事件流聚合为意图统计
	if cfg.Kafka.Enabled {
		go kafka.StartConsumer(cfg.Kafka, statsService)
	}

	// 8. 设置 Gin 模式并创建路由引擎
	gin.SetMode(cfg.Server.Mode)
	r := gin.New() // 使用 New() 创建一个不带默认中间件的引擎
	// 添加我们自定义的日志中间件和 Gin 的 Recovery 中间件
	r.Use(middleware.RequestLogger(), gin.Recovery())

	// 9. 注册路由
	chatHandler := handler.NewChatHandler(assistantService, sessionService, jwtManager)

	apiV1 := r.Group("/api/v1")
	{
		// 会话创建（公开访问）
		apiV1.POST("/session", handler.NewSessionHandler(jwtManager).Create)

		// 对话记录路由组，需要认证
		conversation := apiV1.Group("/conversation")
		conversation.Use(middleware.AuthMiddleware(jwtManager))
		{
			conversation.GET("", handler.NewConversationHandler(sessionService).Get)
			conversation.DELETE("", handler.NewConversationHandler(sessionService).Clear)
		}

		// 非 WebSocket 的消息提交路径，需要认证
		chat := apiV1.Group("/chat")
		chat.Use(middleware.AuthMiddleware(jwtManager))
		{
			chat.POST("/message", chatHandler.PostMessage)
		}

		// 意图使用统计
		apiV1.GET("/stats/intents", handler.NewStatsHandler(statsService).GetIntentCounts)
	}

	// Chat 路由 (WebSocket)
	r.GET("/chat/:token", chatHandler.Handle)

	// 启动 HTTP 服务器并实现优雅停机
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: r,
	}

	go func() {
		log.Infof("服务启动于 %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP 服务监听失败: %s\n", err)
		}
	}()

	// 等待中断信号以实现优雅停机
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("接收到停机信号，正在关闭服务...")

	// 设置一个5秒的超时上下文
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// 关闭 HTTP 服务器
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("HTTP 服务器关闭失败: %v", err)
	}

	// Kafka 消费者是一个循环，会在进程退出时自然结束；
	// 如需更精细的控制，可以在 StartConsumer 中加入关闭通道。
	log.Info("服务已优雅关闭")
}
