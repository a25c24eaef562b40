package main

import (
	"VidTube/internal/data"
	"VidTube/internal/handler"
	"VidTube/internal/model"
	"VidTube/internal/repository"
	"VidTube/internal/router"
	"VidTube/internal/service"
	"VidTube/pkg/logger"
	"VidTube/pkg/rabbitmq"
	"VidTube/pkg/redis"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func main() {
	// 加载.env文件
	if err := godotenv.Load(); err != nil {
		log.Fatalf(".env文件加载失败")
	}
	// 初始化logger
	logger.InitLogger()

	// 初始化Redis
	redisClient, err := redis.InitRedis()
	if err != nil {
		logger.Log.Fatalf("无法连接到Redis: %v", err)
	}
	logger.Log.Info("Redis连接成功")

	// 初始化RabbitMQ
	rabbitMQConn, err := rabbitmq.InitRabbitMQ()
	if err != nil {
		logger.Log.Fatalf("无法连接到RabbitMQ: %v", err)
	}
	defer rabbitMQConn.Close()
	logger.Log.Info("RabbitMQ连接成功")

	// 数据源名称，用户名:密码@网络协议(地址:端口号)/数据库名?参数
	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" {
		logger.Log.Fatalf("缺少MYSQL_DSN环境变量")
	}
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Log.Fatalf("无法连接到数据库: %v", err)
	}
	logger.Log.Info("数据库连接成功")

	// AutoMigrate会建表、补列、补索引；likes和subscriptions的联合唯一索引
	// 是toggle正确性的前提，必须在服务启动前就位
	err = db.AutoMigrate(
		&model.User{},
		&model.Video{},
		&model.Comment{},
		&model.Tweet{},
		&model.Like{},
		&model.Subscription{},
	)
	if err != nil {
		logger.Log.Fatalf("数据库迁移失败: %v", err)
	}
	logger.Log.Info("数据库迁移成功")

	userRepo := repository.NewUserRepository(db)
	videoRepo := repository.NewVideoRepository(db, redisClient)
	commentRepo := repository.NewCommentRepository(db)
	tweetRepo := repository.NewTweetRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)

	uow := data.NewUnitOfWork(db, likeRepo, subscriptionRepo, videoRepo, commentRepo)

	userService := service.NewUserService(userRepo)
	videoService := service.NewVideoService(videoRepo, uow)
	viewService := service.NewViewService(videoRepo, rabbitMQConn)
	commentService := service.NewCommentService(commentRepo, videoRepo)
	tweetService := service.NewTweetService(tweetRepo)
	relationService := service.NewRelationService(likeRepo, subscriptionRepo, videoRepo, commentRepo, tweetRepo, userRepo, uow)
	statsService := service.NewStatsService(videoRepo, tweetRepo, commentRepo, likeRepo, subscriptionRepo)

	userHandler := handler.NewUserHandler(userService)
	videoHandler := handler.NewVideoHandler(videoService, viewService)
	commentHandler := handler.NewCommentHandler(commentService)
	tweetHandler := handler.NewTweetHandler(tweetService)
	likeHandler := handler.NewLikeHandler(relationService)
	subscriptionHandler := handler.NewSubscriptionHandler(relationService)
	dashboardHandler := handler.NewDashboardHandler(statsService, videoService)

	r := router.SetupRouter(userHandler, videoHandler, commentHandler, tweetHandler, likeHandler, subscriptionHandler, dashboardHandler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logger.Log.Printf("服务器将在: %s端口启动", port)
	if err := r.Run(":" + port); err != nil {
		logger.Log.Fatalf("服务器启动失败: %v", err)
	}
}
