package main

import (
	"VidTube/internal/repository"
	"VidTube/internal/service"
	"VidTube/pkg/logger"
	"VidTube/pkg/rabbitmq"
	"encoding/json"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/streadway/amqp"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// 消费者进程：接口进程只投递播放事件，这里负责把播放量落进MySQL
// views = views + 1 是单条原子UPDATE，消息重放的代价是多算一次播放，可接受
func main() {
	if err := godotenv.Load(); err != nil {
		log.Fatalf(".env文件加载失败")
	}
	logger.InitLogger()

	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" {
		logger.Log.Fatalf("缺少MYSQL_DSN环境变量")
	}
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Log.Fatalf("消费者无法连接到数据库: %v", err)
	}

	rabbitMQConn, err := rabbitmq.InitRabbitMQ()
	if err != nil {
		logger.Log.Fatalf("消费者无法连接到RabbitMQ: %v", err)
	}
	defer rabbitMQConn.Close()

	// 消费者进程不需要Redis，rdb传nil
	videoRepo := repository.NewVideoRepository(db, nil)

	consumeViews(rabbitMQConn, videoRepo)
}

// 播放事件消费者：1、开channel并声明队列 2、注册消费者 3、循环消费并落库
func consumeViews(conn *amqp.Connection, videoRepo repository.VideoRepository) {
	ch, err := conn.Channel()
	if err != nil {
		logger.Log.Fatalf("无法打开Channel: %v", err)
	}
	defer ch.Close()

	// 声明是幂等的，保证消费者先于接口进程启动时队列也存在
	if _, err := ch.QueueDeclare(service.QueueView, true, false, false, false, nil); err != nil {
		logger.Log.Fatalf("无法声明播放队列: %v", err)
	}

	msgs, err := ch.Consume(
		service.QueueView, // queue
		"",                // consumer
		false,             // auto-ack: 手动确认，落库成功才Ack
		false,             // exclusive
		false,             // no-local
		false,             // no-wait
		nil,               // args
	)
	if err != nil {
		logger.Log.Fatalf("无法注册播放消费者: %v", err)
	}

	forever := make(chan bool)

	go func() {
		// msgs是通道，队列为空时阻塞而不是退出循环
		for d := range msgs {
			logCtx := logger.Log.WithField("body", string(d.Body)).WithField("redelivered", d.Redelivered)
			logCtx.Info("收到一条播放消息")

			var msg service.ViewMessage
			if err := json.Unmarshal(d.Body, &msg); err != nil {
				logCtx.WithError(err).Error("消息JSON解析失败")
				// 无法解析的“坏消息”不值得重试，直接丢弃
				d.Nack(false, false)
				continue
			}

			if err := videoRepo.IncrementViews(msg.VideoID); err != nil {
				logCtx.WithError(err).Error("播放量落库失败，将进行重试")
				d.Nack(false, true)
				continue
			}
			d.Ack(false)
		}
	}()

	logger.Log.Info(" [*] 等待播放消息中. 按 CTRL+C 退出")
	<-forever
}
