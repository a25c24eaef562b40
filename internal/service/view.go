package service

import (
	"VidTube/internal/apperr"
	"VidTube/internal/repository"
	"encoding/json"
	"errors"

	"github.com/streadway/amqp"
	"gorm.io/gorm"
)

const (
	// 遵循：项目名.业务领域.实体/功能
	QueueView = "vidtube.view.queue" // 播放事件队列
)

// ViewMessage 定义了在MQ中传递的播放事件结构
type ViewMessage struct {
	VideoID uint64 `json:"video_id"`
}

// ViewService 负责播放量上报：接口进程只投递事件，
// 真正的 views = views + 1 由后台消费者异步地、原子地写进MySQL
type ViewService interface {
	// 记录一次播放，计数的落库由消费者完成
	WatchVideo(videoID uint64) error
}

type viewService struct {
	videoRepo    repository.VideoRepository
	rabbitMQConn *amqp.Connection
}

func NewViewService(videoRepo repository.VideoRepository, rabbitMQConn *amqp.Connection) ViewService {
	ch, err := rabbitMQConn.Channel()
	if err != nil {
		panic("Failed to open a channel")
	}
	// 构造函数执行完毕后，这个临时的Channel就被关闭了
	defer ch.Close()
	// 声明队列是幂等的，已存在就什么都不做
	_, err = ch.QueueDeclare(
		QueueView, // name
		true,      // durable: 队列持久化，RabbitMQ重启队列本身不消失
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // args
	)
	if err != nil {
		panic("Failed to declare a queue")
	}

	return &viewService{
		videoRepo:    videoRepo,
		rabbitMQConn: rabbitMQConn,
	}
}

// 上报播放：1、确认视频存在 2、投递播放消息
func (s *viewService) WatchVideo(videoID uint64) error {
	if _, err := s.videoRepo.FindByID(videoID); err != nil {
		// 查不到和查询本身失败是两种结果，后者必须按内部错误上报
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.New(apperr.KindNotFound, "视频不存在或无权访问")
		}
		return apperr.Wrap(apperr.KindInternal, "查询视频失败", err)
	}
	msg := ViewMessage{VideoID: videoID}
	if err := s.publishViewMessage(msg); err != nil {
		return apperr.Wrap(apperr.KindInternal, "播放上报失败", err)
	}
	return nil
}

// 私有方法，发送消息到RabbitMQ：为每一个消息建立单独的channel，消息之间互不影响
func (s *viewService) publishViewMessage(msg ViewMessage) error {
	ch, err := s.rabbitMQConn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return ch.Publish(
		"",        // exchange默认交换机
		QueueView, // routing key
		false,     // mandatory
		false,     // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent, // 消息持久化，播放量不能因为重启丢掉
		})
}
