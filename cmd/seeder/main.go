package main

import (
	"VidTube/internal/model"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/go-faker/faker/v4"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// 填充测试数据：用户、视频、动态、评论，以及随机的点赞和订阅
func main() {
	fmt.Println("开始填充测试数据...")

	if err := godotenv.Load(); err != nil {
		log.Fatalf(".env文件加载失败")
	}
	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" {
		log.Fatalf("缺少MYSQL_DSN环境变量")
	}
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("无法连接到数据库: %v", err)
	}

	// 每次填充前先删表重建，保证数据干净（会删除所有数据！）
	db.Migrator().DropTable(
		&model.Like{},
		&model.Subscription{},
		&model.Comment{},
		&model.Tweet{},
		&model.Video{},
		&model.User{},
	)
	db.AutoMigrate(
		&model.User{},
		&model.Video{},
		&model.Comment{},
		&model.Tweet{},
		&model.Like{},
		&model.Subscription{},
	)
	fmt.Println("数据库迁移成功!")

	// 用户
	userCount := 50
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("密码加密失败: %v", err)
	}
	for i := 0; i < userCount; i++ {
		user := model.User{
			Username: faker.Username(),
			Email:    faker.Email(),
			FullName: faker.Name(),
			Avatar:   "https://test.com/avatar.jpg",
			Password: string(hashedPassword),
		}
		db.Create(&user)
	}
	fmt.Printf("成功创建 %d 个用户!\n", userCount)

	// 视频，约四分之一是未发布的草稿
	videoCount := 200
	for i := 0; i < videoCount; i++ {
		video := model.Video{
			OwnerID:      uint64(rand.Intn(userCount) + 1),
			Title:        faker.Sentence(),
			Description:  faker.Paragraph(),
			Views:        uint64(rand.Intn(10000)),
			Duration:     float64(rand.Intn(600) + 30),
			IsPublished:  rand.Intn(4) != 0,
			VideoURL:     "https://test.com/video.mp4",
			ThumbnailURL: "https://test.com/thumbnail.jpg",
		}
		db.Create(&video)
	}
	fmt.Printf("成功创建 %d 个视频!\n", videoCount)

	// 动态和评论
	tweetCount := 100
	for i := 0; i < tweetCount; i++ {
		db.Create(&model.Tweet{
			OwnerID: uint64(rand.Intn(userCount) + 1),
			Content: faker.Sentence(),
		})
	}
	commentCount := 400
	for i := 0; i < commentCount; i++ {
		db.Create(&model.Comment{
			VideoID: uint64(rand.Intn(videoCount) + 1),
			OwnerID: uint64(rand.Intn(userCount) + 1),
			Content: faker.Sentence(),
		})
	}
	fmt.Printf("成功创建 %d 条动态、%d 条评论!\n", tweetCount, commentCount)

	// 随机点赞，用OnConflict避免撞上联合唯一索引报错
	likeCount := 1000
	kinds := []model.LikeKind{model.LikeKindVideo, model.LikeKindComment, model.LikeKindTweet}
	for i := 0; i < likeCount; i++ {
		kind := kinds[rand.Intn(len(kinds))]
		var targetID uint64
		switch kind {
		case model.LikeKindVideo:
			targetID = uint64(rand.Intn(videoCount) + 1)
		case model.LikeKindComment:
			targetID = uint64(rand.Intn(commentCount) + 1)
		case model.LikeKindTweet:
			targetID = uint64(rand.Intn(tweetCount) + 1)
		}
		like := model.Like{
			UserID:     uint64(rand.Intn(userCount) + 1),
			TargetID:   targetID,
			TargetKind: kind,
		}
		// 尝试插入，唯一键冲突就什么都不做
		db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "target_id"}, {Name: "target_kind"}},
			DoNothing: true,
		}).Create(&like)
	}
	fmt.Printf("成功创建(或尝试创建) %d 个随机点赞!\n", likeCount)

	// 随机订阅，跳过自己订阅自己的组合
	subCount := 300
	for i := 0; i < subCount; i++ {
		subscriberID := uint64(rand.Intn(userCount) + 1)
		channelID := uint64(rand.Intn(userCount) + 1)
		if subscriberID == channelID {
			continue
		}
		sub := model.Subscription{
			SubscriberID: subscriberID,
			ChannelID:    channelID,
		}
		db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "subscriber_id"}, {Name: "channel_id"}},
			DoNothing: true,
		}).Create(&sub)
	}
	fmt.Printf("成功创建(或尝试创建) %d 个随机订阅!\n", subCount)

	fmt.Println("所有测试数据填充完毕!")
}
