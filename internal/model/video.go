package model

// Video结构，频道主（作者），标题，简介，播放量，发布状态
type Video struct {
	BaseModel
	OwnerID     uint64 `gorm:"not null;index"` // 频道主ID，用于关联用户
	Title       string `gorm:"not null"`
	Description string
	// 播放量只增不减，由后台消费者原子地+1
	Views    uint64  `gorm:"default:0"`
	Duration float64 `gorm:"default:0"` // 视频时长，单位秒
	// 未发布的视频只有频道主自己能看到
	IsPublished bool `gorm:"default:true;index"`

	VideoURL     string `gorm:"not null"` // 视频播放地址
	ThumbnailURL string `gorm:"not null"` // 视频封面地址

	// 外键OwnerID和User表的ID
	Owner User `gorm:"foreignKey:OwnerID;references:ID"`
}

func (Video) TableName() string {
	return "videos"
}
