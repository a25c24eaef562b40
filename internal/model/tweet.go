package model

// 频道动态，结构上就是一条和视频无关的短文本
type Tweet struct {
	BaseModel
	OwnerID uint64 `gorm:"not null;index"`
	Content string `gorm:"type:text;not null"`

	Owner User `gorm:"foreignKey:OwnerID"`
}

func (Tweet) TableName() string {
	return "tweets"
}
