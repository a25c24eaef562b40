package model

type Comment struct {
	BaseModel
	VideoID uint64 `gorm:"not null;index"` // index索引，加速按视频拉取评论
	OwnerID uint64 `gorm:"not null;index"`
	// TEXT类型，存储较长文本，最大长度65,535个字符
	Content string `gorm:"type:text;not null"`

	Owner User `gorm:"foreignKey:OwnerID"`
}

func (Comment) TableName() string {
	return "comments"
}
