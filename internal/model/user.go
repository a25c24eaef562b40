package model

type User struct {
	BaseModel        // 包括 ID, CreatedAt, UpdatedAt, DeletedAt
	Username  string `gorm:"unique;not null"`
	Email     string `gorm:"unique;not null"`
	FullName  string `gorm:"not null"`
	Avatar    string // 头像地址
	Password  string `gorm:"not null"`
}
