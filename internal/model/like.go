package model

// 点赞目标的类型，一条Like记录只指向视频、评论、动态三者之一
type LikeKind string

const (
	LikeKindVideo   LikeKind = "video"
	LikeKindComment LikeKind = "comment"
	LikeKindTweet   LikeKind = "tweet"
)

// 用户与被赞对象的关联关系，记录存在即“已点赞”，没有布尔开关字段
// uniqueIndex利用的是MySQL数据库的“自动查重”能力，而不是gorm的：
// 并发下两个请求同时创建，唯一索引保证只有一条能落库
type Like struct {
	BaseModel
	UserID     uint64   `gorm:"uniqueIndex:idx_user_target"` // 设置联合唯一索引
	TargetID   uint64   `gorm:"uniqueIndex:idx_user_target"`
	TargetKind LikeKind `gorm:"type:varchar(16);uniqueIndex:idx_user_target"` // 确保(用户,对象,类型)三元组只能点赞一次
}

// 想精确控制表名，就必须实现TableName()方法规定表名
func (Like) TableName() string {
	return "likes"
}
