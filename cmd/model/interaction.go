package model

// VideoLike 每个(user, video)至多一条记录 polarity为+1(like)或-1(dislike)
// 唯一索引是并发写入时保证该不变量的最终手段
type VideoLike struct {
	VideoLikeId int64 `gorm:"column:video_like_id;primaryKey" json:"video_like_id"`
	UserId      int64 `gorm:"column:user_id;uniqueIndex:uk_video_likes_user_video" json:"user_id"`
	VideoId     int64 `gorm:"column:video_id;uniqueIndex:uk_video_likes_user_video" json:"video_id"`
	Polarity    int64 `gorm:"column:polarity" json:"polarity"`

	CreatedAt string `gorm:"column:created_at" json:"created_at"`
	UpdatedAt string `gorm:"column:updated_at" json:"updated_at"`
}

func (v *VideoLike) TableName() string {
	return "video_likes"
}

// NextReactionPolarity 点赞/点踩切换的状态迁移
// current与toggled都取0(无记录) +1(like) -1(dislike)
//
//	NONE     --like--> LIKED     --like--> NONE
//	LIKED    --dislike--> DISLIKED
//	DISLIKED --dislike--> NONE   --dislike--> DISLIKED
//
// 重复同向切换撤销记录 反向切换翻转极性
func NextReactionPolarity(current, toggled int64) int64 {
	if current == toggled {
		return 0
	}
	return toggled
}

// View 浏览记录 不做去重 每次调用都是一条独立事件
// UserId为空表示匿名浏览
type View struct {
	ViewId    int64  `gorm:"column:view_id;primaryKey" json:"view_id"`
	UserId    *int64 `gorm:"column:user_id;index" json:"user_id"`
	VideoId   int64  `gorm:"column:video_id;index" json:"video_id"`
	CreatedAt string `gorm:"column:created_at" json:"created_at"`
}

func (v *View) TableName() string {
	return "views"
}

type Comment struct {
	CommentId int64  `gorm:"column:comment_id;primaryKey" json:"comment_id"`
	UserId    int64  `gorm:"column:user_id;index" json:"user_id"`
	VideoId   int64  `gorm:"column:video_id;index" json:"video_id"`
	Content   string `gorm:"column:content" json:"content"`
	CreatedAt string `gorm:"column:created_at" json:"created_at"`

	User *User `gorm:"foreignKey:UserId;references:UserId" json:"user,omitempty"`
}

func (c *Comment) TableName() string {
	return "comments"
}
