package model

type Video struct {
	VideoId     int64  `gorm:"column:video_id;primaryKey" json:"video_id"`
	UserId      int64  `gorm:"column:user_id;index" json:"user_id"`
	Title       string `gorm:"column:title;size:255" json:"title"`
	Description string `gorm:"column:description" json:"description"`
	VideoUrl    string `gorm:"column:video_url" json:"video_url"`
	CoverUrl    string `gorm:"column:cover_url" json:"cover_url"`
	CreatedAt   string `gorm:"column:created_at" json:"created_at"`

	User *User `gorm:"foreignKey:UserId;references:UserId" json:"user,omitempty"`
}

func (v *Video) TableName() string {
	return "videos"
}
