package model

type User struct {
	UserId    int64  `gorm:"column:user_id;primaryKey" json:"user_id"`
	UserName  string `gorm:"column:user_name" json:"user_name"`
	Email     string `gorm:"column:email;size:255;uniqueIndex:uk_users_email" json:"email"`
	AvatarUrl string `gorm:"column:avatar_url" json:"avatar_url"`
	CreatedAt string `gorm:"column:created_at" json:"created_at"`
}

func (u *User) TableName() string {
	return "users"
}
