package db

import (
	"context"
	"time"

	"MiniTube.com/cmd/model"
	"MiniTube.com/pkg/constants"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) CreateUser(ctx context.Context, user *model.User) error {
	if user.UserId == 0 {
		user.UserId = int64(uuid.New().ID())
	}
	if user.CreatedAt == "" {
		user.CreatedAt = time.Now().Format(constants.DataFormate)
	}
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		// 邮箱唯一索引兜底并发创建 重复键错误由调用方转为查询重试
		return errors.Wrap(err, "CreateUser failed")
	}
	return nil
}

// GetUserByEmail 按邮箱查询 未找到时返回(nil, nil)
func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	result := r.db.WithContext(ctx).Model(&model.User{}).Where("email = ?", email).Limit(1).Find(&user)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "GetUserByEmail failed")
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &user, nil
}

func (r *UserRepo) GetUserById(ctx context.Context, userId int64) (*model.User, error) {
	var user model.User
	result := r.db.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", userId).Limit(1).Find(&user)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "GetUserById failed")
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &user, nil
}

// IsDuplicateKey 判断错误是否为唯一约束冲突
func IsDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
