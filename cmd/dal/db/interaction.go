package db

import (
	"context"
	"time"

	"MiniTube.com/cmd/model"
	"MiniTube.com/pkg/constants"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InteractionRepo struct {
	db *gorm.DB
}

func NewInteractionRepo(db *gorm.DB) *InteractionRepo {
	return &InteractionRepo{db: db}
}

// ToggleReaction 在一个事务内完成read-decide-write
// 对已有记录加行锁串行化同一(user, video)上的并发切换
// 两个并发事务都未见到记录时 唯一索引让后写的插入失败 外层重试一次转为状态迁移
func (r *InteractionRepo) ToggleReaction(ctx context.Context, userId, videoId, polarity int64) (int64, error) {
	var state int64
	for attempt := 0; attempt < 2; attempt++ {
		err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var existing model.VideoLike
			result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Model(&model.VideoLike{}).
				Where("user_id = ? AND video_id = ?", userId, videoId).
				Limit(1).Find(&existing)
			if result.Error != nil {
				return errors.Wrap(result.Error, "query reaction failed")
			}

			now := time.Now().Format(constants.DataFormate)
			var current int64
			if result.RowsAffected > 0 {
				current = existing.Polarity
			}
			next := model.NextReactionPolarity(current, polarity)

			switch {
			case current == 0:
				// NONE -> LIKED/DISLIKED
				like := &model.VideoLike{
					VideoLikeId: int64(uuid.New().ID()),
					UserId:      userId,
					VideoId:     videoId,
					Polarity:    next,
					CreatedAt:   now,
					UpdatedAt:   now,
				}
				if err := tx.Create(like).Error; err != nil {
					return errors.Wrap(err, "create reaction failed")
				}
			case next == 0:
				// LIKED -> NONE 或 DISLIKED -> NONE
				if err := tx.Where("video_like_id = ?", existing.VideoLikeId).
					Delete(&model.VideoLike{}).Error; err != nil {
					return errors.Wrap(err, "delete reaction failed")
				}
			default:
				// LIKED <-> DISLIKED 极性翻转
				if err := tx.Model(&model.VideoLike{}).
					Where("video_like_id = ?", existing.VideoLikeId).
					Updates(map[string]interface{}{"polarity": next, "updated_at": now}).Error; err != nil {
					return errors.Wrap(err, "update reaction failed")
				}
			}
			state = next
			return nil
		})
		if err == nil {
			return state, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, err
		}
	}
	return 0, errors.New("toggle reaction lost insert race twice")
}

// GetReaction 未找到时返回(nil, nil)
func (r *InteractionRepo) GetReaction(ctx context.Context, userId, videoId int64) (*model.VideoLike, error) {
	var like model.VideoLike
	result := r.db.WithContext(ctx).Model(&model.VideoLike{}).
		Where("user_id = ? AND video_id = ?", userId, videoId).Limit(1).Find(&like)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "GetReaction failed")
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &like, nil
}

// GetReactionCounts 一次分组查询同时取回点赞数与点踩数
func (r *InteractionRepo) GetReactionCounts(ctx context.Context, videoId int64) (likes int64, dislikes int64, err error) {
	rows := make([]struct {
		Polarity int64
		Count    int64
	}, 0)
	if err := r.db.WithContext(ctx).Model(&model.VideoLike{}).
		Select("polarity, count(*) as count").
		Where("video_id = ?", videoId).
		Group("polarity").Scan(&rows).Error; err != nil {
		return 0, 0, errors.Wrap(err, "GetReactionCounts failed")
	}
	for _, row := range rows {
		switch row.Polarity {
		case constants.PolarityLike:
			likes = row.Count
		case constants.PolarityDislike:
			dislikes = row.Count
		}
	}
	return likes, dislikes, nil
}

// CreateView 浏览记录只追加 不去重
func (r *InteractionRepo) CreateView(ctx context.Context, videoId int64, userId *int64) error {
	view := &model.View{
		ViewId:    int64(uuid.New().ID()),
		UserId:    userId,
		VideoId:   videoId,
		CreatedAt: time.Now().Format(constants.DataFormate),
	}
	if err := r.db.WithContext(ctx).Create(view).Error; err != nil {
		return errors.Wrap(err, "CreateView failed")
	}
	return nil
}

func (r *InteractionRepo) CountViews(ctx context.Context, videoId int64) (count int64, err error) {
	if err := r.db.WithContext(ctx).Model(&model.View{}).
		Where("video_id = ?", videoId).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "CountViews failed")
	}
	return count, nil
}

func (r *InteractionRepo) HasViewed(ctx context.Context, userId, videoId int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.View{}).
		Where("user_id = ? AND video_id = ?", userId, videoId).Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "HasViewed failed")
	}
	return count > 0, nil
}

func (r *InteractionRepo) CreateComment(ctx context.Context, comment *model.Comment) error {
	if comment.CommentId == 0 {
		comment.CommentId = int64(uuid.New().ID())
	}
	if comment.CreatedAt == "" {
		comment.CreatedAt = time.Now().Format(constants.DataFormate)
	}
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return errors.Wrap(err, "CreateComment failed")
	}
	return nil
}

// GetCommentById 未找到时返回(nil, nil)
func (r *InteractionRepo) GetCommentById(ctx context.Context, commentId int64) (*model.Comment, error) {
	var comment model.Comment
	result := r.db.WithContext(ctx).Model(&model.Comment{}).
		Where("comment_id = ?", commentId).Limit(1).Find(&comment)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "GetCommentById failed")
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &comment, nil
}

func (r *InteractionRepo) DeleteComment(ctx context.Context, commentId int64) error {
	if err := r.db.WithContext(ctx).Where("comment_id = ?", commentId).
		Delete(&model.Comment{}).Error; err != nil {
		return errors.Wrap(err, "DeleteComment failed")
	}
	return nil
}

// ListVideoComments 返回某视频的全部评论 带作者信息 按创建时间倒序
func (r *InteractionRepo) ListVideoComments(ctx context.Context, videoId int64) ([]*model.Comment, error) {
	comments := make([]*model.Comment, 0)
	if err := r.db.WithContext(ctx).Model(&model.Comment{}).Preload("User").
		Where("video_id = ?", videoId).
		Order("created_at desc").Find(&comments).Error; err != nil {
		return nil, errors.Wrap(err, "ListVideoComments failed")
	}
	return comments, nil
}
