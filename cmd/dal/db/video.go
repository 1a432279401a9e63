package db

import (
	"context"
	"strings"
	"time"

	"MiniTube.com/cmd/model"
	"MiniTube.com/pkg/constants"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type VideoRepo struct {
	db *gorm.DB
}

func NewVideoRepo(db *gorm.DB) *VideoRepo {
	return &VideoRepo{db: db}
}

func (r *VideoRepo) CreateVideo(ctx context.Context, video *model.Video) error {
	if video.VideoId == 0 {
		video.VideoId = int64(uuid.New().ID())
	}
	if video.CreatedAt == "" {
		video.CreatedAt = time.Now().Format(constants.DataFormate)
	}
	if err := r.db.WithContext(ctx).Create(video).Error; err != nil {
		return errors.Wrap(err, "CreateVideo failed")
	}
	return nil
}

// GetVideoById 未找到时返回(nil, nil)
func (r *VideoRepo) GetVideoById(ctx context.Context, videoId int64) (*model.Video, error) {
	var video model.Video
	result := r.db.WithContext(ctx).Model(&model.Video{}).Preload("User").
		Where("video_id = ?", videoId).Limit(1).Find(&video)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "GetVideoById failed")
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &video, nil
}

// ListVideos 按创建时间倒序返回全部视频 带作者信息
func (r *VideoRepo) ListVideos(ctx context.Context) ([]*model.Video, error) {
	videos := make([]*model.Video, 0)
	if err := r.db.WithContext(ctx).Model(&model.Video{}).Preload("User").
		Order("created_at desc").Find(&videos).Error; err != nil {
		return nil, errors.Wrap(err, "ListVideos failed")
	}
	return videos, nil
}

// SearchVideos 标题或描述的大小写不敏感子串匹配
func (r *VideoRepo) SearchVideos(ctx context.Context, query string) ([]*model.Video, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	videos := make([]*model.Video, 0)
	if err := r.db.WithContext(ctx).Model(&model.Video{}).Preload("User").
		Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern).
		Find(&videos).Error; err != nil {
		return nil, errors.Wrap(err, "SearchVideos failed")
	}
	return videos, nil
}

// GetVideoViewCounts 一次分组查询取回一批视频的浏览数 没有记录的视频不在结果中
func (r *VideoRepo) GetVideoViewCounts(ctx context.Context, videoIds []int64) (map[int64]int64, error) {
	counts := make(map[int64]int64, len(videoIds))
	if len(videoIds) == 0 {
		return counts, nil
	}
	rows := make([]struct {
		VideoId int64
		Count   int64
	}, 0)
	if err := r.db.WithContext(ctx).Model(&model.View{}).
		Select("video_id, count(*) as count").
		Where("video_id in ?", videoIds).
		Group("video_id").Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "GetVideoViewCounts failed")
	}
	for _, row := range rows {
		counts[row.VideoId] = row.Count
	}
	return counts, nil
}

// DeleteVideoCascade 在单个事务内依次删除浏览记录 点赞记录 评论 最后删除视频
// 事务保证中途失败不会留下半删的孤儿行
func (r *VideoRepo) DeleteVideoCascade(ctx context.Context, videoId int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("video_id = ?", videoId).Delete(&model.View{}).Error; err != nil {
			return errors.Wrap(err, "delete views failed")
		}
		if err := tx.Where("video_id = ?", videoId).Delete(&model.VideoLike{}).Error; err != nil {
			return errors.Wrap(err, "delete reactions failed")
		}
		if err := tx.Where("video_id = ?", videoId).Delete(&model.Comment{}).Error; err != nil {
			return errors.Wrap(err, "delete comments failed")
		}
		if err := tx.Where("video_id = ?", videoId).Delete(&model.Video{}).Error; err != nil {
			return errors.Wrap(err, "delete video failed")
		}
		return nil
	})
	return err
}
