package service

import (
	"context"
	"sort"
	"strings"

	"MiniTube.com/cmd/model"
)

type fakeVideoStore struct {
	nextId   int64
	videos   map[int64]*model.Video
	views    map[int64]int64
	cascaded []int64
}

func newFakeVideoStore() *fakeVideoStore {
	return &fakeVideoStore{
		videos: make(map[int64]*model.Video),
		views:  make(map[int64]int64),
	}
}

func (f *fakeVideoStore) add(video *model.Video) *model.Video {
	f.videos[video.VideoId] = video
	return video
}

func (f *fakeVideoStore) CreateVideo(ctx context.Context, video *model.Video) error {
	f.nextId++
	video.VideoId = f.nextId
	f.videos[video.VideoId] = video
	return nil
}

func (f *fakeVideoStore) GetVideoById(ctx context.Context, videoId int64) (*model.Video, error) {
	return f.videos[videoId], nil
}

func (f *fakeVideoStore) ListVideos(ctx context.Context) ([]*model.Video, error) {
	videos := make([]*model.Video, 0, len(f.videos))
	for _, v := range f.videos {
		videos = append(videos, v)
	}
	sort.Slice(videos, func(i, j int) bool {
		return videos[i].CreatedAt > videos[j].CreatedAt
	})
	return videos, nil
}

func (f *fakeVideoStore) SearchVideos(ctx context.Context, query string) ([]*model.Video, error) {
	q := strings.ToLower(query)
	videos := make([]*model.Video, 0)
	for _, v := range f.videos {
		if strings.Contains(strings.ToLower(v.Title), q) ||
			strings.Contains(strings.ToLower(v.Description), q) {
			videos = append(videos, v)
		}
	}
	sort.Slice(videos, func(i, j int) bool {
		return videos[i].CreatedAt > videos[j].CreatedAt
	})
	return videos, nil
}

// 分组统计 没有浏览记录的视频不出现在结果里
func (f *fakeVideoStore) GetVideoViewCounts(ctx context.Context, videoIds []int64) (map[int64]int64, error) {
	counts := make(map[int64]int64)
	for _, id := range videoIds {
		if n := f.views[id]; n > 0 {
			counts[id] = n
		}
	}
	return counts, nil
}

func (f *fakeVideoStore) DeleteVideoCascade(ctx context.Context, videoId int64) error {
	delete(f.videos, videoId)
	delete(f.views, videoId)
	f.cascaded = append(f.cascaded, videoId)
	return nil
}

type fakeEngagementStore struct {
	reactions map[[2]int64]int64
	viewers   map[[2]int64]bool
	comments  []*model.Comment
}

func newFakeEngagementStore() *fakeEngagementStore {
	return &fakeEngagementStore{
		reactions: make(map[[2]int64]int64),
		viewers:   make(map[[2]int64]bool),
	}
}

func (f *fakeEngagementStore) GetReaction(ctx context.Context, userId, videoId int64) (*model.VideoLike, error) {
	polarity, ok := f.reactions[[2]int64{userId, videoId}]
	if !ok {
		return nil, nil
	}
	return &model.VideoLike{UserId: userId, VideoId: videoId, Polarity: polarity}, nil
}

func (f *fakeEngagementStore) GetReactionCounts(ctx context.Context, videoId int64) (int64, int64, error) {
	var likes, dislikes int64
	for key, polarity := range f.reactions {
		if key[1] != videoId {
			continue
		}
		if polarity > 0 {
			likes++
		} else {
			dislikes++
		}
	}
	return likes, dislikes, nil
}

func (f *fakeEngagementStore) CountViews(ctx context.Context, videoId int64) (int64, error) {
	var count int64
	for key := range f.viewers {
		if key[1] == videoId {
			count++
		}
	}
	return count, nil
}

func (f *fakeEngagementStore) HasViewed(ctx context.Context, userId, videoId int64) (bool, error) {
	return f.viewers[[2]int64{userId, videoId}], nil
}

func (f *fakeEngagementStore) ListVideoComments(ctx context.Context, videoId int64) ([]*model.Comment, error) {
	comments := make([]*model.Comment, 0)
	for _, c := range f.comments {
		if c.VideoId == videoId {
			comments = append(comments, c)
		}
	}
	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].CreatedAt > comments[j].CreatedAt
	})
	return comments, nil
}

type fakeRelationStore struct {
	edges map[[2]int64]bool
}

func newFakeRelationStore() *fakeRelationStore {
	return &fakeRelationStore{edges: make(map[[2]int64]bool)}
}

func (f *fakeRelationStore) IsSubscribed(ctx context.Context, subscriberId, targetId int64) (bool, error) {
	return f.edges[[2]int64{subscriberId, targetId}], nil
}

func (f *fakeRelationStore) CountSubscribers(ctx context.Context, userId int64) (int64, error) {
	var count int64
	for key := range f.edges {
		if key[1] == userId {
			count++
		}
	}
	return count, nil
}
