package service

import (
	"context"
	"sync"

	"MiniTube.com/cmd/model"
)

type fakeVideoStore struct {
	videos map[int64]*model.Video
}

func newFakeVideoStore(videos ...*model.Video) *fakeVideoStore {
	f := &fakeVideoStore{videos: make(map[int64]*model.Video)}
	for _, v := range videos {
		f.videos[v.VideoId] = v
	}
	return f
}

func (f *fakeVideoStore) GetVideoById(ctx context.Context, videoId int64) (*model.Video, error) {
	return f.videos[videoId], nil
}

// fakeReactionStore 与存储层使用同一张状态迁移表 互斥锁模拟事务串行化
type fakeReactionStore struct {
	mu   sync.Mutex
	rows map[[2]int64]*model.VideoLike
}

func newFakeReactionStore() *fakeReactionStore {
	return &fakeReactionStore{rows: make(map[[2]int64]*model.VideoLike)}
}

func (f *fakeReactionStore) ToggleReaction(ctx context.Context, userId, videoId, polarity int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := [2]int64{userId, videoId}
	var current int64
	if row, ok := f.rows[key]; ok {
		current = row.Polarity
	}
	next := model.NextReactionPolarity(current, polarity)
	if next == 0 {
		delete(f.rows, key)
	} else {
		f.rows[key] = &model.VideoLike{UserId: userId, VideoId: videoId, Polarity: next}
	}
	return next, nil
}

func (f *fakeReactionStore) GetReaction(ctx context.Context, userId, videoId int64) (*model.VideoLike, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rows[[2]int64{userId, videoId}], nil
}

func (f *fakeReactionStore) rowCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.rows)
}

type fakeViewStore struct {
	mu    sync.Mutex
	views []*model.View
}

func (f *fakeViewStore) CreateView(ctx context.Context, videoId int64, userId *int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.views = append(f.views, &model.View{UserId: userId, VideoId: videoId})
	return nil
}

func (f *fakeViewStore) countFor(videoId int64) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, v := range f.views {
		if v.VideoId == videoId {
			n++
		}
	}
	return n
}

type fakeCommentStore struct {
	mu       sync.Mutex
	nextId   int64
	comments map[int64]*model.Comment
}

func newFakeCommentStore() *fakeCommentStore {
	return &fakeCommentStore{comments: make(map[int64]*model.Comment)}
}

func (f *fakeCommentStore) CreateComment(ctx context.Context, comment *model.Comment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextId++
	comment.CommentId = f.nextId
	f.comments[comment.CommentId] = comment
	return nil
}

func (f *fakeCommentStore) GetCommentById(ctx context.Context, commentId int64) (*model.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.comments[commentId], nil
}

func (f *fakeCommentStore) DeleteComment(ctx context.Context, commentId int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.comments, commentId)
	return nil
}
