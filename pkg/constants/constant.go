package constants

const (
	DataFormate = "2006-01-02 15:04:05"

	DefaultLimit = 10

	// 点赞记录的极性 +1表示like -1表示dislike
	PolarityLike    = 1
	PolarityDislike = -1

	SessionCookieName = "token"
)
