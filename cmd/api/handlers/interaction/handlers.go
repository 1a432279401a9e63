package handlers

import (
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"
)

type CreateCommentParam struct {
	Text string `json:"text"`
}

func videoIdParam(c *app.RequestContext) (int64, error) {
	return strconv.ParseInt(c.Param("video_id"), 10, 64)
}

func commentIdParam(c *app.RequestContext) (int64, error) {
	return strconv.ParseInt(c.Param("comment_id"), 10, 64)
}
