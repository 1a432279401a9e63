package handlers

import (
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"
)

type CreateVideoParam struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Url         string `json:"url"`
	Thumbnail   string `json:"thumbnail"`
}

func videoIdParam(c *app.RequestContext) (int64, error) {
	return strconv.ParseInt(c.Param("video_id"), 10, 64)
}
