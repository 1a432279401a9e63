package api

import (
	"time"

	authhandlers "MiniTube.com/cmd/api/handlers/auth"
	interactionhandlers "MiniTube.com/cmd/api/handlers/interaction"
	relationhandlers "MiniTube.com/cmd/api/handlers/relation"
	videohandlers "MiniTube.com/cmd/api/handlers/video"
	"MiniTube.com/cmd/api/mw"
	authservice "MiniTube.com/cmd/auth/service"
	interactionservice "MiniTube.com/cmd/interaction/service"
	relationservice "MiniTube.com/cmd/relation/service"
	videoservice "MiniTube.com/cmd/video/service"
	"github.com/cloudwego/hertz/pkg/app/server"
)

// Services 路由层依赖的全部领域服务 由进程入口组装注入
type Services struct {
	Auth     *authservice.SignInService
	Video    *videoservice.VideoService
	Like     *interactionservice.LikeActionService
	View     *interactionservice.ViewService
	Comment  *interactionservice.CommentService
	Relation *relationservice.RelationService

	SessionExpire time.Duration
}

// Register 注册全部路由 读接口可匿名 写接口要求登录
func Register(h *server.Hertz, m *mw.Middleware, svcs *Services) {
	v1 := h.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.POST("/google-signin", authhandlers.GoogleSignIn(svcs.Auth, svcs.SessionExpire))
	auth.GET("/me", m.RequireAuth(), authhandlers.Me())
	auth.GET("/signout", m.RequireAuth(), authhandlers.SignOut())

	v1.GET("/videos", m.OptionalAuth(), videohandlers.Feed(svcs.Video))
	v1.GET("/videos/trending", m.OptionalAuth(), videohandlers.Trending(svcs.Video))
	v1.GET("/videos/search", m.OptionalAuth(), videohandlers.Search(svcs.Video))
	v1.POST("/videos", m.RequireAuth(), videohandlers.Publish(svcs.Video))
	v1.GET("/videos/:video_id", m.OptionalAuth(), videohandlers.Detail(svcs.Video))
	v1.DELETE("/videos/:video_id", m.RequireAuth(), videohandlers.Delete(svcs.Video))
	v1.GET("/videos/:video_id/view", m.OptionalAuth(), videohandlers.Visit(svcs.View))
	v1.GET("/videos/:video_id/like", m.RequireAuth(), interactionhandlers.Like(svcs.Like))
	v1.GET("/videos/:video_id/dislike", m.RequireAuth(), interactionhandlers.Dislike(svcs.Like))
	v1.POST("/videos/:video_id/comment", m.RequireAuth(), interactionhandlers.CreateComment(svcs.Comment))
	v1.DELETE("/videos/:video_id/comment/:comment_id", m.RequireAuth(), interactionhandlers.DeleteComment(svcs.Comment))

	v1.POST("/users/:user_id/subscribe", m.RequireAuth(), relationhandlers.SubscribeAction(svcs.Relation))
}
