package main

import (
	"context"
	"time"

	"MiniTube.com/cmd/api"
	"MiniTube.com/cmd/api/mw"
	authservice "MiniTube.com/cmd/auth/service"
	"MiniTube.com/cmd/dal/db"
	interactionservice "MiniTube.com/cmd/interaction/service"
	relationservice "MiniTube.com/cmd/relation/service"
	videoservice "MiniTube.com/cmd/video/service"
	"MiniTube.com/config"
	"MiniTube.com/pkg/cache"
	"MiniTube.com/pkg/errno"
	"MiniTube.com/pkg/jwt"
	"MiniTube.com/pkg/oauth"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/middlewares/server/recovery"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/cors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

func main() {
	config.Init()

	// 连接池生命周期归进程入口所有 各组件只拿注入的句柄
	gormDB, err := db.Init()
	if err != nil {
		logrus.Fatalf("init database failed: %v", err)
	}

	var redisClient *redis.Client
	if config.ConfigInfo.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     config.ConfigInfo.Redis.Addr,
			Password: config.ConfigInfo.Redis.Password,
		})
	}
	countCache := cache.NewViewCountCache(redisClient)

	userRepo := db.NewUserRepo(gormDB)
	videoRepo := db.NewVideoRepo(gormDB)
	interactionRepo := db.NewInteractionRepo(gormDB)
	relationRepo := db.NewRelationRepo(gormDB)

	expire := time.Duration(config.ConfigInfo.JWT.ExpireMin) * time.Minute
	if expire <= 0 {
		expire = 7 * 24 * time.Hour
	}
	tokens := jwt.NewSessionToken(config.ConfigInfo.JWT.Secret, expire)
	verifier := oauth.NewGoogleVerifier(config.ConfigInfo.Google.ClientId)

	services := &api.Services{
		Auth:          authservice.NewSignInService(verifier, userRepo, tokens),
		Video:         videoservice.NewVideoService(videoRepo, interactionRepo, relationRepo, countCache),
		Like:          interactionservice.NewLikeActionService(videoRepo, interactionRepo),
		View:          interactionservice.NewViewService(videoRepo, interactionRepo, countCache),
		Comment:       interactionservice.NewCommentService(videoRepo, interactionRepo),
		Relation:      relationservice.NewRelationService(userRepo, relationRepo),
		SessionExpire: expire,
	}
	m := mw.New(tokens, userRepo)

	addr := config.ConfigInfo.Server.Addr
	if addr == "" {
		addr = "0.0.0.0:8888"
	}
	h := server.New(
		server.WithHostPorts(addr),
		server.WithHandleMethodNotAllowed(true),
	)

	// 配置 CORS
	h.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigInfo.Server.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 错误处理 panic统一收敛为500 不向外带出内部细节
	h.Use(recovery.Recovery(recovery.WithRecoveryHandler(
		func(ctx context.Context, c *app.RequestContext, err interface{}, stack []byte) {
			hlog.SystemLogger().CtxErrorf(ctx, "[Recovery] err=%v\nstack=%s", err, stack)
			c.JSON(consts.StatusInternalServerError, map[string]interface{}{
				"code":    errno.ServiceErrCode,
				"message": errno.ServiceErr.ErrMsg,
			})
		})))

	api.Register(h, m, services)
	h.Spin()
}
