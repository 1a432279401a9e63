package db

import (
	"time"

	"MiniTube.com/cmd/model"
	"MiniTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Init 建立数据库连接并迁移表结构
// 连接池由进程入口持有 各仓储通过注入的句柄访问 不使用包级全局DB
func Init() (*gorm.DB, error) {
	dsn := utils.GetMysqlDsn()
	db, err := gorm.Open(mysql.Open(dsn),
		&gorm.Config{
			PrepareStmt:            true,
			SkipDefaultTransaction: true,
			TranslateError:         true,
		},
	)
	if err != nil {
		return nil, errors.Wrap(err, "connect mysql failed")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "get sql db failed")
	}
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(
		&model.User{},
		&model.Video{},
		&model.VideoLike{},
		&model.View{},
		&model.Comment{},
		&model.Subscription{},
	); err != nil {
		return nil, errors.Wrap(err, "migrate tables failed")
	}

	hlog.Info("database initialized")
	return db, nil
}
