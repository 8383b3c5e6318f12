package handlers

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"recipe-box/app/server/jwt"
	"recipe-box/app/server/storage"
)

type App struct {
	l     *zap.Logger         // 日志
	db    *gorm.DB            // 数据库
	jwt   *jwt.JWT            // JWT ，用于无状态验证
	store storage.ObjectStore // 照片对象存储
}

func NewApp(l *zap.Logger, db *gorm.DB, j *jwt.JWT, store storage.ObjectStore) *App {
	return &App{
		l:     l,
		db:    db,
		jwt:   j,
		store: store,
	}
}
