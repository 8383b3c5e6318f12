package inits

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"recipe-box/app/server/models"
)

func DB(conn string) (db *gorm.DB, err error) {
	// 打开连接， TranslateError 让唯一约束冲突以 gorm.ErrDuplicatedKey 暴露出来
	if db, err = gorm.Open(postgres.Open(conn), &gorm.Config{TranslateError: true}); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// 迁移
	if err = mig(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// 返回
	return db, nil
}

func mig(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Recipe{},
	)
}
