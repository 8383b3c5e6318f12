package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID string `gorm:"column:id;primaryKey;type:text"`

	// 基础信息
	Email string `gorm:"column:email;uniqueIndex"` // 邮箱，全局唯一，用于登录和令牌声明
	Name  string `gorm:"column:name"`              // 显示名称

	// 登录与授权认证相关
	Password string `gorm:"column:password"` // 密码，使用 argon2id 储存

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
