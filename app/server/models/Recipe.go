package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Recipe struct {
	ID string `gorm:"column:id;primaryKey;type:text"`

	// 菜谱基础信息
	Title           string  `gorm:"column:title"`            // 标题
	Slug            string  `gorm:"column:slug"`             // 链接别名，由标题派生，创建和改标题时同步重算
	TitleNormalized string  `gorm:"column:title_normalized"` // 规范化标题（小写、去重音），用于模糊检索
	Photo           *string `gorm:"column:photo"`            // 照片的公开访问地址， NULL 表示没有照片

	// 归属用户，创建时由认证身份写入，之后不再变更
	UserID string `gorm:"column:user_id;index"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`

	// 连接模型时使用
	User User `gorm:"foreignKey:UserID"` // 归属用户
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
