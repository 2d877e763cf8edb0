package gorm

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VideoLink 待抓取字幕的视频链接
type VideoLink struct {
	ID        string     `gorm:"primaryKey;type:char(32);column:id" json:"id"`
	URL       string     `gorm:"column:url;type:varchar(1024);not null" json:"url"`
	Status    string     `gorm:"column:status;type:varchar(20);not null;default:pending" json:"status"`
	CreatedAt *time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt *time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName 设置表名
func (VideoLink) TableName() string {
	return "videolinks"
}

// BeforeCreate GORM钩子：创建前自动生成UUID
func (v *VideoLink) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = strings.ReplaceAll(uuid.New().String(), "-", "")
	}
	return nil
}
