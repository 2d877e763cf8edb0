package gorm

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// 文件/视频链接处理状态
const (
	IngestStatusPending    = "pending"
	IngestStatusProcessing = "processing"
	IngestStatusProcessed  = "processed"
	IngestStatusFailed     = "failed"
)

// File 上传到对象存储的源文件元数据
type File struct {
	ID           string     `gorm:"primaryKey;type:char(32);column:id" json:"id"`
	Name         string     `gorm:"column:name;type:varchar(255);not null" json:"name"`
	OriginalName string     `gorm:"column:original_name;type:varchar(255)" json:"original_name"`
	StoragePath  string     `gorm:"column:storage_path;type:varchar(512)" json:"storage_path"`
	FileType     string     `gorm:"column:file_type;type:varchar(10)" json:"file_type"`
	FileSize     int64      `gorm:"column:file_size" json:"file_size"`
	PublicURL    string     `gorm:"column:public_url;type:varchar(1024)" json:"public_url"`
	Status       string     `gorm:"column:status;type:varchar(20);not null;default:processing" json:"status"`
	CreatedAt    *time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    *time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName 设置表名
func (File) TableName() string {
	return "files"
}

// BeforeCreate GORM钩子：创建前自动生成UUID
func (f *File) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = strings.ReplaceAll(uuid.New().String(), "-", "")
	}
	return nil
}
