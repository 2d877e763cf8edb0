package gorm

import (
	"time"
)

// RagDocument RAG检索文档分片。embedding 列由外部 RAG worker 维护，本服务不读写。
type RagDocument struct {
	ID              int64     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Content         string    `gorm:"column:content;type:text" json:"content"`
	FileType        string    `gorm:"column:file_type;type:varchar(20);index" json:"file_type"`
	FileName        string    `gorm:"column:file_name;type:varchar(255)" json:"file_name"`
	FilePath        string    `gorm:"column:file_path;type:varchar(512)" json:"file_path"`
	FileStoragePath string    `gorm:"column:file_storage_path;type:varchar(512)" json:"file_storage_path"`
	ChunkIndex      int       `gorm:"column:chunk_index;not null;default:0" json:"chunk_index"`
	UserID          string    `gorm:"column:user_id;type:varchar(64);index" json:"user_id"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName 设置表名
func (RagDocument) TableName() string {
	return "documents"
}
