package gorm

import (
	"time"
)

// 标记回答状态。not_processed 为初始态，processed/rejected 为终态，不可回退。
const (
	FlaggedStatusNotProcessed = "not_processed"
	FlaggedStatusProcessed    = "processed"
	FlaggedStatusRejected     = "rejected"
)

// FileTypeFlagged 审核流程中手工补充的文档的来源标记
const FileTypeFlagged = "flagged"

// FlaggedAnswer 标记待审核的AI回答
type FlaggedAnswer struct {
	ID          int64     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Question    string    `gorm:"column:question;type:text" json:"question"`
	Answer      string    `gorm:"column:answer;type:text" json:"answer"`
	Status      string    `gorm:"column:status;type:varchar(20);not null;default:not_processed;index" json:"status"`
	DocumentIds Int64List `gorm:"column:document_ids;type:json" json:"document_ids"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName 设置表名
func (FlaggedAnswer) TableName() string {
	return "flagged_answers"
}
