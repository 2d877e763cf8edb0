package gorm

import (
	"time"
)

// ChatMessage 终端用户与机器人之间的单条消息
type ChatMessage struct {
	ID          int64     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	UserID      string    `gorm:"column:user_id;type:varchar(64);index" json:"user_id"`
	ChatID      string    `gorm:"column:chat_id;type:varchar(64)" json:"chat_id"`
	Username    string    `gorm:"column:username;type:varchar(255)" json:"username"`
	Fullname    string    `gorm:"column:fullname;type:varchar(255)" json:"fullname"`
	Role        string    `gorm:"column:role;type:varchar(20);not null" json:"role"`
	Message     string    `gorm:"column:message;type:text" json:"message"`
	DocumentIds Int64List `gorm:"column:document_ids;type:json" json:"document_ids"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime;index" json:"created_at"`
}

// TableName 设置表名
func (ChatMessage) TableName() string {
	return "chat_history"
}
