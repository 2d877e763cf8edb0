package gorm

import (
	"time"
)

// BotSettings 机器人应答设置，单行表
type BotSettings struct {
	ID           int        `gorm:"primaryKey;column:id" json:"id"`
	Mode         string     `gorm:"column:mode;type:varchar(10);not null;default:bot" json:"mode"`
	AutoResponse bool       `gorm:"column:auto_response;not null;default:true" json:"auto_response"`
	UpdatedAt    *time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName 设置表名
func (BotSettings) TableName() string {
	return "bot_settings"
}
