package gorm

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Operator 后台操作员。身份签发由外部身份服务完成，这里只保存 token 映射。
type Operator struct {
	ID        string     `gorm:"primaryKey;type:char(32);column:id" json:"id"`
	Email     string     `gorm:"column:email;type:varchar(255);uniqueIndex" json:"email"`
	FullName  string     `gorm:"column:full_name;type:varchar(255)" json:"full_name"`
	Token     string     `gorm:"column:token;type:varchar(128);uniqueIndex" json:"-"`
	CreatedAt *time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName 设置表名
func (Operator) TableName() string {
	return "operators"
}

// BeforeCreate GORM钩子：创建前自动生成UUID
func (o *Operator) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = strings.ReplaceAll(uuid.New().String(), "-", "")
	}
	return nil
}
