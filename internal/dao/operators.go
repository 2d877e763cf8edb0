package dao

import (
	"context"

	gormModel "github.com/coaching-ai/coachadmin/internal/model/gorm"
	"github.com/gogf/gf/v2/frame/g"
	"gorm.io/gorm"
)

// OperatorDAO 操作员数据访问对象
type OperatorDAO struct{}

var Operator = &OperatorDAO{}

// GetByToken 根据API token获取操作员，不存在时返回 (nil, nil)
func (d *OperatorDAO) GetByToken(ctx context.Context, token string) (*gormModel.Operator, error) {
	var operator gormModel.Operator
	if err := GetDB().WithContext(ctx).Where("token = ?", token).First(&operator).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		g.Log().Errorf(ctx, "查询操作员失败: err=%v", err)
		return nil, err
	}
	return &operator, nil
}
