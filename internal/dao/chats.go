package dao

import (
	"context"

	gormModel "github.com/coaching-ai/coachadmin/internal/model/gorm"
	"github.com/gogf/gf/v2/frame/g"
)

// ChatDAO 聊天记录数据访问对象
type ChatDAO struct{}

var Chat = &ChatDAO{}

// ListAll 按创建时间倒序获取全部聊天记录
func (d *ChatDAO) ListAll(ctx context.Context) ([]gormModel.ChatMessage, error) {
	var messages []gormModel.ChatMessage
	if err := GetDB().WithContext(ctx).Order("created_at DESC").Find(&messages).Error; err != nil {
		g.Log().Errorf(ctx, "查询聊天记录失败: err=%v", err)
		return nil, err
	}
	return messages, nil
}

// ListByUser 获取指定用户的聊天记录，按时间正序
func (d *ChatDAO) ListByUser(ctx context.Context, userID string) ([]gormModel.ChatMessage, error) {
	var messages []gormModel.ChatMessage
	err := GetDB().WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		g.Log().Errorf(ctx, "查询用户聊天记录失败: userID=%s, err=%v", userID, err)
		return nil, err
	}
	return messages, nil
}

// CountDistinctUsers 统计有聊天记录的用户数量
func (d *ChatDAO) CountDistinctUsers(ctx context.Context) (int64, error) {
	var total int64
	err := GetDB().WithContext(ctx).
		Model(&gormModel.ChatMessage{}).
		Distinct("user_id").
		Count(&total).Error
	if err != nil {
		g.Log().Errorf(ctx, "统计聊天用户数量失败: err=%v", err)
		return 0, err
	}
	return total, nil
}
