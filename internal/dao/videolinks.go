package dao

import (
	"context"

	gormModel "github.com/coaching-ai/coachadmin/internal/model/gorm"
	"github.com/gogf/gf/v2/frame/g"
	"gorm.io/gorm"
)

// VideoLinkDAO 视频链接数据访问对象
type VideoLinkDAO struct{}

var VideoLink = &VideoLinkDAO{}

// Create 创建视频链接记录
func (d *VideoLinkDAO) Create(ctx context.Context, link *gormModel.VideoLink) error {
	if err := GetDB().WithContext(ctx).Create(link).Error; err != nil {
		g.Log().Errorf(ctx, "创建视频链接失败: url=%s, err=%v", link.URL, err)
		return err
	}
	return nil
}

// GetByID 根据ID获取视频链接，不存在时返回 (nil, nil)
func (d *VideoLinkDAO) GetByID(ctx context.Context, id string) (*gormModel.VideoLink, error) {
	var link gormModel.VideoLink
	if err := GetDB().WithContext(ctx).Where("id = ?", id).First(&link).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		g.Log().Errorf(ctx, "查询视频链接失败: id=%s, err=%v", id, err)
		return nil, err
	}
	return &link, nil
}

// List 按创建时间倒序获取全部视频链接
func (d *VideoLinkDAO) List(ctx context.Context) ([]gormModel.VideoLink, error) {
	var links []gormModel.VideoLink
	if err := GetDB().WithContext(ctx).Order("created_at DESC").Find(&links).Error; err != nil {
		g.Log().Errorf(ctx, "查询视频链接列表失败: err=%v", err)
		return nil, err
	}
	return links, nil
}

// UpdateStatus 更新视频链接处理状态
func (d *VideoLinkDAO) UpdateStatus(ctx context.Context, id string, status string) error {
	err := GetDB().WithContext(ctx).
		Model(&gormModel.VideoLink{}).
		Where("id = ?", id).
		Update("status", status).Error
	if err != nil {
		g.Log().Errorf(ctx, "更新视频链接状态失败: id=%s, status=%s, err=%v", id, status, err)
	}
	return err
}

// Delete 删除视频链接记录
func (d *VideoLinkDAO) Delete(ctx context.Context, id string) error {
	if err := GetDB().WithContext(ctx).Delete(&gormModel.VideoLink{}, "id = ?", id).Error; err != nil {
		g.Log().Errorf(ctx, "删除视频链接失败: id=%s, err=%v", id, err)
		return err
	}
	return nil
}

// Count 统计视频链接总数
func (d *VideoLinkDAO) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := GetDB().WithContext(ctx).Model(&gormModel.VideoLink{}).Count(&total).Error; err != nil {
		g.Log().Errorf(ctx, "统计视频链接数量失败: err=%v", err)
		return 0, err
	}
	return total, nil
}
