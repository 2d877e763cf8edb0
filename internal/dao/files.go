package dao

import (
	"context"

	gormModel "github.com/coaching-ai/coachadmin/internal/model/gorm"
	"github.com/gogf/gf/v2/frame/g"
	"gorm.io/gorm"
)

// FileDAO 上传文件数据访问对象
type FileDAO struct{}

var File = &FileDAO{}

// Create 创建文件记录
func (d *FileDAO) Create(ctx context.Context, file *gormModel.File) error {
	if err := GetDB().WithContext(ctx).Create(file).Error; err != nil {
		g.Log().Errorf(ctx, "创建文件记录失败: name=%s, err=%v", file.Name, err)
		return err
	}
	return nil
}

// GetByID 根据ID获取文件记录，不存在时返回 (nil, nil)
func (d *FileDAO) GetByID(ctx context.Context, id string) (*gormModel.File, error) {
	var file gormModel.File
	if err := GetDB().WithContext(ctx).Where("id = ?", id).First(&file).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		g.Log().Errorf(ctx, "查询文件记录失败: id=%s, err=%v", id, err)
		return nil, err
	}
	return &file, nil
}

// List 按创建时间倒序获取全部文件记录
func (d *FileDAO) List(ctx context.Context) ([]gormModel.File, error) {
	var files []gormModel.File
	if err := GetDB().WithContext(ctx).Order("created_at DESC").Find(&files).Error; err != nil {
		g.Log().Errorf(ctx, "查询文件列表失败: err=%v", err)
		return nil, err
	}
	return files, nil
}

// UpdateStatus 更新文件处理状态
func (d *FileDAO) UpdateStatus(ctx context.Context, id string, status string) error {
	err := GetDB().WithContext(ctx).
		Model(&gormModel.File{}).
		Where("id = ?", id).
		Update("status", status).Error
	if err != nil {
		g.Log().Errorf(ctx, "更新文件状态失败: id=%s, status=%s, err=%v", id, status, err)
	}
	return err
}

// Delete 删除文件记录
func (d *FileDAO) Delete(ctx context.Context, id string) error {
	if err := GetDB().WithContext(ctx).Delete(&gormModel.File{}, "id = ?", id).Error; err != nil {
		g.Log().Errorf(ctx, "删除文件记录失败: id=%s, err=%v", id, err)
		return err
	}
	return nil
}

// Count 统计文件总数
func (d *FileDAO) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := GetDB().WithContext(ctx).Model(&gormModel.File{}).Count(&total).Error; err != nil {
		g.Log().Errorf(ctx, "统计文件数量失败: err=%v", err)
		return 0, err
	}
	return total, nil
}
