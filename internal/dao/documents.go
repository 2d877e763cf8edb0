package dao

import (
	"context"

	gormModel "github.com/coaching-ai/coachadmin/internal/model/gorm"
	"github.com/gogf/gf/v2/frame/g"
	"gorm.io/gorm"
)

// RagDocumentDAO RAG文档数据访问对象
type RagDocumentDAO struct{}

var RagDocument = &RagDocumentDAO{}

// GetByID 根据ID获取文档，不存在时返回 (nil, nil)
func (d *RagDocumentDAO) GetByID(ctx context.Context, id int64) (*gormModel.RagDocument, error) {
	var doc gormModel.RagDocument
	if err := GetDB().WithContext(ctx).Where("id = ?", id).First(&doc).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		g.Log().Errorf(ctx, "查询文档失败: id=%d, err=%v", id, err)
		return nil, err
	}
	return &doc, nil
}

// GetByIDs 批量获取文档，返回顺序不保证，由调用方按引用列表排序
func (d *RagDocumentDAO) GetByIDs(ctx context.Context, ids []int64) ([]gormModel.RagDocument, error) {
	if len(ids) == 0 {
		return []gormModel.RagDocument{}, nil
	}
	var docs []gormModel.RagDocument
	if err := GetDB().WithContext(ctx).Where("id IN ?", ids).Find(&docs).Error; err != nil {
		g.Log().Errorf(ctx, "批量查询文档失败: ids=%v, err=%v", ids, err)
		return nil, err
	}
	return docs, nil
}

// CreateTx 在事务中创建文档
func (d *RagDocumentDAO) CreateTx(ctx context.Context, tx *gorm.DB, doc *gormModel.RagDocument) error {
	if err := tx.WithContext(ctx).Create(doc).Error; err != nil {
		g.Log().Errorf(ctx, "创建文档失败: err=%v", err)
		return err
	}
	return nil
}

// UpdateContent 更新文档内容
func (d *RagDocumentDAO) UpdateContent(ctx context.Context, id int64, content string) (int64, error) {
	result := GetDB().WithContext(ctx).
		Model(&gormModel.RagDocument{}).
		Where("id = ?", id).
		Update("content", content)
	if result.Error != nil {
		g.Log().Errorf(ctx, "更新文档内容失败: id=%d, err=%v", id, result.Error)
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// DeleteTx 在事务中删除文档行
func (d *RagDocumentDAO) DeleteTx(ctx context.Context, tx *gorm.DB, id int64) error {
	if err := tx.WithContext(ctx).Delete(&gormModel.RagDocument{}, id).Error; err != nil {
		g.Log().Errorf(ctx, "删除文档失败: id=%d, err=%v", id, err)
		return err
	}
	return nil
}

// DeleteByStoragePath 删除某个源文件解析出的全部分片
func (d *RagDocumentDAO) DeleteByStoragePath(ctx context.Context, storagePath string) error {
	err := GetDB().WithContext(ctx).
		Where("file_storage_path = ?", storagePath).
		Delete(&gormModel.RagDocument{}).Error
	if err != nil {
		g.Log().Errorf(ctx, "删除源文件分片失败: storagePath=%s, err=%v", storagePath, err)
	}
	return err
}

// Count 统计文档总数
func (d *RagDocumentDAO) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := GetDB().WithContext(ctx).Model(&gormModel.RagDocument{}).Count(&total).Error; err != nil {
		g.Log().Errorf(ctx, "统计文档数量失败: err=%v", err)
		return 0, err
	}
	return total, nil
}
