package dao

import (
	"context"

	gormModel "github.com/coaching-ai/coachadmin/internal/model/gorm"
	"github.com/gogf/gf/v2/frame/g"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FlaggedAnswerDAO 标记回答数据访问对象
type FlaggedAnswerDAO struct{}

var FlaggedAnswer = &FlaggedAnswerDAO{}

// GetByID 根据ID获取标记回答，不存在时返回 (nil, nil)
func (d *FlaggedAnswerDAO) GetByID(ctx context.Context, id int64) (*gormModel.FlaggedAnswer, error) {
	var answer gormModel.FlaggedAnswer
	if err := GetDB().WithContext(ctx).Where("id = ?", id).First(&answer).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		g.Log().Errorf(ctx, "查询标记回答失败: id=%d, err=%v", id, err)
		return nil, err
	}
	return &answer, nil
}

// List 按状态过滤分页查询，按创建时间倒序
func (d *FlaggedAnswerDAO) List(ctx context.Context, status string, page, size int) (answers []gormModel.FlaggedAnswer, total int64, err error) {
	query := GetDB().WithContext(ctx).Model(&gormModel.FlaggedAnswer{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err = query.Count(&total).Error; err != nil {
		g.Log().Errorf(ctx, "统计标记回答失败: err=%v", err)
		return nil, 0, err
	}

	err = query.Order("created_at DESC").
		Offset((page - 1) * size).
		Limit(size).
		Find(&answers).Error
	if err != nil {
		g.Log().Errorf(ctx, "查询标记回答列表失败: err=%v", err)
		return nil, 0, err
	}
	return answers, total, nil
}

// ListAll 按创建时间倒序获取全部标记回答，导出用
func (d *FlaggedAnswerDAO) ListAll(ctx context.Context) ([]gormModel.FlaggedAnswer, error) {
	var answers []gormModel.FlaggedAnswer
	if err := GetDB().WithContext(ctx).Order("created_at DESC").Find(&answers).Error; err != nil {
		g.Log().Errorf(ctx, "查询标记回答失败: err=%v", err)
		return nil, err
	}
	return answers, nil
}

// UpdateStatusIfNotProcessed 条件更新状态：仅当当前状态仍为 not_processed 时生效。
// 返回实际更新的行数，0 表示状态已被其他操作员变更。
func (d *FlaggedAnswerDAO) UpdateStatusIfNotProcessed(ctx context.Context, id int64, status string) (int64, error) {
	result := GetDB().WithContext(ctx).
		Model(&gormModel.FlaggedAnswer{}).
		Where("id = ? AND status = ?", id, gormModel.FlaggedStatusNotProcessed).
		Update("status", status)
	if result.Error != nil {
		g.Log().Errorf(ctx, "更新标记回答状态失败: id=%d, status=%s, err=%v", id, status, result.Error)
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// GetByIDForUpdateTx 在事务中加行锁读取标记回答，不存在时返回 (nil, nil)。
// 并发修改 document_ids 的事务在这里串行化。
func (d *FlaggedAnswerDAO) GetByIDForUpdateTx(ctx context.Context, tx *gorm.DB, id int64) (*gormModel.FlaggedAnswer, error) {
	var answer gormModel.FlaggedAnswer
	err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&answer).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		g.Log().Errorf(ctx, "锁定读取标记回答失败: id=%d, err=%v", id, err)
		return nil, err
	}
	return &answer, nil
}

// UpdateDocumentIdsTx 在事务中更新标记回答的文档引用列表
func (d *FlaggedAnswerDAO) UpdateDocumentIdsTx(ctx context.Context, tx *gorm.DB, id int64, documentIds gormModel.Int64List) error {
	err := tx.WithContext(ctx).
		Model(&gormModel.FlaggedAnswer{}).
		Where("id = ?", id).
		Update("document_ids", documentIds).Error
	if err != nil {
		g.Log().Errorf(ctx, "更新标记回答文档列表失败: id=%d, err=%v", id, err)
	}
	return err
}

// CountByStatus 统计各状态的标记回答数量
func (d *FlaggedAnswerDAO) CountByStatus(ctx context.Context) (map[string]int64, error) {
	type row struct {
		Status string
		Count  int64
	}
	var rows []row
	err := GetDB().WithContext(ctx).
		Model(&gormModel.FlaggedAnswer{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Find(&rows).Error
	if err != nil {
		g.Log().Errorf(ctx, "统计标记回答状态失败: err=%v", err)
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts, nil
}
