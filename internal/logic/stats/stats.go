package stats

import (
	"context"

	"github.com/coaching-ai/coachadmin/core/errors"
	"github.com/coaching-ai/coachadmin/internal/dao"
	gormModel "github.com/coaching-ai/coachadmin/internal/model/gorm"
)

// Overview 控制台首页的总览数字
type Overview struct {
	Files               int64 `json:"files"`
	VideoLinks          int64 `json:"video_links"`
	Documents           int64 `json:"documents"`
	ChatUsers           int64 `json:"chat_users"`
	FlaggedNotProcessed int64 `json:"flagged_not_processed"`
	FlaggedProcessed    int64 `json:"flagged_processed"`
	FlaggedRejected     int64 `json:"flagged_rejected"`
}

// GetOverview 汇总各资源数量
func GetOverview(ctx context.Context) (*Overview, error) {
	overview := &Overview{}

	var err error
	if overview.Files, err = dao.File.Count(ctx); err != nil {
		return nil, errors.Newf(errors.ErrDatabaseQuery, "failed to count files: %v", err)
	}
	if overview.VideoLinks, err = dao.VideoLink.Count(ctx); err != nil {
		return nil, errors.Newf(errors.ErrDatabaseQuery, "failed to count video links: %v", err)
	}
	if overview.Documents, err = dao.RagDocument.Count(ctx); err != nil {
		return nil, errors.Newf(errors.ErrDatabaseQuery, "failed to count documents: %v", err)
	}
	if overview.ChatUsers, err = dao.Chat.CountDistinctUsers(ctx); err != nil {
		return nil, errors.Newf(errors.ErrDatabaseQuery, "failed to count chat users: %v", err)
	}

	counts, err := dao.FlaggedAnswer.CountByStatus(ctx)
	if err != nil {
		return nil, errors.Newf(errors.ErrDatabaseQuery, "failed to count flagged answers: %v", err)
	}
	overview.FlaggedNotProcessed = counts[gormModel.FlaggedStatusNotProcessed]
	overview.FlaggedProcessed = counts[gormModel.FlaggedStatusProcessed]
	overview.FlaggedRejected = counts[gormModel.FlaggedStatusRejected]

	return overview, nil
}
