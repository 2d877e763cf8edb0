package flagged

import (
	"context"
	"strings"
	"time"

	"github.com/coaching-ai/coachadmin/core/common"
	"github.com/coaching-ai/coachadmin/core/errors"
	"github.com/coaching-ai/coachadmin/core/worker"
	"github.com/coaching-ai/coachadmin/internal/dao"
	gormModel "github.com/coaching-ai/coachadmin/internal/model/gorm"
	"github.com/gogf/gf/v2/frame/g"
	"github.com/gogf/gf/v2/os/gctx"
)

// AnswerWithDocuments 标记回答及其关联文档的聚合视图
type AnswerWithDocuments struct {
	Answer    *gormModel.FlaggedAnswer
	Documents []gormModel.RagDocument
}

// GetAnswerWithDocuments 聚合加载：一次返回标记回答和按引用顺序解析好的文档列表
func GetAnswerWithDocuments(ctx context.Context, id int64) (*AnswerWithDocuments, error) {
	answer, err := dao.FlaggedAnswer.GetByID(ctx, id)
	if err != nil {
		return nil, errors.Newf(errors.ErrDatabaseQuery, "failed to load flagged answer %d: %v", id, err)
	}
	if answer == nil {
		return nil, errors.Newf(errors.ErrFlaggedNotFound, "flagged answer %d not found", id)
	}

	docs, err := dao.RagDocument.GetByIDs(ctx, answer.DocumentIds)
	if err != nil {
		return nil, errors.Newf(errors.ErrDatabaseQuery, "failed to load documents of flagged answer %d: %v", id, err)
	}

	return &AnswerWithDocuments{
		Answer:    answer,
		Documents: orderByReference(answer.DocumentIds, docs),
	}, nil
}

// orderByReference 按 document_ids 中的引用顺序重排文档。
// 引用了但查不到的ID直接跳过，悬挂引用不应传染到上层。
func orderByReference(ids gormModel.Int64List, docs []gormModel.RagDocument) []gormModel.RagDocument {
	byID := make(map[int64]gormModel.RagDocument, len(docs))
	for _, doc := range docs {
		byID[doc.ID] = doc
	}

	ordered := make([]gormModel.RagDocument, 0, len(ids))
	for _, id := range ids {
		if doc, ok := byID[id]; ok {
			ordered = append(ordered, doc)
		}
	}
	return ordered
}

// IsTerminalStatus 判断状态是否为终态
func IsTerminalStatus(status string) bool {
	return status == gormModel.FlaggedStatusProcessed || status == gormModel.FlaggedStatusRejected
}

// UpdateStatus 状态流转：not_processed -> processed|rejected。
// 条件更新，当前状态已被其他操作员变更时返回冲突而不是静默覆盖。
func UpdateStatus(ctx context.Context, id int64, status string) error {
	if !IsTerminalStatus(status) {
		return errors.Newf(errors.ErrInvalidParameter, "invalid target status: %s", status)
	}

	affected, err := dao.FlaggedAnswer.UpdateStatusIfNotProcessed(ctx, id, status)
	if err != nil {
		return errors.Newf(errors.ErrDatabaseUpdate, "failed to update status of flagged answer %d: %v", id, err)
	}
	if affected > 0 {
		g.Log().Infof(ctx, "flagged answer %d marked as %s", id, status)
		return nil
	}

	// 没有命中行：要么不存在，要么状态已经不是 not_processed
	answer, err := dao.FlaggedAnswer.GetByID(ctx, id)
	if err != nil {
		return errors.Newf(errors.ErrDatabaseQuery, "failed to load flagged answer %d: %v", id, err)
	}
	if answer == nil {
		return errors.Newf(errors.ErrFlaggedNotFound, "flagged answer %d not found", id)
	}
	return errors.Newf(errors.ErrFlaggedStatusConflict,
		"flagged answer %d is already %s", id, answer.Status)
}

// AddDocument 向标记回答补充一条上下文文档。
// 文档插入与 document_ids 追加在同一事务内完成，两边引用不会出现只写一半的状态；
// 标记回答在事务内加行锁读取，并发追加不会相互覆盖引用列表。
// embedding 重算通知在事务提交后异步投递，结果不影响本操作的成败。
func AddDocument(ctx context.Context, operatorID string, answerID int64, content string) (*gormModel.RagDocument, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errors.New(errors.ErrDocumentEmpty, "document content is empty")
	}

	// 开始事务
	tx := dao.GetDB().Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	answer, err := dao.FlaggedAnswer.GetByIDForUpdateTx(ctx, tx, answerID)
	if err != nil {
		tx.Rollback()
		return nil, errors.Newf(errors.ErrDatabaseQuery, "failed to load flagged answer %d: %v", answerID, err)
	}
	if answer == nil {
		tx.Rollback()
		return nil, errors.Newf(errors.ErrFlaggedNotFound, "flagged answer %d not found", answerID)
	}
	if IsTerminalStatus(answer.Status) {
		tx.Rollback()
		return nil, errors.Newf(errors.ErrFlaggedTerminal,
			"flagged answer %d is already %s", answerID, answer.Status)
	}

	doc := &gormModel.RagDocument{
		Content:    content,
		FileType:   gormModel.FileTypeFlagged,
		ChunkIndex: len(answer.DocumentIds),
		UserID:     operatorID,
	}

	if err = dao.RagDocument.CreateTx(ctx, tx, doc); err != nil {
		tx.Rollback()
		return nil, errors.Newf(errors.ErrDatabaseInsert, "failed to create document: %v", err)
	}

	newIds := append(append(gormModel.Int64List{}, answer.DocumentIds...), doc.ID)
	if err = dao.FlaggedAnswer.UpdateDocumentIdsTx(ctx, tx, answerID, newIds); err != nil {
		tx.Rollback()
		return nil, errors.Newf(errors.ErrDatabaseUpdate,
			"failed to link document %d to flagged answer %d: %v", doc.ID, answerID, err)
	}

	if err = tx.Commit().Error; err != nil {
		return nil, errors.Newf(errors.ErrDatabaseUpdate, "failed to commit add document: %v", err)
	}

	g.Log().Infof(ctx, "document %d added to flagged answer %d, chunk_index=%d", doc.ID, answerID, doc.ChunkIndex)
	notifyEmbeddingAsync(doc.ID)
	return doc, nil
}

// UpdateDocumentContent 就地更新文档内容，之后异步触发 embedding 重算
func UpdateDocumentContent(ctx context.Context, answerID, docID int64, content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return errors.New(errors.ErrDocumentEmpty, "document content is empty")
	}

	answer, err := dao.FlaggedAnswer.GetByID(ctx, answerID)
	if err != nil {
		return errors.Newf(errors.ErrDatabaseQuery, "failed to load flagged answer %d: %v", answerID, err)
	}
	if answer == nil {
		return errors.Newf(errors.ErrFlaggedNotFound, "flagged answer %d not found", answerID)
	}
	if IsTerminalStatus(answer.Status) {
		return errors.Newf(errors.ErrFlaggedTerminal,
			"flagged answer %d is already %s", answerID, answer.Status)
	}
	if !answer.DocumentIds.Contains(docID) {
		return errors.Newf(errors.ErrDocumentNotLinked,
			"document %d is not linked to flagged answer %d", docID, answerID)
	}

	affected, err := dao.RagDocument.UpdateContent(ctx, docID, content)
	if err != nil {
		return errors.Newf(errors.ErrDatabaseUpdate, "failed to update document %d: %v", docID, err)
	}
	if affected == 0 {
		return errors.Newf(errors.ErrDocumentNotFound, "document %d not found", docID)
	}

	notifyEmbeddingAsync(docID)
	return nil
}

// RemoveDocument 从标记回答移除并删除文档。
// 先摘引用再删行，两步在同一事务内，失败时整体回滚。
// 标记回答在事务内加行锁读取，和并发的文档追加/移除串行化。
func RemoveDocument(ctx context.Context, answerID, docID int64) error {
	// 开始事务
	tx := dao.GetDB().Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	answer, err := dao.FlaggedAnswer.GetByIDForUpdateTx(ctx, tx, answerID)
	if err != nil {
		tx.Rollback()
		return errors.Newf(errors.ErrDatabaseQuery, "failed to load flagged answer %d: %v", answerID, err)
	}
	if answer == nil {
		tx.Rollback()
		return errors.Newf(errors.ErrFlaggedNotFound, "flagged answer %d not found", answerID)
	}
	if IsTerminalStatus(answer.Status) {
		tx.Rollback()
		return errors.Newf(errors.ErrFlaggedTerminal,
			"flagged answer %d is already %s", answerID, answer.Status)
	}
	if !answer.DocumentIds.Contains(docID) {
		tx.Rollback()
		return errors.Newf(errors.ErrDocumentNotLinked,
			"document %d is not linked to flagged answer %d", docID, answerID)
	}

	if err = dao.FlaggedAnswer.UpdateDocumentIdsTx(ctx, tx, answerID, answer.DocumentIds.Without(docID)); err != nil {
		tx.Rollback()
		return errors.Newf(errors.ErrDatabaseUpdate,
			"failed to unlink document %d from flagged answer %d: %v", docID, answerID, err)
	}

	if err = dao.RagDocument.DeleteTx(ctx, tx, docID); err != nil {
		tx.Rollback()
		return errors.Newf(errors.ErrDatabaseDelete, "failed to delete document %d: %v", docID, err)
	}

	if err = tx.Commit().Error; err != nil {
		return errors.Newf(errors.ErrDatabaseDelete, "failed to commit remove document: %v", err)
	}

	g.Log().Infof(ctx, "document %d removed from flagged answer %d", docID, answerID)
	return nil
}

// notifyEmbeddingAsync 异步通知 worker 重算指定文档的 embedding。
// 至多一次，不重试，失败只记日志，不反馈给操作员。
func notifyEmbeddingAsync(documentID int64) {
	ctxN := gctx.New()
	common.SafeGo(ctxN, "notify-update-embedding", func() {
		ctx, cancel := context.WithTimeout(ctxN, 15*time.Second)
		defer cancel()

		if err := worker.GetClient().UpdateEmbedding(ctx, documentID); err != nil {
			g.Log().Errorf(ctxN, "embedding refresh notify failed, document_id=%d, err=%v", documentID, err)
		}
	})
}
