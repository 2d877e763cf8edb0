package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/coaching-ai/coachadmin/core/errors"
	"github.com/coaching-ai/coachadmin/internal/dao"
)

// 支持导出的数据集
const (
	TypeFiles      = "files"
	TypeVideoLinks = "videolinks"
	TypeChats      = "chats"
	TypeFlagged    = "flagged"
)

const timeLayout = "2006-01-02 15:04:05"

// FileName 生成带日期的导出文件名，例如 flagged-2026-08-31.csv
func FileName(exportType string) string {
	return fmt.Sprintf("%s-%s.csv", exportType, time.Now().Format("2006-01-02"))
}

// WriteCSV 把指定数据集以CSV格式写入w
func WriteCSV(ctx context.Context, exportType string, w io.Writer) error {
	writer := csv.NewWriter(w)

	var err error
	switch exportType {
	case TypeFiles:
		err = writeFiles(ctx, writer)
	case TypeVideoLinks:
		err = writeVideoLinks(ctx, writer)
	case TypeChats:
		err = writeChats(ctx, writer)
	case TypeFlagged:
		err = writeFlagged(ctx, writer)
	default:
		return errors.Newf(errors.ErrExportTypeInvalid, "unknown export type: %s", exportType)
	}
	if err != nil {
		return err
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.Newf(errors.ErrExportFailed, "failed to write csv: %v", err)
	}
	return nil
}

func writeFiles(ctx context.Context, w *csv.Writer) error {
	files, err := dao.File.List(ctx)
	if err != nil {
		return errors.Newf(errors.ErrDatabaseQuery, "failed to load files: %v", err)
	}

	if err := w.Write([]string{"id", "name", "file_type", "file_size", "status", "public_url", "created_at"}); err != nil {
		return errors.Newf(errors.ErrExportFailed, "failed to write csv header: %v", err)
	}
	for _, f := range files {
		createdAt := ""
		if f.CreatedAt != nil {
			createdAt = f.CreatedAt.Format(timeLayout)
		}
		row := []string{
			f.ID, f.Name, f.FileType,
			strconv.FormatInt(f.FileSize, 10),
			f.Status, f.PublicURL, createdAt,
		}
		if err := w.Write(row); err != nil {
			return errors.Newf(errors.ErrExportFailed, "failed to write csv row: %v", err)
		}
	}
	return nil
}

func writeVideoLinks(ctx context.Context, w *csv.Writer) error {
	links, err := dao.VideoLink.List(ctx)
	if err != nil {
		return errors.Newf(errors.ErrDatabaseQuery, "failed to load video links: %v", err)
	}

	if err := w.Write([]string{"id", "url", "status", "created_at"}); err != nil {
		return errors.Newf(errors.ErrExportFailed, "failed to write csv header: %v", err)
	}
	for _, l := range links {
		createdAt := ""
		if l.CreatedAt != nil {
			createdAt = l.CreatedAt.Format(timeLayout)
		}
		if err := w.Write([]string{l.ID, l.URL, l.Status, createdAt}); err != nil {
			return errors.Newf(errors.ErrExportFailed, "failed to write csv row: %v", err)
		}
	}
	return nil
}

func writeChats(ctx context.Context, w *csv.Writer) error {
	messages, err := dao.Chat.ListAll(ctx)
	if err != nil {
		return errors.Newf(errors.ErrDatabaseQuery, "failed to load chat history: %v", err)
	}

	if err := w.Write([]string{"id", "user_id", "chat_id", "username", "fullname", "role", "message", "created_at"}); err != nil {
		return errors.Newf(errors.ErrExportFailed, "failed to write csv header: %v", err)
	}
	for _, m := range messages {
		row := []string{
			strconv.FormatInt(m.ID, 10),
			m.UserID, m.ChatID, m.Username, m.Fullname, m.Role, m.Message,
			m.CreatedAt.Format(timeLayout),
		}
		if err := w.Write(row); err != nil {
			return errors.Newf(errors.ErrExportFailed, "failed to write csv row: %v", err)
		}
	}
	return nil
}

func writeFlagged(ctx context.Context, w *csv.Writer) error {
	answers, err := dao.FlaggedAnswer.ListAll(ctx)
	if err != nil {
		return errors.Newf(errors.ErrDatabaseQuery, "failed to load flagged answers: %v", err)
	}

	if err := w.Write([]string{"id", "question", "answer", "status", "document_count", "created_at"}); err != nil {
		return errors.Newf(errors.ErrExportFailed, "failed to write csv header: %v", err)
	}
	for _, a := range answers {
		row := []string{
			strconv.FormatInt(a.ID, 10),
			a.Question, a.Answer, a.Status,
			strconv.Itoa(len(a.DocumentIds)),
			a.CreatedAt.Format(timeLayout),
		}
		if err := w.Write(row); err != nil {
			return errors.Newf(errors.ErrExportFailed, "failed to write csv row: %v", err)
		}
	}
	return nil
}
