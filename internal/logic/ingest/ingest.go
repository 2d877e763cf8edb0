package ingest

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/coaching-ai/coachadmin/core/errors"
	"github.com/coaching-ai/coachadmin/core/file_store"
	"github.com/coaching-ai/coachadmin/core/worker"
	"github.com/coaching-ai/coachadmin/internal/dao"
	gormModel "github.com/coaching-ai/coachadmin/internal/model/gorm"
	"github.com/gogf/gf/v2/frame/g"
	"github.com/gogf/gf/v2/net/ghttp"
	"github.com/google/uuid"
)

// 上传限制与控制台保持一致
const maxUploadSize = 10 << 20 // 10MB

var allowedExtensions = map[string]bool{
	"pdf":  true,
	"doc":  true,
	"docx": true,
	"txt":  true,
}

// AllowedExtension 判断扩展名是否允许上传
func AllowedExtension(ext string) bool {
	return allowedExtensions[strings.ToLower(ext)]
}

// BuildObjectKey 为上传文件生成唯一的存储对象名
func BuildObjectKey(fileName string) string {
	ext := strings.TrimPrefix(filepath.Ext(fileName), ".")
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:12]
	return fmt.Sprintf("%d-%s.%s", time.Now().UnixMilli(), suffix, strings.ToLower(ext))
}

// UploadFile 接收上传文件：写入对象存储、落文件元数据、投递解析任务给 worker。
// worker 投递失败时文件标记为 failed，行仍保留，操作员可在列表里看到。
func UploadFile(ctx context.Context, operatorID string, upload *ghttp.UploadFile) (*gormModel.File, error) {
	if upload == nil {
		return nil, errors.New(errors.ErrInvalidParameter, "no file uploaded")
	}
	if upload.Size > maxUploadSize {
		return nil, errors.Newf(errors.ErrFileSizeExceeded, "file %s exceeds the 10MB limit", upload.Filename)
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(upload.Filename), "."))
	if !AllowedExtension(ext) {
		return nil, errors.Newf(errors.ErrFileTypeInvalid, "unsupported file type: %s", ext)
	}

	src, err := upload.Open()
	if err != nil {
		return nil, errors.Newf(errors.ErrFileUploadFailed, "failed to open uploaded file: %v", err)
	}
	defer src.Close()

	objectKey := BuildObjectKey(upload.Filename)

	var publicURL string
	if file_store.GetStorageType() == file_store.StorageTypeMinio {
		publicURL, err = file_store.SaveFileToMinio(ctx, objectKey, src, upload.Size)
	} else {
		publicURL, err = file_store.SaveFileToLocal(ctx, objectKey, src)
	}
	if err != nil {
		g.Log().Errorf(ctx, "failed to store uploaded file %s: %v", upload.Filename, err)
		return nil, err
	}

	file := &gormModel.File{
		Name:         upload.Filename,
		OriginalName: upload.Filename,
		StoragePath:  objectKey,
		FileType:     ext,
		FileSize:     upload.Size,
		PublicURL:    publicURL,
		Status:       gormModel.IngestStatusProcessing,
	}
	if err = dao.File.Create(ctx, file); err != nil {
		// 元数据没落库，把对象也清掉
		if file_store.GetStorageType() == file_store.StorageTypeMinio {
			_ = file_store.DeleteObject(ctx, objectKey)
		} else {
			_ = file_store.DeleteLocalFile(ctx, publicURL)
		}
		return nil, errors.Newf(errors.ErrDatabaseInsert, "failed to save file metadata: %v", err)
	}

	// 投递解析任务
	err = worker.GetClient().ProcessFile(ctx, worker.ProcessFileReq{
		FileID:          file.ID,
		FileName:        file.Name,
		FilePath:        file.PublicURL,
		FileType:        file.FileType,
		FileStoragePath: file.StoragePath,
		UserID:          operatorID,
	})
	if err != nil {
		g.Log().Errorf(ctx, "failed to dispatch file %s to worker: %v", file.ID, err)
		if updErr := dao.File.UpdateStatus(ctx, file.ID, gormModel.IngestStatusFailed); updErr == nil {
			file.Status = gormModel.IngestStatusFailed
		}
		return file, nil
	}

	g.Log().Infof(ctx, "file %s uploaded and dispatched for processing, key=%s", file.ID, objectKey)
	return file, nil
}

// DeleteFile 删除上传文件：解析出的分片、元数据行和存储对象一并清理
func DeleteFile(ctx context.Context, id string) error {
	file, err := dao.File.GetByID(ctx, id)
	if err != nil {
		return errors.Newf(errors.ErrDatabaseQuery, "failed to load file %s: %v", id, err)
	}
	if file == nil {
		return errors.Newf(errors.ErrNotFound, "file %s not found", id)
	}

	if err = dao.RagDocument.DeleteByStoragePath(ctx, file.StoragePath); err != nil {
		return errors.Newf(errors.ErrDatabaseDelete, "failed to delete document chunks of file %s: %v", id, err)
	}

	if err = dao.File.Delete(ctx, id); err != nil {
		return errors.Newf(errors.ErrDatabaseDelete, "failed to delete file %s: %v", id, err)
	}

	// 对象清理失败不影响删除结果，数据库已经是权威状态
	if file_store.GetStorageType() == file_store.StorageTypeMinio {
		if err := file_store.DeleteObject(ctx, file.StoragePath); err != nil {
			g.Log().Errorf(ctx, "failed to delete object %s: %v", file.StoragePath, err)
		}
	} else {
		if err := file_store.DeleteLocalFile(ctx, file.PublicURL); err != nil {
			g.Log().Errorf(ctx, "failed to delete local file %s: %v", file.PublicURL, err)
		}
	}
	return nil
}

// AddVideoLink 登记视频链接并投递字幕抓取任务
func AddVideoLink(ctx context.Context, operatorID, url string) (*gormModel.VideoLink, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, errors.New(errors.ErrInvalidParameter, "video url is empty")
	}
	if !IsYouTubeURL(url) {
		return nil, errors.Newf(errors.ErrVideoLinkInvalid, "not a valid YouTube url: %s", url)
	}

	link := &gormModel.VideoLink{
		URL:    url,
		Status: gormModel.IngestStatusPending,
	}
	if err := dao.VideoLink.Create(ctx, link); err != nil {
		return nil, errors.Newf(errors.ErrDatabaseInsert, "failed to save video link: %v", err)
	}

	err := worker.GetClient().ProcessVideoLink(ctx, worker.ProcessVideoLinkReq{
		VideoLinkID: link.ID,
		VideoURL:    link.URL,
		UserID:      operatorID,
	})
	if err != nil {
		g.Log().Errorf(ctx, "failed to dispatch video link %s to worker: %v", link.ID, err)
		if updErr := dao.VideoLink.UpdateStatus(ctx, link.ID, gormModel.IngestStatusFailed); updErr == nil {
			link.Status = gormModel.IngestStatusFailed
		}
		return link, nil
	}

	if err = dao.VideoLink.UpdateStatus(ctx, link.ID, gormModel.IngestStatusProcessing); err == nil {
		link.Status = gormModel.IngestStatusProcessing
	}

	g.Log().Infof(ctx, "video link %s registered and dispatched for processing", link.ID)
	return link, nil
}

// DeleteVideoLink 删除视频链接记录
func DeleteVideoLink(ctx context.Context, id string) error {
	link, err := dao.VideoLink.GetByID(ctx, id)
	if err != nil {
		return errors.Newf(errors.ErrDatabaseQuery, "failed to load video link %s: %v", id, err)
	}
	if link == nil {
		return errors.Newf(errors.ErrNotFound, "video link %s not found", id)
	}

	if err = dao.VideoLink.Delete(ctx, id); err != nil {
		return errors.Newf(errors.ErrDatabaseDelete, "failed to delete video link %s: %v", id, err)
	}
	return nil
}
