package file_store

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/coaching-ai/coachadmin/core/errors"
	"github.com/gogf/gf/v2/frame/g"
)

// SaveFileToLocal 保存文件到本地存储
func SaveFileToLocal(ctx context.Context, objectKey string, file io.Reader) (finalPath string, err error) {
	finalPath = filepath.Join("upload", "coaching_files", filepath.FromSlash(objectKey))

	// 确保目标目录存在
	if err := os.MkdirAll(filepath.Dir(finalPath), 0755); err != nil {
		g.Log().Errorf(ctx, "Failed to create directory %s: %v", filepath.Dir(finalPath), err)
		return "", errors.Newf(errors.ErrFileUploadFailed, "failed to create directory: %v", err)
	}

	destFile, err := os.Create(finalPath)
	if err != nil {
		g.Log().Errorf(ctx, "Failed to create file %s: %v", finalPath, err)
		return "", errors.Newf(errors.ErrFileUploadFailed, "failed to create file %s: %v", finalPath, err)
	}
	defer destFile.Close()

	_, err = io.Copy(destFile, file)
	if err != nil {
		g.Log().Errorf(ctx, "Failed to write file %s: %v", finalPath, err)
		// 删除创建失败的文件
		_ = os.Remove(finalPath)
		return "", errors.Newf(errors.ErrFileUploadFailed, "failed to write file %s: %v", finalPath, err)
	}

	g.Log().Infof(ctx, "File saved to local storage: %s", finalPath)
	return finalPath, nil
}

// DeleteLocalFile 删除本地存储的文件
func DeleteLocalFile(ctx context.Context, path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return errors.Newf(errors.ErrFileDeleteFailed, "failed to delete local file %s: %v", path, err)
	}
	return nil
}
