package file_store

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/coaching-ai/coachadmin/core/errors"
	"github.com/gogf/gf/v2/frame/g"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type MinioConfig struct {
	Client        *minio.Client
	BucketName    string
	PublicBaseURL string
}

var minioConfig MinioConfig

// InitMinio 初始化 MinIO 存储
func InitMinio(ctx context.Context, endpoint, accessKey, secretKey, bucketName, publicBaseURL string, ssl bool) error {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: ssl,
	})

	if err != nil {
		return errors.Newf(errors.ErrInternalError, "failed to create MinIO client: %v", err)
	}

	if publicBaseURL == "" {
		scheme := "http"
		if ssl {
			scheme = "https"
		}
		publicBaseURL = fmt.Sprintf("%s://%s/%s", scheme, endpoint, bucketName)
	}

	// 设置全局配置
	minioConfig = MinioConfig{
		Client:        client,
		BucketName:    bucketName,
		PublicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}

	// 创建 bucket，如果已存在则跳过
	exists, err := client.BucketExists(ctx, bucketName)
	if err != nil {
		return errors.Newf(errors.ErrInternalError, "failed to check if bucket exists: %v", err)
	}

	if exists {
		g.Log().Printf(ctx, "Bucket '%s' already exists, skipping creation.", bucketName)
		return nil
	}

	err = client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: ""})
	if err != nil {
		return errors.Newf(errors.ErrInternalError, "failed to create bucket: %v", err)
	}

	g.Log().Printf(ctx, "Created bucket '%s'", bucketName)
	return nil
}

// GetMinioConfig 获取MinIO配置
func GetMinioConfig() *MinioConfig {
	return &minioConfig
}

// SaveFileToMinio 保存文件到 MinIO 存储，返回对象可公开访问的URL
func SaveFileToMinio(ctx context.Context, objectKey string, file io.ReadSeeker, fileSize int64) (publicURL string, err error) {
	// 检测内容类型
	buffer := make([]byte, 512)
	_, err = file.Read(buffer)
	if err != nil && err != io.EOF {
		g.Log().Errorf(ctx, "Failed to read file header: %v", err)
		return "", errors.Newf(errors.ErrFileUploadFailed, "failed to read file header: %v", err)
	}

	// 重置文件指针到开头
	_, err = file.Seek(0, 0)
	if err != nil {
		g.Log().Errorf(ctx, "Failed to seek file to beginning: %v", err)
		return "", errors.Newf(errors.ErrFileUploadFailed, "failed to seek file to beginning: %v", err)
	}

	contentType := http.DetectContentType(buffer)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = minioConfig.Client.PutObject(ctx, minioConfig.BucketName, objectKey, file, fileSize,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		g.Log().Errorf(ctx, "Failed to upload file to MinIO: %v", err)
		return "", errors.Newf(errors.ErrFileUploadFailed, "failed to upload to MinIO: %v", err)
	}

	publicURL = minioConfig.PublicBaseURL + "/" + objectKey
	g.Log().Infof(ctx, "File uploaded to MinIO: bucket=%s, key=%s", minioConfig.BucketName, objectKey)
	return publicURL, nil
}

// DeleteObject 删除指定的对象
func DeleteObject(ctx context.Context, objectKey string) error {
	err := minioConfig.Client.RemoveObject(ctx, minioConfig.BucketName, objectKey, minio.RemoveObjectOptions{})
	if err != nil {
		return errors.Newf(errors.ErrFileDeleteFailed, "failed to delete object %s: %v", objectKey, err)
	}
	g.Log().Infof(ctx, "Deleted object '%s' from bucket '%s'", objectKey, minioConfig.BucketName)
	return nil
}
