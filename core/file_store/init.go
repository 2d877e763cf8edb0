package file_store

import (
	"github.com/gogf/gf/v2/os/gctx"

	"github.com/gogf/gf/v2/frame/g"
)

// InitStorage 初始化存储系统
func InitStorage() {
	ctx := gctx.New()

	// 获取存储类型配置，默认为 local
	storageTypeStr := g.Cfg().MustGet(ctx, "storage.type", "local").String()

	switch storageTypeStr {
	case "minio":
		// 检查 minio 配置是否存在
		minioEndpoint := g.Cfg().MustGet(ctx, "minio.endpoint", "").String()
		if minioEndpoint == "" {
			// 如果没有配置 minio，使用本地存储
			SetStorageType(StorageTypeLocal)
			g.Log().Infof(ctx, "MinIO not configured, using local storage")
			InitUploadDirectories()
			return
		}

		SetStorageType(StorageTypeMinio)
		minioAccessKey := g.Cfg().MustGet(ctx, "minio.accessKey").String()
		minioSecretKey := g.Cfg().MustGet(ctx, "minio.secretKey").String()
		minioBucketName := g.Cfg().MustGet(ctx, "minio.bucketName", "coaching-files").String()
		minioSsl := g.Cfg().MustGet(ctx, "minio.ssl", false).Bool()
		minioPublicBaseURL := g.Cfg().MustGet(ctx, "minio.publicBaseURL", "").String()

		err := InitMinio(ctx, minioEndpoint, minioAccessKey, minioSecretKey, minioBucketName, minioPublicBaseURL, minioSsl)
		if err != nil {
			g.Log().Fatalf(ctx, "failed to initialize MinIO: %v", err)
			return
		}

		g.Log().Infof(ctx, "Using MinIO storage as configured")
		InitUploadDirectories()
		return
	default:
		SetStorageType(StorageTypeLocal)
		g.Log().Infof(ctx, "Using local storage as configured")
		InitUploadDirectories()
		return
	}
}
