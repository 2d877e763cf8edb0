package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/gogf/gf/v2/frame/g"
)

// ValidateConfiguration validates all required configuration items
func ValidateConfiguration(ctx context.Context) error {
	var missingConfigs []string
	var warnings []string

	// 验证数据库配置
	dbHost := g.Cfg().MustGet(ctx, "database.default.host", "").String()
	dbPort := g.Cfg().MustGet(ctx, "database.default.port", "").String()
	dbUser := g.Cfg().MustGet(ctx, "database.default.user", "").String()
	dbName := g.Cfg().MustGet(ctx, "database.default.name", "").String()

	if dbHost == "" {
		missingConfigs = append(missingConfigs, "database.default.host")
	}
	if dbPort == "" {
		missingConfigs = append(missingConfigs, "database.default.port")
	}
	if dbUser == "" {
		missingConfigs = append(missingConfigs, "database.default.user")
	}
	if dbName == "" {
		missingConfigs = append(missingConfigs, "database.default.name")
	}

	// 验证 worker 配置
	workerBaseURL := g.Cfg().MustGet(ctx, "worker.baseURL", "").String()
	if workerBaseURL == "" {
		warnings = append(warnings, "worker.baseURL is not set, falling back to http://localhost:5000")
	}

	// 验证存储配置
	storageType := g.Cfg().MustGet(ctx, "storage.type", "local").String()
	if storageType == "minio" {
		minioEndpoint := g.Cfg().MustGet(ctx, "minio.endpoint", "").String()
		minioAccessKey := g.Cfg().MustGet(ctx, "minio.accessKey", "").String()
		minioSecretKey := g.Cfg().MustGet(ctx, "minio.secretKey", "").String()

		if minioEndpoint == "" {
			missingConfigs = append(missingConfigs, "minio.endpoint")
		}
		if minioAccessKey == "" {
			missingConfigs = append(missingConfigs, "minio.accessKey")
		}
		if minioSecretKey == "" {
			missingConfigs = append(missingConfigs, "minio.secretKey")
		}
	}

	// 输出警告信息
	if len(warnings) > 0 {
		g.Log().Warningf(ctx, "Configuration warnings:\n- %s", strings.Join(warnings, "\n- "))
	}

	// 检查是否有缺失的必需配置
	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configuration items:\n- %s\n\nPlease check your config.yaml file and ensure all required settings are properly configured", strings.Join(missingConfigs, "\n- "))
	}

	// 输出成功信息
	g.Log().Info(ctx, "✓ All required configuration items are present")

	return nil
}
