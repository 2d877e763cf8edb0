package settings

import (
	"context"

	"github.com/coaching-ai/coachadmin/core/errors"
	"github.com/coaching-ai/coachadmin/core/worker"
	"github.com/coaching-ai/coachadmin/internal/dao"
	gormModel "github.com/coaching-ai/coachadmin/internal/model/gorm"
	"github.com/gogf/gf/v2/frame/g"
)

// 应答模式
const (
	ModeBot    = "bot"    // 机器人自动应答
	ModeDirect = "direct" // 转人工
)

// GetBotSettings 获取机器人设置
func GetBotSettings(ctx context.Context) (*gormModel.BotSettings, error) {
	settings, err := dao.BotSettings.Get(ctx)
	if err != nil {
		return nil, errors.Newf(errors.ErrDatabaseQuery, "failed to load bot settings: %v", err)
	}
	return settings, nil
}

// UpdateBotSettings 更新机器人设置并同步给 worker。
// worker 同步失败只记日志，设置以数据库为准。
func UpdateBotSettings(ctx context.Context, mode string, autoResponse bool) (*gormModel.BotSettings, error) {
	if mode != ModeBot && mode != ModeDirect {
		return nil, errors.Newf(errors.ErrInvalidParameter, "invalid bot mode: %s", mode)
	}

	settings, err := dao.BotSettings.Update(ctx, mode, autoResponse)
	if err != nil {
		return nil, errors.Newf(errors.ErrDatabaseUpdate, "failed to update bot settings: %v", err)
	}

	if err := worker.GetClient().UpdateBotSettings(ctx, mode == ModeBot); err != nil {
		g.Log().Errorf(ctx, "failed to sync bot settings to worker: %v", err)
	}
	return settings, nil
}
