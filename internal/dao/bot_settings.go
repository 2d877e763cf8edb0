package dao

import (
	"context"

	gormModel "github.com/coaching-ai/coachadmin/internal/model/gorm"
	"github.com/gogf/gf/v2/frame/g"
	"gorm.io/gorm"
)

// 单行表固定主键
const botSettingsRowID = 1

// BotSettingsDAO 机器人设置数据访问对象
type BotSettingsDAO struct{}

var BotSettings = &BotSettingsDAO{}

// Get 获取机器人设置，首次访问时落一行默认配置
func (d *BotSettingsDAO) Get(ctx context.Context) (*gormModel.BotSettings, error) {
	var settings gormModel.BotSettings
	err := GetDB().WithContext(ctx).Where("id = ?", botSettingsRowID).First(&settings).Error
	if err == gorm.ErrRecordNotFound {
		settings = gormModel.BotSettings{
			ID:           botSettingsRowID,
			Mode:         "bot",
			AutoResponse: true,
		}
		if err := GetDB().WithContext(ctx).Create(&settings).Error; err != nil {
			g.Log().Errorf(ctx, "初始化机器人设置失败: err=%v", err)
			return nil, err
		}
		return &settings, nil
	}
	if err != nil {
		g.Log().Errorf(ctx, "查询机器人设置失败: err=%v", err)
		return nil, err
	}
	return &settings, nil
}

// Update 更新机器人设置
func (d *BotSettingsDAO) Update(ctx context.Context, mode string, autoResponse bool) (*gormModel.BotSettings, error) {
	settings, err := d.Get(ctx)
	if err != nil {
		return nil, err
	}

	settings.Mode = mode
	settings.AutoResponse = autoResponse
	if err := GetDB().WithContext(ctx).Save(settings).Error; err != nil {
		g.Log().Errorf(ctx, "更新机器人设置失败: err=%v", err)
		return nil, err
	}
	return settings, nil
}
