package admin

import (
	"context"

	v1 "github.com/coaching-ai/coachadmin/api/admin/v1"
	"github.com/coaching-ai/coachadmin/internal/logic/settings"
)

func (c *ControllerV1) BotSettingsGet(ctx context.Context, req *v1.BotSettingsGetReq) (res *v1.BotSettingsGetRes, err error) {
	botSettings, err := settings.GetBotSettings(ctx)
	if err != nil {
		return nil, err
	}
	return &v1.BotSettingsGetRes{BotSettings: botSettings}, nil
}

func (c *ControllerV1) BotSettingsUpdate(ctx context.Context, req *v1.BotSettingsUpdateReq) (res *v1.BotSettingsUpdateRes, err error) {
	botSettings, err := settings.UpdateBotSettings(ctx, req.Mode, req.AutoResponse)
	if err != nil {
		return nil, err
	}
	return &v1.BotSettingsUpdateRes{BotSettings: botSettings}, nil
}
