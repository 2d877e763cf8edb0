package v1

import (
	"github.com/coaching-ai/coachadmin/internal/model/gorm"
	"github.com/gogf/gf/v2/frame/g"
)

type BotSettingsGetReq struct {
	g.Meta `path:"/v1/settings/bot" method:"get" tags:"settings" summary:"Get bot settings"`
}

type BotSettingsGetRes struct {
	*gorm.BotSettings `dc:"bot settings"`
}

type BotSettingsUpdateReq struct {
	g.Meta       `path:"/v1/settings/bot" method:"put" tags:"settings" summary:"Update bot settings"`
	Mode         string `v:"required|in:bot,direct" dc:"response mode"`
	AutoResponse bool   `dc:"auto response enabled"`
}

type BotSettingsUpdateRes struct {
	*gorm.BotSettings `dc:"bot settings after update"`
}
