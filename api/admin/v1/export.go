package v1

import (
	"github.com/gogf/gf/v2/frame/g"
)

type ExportReq struct {
	g.Meta `path:"/v1/export" method:"get" tags:"export" summary:"Export a dataset as CSV"`
	Type   string `v:"required|in:files,videolinks,chats,flagged" dc:"dataset to export"`
}

// CSV 直接写响应流，不走统一封装
type ExportRes struct {
	g.Meta `mime:"text/csv"`
}
