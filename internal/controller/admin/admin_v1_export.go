package admin

import (
	"bytes"
	"context"
	"fmt"

	v1 "github.com/coaching-ai/coachadmin/api/admin/v1"
	"github.com/coaching-ai/coachadmin/internal/logic/export"
	"github.com/gogf/gf/v2/net/ghttp"
)

// Export 导出CSV。后台数据量级小，先整体落内存缓冲再发，
// 失败时不会给客户端吐出半截CSV，直接走统一错误封装。
func (c *ControllerV1) Export(ctx context.Context, req *v1.ExportReq) (res *v1.ExportRes, err error) {
	var buf bytes.Buffer
	if err = export.WriteCSV(ctx, req.Type, &buf); err != nil {
		return nil, err
	}

	r := ghttp.RequestFromCtx(ctx)
	r.Response.Header().Set("Content-Type", "text/csv; charset=utf-8")
	r.Response.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="%s"`, export.FileName(req.Type)))
	r.Response.Write(buf.Bytes())
	return &v1.ExportRes{}, nil
}
