package admin

import (
	"context"

	v1 "github.com/coaching-ai/coachadmin/api/admin/v1"
	"github.com/coaching-ai/coachadmin/internal/logic/ingest"
)

func (c *ControllerV1) FileDelete(ctx context.Context, req *v1.FileDeleteReq) (res *v1.FileDeleteRes, err error) {
	if err = ingest.DeleteFile(ctx, req.Id); err != nil {
		return nil, err
	}
	return &v1.FileDeleteRes{}, nil
}
