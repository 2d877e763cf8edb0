package admin

import (
	"context"

	v1 "github.com/coaching-ai/coachadmin/api/admin/v1"
	"github.com/coaching-ai/coachadmin/internal/logic/auth"
	"github.com/coaching-ai/coachadmin/internal/logic/ingest"
)

func (c *ControllerV1) FileUpload(ctx context.Context, req *v1.FileUploadReq) (res *v1.FileUploadRes, err error) {
	file, err := ingest.UploadFile(ctx, auth.OperatorID(ctx), req.File)
	if err != nil {
		return nil, err
	}
	return &v1.FileUploadRes{File: file}, nil
}
