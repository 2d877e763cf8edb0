package admin

import (
	"context"

	v1 "github.com/coaching-ai/coachadmin/api/admin/v1"
	"github.com/coaching-ai/coachadmin/core/errors"
	"github.com/coaching-ai/coachadmin/internal/dao"
)

func (c *ControllerV1) FileList(ctx context.Context, req *v1.FileListReq) (res *v1.FileListRes, err error) {
	files, err := dao.File.List(ctx)
	if err != nil {
		return nil, errors.Newf(errors.ErrDatabaseQuery, "failed to list files: %v", err)
	}
	return &v1.FileListRes{List: files}, nil
}
