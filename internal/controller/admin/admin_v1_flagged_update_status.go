package admin

import (
	"context"

	v1 "github.com/coaching-ai/coachadmin/api/admin/v1"
	"github.com/coaching-ai/coachadmin/internal/logic/flagged"
)

func (c *ControllerV1) FlaggedUpdateStatus(ctx context.Context, req *v1.FlaggedUpdateStatusReq) (res *v1.FlaggedUpdateStatusRes, err error) {
	if err = flagged.UpdateStatus(ctx, req.Id, req.Status); err != nil {
		return nil, err
	}
	return &v1.FlaggedUpdateStatusRes{}, nil
}
