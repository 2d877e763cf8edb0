package admin

import (
	"context"

	v1 "github.com/coaching-ai/coachadmin/api/admin/v1"
	"github.com/coaching-ai/coachadmin/internal/logic/ingest"
)

func (c *ControllerV1) VideoLinkDelete(ctx context.Context, req *v1.VideoLinkDeleteReq) (res *v1.VideoLinkDeleteRes, err error) {
	if err = ingest.DeleteVideoLink(ctx, req.Id); err != nil {
		return nil, err
	}
	return &v1.VideoLinkDeleteRes{}, nil
}
