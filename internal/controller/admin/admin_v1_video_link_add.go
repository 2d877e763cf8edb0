package admin

import (
	"context"

	v1 "github.com/coaching-ai/coachadmin/api/admin/v1"
	"github.com/coaching-ai/coachadmin/internal/logic/auth"
	"github.com/coaching-ai/coachadmin/internal/logic/ingest"
)

func (c *ControllerV1) VideoLinkAdd(ctx context.Context, req *v1.VideoLinkAddReq) (res *v1.VideoLinkAddRes, err error) {
	link, err := ingest.AddVideoLink(ctx, auth.OperatorID(ctx), req.Url)
	if err != nil {
		return nil, err
	}
	return &v1.VideoLinkAddRes{VideoLink: link}, nil
}
