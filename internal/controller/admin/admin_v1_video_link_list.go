package admin

import (
	"context"

	v1 "github.com/coaching-ai/coachadmin/api/admin/v1"
	"github.com/coaching-ai/coachadmin/core/errors"
	"github.com/coaching-ai/coachadmin/internal/dao"
)

func (c *ControllerV1) VideoLinkList(ctx context.Context, req *v1.VideoLinkListReq) (res *v1.VideoLinkListRes, err error) {
	links, err := dao.VideoLink.List(ctx)
	if err != nil {
		return nil, errors.Newf(errors.ErrDatabaseQuery, "failed to list video links: %v", err)
	}
	return &v1.VideoLinkListRes{List: links}, nil
}
