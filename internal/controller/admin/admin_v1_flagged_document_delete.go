package admin

import (
	"context"

	v1 "github.com/coaching-ai/coachadmin/api/admin/v1"
	"github.com/coaching-ai/coachadmin/internal/logic/flagged"
)

func (c *ControllerV1) FlaggedDocumentDelete(ctx context.Context, req *v1.FlaggedDocumentDeleteReq) (res *v1.FlaggedDocumentDeleteRes, err error) {
	if err = flagged.RemoveDocument(ctx, req.Id, req.DocId); err != nil {
		return nil, err
	}
	return &v1.FlaggedDocumentDeleteRes{}, nil
}
