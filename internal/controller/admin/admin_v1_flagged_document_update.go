package admin

import (
	"context"

	v1 "github.com/coaching-ai/coachadmin/api/admin/v1"
	"github.com/coaching-ai/coachadmin/internal/logic/flagged"
)

func (c *ControllerV1) FlaggedDocumentUpdate(ctx context.Context, req *v1.FlaggedDocumentUpdateReq) (res *v1.FlaggedDocumentUpdateRes, err error) {
	if err = flagged.UpdateDocumentContent(ctx, req.Id, req.DocId, req.Content); err != nil {
		return nil, err
	}
	return &v1.FlaggedDocumentUpdateRes{}, nil
}
