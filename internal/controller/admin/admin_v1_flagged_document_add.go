package admin

import (
	"context"

	v1 "github.com/coaching-ai/coachadmin/api/admin/v1"
	"github.com/coaching-ai/coachadmin/internal/logic/auth"
	"github.com/coaching-ai/coachadmin/internal/logic/flagged"
)

func (c *ControllerV1) FlaggedDocumentAdd(ctx context.Context, req *v1.FlaggedDocumentAddReq) (res *v1.FlaggedDocumentAddRes, err error) {
	doc, err := flagged.AddDocument(ctx, auth.OperatorID(ctx), req.Id, req.Content)
	if err != nil {
		return nil, err
	}
	return &v1.FlaggedDocumentAddRes{RagDocument: doc}, nil
}
