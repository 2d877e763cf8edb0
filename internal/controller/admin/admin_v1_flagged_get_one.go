package admin

import (
	"context"

	v1 "github.com/coaching-ai/coachadmin/api/admin/v1"
	"github.com/coaching-ai/coachadmin/internal/logic/flagged"
)

func (c *ControllerV1) FlaggedGetOne(ctx context.Context, req *v1.FlaggedGetOneReq) (res *v1.FlaggedGetOneRes, err error) {
	aggregate, err := flagged.GetAnswerWithDocuments(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	return &v1.FlaggedGetOneRes{
		FlaggedAnswer: aggregate.Answer,
		Documents:     aggregate.Documents,
	}, nil
}
