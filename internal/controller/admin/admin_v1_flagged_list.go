package admin

import (
	"context"

	v1 "github.com/coaching-ai/coachadmin/api/admin/v1"
	"github.com/coaching-ai/coachadmin/core/errors"
	"github.com/coaching-ai/coachadmin/internal/dao"
	gormModel "github.com/coaching-ai/coachadmin/internal/model/gorm"
)

func (c *ControllerV1) FlaggedList(ctx context.Context, req *v1.FlaggedListReq) (res *v1.FlaggedListRes, err error) {
	status := ""
	if req.Status != nil {
		status = *req.Status
	}

	answers, total, err := dao.FlaggedAnswer.List(ctx, status, req.Page, req.Size)
	if err != nil {
		return nil, errors.Newf(errors.ErrDatabaseQuery, "failed to list flagged answers: %v", err)
	}

	list := make([]*gormModel.FlaggedAnswer, 0, len(answers))
	for i := range answers {
		list = append(list, &answers[i])
	}
	return &v1.FlaggedListRes{List: list, Total: total}, nil
}
