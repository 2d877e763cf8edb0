package admin

import (
	"context"

	v1 "github.com/coaching-ai/coachadmin/api/admin/v1"
	"github.com/coaching-ai/coachadmin/internal/logic/stats"
)

func (c *ControllerV1) StatsOverview(ctx context.Context, req *v1.StatsOverviewReq) (res *v1.StatsOverviewRes, err error) {
	overview, err := stats.GetOverview(ctx)
	if err != nil {
		return nil, err
	}
	return &v1.StatsOverviewRes{Overview: overview}, nil
}
