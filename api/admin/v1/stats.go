package v1

import (
	"github.com/coaching-ai/coachadmin/internal/logic/stats"
	"github.com/gogf/gf/v2/frame/g"
)

type StatsOverviewReq struct {
	g.Meta `path:"/v1/stats/overview" method:"get" tags:"stats" summary:"Get resource counts overview"`
}

type StatsOverviewRes struct {
	*stats.Overview `dc:"overview counters"`
}
