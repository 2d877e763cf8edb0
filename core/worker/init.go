package worker

import (
	"time"

	"github.com/gogf/gf/v2/frame/g"
	"github.com/gogf/gf/v2/os/gctx"
)

var defaultClient *Client

// InitWorker 根据配置初始化全局 worker 客户端
func InitWorker() {
	ctx := gctx.New()

	baseURL := g.Cfg().MustGet(ctx, "worker.baseURL", "http://localhost:5000").String()
	timeout := g.Cfg().MustGet(ctx, "worker.timeout", "10s").Duration()

	defaultClient = NewClient(baseURL, timeout)
	g.Log().Infof(ctx, "RAG worker client initialized, baseURL=%s, timeout=%s", baseURL, timeout)
}

// GetClient 获取全局 worker 客户端
func GetClient() *Client {
	if defaultClient == nil {
		defaultClient = NewClient("http://localhost:5000", 10*time.Second)
	}
	return defaultClient
}
