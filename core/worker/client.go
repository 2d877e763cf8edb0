package worker

import (
	"context"
	"net/http"
	"time"

	"github.com/coaching-ai/coachadmin/core/errors"
	"github.com/gogf/gf/v2/frame/g"
	"github.com/gogf/gf/v2/net/gclient"
)

// Client RAG worker 服务的HTTP客户端。
// worker 负责所有 embedding / 文档解析计算，本服务只投递任务，
// 不等待任何计算结果，worker 仅返回受理与否。
type Client struct {
	cli     *gclient.Client
	baseURL string
}

// NewClient 创建 worker 客户端
func NewClient(baseURL string, timeout time.Duration) *Client {
	cli := gclient.New()
	cli.SetPrefix(baseURL)
	if timeout > 0 {
		cli.SetTimeout(timeout)
	}
	return &Client{
		cli:     cli,
		baseURL: baseURL,
	}
}

// SetTransport 替换底层Transport，测试时注入mock用
func (c *Client) SetTransport(rt http.RoundTripper) {
	c.cli.Transport = rt
}

// ProcessFileReq 文件解析任务参数
type ProcessFileReq struct {
	FileID          string `json:"file_id"`
	FileName        string `json:"file_name"`
	FilePath        string `json:"file_path"`
	FileType        string `json:"file_type"`
	FileStoragePath string `json:"file_storage_path"`
	UserID          string `json:"user_id"`
}

// ProcessVideoLinkReq 视频字幕抓取任务参数
type ProcessVideoLinkReq struct {
	VideoLinkID string `json:"video_link_id"`
	VideoURL    string `json:"video_url"`
	UserID      string `json:"user_id"`
}

// UpdateEmbedding 触发指定文档的 embedding 重算
func (c *Client) UpdateEmbedding(ctx context.Context, documentID int64) error {
	return c.post(ctx, "/update-embedding", g.Map{
		"document_id": documentID,
	})
}

// ProcessFile 投递文件解析+索引任务
func (c *Client) ProcessFile(ctx context.Context, req ProcessFileReq) error {
	return c.post(ctx, "/process-file", req)
}

// ProcessVideoLink 投递视频字幕抓取+索引任务
func (c *Client) ProcessVideoLink(ctx context.Context, req ProcessVideoLinkReq) error {
	return c.post(ctx, "/process-video-link", req)
}

// UpdateBotSettings 同步机器人应答开关到 worker
func (c *Client) UpdateBotSettings(ctx context.Context, isBot bool) error {
	botFlag := 0
	if isBot {
		botFlag = 1
	}
	return c.post(ctx, "/update-bot-settings", g.Map{
		"is_bot": botFlag,
	})
}

func (c *Client) post(ctx context.Context, path string, payload interface{}) error {
	resp, err := c.cli.ContentJson().Post(ctx, path, payload)
	if err != nil {
		g.Log().Errorf(ctx, "[worker] POST %s failed: %v", path, err)
		return errors.Newf(errors.ErrWorkerUnreachable, "worker request %s failed: %v", path, err)
	}
	defer resp.Close()

	if resp.StatusCode != http.StatusOK {
		body := resp.ReadAllString()
		g.Log().Errorf(ctx, "[worker] POST %s rejected, status=%d, body=%s", path, resp.StatusCode, body)
		return errors.Newf(errors.ErrWorkerRejected, "worker rejected %s with status %d", path, resp.StatusCode)
	}
	return nil
}
