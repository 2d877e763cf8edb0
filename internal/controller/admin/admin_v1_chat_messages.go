package admin

import (
	"context"

	v1 "github.com/coaching-ai/coachadmin/api/admin/v1"
	"github.com/coaching-ai/coachadmin/internal/logic/chat"
)

func (c *ControllerV1) ChatMessages(ctx context.Context, req *v1.ChatMessagesReq) (res *v1.ChatMessagesRes, err error) {
	messages, err := chat.ListMessages(ctx, req.UserId)
	if err != nil {
		return nil, err
	}
	return &v1.ChatMessagesRes{List: messages}, nil
}
