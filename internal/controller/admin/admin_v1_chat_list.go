package admin

import (
	"context"

	v1 "github.com/coaching-ai/coachadmin/api/admin/v1"
	"github.com/coaching-ai/coachadmin/internal/logic/chat"
)

func (c *ControllerV1) ChatList(ctx context.Context, req *v1.ChatListReq) (res *v1.ChatListRes, err error) {
	conversations, err := chat.ListConversations(ctx)
	if err != nil {
		return nil, err
	}
	return &v1.ChatListRes{List: conversations}, nil
}
