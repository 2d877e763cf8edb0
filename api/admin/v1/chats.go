package v1

import (
	"github.com/coaching-ai/coachadmin/internal/logic/chat"
	"github.com/coaching-ai/coachadmin/internal/model/gorm"
	"github.com/gogf/gf/v2/frame/g"
)

type ChatListReq struct {
	g.Meta `path:"/v1/chats" method:"get" tags:"chats" summary:"List conversations grouped by user"`
}

type ChatListRes struct {
	List []chat.Conversation `json:"list" dc:"conversations, most recent first"`
}

type ChatMessagesReq struct {
	g.Meta `path:"/v1/chats/{userId}/messages" method:"get" tags:"chats" summary:"Get full message stream of a user"`
	UserId string `v:"required" dc:"end user id"`
}

type ChatMessagesRes struct {
	List []gorm.ChatMessage `json:"list" dc:"messages, oldest first"`
}
