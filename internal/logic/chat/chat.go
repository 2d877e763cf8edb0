package chat

import (
	"context"

	"github.com/coaching-ai/coachadmin/core/errors"
	"github.com/coaching-ai/coachadmin/internal/dao"
	gormModel "github.com/coaching-ai/coachadmin/internal/model/gorm"
)

// Conversation 按用户折叠后的会话视图
type Conversation struct {
	UserID          string `json:"user_id"`
	ChatID          string `json:"chat_id"`
	Username        string `json:"username"`
	Fullname        string `json:"fullname"`
	LastMessage     string `json:"last_message"`
	LastMessageTime string `json:"last_message_time"`
	MessageCount    int    `json:"message_count"`
}

// ListConversations 把全部聊天记录按用户折叠成会话列表。
// 记录按时间倒序取出，每个用户第一条命中的就是最近一条消息。
func ListConversations(ctx context.Context) ([]Conversation, error) {
	messages, err := dao.Chat.ListAll(ctx)
	if err != nil {
		return nil, errors.Newf(errors.ErrDatabaseQuery, "failed to load chat history: %v", err)
	}
	return foldConversations(messages), nil
}

// foldConversations 输入按时间倒序的消息，输出按最近活跃排序的会话列表
func foldConversations(messages []gormModel.ChatMessage) []Conversation {
	index := make(map[string]int, 16)
	conversations := make([]Conversation, 0, 16)
	for _, msg := range messages {
		if pos, ok := index[msg.UserID]; ok {
			conversations[pos].MessageCount++
			continue
		}
		index[msg.UserID] = len(conversations)
		conversations = append(conversations, Conversation{
			UserID:          msg.UserID,
			ChatID:          msg.ChatID,
			Username:        msg.Username,
			Fullname:        msg.Fullname,
			LastMessage:     msg.Message,
			LastMessageTime: msg.CreatedAt.Format("2006-01-02 15:04:05"),
			MessageCount:    1,
		})
	}
	return conversations
}

// ListMessages 获取指定用户的完整消息流，按时间正序
func ListMessages(ctx context.Context, userID string) ([]gormModel.ChatMessage, error) {
	if userID == "" {
		return nil, errors.New(errors.ErrInvalidParameter, "user id is empty")
	}
	messages, err := dao.Chat.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Newf(errors.ErrDatabaseQuery, "failed to load messages of user %s: %v", userID, err)
	}
	return messages, nil
}
