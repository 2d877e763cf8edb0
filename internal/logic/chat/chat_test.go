package chat

import (
	"testing"
	"time"

	gormModel "github.com/coaching-ai/coachadmin/internal/model/gorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFoldConversations(t *testing.T) {
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	// 消息按创建时间倒序，和 ListAll 的返回顺序一致
	messages := []gormModel.ChatMessage{
		{ID: 5, UserID: "u2", ChatID: "c2", Username: "bob", Message: "latest from bob", CreatedAt: base.Add(4 * time.Minute)},
		{ID: 4, UserID: "u1", ChatID: "c1", Username: "alice", Message: "latest from alice", CreatedAt: base.Add(3 * time.Minute)},
		{ID: 3, UserID: "u1", ChatID: "c1", Username: "alice", Message: "earlier", CreatedAt: base.Add(2 * time.Minute)},
		{ID: 2, UserID: "u2", ChatID: "c2", Username: "bob", Message: "earlier bob", CreatedAt: base.Add(time.Minute)},
		{ID: 1, UserID: "u1", ChatID: "c1", Username: "alice", Message: "first", CreatedAt: base},
	}

	conversations := foldConversations(messages)
	require.Len(t, conversations, 2)

	// 最近活跃的用户排在前面
	assert.Equal(t, "u2", conversations[0].UserID)
	assert.Equal(t, "latest from bob", conversations[0].LastMessage)
	assert.Equal(t, 2, conversations[0].MessageCount)

	assert.Equal(t, "u1", conversations[1].UserID)
	assert.Equal(t, "latest from alice", conversations[1].LastMessage)
	assert.Equal(t, 3, conversations[1].MessageCount)
}

func TestFoldConversations_Empty(t *testing.T) {
	assert.Len(t, foldConversations(nil), 0)
}
