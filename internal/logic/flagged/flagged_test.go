package flagged

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/coaching-ai/coachadmin/core/errors"
	"github.com/coaching-ai/coachadmin/internal/dao"
	gormModel "github.com/coaching-ai/coachadmin/internal/model/gorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderByReference(t *testing.T) {
	docs := []gormModel.RagDocument{
		{ID: 3, Content: "third"},
		{ID: 1, Content: "first"},
		{ID: 2, Content: "second"},
	}

	t.Run("按引用顺序排列", func(t *testing.T) {
		got := orderByReference(gormModel.Int64List{1, 2, 3}, docs)
		assert.Len(t, got, 3)
		assert.Equal(t, int64(1), got[0].ID)
		assert.Equal(t, int64(2), got[1].ID)
		assert.Equal(t, int64(3), got[2].ID)
	})

	t.Run("悬挂引用被跳过", func(t *testing.T) {
		got := orderByReference(gormModel.Int64List{2, 99, 1}, docs)
		assert.Len(t, got, 2)
		assert.Equal(t, int64(2), got[0].ID)
		assert.Equal(t, int64(1), got[1].ID)
	})

	t.Run("空引用列表", func(t *testing.T) {
		got := orderByReference(nil, docs)
		assert.Len(t, got, 0)
	})

	t.Run("无文档", func(t *testing.T) {
		got := orderByReference(gormModel.Int64List{1, 2}, nil)
		assert.Len(t, got, 0)
	})
}

func TestIsTerminalStatus(t *testing.T) {
	assert.True(t, IsTerminalStatus(gormModel.FlaggedStatusProcessed))
	assert.True(t, IsTerminalStatus(gormModel.FlaggedStatusRejected))
	assert.False(t, IsTerminalStatus(gormModel.FlaggedStatusNotProcessed))
	assert.False(t, IsTerminalStatus(""))
	assert.False(t, IsTerminalStatus("done"))
}

// 空白内容在任何存储访问之前就被拒绝，无需数据库即可验证
func TestAddDocument_EmptyContent(t *testing.T) {
	cases := []string{"", "   ", " \t\n "}
	for _, content := range cases {
		doc, err := AddDocument(context.Background(), "op1", 42, content)
		require.Error(t, err, "content=%q", content)
		assert.Nil(t, doc)
		assert.True(t, errors.IsCode(err, errors.ErrDocumentEmpty), "content=%q", content)
	}
}

func TestUpdateDocumentContent_EmptyContent(t *testing.T) {
	cases := []string{"", "   ", " \t\n "}
	for _, content := range cases {
		err := UpdateDocumentContent(context.Background(), 42, 7, content)
		require.Error(t, err, "content=%q", content)
		assert.True(t, errors.IsCode(err, errors.ErrDocumentEmpty), "content=%q", content)
	}
}

// 并发向同一标记回答追加文档，行锁保证两条引用都保留
func TestAddDocument_ConcurrentAppends(t *testing.T) {
	if !dao.Initialized() {
		t.Skip("Database not initialized, skipping test")
	}

	ctx := context.Background()
	answer := &gormModel.FlaggedAnswer{
		Question: "测试问题",
		Answer:   "测试回答",
		Status:   gormModel.FlaggedStatusNotProcessed,
	}
	require.NoError(t, dao.GetDB().WithContext(ctx).Create(answer).Error)

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := AddDocument(ctx, "op1", answer.ID, fmt.Sprintf("补充内容-%d", n))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	got, err := dao.FlaggedAnswer.GetByID(ctx, answer.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Len(t, got.DocumentIds, 2)
}
