package gorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInt64List_ScanValue(t *testing.T) {
	t.Run("正常序列化", func(t *testing.T) {
		list := Int64List{1, 2, 3}
		v, err := list.Value()
		require.NoError(t, err)

		var got Int64List
		require.NoError(t, got.Scan(v))
		assert.Equal(t, list, got)
	})

	t.Run("空列表", func(t *testing.T) {
		list := Int64List{}
		v, err := list.Value()
		require.NoError(t, err)

		var got Int64List
		require.NoError(t, got.Scan(v))
		assert.Len(t, got, 0)
	})

	t.Run("扫描NULL", func(t *testing.T) {
		var got Int64List
		require.NoError(t, got.Scan(nil))
		assert.Len(t, got, 0)
	})

	t.Run("扫描字符串", func(t *testing.T) {
		var got Int64List
		require.NoError(t, got.Scan("[7,8]"))
		assert.Equal(t, Int64List{7, 8}, got)
	})
}

func TestInt64List_Contains(t *testing.T) {
	list := Int64List{10, 20, 30}
	assert.True(t, list.Contains(20))
	assert.False(t, list.Contains(99))
	assert.False(t, Int64List(nil).Contains(1))
}

func TestInt64List_Without(t *testing.T) {
	list := Int64List{10, 20, 30}

	got := list.Without(20)
	assert.Equal(t, Int64List{10, 30}, got)
	// 原列表不应被修改
	assert.Equal(t, Int64List{10, 20, 30}, list)

	// 移除不存在的元素等于复制
	assert.Equal(t, Int64List{10, 30}, got.Without(99))
}
