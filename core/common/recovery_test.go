package common

import (
	"context"
	"testing"
	"time"
)

func TestRecoverPanic(t *testing.T) {
	ctx := context.Background()

	t.Run("正常执行不会panic", func(t *testing.T) {
		defer RecoverPanic(ctx, "test-normal")
		_ = 1 + 1
	})

	t.Run("捕获panic", func(t *testing.T) {
		done := make(chan bool, 1)
		func() {
			defer func() {
				done <- true
			}()
			defer RecoverPanic(ctx, "test-panic")
			panic("test panic")
		}()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("panic was not recovered")
		}
	})
}

func TestSafeGo(t *testing.T) {
	ctx := context.Background()

	t.Run("正常goroutine执行", func(t *testing.T) {
		done := make(chan bool, 1)
		SafeGo(ctx, "test-normal-goroutine", func() {
			done <- true
		})
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("goroutine did not run")
		}
	})

	t.Run("goroutine中的panic不影响调用方", func(t *testing.T) {
		SafeGo(ctx, "test-panic-goroutine", func() {
			panic("boom")
		})
		// 给 goroutine 一点时间触发并恢复 panic
		time.Sleep(20 * time.Millisecond)
	})
}
