package scheduler

import (
	"context"
	"strings"
	"testing"
	"time"

	"MedLink/internal/modules/notification/application/service"
	notifEntity "MedLink/internal/modules/notification/domain/entity"
)

func TestGenerator_ProducesEntries(t *testing.T) {
	feed := service.NewFeedService(10, nil)
	gen := NewGenerator(feed, 10*time.Millisecond, 0.3)

	ctx, cancel := context.WithCancel(context.Background())
	gen.Start(ctx)

	deadline := time.After(2 * time.Second)
	for len(feed.List()) < 2 {
		select {
		case <-deadline:
			cancel()
			t.Fatal("generator produced no entries in time")
		case <-time.After(5 * time.Millisecond):
		}
	}
	cancel()
}

func TestGenerator_StopsOnCancel(t *testing.T) {
	feed := service.NewFeedService(10, nil)
	gen := NewGenerator(feed, 5*time.Millisecond, 0.3)

	ctx, cancel := context.WithCancel(context.Background())
	gen.Start(ctx)
	time.Sleep(30 * time.Millisecond)
	cancel()

	// 取消后不应再有写入
	time.Sleep(20 * time.Millisecond)
	before := len(feed.List())
	time.Sleep(50 * time.Millisecond)
	after := len(feed.List())
	if before != after {
		t.Errorf("feed mutated after cancel: %d -> %d", before, after)
	}
}

func TestGenerator_UrgentSelection(t *testing.T) {
	feed := service.NewFeedService(10, nil)
	gen := NewGenerator(feed, time.Second, 0.3)

	gen.randFn = func() float64 { return 0.1 } // 低于占比，走紧急分支
	n := gen.next()
	if n.Type != notifEntity.TypeUrgent || n.Priority != notifEntity.PriorityHigh {
		t.Errorf("got %s/%s, want urgent/high", n.Type, n.Priority)
	}

	gen.randFn = func() float64 { return 0.9 }
	n = gen.next()
	if n.Type != notifEntity.TypeNewMessage || n.Priority != notifEntity.PriorityMedium {
		t.Errorf("got %s/%s, want new_message/medium", n.Type, n.Priority)
	}
	if n.IsRead {
		t.Error("generated notification must start unread")
	}
	// 通知标识用短 uuid（32 位十六进制，无中划线）
	if len(n.Uuid) != 32 || strings.Contains(n.Uuid, "-") {
		t.Errorf("Uuid = %q, want 32-char short uuid", n.Uuid)
	}
}
