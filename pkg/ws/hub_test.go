package ws

import (
	"encoding/json"
	"fmt"
	"sync"
	"testing"
)

func TestSendJSONDeliversToUser(t *testing.T) {
	hub := NewHub()
	c := NewClient("u1", nil)
	hub.Register(c)

	if err := hub.SendJSON("u1", map[string]interface{}{"type": "feed_snapshot", "unread_count": 2}); err != nil {
		t.Fatalf("err = %v", err)
	}

	var got map[string]interface{}
	if err := json.Unmarshal(<-c.send, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got["type"] != "feed_snapshot" {
		t.Errorf("type = %v, want feed_snapshot", got["type"])
	}

	// 别的用户收不到
	other := NewClient("u2", nil)
	hub.Register(other)
	_ = hub.SendJSON("u1", map[string]interface{}{"type": "x"})
	select {
	case msg := <-other.send:
		t.Errorf("unexpected delivery to u2: %s", msg)
	default:
	}
}

func TestSendToClosedClient(t *testing.T) {
	hub := NewHub()
	c := NewClient("u1", nil)
	hub.Register(c)
	c.Close()

	// 已关闭的客户端投递失败且不 panic，随后被摘除
	if ok := hub.Send("u1", []byte("x")); ok {
		t.Error("send to closed client reported ok")
	}
	if ok := hub.Send("u1", []byte("x")); ok {
		t.Error("client still reachable after eviction")
	}
}

// 断开和推送来自不同 goroutine，任何交错下不得崩溃（go test -race 下跑）
func TestConcurrentBroadcastAndUnregister(t *testing.T) {
	hub := NewHub()

	var wg sync.WaitGroup
	for i := 0; i < 30; i++ {
		c := NewClient(fmt.Sprintf("u%d", i), nil)
		hub.Register(c)

		wg.Add(2)
		go func(c *Client) {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				_ = hub.BroadcastJSON(map[string]interface{}{"type": "notification", "seq": j})
			}
		}(c)
		go func(c *Client) {
			defer wg.Done()
			hub.Unregister(c)
		}(c)
	}
	wg.Wait()
}
