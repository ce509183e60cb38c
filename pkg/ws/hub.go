package ws

import (
	"encoding/json"
	"sync"
	"time"

	"MedLink/pkg/zlog"

	"github.com/gorilla/websocket"
)

// Hub 维护在线的仪表盘连接，通知模块通过它做实时推送
// 通知生成器在独立 goroutine 上广播，连接注销随时可能并发发生，
// 成员快照必须在锁内取完再投递
type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]map[*Client]struct{}),
	}
}

func (h *Hub) Register(c *Client) {
	if c == nil || c.userID == "" {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	set := h.clients[c.userID]
	if set == nil {
		set = make(map[*Client]struct{})
		h.clients[c.userID] = set
	}
	set[c] = struct{}{}
}

func (h *Hub) Unregister(c *Client) {
	if c == nil || c.userID == "" {
		return
	}
	h.mu.Lock()
	set := h.clients[c.userID]
	if set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.userID)
		}
	}
	h.mu.Unlock()
	c.Close()
}

func (h *Hub) Send(userID string, payload []byte) bool {
	if userID == "" || len(payload) == 0 {
		return false
	}

	targets := h.snapshot(userID)
	if len(targets) == 0 {
		return false
	}

	ok := false
	for _, c := range targets {
		if c.trySend(payload) {
			ok = true
		} else {
			h.Unregister(c)
		}
	}
	return ok
}

func (h *Hub) SendJSON(userID string, v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	h.Send(userID, b)
	return nil
}

// BroadcastJSON 推送给所有在线用户（通知流的新条目对所有仪表盘可见）
func (h *Hub) BroadcastJSON(v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}

	h.mu.RLock()
	userIDs := make([]string, 0, len(h.clients))
	for id := range h.clients {
		userIDs = append(userIDs, id)
	}
	h.mu.RUnlock()

	for _, id := range userIDs {
		h.Send(id, b)
	}
	return nil
}

// snapshot 在读锁内把成员拷出来，迭代不碰共享 map
func (h *Hub) snapshot(userID string) []*Client {
	h.mu.RLock()
	defer h.mu.RUnlock()

	set := h.clients[userID]
	if len(set) == 0 {
		return nil
	}
	out := make([]*Client, 0, len(set))
	for c := range set {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}

type Client struct {
	userID string
	conn   *websocket.Conn
	send   chan []byte

	mu     sync.Mutex
	closed bool
}

func NewClient(userID string, conn *websocket.Conn) *Client {
	return &Client{
		userID: userID,
		conn:   conn,
		send:   make(chan []byte, 64),
	}
}

func (c *Client) Close() {
	c.mu.Lock()
	if !c.closed {
		c.closed = true
		close(c.send)
	}
	c.mu.Unlock()
	if c.conn != nil {
		_ = c.conn.Close()
	}
}

// trySend 投递到发送队列；已关闭或队列满返回 false
// closed 标记和通道写在同一把锁下，关闭后不可能再写入
func (c *Client) trySend(payload []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.send <- payload:
		return true
	default:
		return false
	}
}

func (c *Client) WritePump() {
	if c.conn == nil {
		return
	}
	for msg := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			zlog.Error(err.Error())
			return
		}
	}
}
