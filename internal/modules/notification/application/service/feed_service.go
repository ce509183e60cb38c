package service

import (
	"sync"

	notifEntity "MedLink/internal/modules/notification/domain/entity"
	"MedLink/pkg/ws"
)

// FeedService 内存通知流：最新在前，保留上限之外的旧条目直接丢弃
type FeedService interface {
	Add(n *notifEntity.Notification)
	MarkAsRead(uuid string)
	MarkAllAsRead()
	Remove(uuid string)
	List() []*notifEntity.Notification
	UnreadCount() int
}

type feedServiceImpl struct {
	mu          sync.Mutex
	entries     []*notifEntity.Notification
	unreadCount int
	maxSize     int
	hub         *ws.Hub
}

// NewFeedService hub 允许为 nil（测试场景不推送）
func NewFeedService(maxSize int, hub *ws.Hub) FeedService {
	if maxSize <= 0 {
		maxSize = 10
	}
	return &feedServiceImpl{
		entries: make([]*notifEntity.Notification, 0, maxSize),
		maxSize: maxSize,
		hub:     hub,
	}
}

func (s *feedServiceImpl) Add(n *notifEntity.Notification) {
	if n == nil {
		return
	}

	s.mu.Lock()
	s.entries = append([]*notifEntity.Notification{n}, s.entries...)
	if len(s.entries) > s.maxSize {
		// 丢掉最旧的；被丢弃的未读条目不再计入未读数
		for _, dropped := range s.entries[s.maxSize:] {
			if !dropped.IsRead {
				s.unreadCount--
			}
		}
		s.entries = s.entries[:s.maxSize]
	}
	if !n.IsRead {
		s.unreadCount++
	}
	if s.unreadCount < 0 {
		s.unreadCount = 0
	}
	s.mu.Unlock()

	s.push(n)
}

func (s *feedServiceImpl) MarkAsRead(uuid string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, n := range s.entries {
		if n.Uuid == uuid {
			if !n.IsRead {
				n.IsRead = true
				if s.unreadCount > 0 {
					s.unreadCount--
				}
			}
			return
		}
	}
}

func (s *feedServiceImpl) MarkAllAsRead() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, n := range s.entries {
		n.IsRead = true
	}
	s.unreadCount = 0
}

func (s *feedServiceImpl) Remove(uuid string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.entries {
		if n.Uuid == uuid {
			if !n.IsRead && s.unreadCount > 0 {
				s.unreadCount--
			}
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return
		}
	}
}

func (s *feedServiceImpl) List() []*notifEntity.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*notifEntity.Notification, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *feedServiceImpl) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.unreadCount
}

// push 每条新通知都广播到在线仪表盘；高优先级额外发一条告警事件（前端弹 toast）
func (s *feedServiceImpl) push(n *notifEntity.Notification) {
	if s.hub == nil {
		return
	}

	_ = s.hub.BroadcastJSON(map[string]interface{}{
		"type":         "notification",
		"notification": toPushItem(n),
	})

	if n.Priority == notifEntity.PriorityHigh {
		_ = s.hub.BroadcastJSON(map[string]interface{}{
			"type":        "urgent_alert",
			"title":       n.Title,
			"description": n.Description,
		})
	}
}

func toPushItem(n *notifEntity.Notification) map[string]interface{} {
	return map[string]interface{}{
		"uuid":        n.Uuid,
		"type":        string(n.Type),
		"title":       n.Title,
		"description": n.Description,
		"timestamp":   n.Timestamp,
		"is_read":     n.IsRead,
		"priority":    string(n.Priority),
	}
}
