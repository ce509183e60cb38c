package entity

import "time"

// 通知类型
type NotificationType string

const (
	TypeNewMessage NotificationType = "new_message"
	TypeUrgent     NotificationType = "urgent"
	TypeAssignment NotificationType = "assignment"
	TypeSystem     NotificationType = "system"
)

// 通知优先级
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Notification 通知条目
// 只有 IsRead 允许变更，且是单向的 false→true；删除即从通知流移除
type Notification struct {
	Uuid        string
	Type        NotificationType
	Title       string
	Description string
	Timestamp   time.Time
	IsRead      bool
	Priority    Priority
	ActionUrl   string
}
