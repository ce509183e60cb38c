package entity

import "time"

// 渠道类型
type ChannelType string

const (
	ChannelWhatsApp  ChannelType = "whatsapp"
	ChannelInstagram ChannelType = "instagram"
	ChannelFacebook  ChannelType = "facebook"
	ChannelEmail     ChannelType = "email"
	ChannelPhone     ChannelType = "phone"
	ChannelWebsite   ChannelType = "website"
)

// 消息状态（演示环境在创建时定死，不跑回执流程）
type MessageStatus string

const (
	MessageSent      MessageStatus = "sent"
	MessageDelivered MessageStatus = "delivered"
	MessageRead      MessageStatus = "read"
	MessagePending   MessageStatus = "pending"
)

// 会话状态
type ConversationStatus string

const (
	ConversationOpen    ConversationStatus = "open"
	ConversationClosed  ConversationStatus = "closed"
	ConversationPending ConversationStatus = "pending"
)

// 优先级
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Patient 患者档案，种子数据创建后不再变更
type Patient struct {
	Uuid             string
	Name             string
	Phone            string
	Email            string
	PreferredChannel ChannelType
	LastContact      *time.Time
}

// Message 单条消息，仅状态字段理论上可迁移（sent→delivered→read）
type Message struct {
	Uuid          string
	PatientId     string
	AttendantId   string // 患者消息时为空
	Channel       ChannelType
	Content       string
	Timestamp     time.Time
	Status        MessageStatus
	IsFromPatient bool
}

// Conversation 一个患者在一个渠道上的消息线程
// Messages 只追加，追加顺序即时间顺序；LastMessageAt 恒等于末条消息时间
type Conversation struct {
	Uuid          string
	Patient       *Patient // 共享引用，同一患者的多个会话指向同一条档案
	Channel       ChannelType
	Messages      []*Message
	AssignedTo    string
	Status        ConversationStatus
	Priority      Priority
	LastMessageAt time.Time
	Tags          []string
}

// Append 追加消息并维护 LastMessageAt 不变量
func (c *Conversation) Append(m *Message) {
	c.Messages = append(c.Messages, m)
	if m.Timestamp.After(c.LastMessageAt) {
		c.LastMessageAt = m.Timestamp
	}
}

// LastMessage 末条消息，空线程返回 nil
func (c *Conversation) LastMessage() *Message {
	if len(c.Messages) == 0 {
		return nil
	}
	return c.Messages[len(c.Messages)-1]
}
