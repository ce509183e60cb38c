package entity

import convEntity "MedLink/internal/modules/conversation/domain/entity"

// AttendantMetrics 接待员绩效指标
type AttendantMetrics struct {
	Uuid                string
	Name                string
	TotalConversations  int
	AvgResponseTime     float64 // 分钟
	SatisfactionRate    float64 // 1-5
	Status              string  // online / busy / offline
	ActiveConversations int
}

type HourlyActivity struct {
	Hour          int
	Conversations int
}

// DashboardMetrics 管理端看板汇总
// ChannelDistribution 和 PendingConversations 从会话存储实时算，其余取基线
type DashboardMetrics struct {
	TotalConversations   int
	PendingConversations int
	AvgResponseTime      float64
	SatisfactionRate     float64
	ChannelDistribution  map[convEntity.ChannelType]int
	HourlyActivity       []HourlyActivity
}
