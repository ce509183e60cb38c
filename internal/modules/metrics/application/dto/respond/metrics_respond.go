package respond

type AttendantMetricsItem struct {
	Uuid                string  `json:"uuid"`
	Name                string  `json:"name"`
	TotalConversations  int     `json:"total_conversations"`
	AvgResponseTime     float64 `json:"avg_response_time"`
	SatisfactionRate    float64 `json:"satisfaction_rate"`
	Status              string  `json:"status"`
	ActiveConversations int     `json:"active_conversations"`
}

type HourlyActivityItem struct {
	Hour          int `json:"hour"`
	Conversations int `json:"conversations"`
}

type DashboardRespond struct {
	TotalConversations   int                  `json:"total_conversations"`
	PendingConversations int                  `json:"pending_conversations"`
	AvgResponseTime      float64              `json:"avg_response_time"`
	SatisfactionRate     float64              `json:"satisfaction_rate"`
	ChannelDistribution  map[string]int       `json:"channel_distribution"`
	HourlyActivity       []HourlyActivityItem `json:"hourly_activity"`
}
