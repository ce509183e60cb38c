package respond

type NotificationItem struct {
	Uuid        string `json:"uuid"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Timestamp   string `json:"timestamp"`
	IsRead      bool   `json:"is_read"`
	Priority    string `json:"priority"`
	ActionUrl   string `json:"action_url,omitempty"`
}

type FeedRespond struct {
	Notifications []NotificationItem `json:"notifications"`
	UnreadCount   int                `json:"unread_count"`
}
