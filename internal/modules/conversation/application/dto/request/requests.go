package request

// InboundMessageRequest 模拟渠道侧来件：患者在某渠道发来一条消息
type InboundMessageRequest struct {
	PatientId string `json:"patient_id"`
	Channel   string `json:"channel"`
	Content   string `json:"content"`
}

// ReplyRequest 接待员在会话内回复
type ReplyRequest struct {
	ConversationId string `json:"conversation_id"`
	Content        string `json:"content"`
}

type AssignRequest struct {
	ConversationId string `json:"conversation_id"`
	AttendantId    string `json:"attendant_id"`
}

type UpdateStatusRequest struct {
	ConversationId string `json:"conversation_id"`
	Status         string `json:"status"` // open / closed / pending
}

type UpdatePriorityRequest struct {
	ConversationId string `json:"conversation_id"`
	Priority       string `json:"priority"` // low / medium / high
}

type ListConversationsRequest struct {
	AssignedTo string `json:"assigned_to"`
	Status     string `json:"status"`
}
