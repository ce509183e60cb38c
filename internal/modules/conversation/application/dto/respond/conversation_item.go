package respond

import convEntity "MedLink/internal/modules/conversation/domain/entity"

type PatientItem struct {
	Uuid             string `json:"uuid"`
	Name             string `json:"name"`
	Phone            string `json:"phone"`
	Email            string `json:"email,omitempty"`
	PreferredChannel string `json:"preferred_channel"`
	LastContact      string `json:"last_contact,omitempty"`
}

type MessageItem struct {
	Uuid          string `json:"uuid"`
	PatientId     string `json:"patient_id"`
	AttendantId   string `json:"attendant_id,omitempty"`
	Channel       string `json:"channel"`
	Content       string `json:"content"`
	Timestamp     string `json:"timestamp"`
	Status        string `json:"status"`
	IsFromPatient bool   `json:"is_from_patient"`
}

type ConversationItem struct {
	Uuid          string                 `json:"uuid"`
	Patient       PatientItem            `json:"patient"`
	Channel       string                 `json:"channel"`
	ChannelMeta   convEntity.ChannelMeta `json:"channel_meta"`
	AssignedTo    string                 `json:"assigned_to,omitempty"`
	Status        string                 `json:"status"`
	Priority      string                 `json:"priority"`
	LastMessageAt string                 `json:"last_message_at"`
	Tags          []string               `json:"tags,omitempty"`
	LastMsg       string                 `json:"last_msg,omitempty"`
	Messages      []MessageItem          `json:"messages,omitempty"` // 列表接口不带，详情接口带
}

type ChannelItem struct {
	Channel string                 `json:"channel"`
	Meta    convEntity.ChannelMeta `json:"meta"`
}
