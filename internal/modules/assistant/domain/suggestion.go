package domain

import (
	"strings"

	"MedLink/pkg/util"
)

// 建议类型，按返回顺序赋值：首条是可直接发送的回复，次条补充信息，其余是后续动作
type SuggestionType string

const (
	TypeResponse SuggestionType = "response"
	TypeInfo     SuggestionType = "info"
	TypeAction   SuggestionType = "action"
)

// Delimiter 约定模型用三字符分隔符拼接各条建议
const Delimiter = "|||"

// Suggestion 单条 AI 回复建议，每次生成整体替换上一批，不做合并
type Suggestion struct {
	Uuid       string         `json:"uuid"`
	Type       SuggestionType `json:"type"`
	Content    string         `json:"content"`
	Confidence float64        `json:"confidence"`
}

// ParseSuggestions 把模型返回的分隔文本拆成带排名置信度的建议列表
// 空白分段丢弃；置信度按名次递减 0.1，防御性下限 0
func ParseSuggestions(raw string) []Suggestion {
	segments := strings.Split(raw, Delimiter)

	out := make([]Suggestion, 0, len(segments))
	for _, seg := range segments {
		content := strings.TrimSpace(seg)
		if content == "" {
			continue
		}

		idx := len(out)
		confidence := 0.9 - 0.1*float64(idx)
		if confidence < 0 {
			confidence = 0
		}

		out = append(out, Suggestion{
			Uuid:       util.GenerateUUID(),
			Type:       typeByRank(idx),
			Content:    content,
			Confidence: confidence,
		})
	}
	return out
}

func typeByRank(idx int) SuggestionType {
	switch idx {
	case 0:
		return TypeResponse
	case 1:
		return TypeInfo
	default:
		return TypeAction
	}
}
