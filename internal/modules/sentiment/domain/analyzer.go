package domain

import "strings"

// 情感标签
type Label string

const (
	LabelNegative Label = "negative"
	LabelNeutral  Label = "neutral"
	LabelPositive Label = "positive"
)

// 紧急程度，由情绪向量二次推导
type UrgencyLevel string

const (
	UrgencyLow    UrgencyLevel = "low"
	UrgencyMedium UrgencyLevel = "medium"
	UrgencyHigh   UrgencyLevel = "high"
)

// Emotions 五维情绪强度
// 刻意不做上界截断：多次命中时 joy 等值可超过 1，前端渲染时自行截断
type Emotions struct {
	Anger    float64 `json:"anger"`
	Sadness  float64 `json:"sadness"`
	Joy      float64 `json:"joy"`
	Fear     float64 `json:"fear"`
	Surprise float64 `json:"surprise"`
}

// Result 对一段文本的情感分析结果，纯派生值，不落任何存储
type Result struct {
	Score      float64  `json:"score"` // [-1, 1]
	Label      Label    `json:"label"`
	Confidence float64  `json:"confidence"` // [0.6, 0.95]
	Emotions   Emotions `json:"emotions"`
}

// 关键词表：葡语问诊场景的简化词表，匹配用子串包含
var (
	positiveWords      = []string{"obrigado", "agradeço", "excelente", "bom", "ótimo", "perfeito", "satisfeito"}
	negativeWords      = []string{"ruim", "péssimo", "demora", "problema", "dificuldade", "chateado", "irritado"}
	medicalUrgentWords = []string{"dor", "urgente", "emergência", "sangue", "desmaio", "febre alta"}
)

// Analyze 关键词启发式情感打分，相同输入结果恒定
// 医疗紧急词按双倍权重压低分值
func Analyze(text string) Result {
	words := strings.Fields(strings.ToLower(text))

	var positiveScore, negativeScore, urgentScore int
	for _, word := range words {
		if containsAny(word, positiveWords) {
			positiveScore++
		}
		if containsAny(word, negativeWords) {
			negativeScore++
		}
		if containsAny(word, medicalUrgentWords) {
			urgentScore += 2
		}
	}

	// 空文本直接按中性处理，避免除零
	var normalizedScore float64
	if len(words) > 0 {
		totalScore := float64(positiveScore - negativeScore - urgentScore)
		normalizedScore = clamp(totalScore/float64(len(words))*10, -1, 1)
	}

	label := LabelNeutral
	if normalizedScore > 0.2 {
		label = LabelPositive
	}
	if normalizedScore < -0.2 {
		label = LabelNegative
	}

	confidence := 0.6 + abs(normalizedScore)*0.4
	if confidence > 0.95 {
		confidence = 0.95
	}

	anger := float64(negativeScore) * 0.3
	surprise := 0.1
	if urgentScore > 0 {
		anger = 0.7
		surprise = 0.4
	}

	return Result{
		Score:      normalizedScore,
		Label:      label,
		Confidence: confidence,
		Emotions: Emotions{
			Anger:    anger,
			Sadness:  float64(negativeScore) * 0.4,
			Joy:      float64(positiveScore) * 0.6,
			Fear:     float64(urgentScore) * 0.5,
			Surprise: surprise,
		},
	}
}

// UrgencyOf 按情绪向量推导处理优先级
func UrgencyOf(r Result) UrgencyLevel {
	if r.Emotions.Fear > 0.4 || r.Emotions.Anger > 0.6 {
		return UrgencyHigh
	}
	if r.Emotions.Sadness > 0.5 || r.Score < -0.5 {
		return UrgencyMedium
	}
	return UrgencyLow
}

func containsAny(word string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(word, kw) {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
