package respond

import sentimentDomain "MedLink/internal/modules/sentiment/domain"

type AnalyzeRespond struct {
	Score      float64                  `json:"score"`
	Label      string                   `json:"label"`
	Confidence float64                  `json:"confidence"`
	Emotions   sentimentDomain.Emotions `json:"emotions"`
	Urgency    string                   `json:"urgency"`
}
