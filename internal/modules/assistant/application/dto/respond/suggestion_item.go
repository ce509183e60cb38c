package respond

type SuggestionItem struct {
	Uuid       string  `json:"uuid"`
	Type       string  `json:"type"`
	Content    string  `json:"content"`
	Confidence float64 `json:"confidence"`
}
