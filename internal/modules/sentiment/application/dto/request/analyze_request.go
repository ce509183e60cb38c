package request

type AnalyzeRequest struct {
	Text string `json:"text"`
}
