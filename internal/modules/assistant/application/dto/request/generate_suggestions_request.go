package request

type GenerateSuggestionsRequest struct {
	Message string `json:"message"`
	ApiKey  string `json:"api_key"`
}
