package service

import (
	"context"

	assistantRespond "MedLink/internal/modules/assistant/application/dto/respond"
	assistantDomain "MedLink/internal/modules/assistant/domain"
	"MedLink/internal/modules/assistant/infrastructure/llm"
	"MedLink/pkg/xerr"
)

type SuggestionService interface {
	GenerateSuggestions(ctx context.Context, apiKey string, message string) ([]assistantRespond.SuggestionItem, error)
}

type suggestionServiceImpl struct {
	client *llm.Client
}

func NewSuggestionService(client *llm.Client) SuggestionService {
	return &suggestionServiceImpl{client: client}
}

func (s *suggestionServiceImpl) GenerateSuggestions(ctx context.Context, apiKey string, message string) ([]assistantRespond.SuggestionItem, error) {
	if message == "" {
		return nil, xerr.New(xerr.BadRequest, xerr.ErrParam.Message)
	}

	raw, err := s.client.GenerateSuggestionText(ctx, apiKey, message)
	if err != nil {
		return nil, err
	}

	suggestions := assistantDomain.ParseSuggestions(raw)
	out := make([]assistantRespond.SuggestionItem, 0, len(suggestions))
	for _, sg := range suggestions {
		out = append(out, assistantRespond.SuggestionItem{
			Uuid:       sg.Uuid,
			Type:       string(sg.Type),
			Content:    sg.Content,
			Confidence: sg.Confidence,
		})
	}
	return out, nil
}
