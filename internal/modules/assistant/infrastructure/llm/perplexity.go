package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"MedLink/pkg/xerr"
	"MedLink/pkg/zlog"
)

const (
	defaultBaseURL = "https://api.perplexity.ai"
	defaultModel   = "llama-3.1-sonar-small-128k-online"
	defaultTimeout = 30 * time.Second

	systemPrompt = `Você é um assistente especializado em atendimento médico. Gere 3 sugestões de resposta profissionais, empáticas e informativas para atendentes de clínica médica. Seja preciso e conciso. Formate cada sugestão separada por "|||".`
)

// Client Perplexity chat-completion 客户端
// API key 每次调用时由调用方传入，客户端本身不持有也不记录
type Client struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

type ClientOption func(*Client)

func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

func WithModel(model string) ClientOption {
	return func(c *Client) {
		c.model = model
	}
}

func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL: defaultBaseURL,
		model:   defaultModel,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model                  string        `json:"model"`
	Messages               []chatMessage `json:"messages"`
	Temperature            float64       `json:"temperature"`
	TopP                   float64       `json:"top_p"`
	MaxTokens              int           `json:"max_tokens"`
	ReturnImages           bool          `json:"return_images"`
	ReturnRelatedQuestions bool          `json:"return_related_questions"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// GenerateSuggestionText 发送补全请求，返回分隔符拼接的建议原文
// key 为空直接返回未配置错误，不发起任何网络请求
func (c *Client) GenerateSuggestionText(ctx context.Context, apiKey string, patientMessage string) (string, error) {
	if strings.TrimSpace(apiKey) == "" {
		return "", xerr.ErrNotConfigured
	}

	reqBody := chatCompletionRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: fmt.Sprintf(`Paciente disse: "%s". Gere sugestões de resposta para o atendente da clínica médica.`, patientMessage)},
		},
		Temperature:            0.2,
		TopP:                   0.9,
		MaxTokens:              500,
		ReturnImages:           false,
		ReturnRelatedQuestions: false,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		zlog.Error("marshal suggestion request: " + err.Error())
		return "", xerr.ErrRequestFailed
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		zlog.Error("build suggestion request: " + err.Error())
		return "", xerr.ErrRequestFailed
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		zlog.Error("suggestion request failed: " + err.Error())
		return "", xerr.ErrRequestFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		zlog.Error(fmt.Sprintf("suggestion request failed: status=%d", resp.StatusCode))
		return "", xerr.ErrRequestFailed
	}

	var completion chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		zlog.Error("decode suggestion response: " + err.Error())
		return "", xerr.ErrMalformedResponse
	}
	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return "", xerr.ErrMalformedResponse
	}

	return completion.Choices[0].Message.Content, nil
}
