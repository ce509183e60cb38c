package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"MedLink/pkg/xerr"
)

func TestGenerateSuggestionText_EmptyKeySkipsNetwork(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	_, err := client.GenerateSuggestionText(context.Background(), "", "mensagem")

	var codeErr *xerr.CodeError
	if !errors.As(err, &codeErr) || codeErr.Code != xerr.NotConfigured {
		t.Fatalf("err = %v, want NotConfigured", err)
	}
	if atomic.LoadInt32(&hits) != 0 {
		t.Errorf("request was sent despite missing key")
	}

	// 纯空白 key 同样算未配置
	_, err = client.GenerateSuggestionText(context.Background(), "   ", "mensagem")
	if !errors.As(err, &codeErr) || codeErr.Code != xerr.NotConfigured {
		t.Fatalf("err = %v, want NotConfigured", err)
	}
}

func TestGenerateSuggestionText_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("Content-Type = %q", got)
		}

		var body map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["model"] != "llama-3.1-sonar-small-128k-online" {
			t.Errorf("model = %v", body["model"])
		}
		if body["temperature"] != 0.2 || body["top_p"] != 0.9 {
			t.Errorf("sampling params: %v, %v", body["temperature"], body["top_p"])
		}
		if body["max_tokens"] != float64(500) {
			t.Errorf("max_tokens = %v", body["max_tokens"])
		}
		if body["return_images"] != false || body["return_related_questions"] != false {
			t.Errorf("perplexity flags: %v, %v", body["return_images"], body["return_related_questions"])
		}
		msgs, ok := body["messages"].([]interface{})
		if !ok || len(msgs) != 2 {
			t.Fatalf("messages = %v", body["messages"])
		}

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "Resposta A|||Resposta B|||Resposta C"}},
			},
		})
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	text, err := client.GenerateSuggestionText(context.Background(), "test-key", "Preciso remarcar consulta")
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if text != "Resposta A|||Resposta B|||Resposta C" {
		t.Errorf("text = %q", text)
	}
}

func TestGenerateSuggestionText_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	_, err := client.GenerateSuggestionText(context.Background(), "bad-key", "mensagem")

	var codeErr *xerr.CodeError
	if !errors.As(err, &codeErr) || codeErr.Code != xerr.RequestFailed {
		t.Fatalf("err = %v, want RequestFailed", err)
	}
}

func TestGenerateSuggestionText_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // 立刻关掉，强制连接失败

	client := NewClient(WithBaseURL(srv.URL))
	_, err := client.GenerateSuggestionText(context.Background(), "key", "mensagem")

	var codeErr *xerr.CodeError
	if !errors.As(err, &codeErr) || codeErr.Code != xerr.RequestFailed {
		t.Fatalf("err = %v, want RequestFailed", err)
	}
}

func TestGenerateSuggestionText_MalformedResponse(t *testing.T) {
	cases := []string{
		`{}`,
		`{"choices": []}`,
		`{"choices": [{"message": {}}]}`,
		`not json`,
	}
	for _, payload := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(payload))
		}))

		client := NewClient(WithBaseURL(srv.URL))
		_, err := client.GenerateSuggestionText(context.Background(), "key", "mensagem")
		srv.Close()

		var codeErr *xerr.CodeError
		if !errors.As(err, &codeErr) || codeErr.Code != xerr.MalformedResponse {
			t.Errorf("payload %q: err = %v, want MalformedResponse", payload, err)
		}
	}
}
