package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/openai/openai-go/v3/option"

	"hrconsole/internal/domain/assistant"
)

func TestGenerateTextSendsJSONModeRequest(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"c1","object":"chat.completion","created":1,"model":"gpt-4o-mini",
			"choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"{\"questions\":[\"Q1\"]}"}}]}`))
	}))
	defer srv.Close()

	gen := NewOpenAIGenerator("test-key", "", option.WithBaseURL(srv.URL), option.WithMaxRetries(0))
	text, err := gen.GenerateText(context.Background(), assistant.Prompt{System: "sys", User: "hello"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if text != `{"questions":["Q1"]}` {
		t.Fatalf("unexpected text %q", text)
	}
	if got["model"] != DefaultModel {
		t.Fatalf("expected default model, got %v", got["model"])
	}
	format, _ := got["response_format"].(map[string]any)
	if format["type"] != "json_object" {
		t.Fatalf("expected json_object response format, got %v", got["response_format"])
	}
	if msgs, _ := got["messages"].([]any); len(msgs) != 2 {
		t.Fatalf("expected system and user messages, got %v", got["messages"])
	}
}

func TestGenerateTextNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"c1","object":"chat.completion","created":1,"model":"m","choices":[]}`))
	}))
	defer srv.Close()

	gen := NewOpenAIGenerator("test-key", "m", option.WithBaseURL(srv.URL), option.WithMaxRetries(0))
	if _, err := gen.GenerateText(context.Background(), assistant.Prompt{User: "hello"}); err == nil {
		t.Fatal("expected error for empty choices")
	}
}
