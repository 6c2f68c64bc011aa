package llm_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/awesomefanda/adjnt/pkg/llm"
)

func TestClientComplete(t *testing.T) {
	t.Run("returns message content", func(t *testing.T) {
		var gotBody map[string]interface{}
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/chat/completions" {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			json.NewDecoder(r.Body).Decode(&gotBody)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"id": "cmpl-1",
				"choices": [{"message": {"role": "assistant", "content": "{\"intent\":\"CHAT\"}"}}]
			}`))
		}))
		defer ts.Close()

		client := llm.NewClient(ts.URL, "test-key", "llama3.1")
		out, err := client.Complete(context.Background(), "system prompt", "hello")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out != `{"intent":"CHAT"}` {
			t.Errorf("unexpected content: %s", out)
		}

		if gotBody["model"] != "llama3.1" {
			t.Errorf("unexpected model: %v", gotBody["model"])
		}
		msgs, _ := gotBody["messages"].([]interface{})
		if len(msgs) != 2 {
			t.Fatalf("expected 2 messages, got %d", len(msgs))
		}
		first, _ := msgs[0].(map[string]interface{})
		if first["role"] != "system" || first["content"] != "system prompt" {
			t.Errorf("unexpected system message: %v", first)
		}
		format, _ := gotBody["response_format"].(map[string]interface{})
		if format["type"] != "json_object" {
			t.Errorf("expected forced JSON output, got %v", gotBody["response_format"])
		}
	})

	t.Run("empty choices", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"id": "cmpl-2", "choices": []}`))
		}))
		defer ts.Close()

		client := llm.NewClient(ts.URL, "test-key", "llama3.1")
		if _, err := client.Complete(context.Background(), "sys", "user"); err == nil {
			t.Fatalf("expected error on empty choices")
		}
	})

	t.Run("server error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer ts.Close()

		client := llm.NewClient(ts.URL, "test-key", "llama3.1")
		if _, err := client.Complete(context.Background(), "sys", "user"); err == nil {
			t.Fatalf("expected error from failing server")
		}
	})

	t.Run("model accessor", func(t *testing.T) {
		client := llm.NewClient("", "key", "qwen2.5")
		if client.Model() != "qwen2.5" {
			t.Errorf("unexpected model: %s", client.Model())
		}
	})
}
