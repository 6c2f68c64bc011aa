package waha_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/awesomefanda/adjnt/pkg/waha"
)

func TestSendText(t *testing.T) {
	var lastPayload waha.SendTextRequest

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/api/sendText") {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		json.NewDecoder(r.Body).Decode(&lastPayload)

		if lastPayload.Text == "cause_error" {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error": "invalid chat"}`))
			return
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": "msg-1"}`))
	}))
	defer ts.Close()

	client := waha.NewClient(ts.URL, "default")

	t.Run("Success", func(t *testing.T) {
		if err := client.SendText("123@c.us", "hello"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if lastPayload.ChatID != "123@c.us" || lastPayload.Text != "hello" || lastPayload.Session != "default" {
			t.Errorf("unexpected payload: %+v", lastPayload)
		}
	})

	t.Run("API Failure", func(t *testing.T) {
		err := client.SendText("123@c.us", "cause_error")
		if err == nil || !strings.Contains(err.Error(), "invalid chat") {
			t.Fatalf("expected api failure error, got: %v", err)
		}
	})

	t.Run("Network Failure", func(t *testing.T) {
		bad := waha.NewClient("http://invalid-host.local:1", "default")
		if err := bad.SendText("123@c.us", "hi"); err == nil {
			t.Errorf("expected network failure")
		}
	})

	t.Run("Empty session defaults", func(t *testing.T) {
		c := waha.NewClient(ts.URL, "")
		if err := c.SendText("123@c.us", "hi"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if lastPayload.Session != "default" {
			t.Errorf("expected default session, got %q", lastPayload.Session)
		}
	})
}
