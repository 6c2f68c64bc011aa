package classifier

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                 {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {
}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// fakeCompleter returns a canned response or error and records the
// prompts it was called with.
type fakeCompleter struct {
	response string
	err      error
	calls    int
	lastSys  string
	lastUser string
}

func (f *fakeCompleter) Complete(ctx context.Context, system, user string) (string, error) {
	f.calls++
	f.lastSys = system
	f.lastUser = user
	return f.response, f.err
}

func TestClassify_Shortcuts(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{"help", "ONBOARD"},
		{"  Help  ", "ONBOARD"},
		{"guide", "ONBOARD"},
		{"list", "LIST"},
		{"Show List", "LIST"},
		{"show vault", "LIST"},
		{"list reminders", "LIST_REMINDERS"},
		{"My Reminders", "LIST_REMINDERS"},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			fake := &fakeCompleter{}
			c := New(fake, &mockLogger{}, time.Second)

			result := c.Classify(context.Background(), tt.message, time.Now())
			if result.Failed {
				t.Fatalf("expected success, got failure: %s", result.Reason)
			}
			if result.Candidate.Intent != tt.want {
				t.Errorf("intent = %s, want %s", result.Candidate.Intent, tt.want)
			}
			if fake.calls != 0 {
				t.Errorf("expected no completion call, got %d", fake.calls)
			}
		})
	}
}

func TestClassify_ParsesResponse(t *testing.T) {
	fake := &fakeCompleter{
		response: `{"intent":"TASK","data":{"items":[{"name":"eggs","count":3,"store":"Safeway"}]}}`,
	}
	c := New(fake, &mockLogger{}, time.Second)

	result := c.Classify(context.Background(), "add 3 eggs to Safeway", time.Now())
	if result.Failed {
		t.Fatalf("expected success, got failure: %s", result.Reason)
	}
	if result.Candidate.Intent != "TASK" {
		t.Errorf("intent = %s, want TASK", result.Candidate.Intent)
	}

	var data struct {
		Items []struct {
			Name  string `json:"name"`
			Count int    `json:"count"`
			Store string `json:"store"`
		} `json:"items"`
	}
	if err := json.Unmarshal(result.Candidate.Data, &data); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
	if len(data.Items) != 1 || data.Items[0].Name != "eggs" || data.Items[0].Count != 3 {
		t.Errorf("unexpected items: %+v", data.Items)
	}
}

func TestClassify_StripsMarkdownFences(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"json fence", "```json\n{\"intent\":\"CHAT\",\"data\":{\"answer\":\"hi\"}}\n```"},
		{"bare fence", "```\n{\"intent\":\"CHAT\",\"data\":{\"answer\":\"hi\"}}\n```"},
		{"no fence", `{"intent":"CHAT","data":{"answer":"hi"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeCompleter{response: tt.response}
			c := New(fake, &mockLogger{}, time.Second)

			result := c.Classify(context.Background(), "hello there", time.Now())
			if result.Failed {
				t.Fatalf("expected success, got failure: %s", result.Reason)
			}
			if result.Candidate.Intent != "CHAT" {
				t.Errorf("intent = %s, want CHAT", result.Candidate.Intent)
			}
		})
	}
}

func TestClassify_FailuresDegrade(t *testing.T) {
	tests := []struct {
		name       string
		response   string
		err        error
		wantReason string
	}{
		{"call error", "", errors.New("connection refused"), ReasonCompletionFailed},
		{"empty response", "", nil, ReasonEmptyResponse},
		{"invalid json", "I think you want to add eggs", nil, ReasonInvalidJSON},
		{"missing intent", `{"data":{}}`, nil, ReasonInvalidJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeCompleter{response: tt.response, err: tt.err}
			c := New(fake, &mockLogger{}, time.Second)

			result := c.Classify(context.Background(), "add eggs", time.Now())
			if !result.Failed {
				t.Fatal("expected failure result")
			}
			if result.Reason != tt.wantReason {
				t.Errorf("reason = %s, want %s", result.Reason, tt.wantReason)
			}
		})
	}
}

func TestClassify_PromptCarriesReferenceTime(t *testing.T) {
	fake := &fakeCompleter{response: `{"intent":"TIME","data":{}}`}
	c := New(fake, &mockLogger{}, time.Second)

	now := time.Date(2026, 8, 25, 14, 30, 0, 0, time.UTC) // a Tuesday
	c.Classify(context.Background(), "what time is it", now)

	want := "2026-08-25 14:30:00 (Tuesday)"
	if !strings.Contains(fake.lastSys, want) {
		t.Errorf("system prompt missing reference time %q", want)
	}
	if fake.lastUser != "what time is it" {
		t.Errorf("user prompt = %q", fake.lastUser)
	}
}
