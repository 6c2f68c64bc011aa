package usecase

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/awesomefanda/adjnt/internal/assistant"
	"github.com/awesomefanda/adjnt/internal/intent/classifier"
)

func TestHandleMessage_EndToEnd(t *testing.T) {
	repo := newMockVaultRepo()
	cls := &fixedClassifier{result: classifier.Result{Candidate: classifier.Candidate{
		Intent: "TASK",
		Data:   json.RawMessage(`{"items":[{"name":"Eggs","count":3,"store":"safeway"}]}`),
	}}}
	uc := newTestUseCase(t, repo, newMockScheduler(), cls)

	reply, err := uc.HandleMessage(context.Background(), testScope, assistant.HandleMessageInput{
		Text: "add 3 eggs to safeway", Now: testNow,
	})
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if !replyContains(reply, "Added 3 x egg to Safeway") {
		t.Errorf("reply = %q", reply)
	}

	// Lazy group creation happened.
	if _, ok := repo.groups[testScope.ConversationID]; !ok {
		t.Error("group was not created on first message")
	}
	if repo.groups[testScope.ConversationID].AdminID != testScope.SenderID {
		t.Errorf("group admin = %q", repo.groups[testScope.ConversationID].AdminID)
	}
}

func TestHandleMessage_ClassifierFailureStillReplies(t *testing.T) {
	cls := &fixedClassifier{result: classifier.Result{Failed: true, Reason: "model unreachable"}}
	uc := newTestUseCase(t, newMockVaultRepo(), newMockScheduler(), cls)

	reply, err := uc.HandleMessage(context.Background(), testScope, assistant.HandleMessageInput{
		Text: "anything at all", Now: testNow,
	})
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if reply != ReplyUnknown {
		t.Errorf("reply = %q, want didn't-understand", reply)
	}
}

func TestHandleMessage_EmptyInput(t *testing.T) {
	uc := newTestUseCase(t, newMockVaultRepo(), newMockScheduler(), nil)

	reply, err := uc.HandleMessage(context.Background(), testScope, assistant.HandleMessageInput{
		Text: "   ", Now: testNow,
	})
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if reply != ReplyUnknown {
		t.Errorf("reply = %q", reply)
	}
}

func TestHandleMessage_StoreDownApologizes(t *testing.T) {
	repo := newMockVaultRepo()
	repo.err = context.DeadlineExceeded
	uc := newTestUseCase(t, repo, newMockScheduler(), nil)

	reply, err := uc.HandleMessage(context.Background(), testScope, assistant.HandleMessageInput{
		Text: "add eggs", Now: testNow,
	})
	if err == nil {
		t.Error("expected error for the log entry")
	}
	if reply != ReplyApology {
		t.Errorf("reply = %q, want apology", reply)
	}
}
