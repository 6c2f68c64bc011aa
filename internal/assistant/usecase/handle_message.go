package usecase

import (
	"context"
	"strings"

	"github.com/awesomefanda/adjnt/internal/assistant"
	"github.com/awesomefanda/adjnt/internal/model"
)

// HandleMessage runs one inbound message through the full pipeline.
// Every failure path resolves to a reply string; the returned error only
// feeds the caller's log entry.
func (uc *implUseCase) HandleMessage(ctx context.Context, sc model.Scope, input assistant.HandleMessageInput) (string, error) {
	// Lazy group creation: a previously unseen conversation is recorded
	// on its first message.
	if err := uc.vaultRepo.EnsureGroup(ctx, model.Group{
		ID:       sc.ConversationID,
		Platform: "whatsapp",
		AdminID:  sc.SenderID,
		IsActive: true,
	}); err != nil {
		uc.l.Errorf(ctx, "%s: failed to ensure group: %v", LogPrefixHandleMessage, err)
		return ReplyApology, assistant.ErrVaultUnavailable
	}

	if strings.TrimSpace(input.Text) == "" {
		return ReplyUnknown, nil
	}

	result := uc.classifier.Classify(ctx, input.Text, input.Now)
	action := uc.validator.Validate(ctx, result, input.Now)

	uc.l.Infof(ctx, "%s: conversation=%s intent=%s", LogPrefixHandleMessage, sc.ConversationID, action.Intent)

	return uc.Execute(ctx, sc, action, input.Now)
}
