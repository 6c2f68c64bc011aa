package assistant

import (
	"context"
	"time"

	"github.com/awesomefanda/adjnt/internal/intent"
	"github.com/awesomefanda/adjnt/internal/model"
)

// UseCase defines the business logic interface for the assistant domain.
type UseCase interface {
	// HandleMessage runs one inbound message end to end: lazy group
	// creation, classification, validation, execution. It always returns
	// a reply string; the error, when non-nil, exists for the caller's
	// log entry and never suppresses the reply.
	HandleMessage(ctx context.Context, sc model.Scope, input HandleMessageInput) (string, error)

	// Execute performs a canonical action's side effects and builds the
	// reply text.
	Execute(ctx context.Context, sc model.Scope, action intent.Action, now time.Time) (string, error)
}
