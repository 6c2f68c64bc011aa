package validator

import (
	"context"
	"time"

	"github.com/awesomefanda/adjnt/internal/intent"
	"github.com/awesomefanda/adjnt/internal/intent/classifier"
	"github.com/awesomefanda/adjnt/pkg/datemath"
	"github.com/awesomefanda/adjnt/pkg/log"
)

// Validator turns a raw classification result into a canonical action.
type Validator interface {
	Validate(ctx context.Context, result classifier.Result, now time.Time) intent.Action
}

// ActionValidator enforces the per-intent schema, normalizes names and
// stores, resolves timestamps and fills defaults. It is total: every
// input, including garbage, produces an action.
type ActionValidator struct {
	parser *datemath.Parser
	l      log.Logger
}

// Ensure ActionValidator implements Validator interface
var _ Validator = (*ActionValidator)(nil)

// New creates a new ActionValidator.
func New(parser *datemath.Parser, l log.Logger) *ActionValidator {
	return &ActionValidator{
		parser: parser,
		l:      l,
	}
}
