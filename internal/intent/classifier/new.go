package classifier

import (
	"context"
	"time"

	"github.com/awesomefanda/adjnt/pkg/llm"
	"github.com/awesomefanda/adjnt/pkg/log"
)

// Classifier turns a free-text message into an intent candidate.
type Classifier interface {
	Classify(ctx context.Context, message string, now time.Time) Result
}

// SemanticClassifier classifies messages with an LLM, short-circuiting
// a small set of exact phrases that never need a model call.
type SemanticClassifier struct {
	llm     llm.Completer
	l       log.Logger
	timeout time.Duration
}

// Ensure SemanticClassifier implements Classifier interface
var _ Classifier = (*SemanticClassifier)(nil)

// New creates a new SemanticClassifier. A non-positive timeout falls
// back to 30 seconds.
func New(completer llm.Completer, l log.Logger, timeout time.Duration) *SemanticClassifier {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &SemanticClassifier{
		llm:     completer,
		l:       l,
		timeout: timeout,
	}
}
