package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// shortcuts maps exact lower-cased messages to an intent, skipping the
// model round-trip for phrases with one possible meaning.
var shortcuts = map[string]string{
	"help":           "ONBOARD",
	"guide":          "ONBOARD",
	"?":              "ONBOARD",
	"list":           "LIST",
	"show list":      "LIST",
	"show vault":     "LIST",
	"list items":     "LIST",
	"reminders":      "LIST_REMINDERS",
	"list reminders": "LIST_REMINDERS",
	"show reminders": "LIST_REMINDERS",
	"my reminders":   "LIST_REMINDERS",
}

// Classify determines the user's intent from a single message. It is
// total: every failure degrades to Result{Failed: true} instead of an
// error, and the reference time is threaded in so two calls with equal
// inputs produce equal outputs.
func (c *SemanticClassifier) Classify(ctx context.Context, message string, now time.Time) Result {
	trimmed := strings.ToLower(strings.TrimSpace(message))
	if intent, ok := shortcuts[trimmed]; ok {
		c.l.Debugf(ctx, "%s: shortcut matched %q -> %s", LogPrefixClassify, trimmed, intent)
		return Result{Candidate: Candidate{Intent: intent, Data: json.RawMessage(`{}`)}}
	}

	system := fmt.Sprintf(PromptSystem, now.Format("2006-01-02 15:04:05 (Monday)"))

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	responseText, err := c.llm.Complete(callCtx, system, message)
	if err != nil {
		c.l.Warnf(ctx, "%s: %s: %v", LogPrefixClassify, ReasonCompletionFailed, err)
		return Result{Failed: true, Reason: ReasonCompletionFailed}
	}

	// Strip markdown code blocks if present (```json ... ```)
	responseText = strings.TrimSpace(responseText)
	if strings.HasPrefix(responseText, "```json") {
		responseText = strings.TrimPrefix(responseText, "```json")
		responseText = strings.TrimSuffix(responseText, "```")
		responseText = strings.TrimSpace(responseText)
	} else if strings.HasPrefix(responseText, "```") {
		responseText = strings.TrimPrefix(responseText, "```")
		responseText = strings.TrimSuffix(responseText, "```")
		responseText = strings.TrimSpace(responseText)
	}

	if responseText == "" {
		c.l.Warnf(ctx, "%s: %s", LogPrefixClassify, ReasonEmptyResponse)
		return Result{Failed: true, Reason: ReasonEmptyResponse}
	}

	var candidate Candidate
	if err := json.Unmarshal([]byte(responseText), &candidate); err != nil {
		c.l.Warnf(ctx, "%s: %s: %v", LogPrefixClassify, ReasonInvalidJSON, err)
		return Result{Failed: true, Reason: ReasonInvalidJSON}
	}
	if candidate.Intent == "" {
		c.l.Warnf(ctx, "%s: response carried no intent field", LogPrefixClassify)
		return Result{Failed: true, Reason: ReasonInvalidJSON}
	}

	c.l.Infof(ctx, "%s: classified as %s", LogPrefixClassify, candidate.Intent)
	return Result{Candidate: candidate}
}
