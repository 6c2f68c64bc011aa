// Package reminder schedules delayed and recurring callbacks. Jobs are
// persisted in SQLite so reminders survive process restarts; a ticker
// loop fires due jobs and advances or removes them.
package reminder

import (
	"time"

	"github.com/google/uuid"

	"github.com/awesomefanda/adjnt/internal/intent"
)

// Job is one scheduled reminder.
type Job struct {
	ID         string
	ChatID     string
	Message    string
	NextFire   time.Time
	Recurrence intent.Recurrence
	DayOfWeek  string // only with weekly
	Interval   int    // months between fires, only with monthly
}

// jobNamespace seeds deterministic job identifiers.
var jobNamespace = uuid.MustParse("7a1c9f4e-2b3d-4c5a-8e6f-1d2a3b4c5d6e")

// JobID derives the job identifier from conversation, reminder text and
// first-fire time. The same (conversation, text, instant) triple always
// yields the same id, so an accidental duplicate add upserts instead of
// multiplying rows, while two different reminders landing on the same
// instant keep distinct ids.
func JobID(conversationID, message string, fireAt time.Time) string {
	key := conversationID + "|" + message + "|" + fireAt.UTC().Format(time.RFC3339)
	return uuid.NewSHA1(jobNamespace, []byte(key)).String()
}
