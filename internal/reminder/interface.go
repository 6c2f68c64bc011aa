package reminder

import "context"

// Scheduler is the scheduling service interface the executor depends
// on. All methods are safe for concurrent use.
type Scheduler interface {
	// Add persists a job. Adding an id that already exists overwrites the
	// stored job (same id means same conversation and fire time).
	Add(ctx context.Context, job Job) error

	// Remove deletes a job by id. Removing an unknown id is not an error.
	Remove(ctx context.Context, id string) error

	// ListByChat returns the conversation's jobs ordered by next fire time.
	ListByChat(ctx context.Context, chatID string) ([]Job, error)
}
