package vault

import (
	"context"

	"github.com/awesomefanda/adjnt/internal/model"
)

// Repository is the persistence interface for the vault domain: one row
// per item unit, scoped to a conversation.
type Repository interface {
	// EnsureGroup creates the conversation record if it does not exist yet.
	EnsureGroup(ctx context.Context, group model.Group) error

	// InsertItems inserts count rows of name under store.
	InsertItems(ctx context.Context, conversationID, name, store string, count int) error

	// DeleteItems removes rows matching name (and store, when non-empty),
	// oldest first, at most limit rows when limit > 0. Returns rows removed.
	DeleteItems(ctx context.Context, conversationID, name, store string, limit int) (int, error)

	// ClearStore removes every row in the named store. Returns rows removed.
	ClearStore(ctx context.Context, conversationID, store string) (int, error)

	// ClearAll removes every row for the conversation. Returns rows removed.
	ClearAll(ctx context.Context, conversationID string) (int, error)

	// ListItems returns rows in discovery order, optionally scoped to one
	// store (empty store means all).
	ListItems(ctx context.Context, conversationID, store string) ([]model.Item, error)

	// MoveItems reassigns rows matching name+fromStore to toStore, at most
	// limit rows when limit > 0. Returns rows moved.
	MoveItems(ctx context.Context, conversationID, name, fromStore, toStore string, limit int) (int, error)

	// FindStoreForItem returns the store of the oldest existing row with
	// this name, if any.
	FindStoreForItem(ctx context.Context, conversationID, name string) (string, bool, error)
}
