package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/awesomefanda/adjnt/internal/model"
)

func (r *implRepository) EnsureGroup(ctx context.Context, group model.Group) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO groups (id, platform, admin_id, is_active) VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO NOTHING`,
		group.ID, group.Platform, group.AdminID, boolToInt(group.IsActive))
	if err != nil {
		return fmt.Errorf("failed to ensure group %s: %w", group.ID, err)
	}
	return nil
}

func (r *implRepository) InsertItems(ctx context.Context, conversationID, name, store string, count int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin insert tx: %w", err)
	}
	defer tx.Rollback()

	for i := 0; i < count; i++ {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO items (name, store, conversation_id) VALUES (?, ?, ?)`,
			name, store, conversationID); err != nil {
			return fmt.Errorf("failed to insert item %s: %w", name, err)
		}
	}
	return tx.Commit()
}

func (r *implRepository) DeleteItems(ctx context.Context, conversationID, name, store string, limit int) (int, error) {
	query := `DELETE FROM items WHERE id IN (
		SELECT id FROM items WHERE conversation_id = ? AND name = ?`
	args := []any{conversationID, name}
	if store != "" {
		query += ` AND store = ?`
		args = append(args, store)
	}
	query += ` ORDER BY id`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	query += `)`

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete items %s: %w", name, err)
	}
	return rowsAffected(res)
}

func (r *implRepository) ClearStore(ctx context.Context, conversationID, store string) (int, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM items WHERE conversation_id = ? AND store = ?`,
		conversationID, store)
	if err != nil {
		return 0, fmt.Errorf("failed to clear store %s: %w", store, err)
	}
	return rowsAffected(res)
}

func (r *implRepository) ClearAll(ctx context.Context, conversationID string) (int, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM items WHERE conversation_id = ?`, conversationID)
	if err != nil {
		return 0, fmt.Errorf("failed to clear vault: %w", err)
	}
	return rowsAffected(res)
}

func (r *implRepository) ListItems(ctx context.Context, conversationID, store string) ([]model.Item, error) {
	query := `SELECT id, name, store, conversation_id, created_at FROM items WHERE conversation_id = ?`
	args := []any{conversationID}
	if store != "" {
		query += ` AND store = ?`
		args = append(args, store)
	}
	query += ` ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		var it model.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Store, &it.ConversationID, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *implRepository) MoveItems(ctx context.Context, conversationID, name, fromStore, toStore string, limit int) (int, error) {
	query := `UPDATE items SET store = ? WHERE id IN (
		SELECT id FROM items WHERE conversation_id = ? AND name = ? AND store = ? ORDER BY id`
	args := []any{toStore, conversationID, name, fromStore}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	query += `)`

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to move items %s: %w", name, err)
	}
	return rowsAffected(res)
}

func (r *implRepository) FindStoreForItem(ctx context.Context, conversationID, name string) (string, bool, error) {
	var store string
	err := r.db.QueryRowContext(ctx,
		`SELECT store FROM items WHERE conversation_id = ? AND name = ? ORDER BY id LIMIT 1`,
		conversationID, name).Scan(&store)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to look up store for %s: %w", name, err)
	}
	return store, true, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func rowsAffected(res interface{ RowsAffected() (int64, error) }) (int, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return int(n), nil
}
