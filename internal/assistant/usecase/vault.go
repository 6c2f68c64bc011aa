package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/awesomefanda/adjnt/internal/assistant"
	"github.com/awesomefanda/adjnt/internal/intent"
	"github.com/awesomefanda/adjnt/internal/model"
)

func (uc *implUseCase) executeTask(ctx context.Context, sc model.Scope, data *intent.TaskData) (string, error) {
	var lines []string
	for _, item := range data.Items {
		store := item.Store
		// Auto-location: an unqualified add of something already kept
		// elsewhere goes to where it already lives, not the General bucket.
		if store == intent.DefaultStore {
			existing, found, err := uc.vaultRepo.FindStoreForItem(ctx, sc.ConversationID, item.Name)
			if err != nil {
				uc.l.Errorf(ctx, "%s: auto-location lookup failed: %v", LogPrefixExecute, err)
				return ReplyApology, assistant.ErrVaultUnavailable
			}
			if found {
				store = existing
			}
		}

		if err := uc.vaultRepo.InsertItems(ctx, sc.ConversationID, item.Name, store, item.Count); err != nil {
			uc.l.Errorf(ctx, "%s: failed to insert %s: %v", LogPrefixExecute, item.Name, err)
			return ReplyApology, assistant.ErrVaultUnavailable
		}
		lines = append(lines, fmt.Sprintf("Added %d x %s to %s.", item.Count, item.Name, store))
	}
	return strings.Join(lines, "\n"), nil
}

func (uc *implUseCase) executeDelete(ctx context.Context, sc model.Scope, data *intent.DeleteData) (string, error) {
	switch data.Mode {
	case intent.DeleteClearAll:
		n, err := uc.vaultRepo.ClearAll(ctx, sc.ConversationID)
		if err != nil {
			uc.l.Errorf(ctx, "%s: clear all failed: %v", LogPrefixExecute, err)
			return ReplyApology, assistant.ErrVaultUnavailable
		}
		if n == 0 {
			return ReplyVaultEmpty, nil
		}
		return fmt.Sprintf("Cleared your vault (%d items).", n), nil

	case intent.DeleteClearStore:
		n, err := uc.vaultRepo.ClearStore(ctx, sc.ConversationID, data.Store)
		if err != nil {
			uc.l.Errorf(ctx, "%s: clear store %s failed: %v", LogPrefixExecute, data.Store, err)
			return ReplyApology, assistant.ErrVaultUnavailable
		}
		if n == 0 {
			return fmt.Sprintf("Nothing found in %s.", data.Store), nil
		}
		return fmt.Sprintf("Cleared %d items from %s.", n, data.Store), nil

	default:
		var lines []string
		for _, item := range data.Items {
			limit := 0
			if data.Mode == intent.DeleteSingle {
				limit = item.Count
			}
			n, err := uc.vaultRepo.DeleteItems(ctx, sc.ConversationID, item.Name, item.Store, limit)
			if err != nil {
				uc.l.Errorf(ctx, "%s: failed to delete %s: %v", LogPrefixExecute, item.Name, err)
				return ReplyApology, assistant.ErrVaultUnavailable
			}
			if n == 0 {
				lines = append(lines, fmt.Sprintf("No %s found in your vault.", item.Name))
			} else {
				lines = append(lines, fmt.Sprintf("Removed %d x %s.", n, item.Name))
			}
		}
		return strings.Join(lines, "\n"), nil
	}
}

func (uc *implUseCase) executeList(ctx context.Context, sc model.Scope, data *intent.ListData) (string, error) {
	storeFilter := data.Store
	if storeFilter == intent.AllStores {
		storeFilter = ""
	}

	items, err := uc.vaultRepo.ListItems(ctx, sc.ConversationID, storeFilter)
	if err != nil {
		uc.l.Errorf(ctx, "%s: list failed: %v", LogPrefixExecute, err)
		return ReplyApology, assistant.ErrVaultUnavailable
	}
	if len(items) == 0 {
		if storeFilter != "" {
			return fmt.Sprintf("Nothing found in %s.", storeFilter), nil
		}
		return ReplyVaultEmpty, nil
	}

	return formatVault(items), nil
}

func (uc *implUseCase) executeMove(ctx context.Context, sc model.Scope, data *intent.MoveData) (string, error) {
	limit := 0
	if !data.MoveAll {
		limit = 1
	}
	n, err := uc.vaultRepo.MoveItems(ctx, sc.ConversationID, data.Item, data.FromStore, data.ToStore, limit)
	if err != nil {
		uc.l.Errorf(ctx, "%s: failed to move %s: %v", LogPrefixExecute, data.Item, err)
		return ReplyApology, assistant.ErrVaultUnavailable
	}
	if n == 0 {
		return fmt.Sprintf("No %s found in %s.", data.Item, data.FromStore), nil
	}
	return fmt.Sprintf("Moved %d x %s from %s to %s.", n, data.Item, data.FromStore, data.ToStore), nil
}

// formatVault groups rows by store, then by name, both in discovery
// order, with a unit count per name.
func formatVault(items []model.Item) string {
	type entry struct {
		name  string
		count int
	}
	type storeGroup struct {
		store   string
		entries []entry
	}

	var groups []storeGroup
	storeIdx := make(map[string]int)
	entryIdx := make(map[string]int) // store+"\x00"+name

	for _, it := range items {
		gi, ok := storeIdx[it.Store]
		if !ok {
			gi = len(groups)
			storeIdx[it.Store] = gi
			groups = append(groups, storeGroup{store: it.Store})
		}
		key := it.Store + "\x00" + it.Name
		if ei, ok := entryIdx[key]; ok {
			groups[gi].entries[ei].count++
		} else {
			entryIdx[key] = len(groups[gi].entries)
			groups[gi].entries = append(groups[gi].entries, entry{name: it.Name, count: 1})
		}
	}

	var b strings.Builder
	b.WriteString("Your vault:")
	for _, g := range groups {
		b.WriteString("\n\n*" + g.store + "*")
		for _, e := range g.entries {
			fmt.Fprintf(&b, "\n- %s x %d", e.name, e.count)
		}
	}
	return b.String()
}
