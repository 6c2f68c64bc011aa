package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/awesomefanda/adjnt/internal/model"
	"github.com/awesomefanda/adjnt/internal/vault"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                 {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {
}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                 {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any) {}

func newRepo(t *testing.T) vault.Repository {
	t.Helper()
	repo, db, err := New(filepath.Join(t.TempDir(), "vault.db"), &mockLogger{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return repo
}

const conv = "1234567890@c.us"

func TestInsertAndList(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	if err := repo.InsertItems(ctx, conv, "apple", "Safeway", 3); err != nil {
		t.Fatalf("InsertItems: %v", err)
	}
	if err := repo.InsertItems(ctx, conv, "bread", "General", 1); err != nil {
		t.Fatalf("InsertItems: %v", err)
	}

	items, err := repo.ListItems(ctx, conv, "")
	if err != nil {
		t.Fatalf("ListItems: %v", err)
	}
	if len(items) != 4 {
		t.Fatalf("len(items) = %d, want 4", len(items))
	}
	// Discovery order: first inserted first.
	if items[0].Name != "apple" || items[3].Name != "bread" {
		t.Errorf("order wrong: %v ... %v", items[0].Name, items[3].Name)
	}

	scoped, err := repo.ListItems(ctx, conv, "Safeway")
	if err != nil {
		t.Fatalf("ListItems scoped: %v", err)
	}
	if len(scoped) != 3 {
		t.Errorf("Safeway rows = %d, want 3", len(scoped))
	}

	other, err := repo.ListItems(ctx, "other@c.us", "")
	if err != nil {
		t.Fatalf("ListItems other: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("cross-conversation leak: %d rows", len(other))
	}
}

func TestDeleteItems_Bounded(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	if err := repo.InsertItems(ctx, conv, "apple", "Safeway", 3); err != nil {
		t.Fatalf("InsertItems: %v", err)
	}

	n, err := repo.DeleteItems(ctx, conv, "apple", "", 1)
	if err != nil {
		t.Fatalf("DeleteItems: %v", err)
	}
	if n != 1 {
		t.Errorf("deleted = %d, want 1", n)
	}

	// Limit larger than the population deletes only what exists.
	n, err = repo.DeleteItems(ctx, conv, "apple", "", 10)
	if err != nil {
		t.Fatalf("DeleteItems: %v", err)
	}
	if n != 2 {
		t.Errorf("deleted = %d, want 2", n)
	}

	n, err = repo.DeleteItems(ctx, conv, "apple", "", 1)
	if err != nil {
		t.Fatalf("DeleteItems: %v", err)
	}
	if n != 0 {
		t.Errorf("deleted from empty vault = %d, want 0", n)
	}
}

func TestDeleteItems_StoreFilter(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	repo.InsertItems(ctx, conv, "juice", "Safeway", 2)
	repo.InsertItems(ctx, conv, "juice", "Costco", 1)

	n, err := repo.DeleteItems(ctx, conv, "juice", "Safeway", 0)
	if err != nil {
		t.Fatalf("DeleteItems: %v", err)
	}
	if n != 2 {
		t.Errorf("deleted = %d, want 2", n)
	}

	left, _ := repo.ListItems(ctx, conv, "")
	if len(left) != 1 || left[0].Store != "Costco" {
		t.Errorf("remaining = %+v", left)
	}
}

func TestClearStoreAndClearAll(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	repo.InsertItems(ctx, conv, "apple", "Safeway", 2)
	repo.InsertItems(ctx, conv, "bread", "General", 1)

	n, err := repo.ClearStore(ctx, conv, "Safeway")
	if err != nil {
		t.Fatalf("ClearStore: %v", err)
	}
	if n != 2 {
		t.Errorf("cleared = %d, want 2", n)
	}

	n, err = repo.ClearAll(ctx, conv)
	if err != nil {
		t.Fatalf("ClearAll: %v", err)
	}
	if n != 1 {
		t.Errorf("cleared = %d, want 1", n)
	}

	left, _ := repo.ListItems(ctx, conv, "")
	if len(left) != 0 {
		t.Errorf("vault not empty: %+v", left)
	}
}

func TestMoveItems_CountConserved(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	repo.InsertItems(ctx, conv, "juice", "Safeway", 3)

	n, err := repo.MoveItems(ctx, conv, "juice", "Safeway", "Kitchen", 0)
	if err != nil {
		t.Fatalf("MoveItems: %v", err)
	}
	if n != 3 {
		t.Errorf("moved = %d, want 3", n)
	}

	all, _ := repo.ListItems(ctx, conv, "")
	if len(all) != 3 {
		t.Fatalf("total juice rows = %d, want 3", len(all))
	}
	for _, it := range all {
		if it.Store != "Kitchen" {
			t.Errorf("row still in %s", it.Store)
		}
	}

	n, err = repo.MoveItems(ctx, conv, "juice", "Safeway", "Kitchen", 0)
	if err != nil {
		t.Fatalf("MoveItems: %v", err)
	}
	if n != 0 {
		t.Errorf("moved from empty source = %d, want 0", n)
	}
}

func TestMoveItems_SingleUnit(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	repo.InsertItems(ctx, conv, "juice", "Safeway", 2)

	n, err := repo.MoveItems(ctx, conv, "juice", "Safeway", "Kitchen", 1)
	if err != nil {
		t.Fatalf("MoveItems: %v", err)
	}
	if n != 1 {
		t.Errorf("moved = %d, want 1", n)
	}

	kitchen, _ := repo.ListItems(ctx, conv, "Kitchen")
	safeway, _ := repo.ListItems(ctx, conv, "Safeway")
	if len(kitchen) != 1 || len(safeway) != 1 {
		t.Errorf("kitchen=%d safeway=%d, want 1/1", len(kitchen), len(safeway))
	}
}

func TestFindStoreForItem(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	_, found, err := repo.FindStoreForItem(ctx, conv, "juice")
	if err != nil {
		t.Fatalf("FindStoreForItem: %v", err)
	}
	if found {
		t.Error("found store in empty vault")
	}

	repo.InsertItems(ctx, conv, "juice", "Safeway", 1)

	store, found, err := repo.FindStoreForItem(ctx, conv, "juice")
	if err != nil {
		t.Fatalf("FindStoreForItem: %v", err)
	}
	if !found || store != "Safeway" {
		t.Errorf("store = %q found = %v", store, found)
	}
}

func TestEnsureGroup_Idempotent(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	g := model.Group{ID: conv, Platform: "whatsapp", AdminID: "admin@c.us", IsActive: true}
	if err := repo.EnsureGroup(ctx, g); err != nil {
		t.Fatalf("EnsureGroup: %v", err)
	}
	if err := repo.EnsureGroup(ctx, g); err != nil {
		t.Fatalf("EnsureGroup second call: %v", err)
	}
}
