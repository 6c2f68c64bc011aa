package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/awesomefanda/adjnt/internal/intent/classifier"
	"github.com/awesomefanda/adjnt/internal/model"
	"github.com/awesomefanda/adjnt/internal/reminder"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

// mockVaultRepo is an in-memory vault.Repository.
type mockVaultRepo struct {
	nextID int64
	items  []model.Item
	groups map[string]model.Group
	err    error // when set, every call fails with it
}

func newMockVaultRepo() *mockVaultRepo {
	return &mockVaultRepo{groups: make(map[string]model.Group)}
}

func (m *mockVaultRepo) EnsureGroup(ctx context.Context, group model.Group) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.groups[group.ID]; !ok {
		m.groups[group.ID] = group
	}
	return nil
}

func (m *mockVaultRepo) InsertItems(ctx context.Context, conversationID, name, store string, count int) error {
	if m.err != nil {
		return m.err
	}
	for i := 0; i < count; i++ {
		m.nextID++
		m.items = append(m.items, model.Item{
			ID: m.nextID, Name: name, Store: store, ConversationID: conversationID,
		})
	}
	return nil
}

func (m *mockVaultRepo) DeleteItems(ctx context.Context, conversationID, name, store string, limit int) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	deleted := 0
	kept := m.items[:0]
	for _, it := range m.items {
		match := it.ConversationID == conversationID && it.Name == name &&
			(store == "" || it.Store == store) &&
			(limit <= 0 || deleted < limit)
		if match {
			deleted++
			continue
		}
		kept = append(kept, it)
	}
	m.items = kept
	return deleted, nil
}

func (m *mockVaultRepo) ClearStore(ctx context.Context, conversationID, store string) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	cleared := 0
	kept := m.items[:0]
	for _, it := range m.items {
		if it.ConversationID == conversationID && it.Store == store {
			cleared++
			continue
		}
		kept = append(kept, it)
	}
	m.items = kept
	return cleared, nil
}

func (m *mockVaultRepo) ClearAll(ctx context.Context, conversationID string) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	cleared := 0
	kept := m.items[:0]
	for _, it := range m.items {
		if it.ConversationID == conversationID {
			cleared++
			continue
		}
		kept = append(kept, it)
	}
	m.items = kept
	return cleared, nil
}

func (m *mockVaultRepo) ListItems(ctx context.Context, conversationID, store string) ([]model.Item, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []model.Item
	for _, it := range m.items {
		if it.ConversationID == conversationID && (store == "" || it.Store == store) {
			out = append(out, it)
		}
	}
	return out, nil
}

func (m *mockVaultRepo) MoveItems(ctx context.Context, conversationID, name, fromStore, toStore string, limit int) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	moved := 0
	for i := range m.items {
		if m.items[i].ConversationID == conversationID && m.items[i].Name == name && m.items[i].Store == fromStore {
			if limit > 0 && moved >= limit {
				break
			}
			m.items[i].Store = toStore
			moved++
		}
	}
	return moved, nil
}

func (m *mockVaultRepo) FindStoreForItem(ctx context.Context, conversationID, name string) (string, bool, error) {
	if m.err != nil {
		return "", false, m.err
	}
	for _, it := range m.items {
		if it.ConversationID == conversationID && it.Name == name {
			return it.Store, true, nil
		}
	}
	return "", false, nil
}

// countByStore tallies rows named name per store.
func (m *mockVaultRepo) countByStore(name string) map[string]int {
	out := make(map[string]int)
	for _, it := range m.items {
		if it.Name == name {
			out[it.Store]++
		}
	}
	return out
}

// mockScheduler is an in-memory reminder.Scheduler.
type mockScheduler struct {
	jobs map[string]reminder.Job
	err  error
}

func newMockScheduler() *mockScheduler {
	return &mockScheduler{jobs: make(map[string]reminder.Job)}
}

func (m *mockScheduler) Add(ctx context.Context, job reminder.Job) error {
	if m.err != nil {
		return m.err
	}
	m.jobs[job.ID] = job
	return nil
}

func (m *mockScheduler) Remove(ctx context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	delete(m.jobs, id)
	return nil
}

func (m *mockScheduler) ListByChat(ctx context.Context, chatID string) ([]reminder.Job, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []reminder.Job
	for _, job := range m.jobs {
		if job.ChatID == chatID {
			out = append(out, job)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].NextFire.Before(out[j].NextFire) })
	return out, nil
}

// fixedClassifier returns a canned result without any model call.
type fixedClassifier struct {
	result classifier.Result
}

func (f *fixedClassifier) Classify(ctx context.Context, message string, now time.Time) classifier.Result {
	return f.result
}

// replyContains is a small assertion helper.
func replyContains(reply, want string) bool {
	return strings.Contains(reply, want)
}
