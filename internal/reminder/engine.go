package reminder

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	// Import the SQLite driver.
	_ "modernc.org/sqlite"

	"github.com/awesomefanda/adjnt/internal/intent"
	"github.com/awesomefanda/adjnt/pkg/log"
)

const (
	LogPrefixEngine = "internal.reminder.Engine"

	// DefaultCheckInterval is how often the loop looks for due jobs.
	DefaultCheckInterval = 30 * time.Second
)

const schema = `
CREATE TABLE IF NOT EXISTS reminders (
	id TEXT PRIMARY KEY,
	chat_id TEXT NOT NULL,
	message TEXT NOT NULL,
	next_fire TEXT NOT NULL,
	recurrence TEXT NOT NULL DEFAULT '',
	day_of_week TEXT NOT NULL DEFAULT '',
	recur_interval INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_reminders_chat ON reminders(chat_id, next_fire);
`

// NotifyFunc delivers a fired reminder to its conversation.
type NotifyFunc func(ctx context.Context, chatID, text string)

// Engine is the SQLite-backed scheduler: a job table plus a ticker loop
// that fires due jobs, advancing recurring ones and deleting one-shots.
type Engine struct {
	db       *sql.DB
	l        log.Logger
	interval time.Duration
	notify   NotifyFunc
	loc      *time.Location

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// Ensure Engine implements Scheduler interface
var _ Scheduler = (*Engine)(nil)

// NewEngine opens (creating if needed) the reminder database at dsn.
// Recurrence advancement happens in loc so the wall-clock hour survives
// daylight-saving transitions. A non-positive interval falls back to
// DefaultCheckInterval; a nil loc falls back to the process zone.
func NewEngine(dsn string, interval time.Duration, loc *time.Location, notify NotifyFunc, l log.Logger) (*Engine, error) {
	if dsn == "" {
		return nil, fmt.Errorf("reminder engine: dsn required")
	}
	if interval <= 0 {
		interval = DefaultCheckInterval
	}
	if loc == nil {
		loc = time.Local
	}

	db, err := sql.Open("sqlite", dsn+"?_pragma=foreign_keys(0)&_pragma=busy_timeout(10000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("reminder engine: failed to open %s: %w", dsn, err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("reminder engine: failed to prepare schema: %w", err)
	}

	return &Engine{
		db:       db,
		l:        l,
		interval: interval,
		notify:   notify,
		loc:      loc,
		stopCh:   make(chan struct{}),
	}, nil
}

// Start launches the ticker loop. Call Stop to drain it.
func (e *Engine) Start(ctx context.Context) {
	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		ticker := time.NewTicker(e.interval)
		defer ticker.Stop()
		for {
			select {
			case <-e.stopCh:
				return
			case <-ctx.Done():
				return
			case <-ticker.C:
				e.fireDue(ctx, time.Now())
			}
		}
	}()
}

// Stop halts the loop and closes the database.
func (e *Engine) Stop() {
	e.stopOnce.Do(func() { close(e.stopCh) })
	e.wg.Wait()
	e.db.Close()
}

func (e *Engine) Add(ctx context.Context, job Job) error {
	_, err := e.db.ExecContext(ctx,
		`INSERT INTO reminders (id, chat_id, message, next_fire, recurrence, day_of_week, recur_interval)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET message = excluded.message,
			next_fire = excluded.next_fire, recurrence = excluded.recurrence,
			day_of_week = excluded.day_of_week, recur_interval = excluded.recur_interval`,
		job.ID, job.ChatID, job.Message, encodeTime(job.NextFire),
		string(job.Recurrence), job.DayOfWeek, job.Interval)
	if err != nil {
		return fmt.Errorf("failed to add reminder %s: %w", job.ID, err)
	}
	return nil
}

func (e *Engine) Remove(ctx context.Context, id string) error {
	if _, err := e.db.ExecContext(ctx, `DELETE FROM reminders WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to remove reminder %s: %w", id, err)
	}
	return nil
}

func (e *Engine) ListByChat(ctx context.Context, chatID string) ([]Job, error) {
	rows, err := e.db.QueryContext(ctx,
		`SELECT id, chat_id, message, next_fire, recurrence, day_of_week, recur_interval
		 FROM reminders WHERE chat_id = ? ORDER BY next_fire`, chatID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}
	defer rows.Close()
	return scanJobs(rows)
}

// fireDue delivers every job whose fire time has passed, then advances
// recurring jobs and deletes one-shots. Each job is handled in its own
// statement so one bad row cannot wedge the loop.
func (e *Engine) fireDue(ctx context.Context, now time.Time) {
	rows, err := e.db.QueryContext(ctx,
		`SELECT id, chat_id, message, next_fire, recurrence, day_of_week, recur_interval
		 FROM reminders WHERE next_fire <= ? ORDER BY next_fire`, encodeTime(now))
	if err != nil {
		e.l.Errorf(ctx, "%s: failed to query due jobs: %v", LogPrefixEngine, err)
		return
	}
	due, err := scanJobs(rows)
	rows.Close()
	if err != nil {
		e.l.Errorf(ctx, "%s: failed to scan due jobs: %v", LogPrefixEngine, err)
		return
	}

	for _, job := range due {
		if e.notify != nil {
			e.notify(ctx, job.ChatID, job.Message)
		}

		next, ok := NextOccurrence(job, job.NextFire.In(e.loc))
		if !ok {
			if err := e.Remove(ctx, job.ID); err != nil {
				e.l.Errorf(ctx, "%s: %v", LogPrefixEngine, err)
			}
			continue
		}
		// Catch up past a long downtime without refiring each missed slot.
		for !next.After(now) {
			next, _ = NextOccurrence(job, next)
		}
		if _, err := e.db.ExecContext(ctx,
			`UPDATE reminders SET next_fire = ? WHERE id = ?`, encodeTime(next), job.ID); err != nil {
			e.l.Errorf(ctx, "%s: failed to advance reminder %s: %v", LogPrefixEngine, job.ID, err)
		}
	}
}

func scanJobs(rows *sql.Rows) ([]Job, error) {
	var jobs []Job
	for rows.Next() {
		var j Job
		var fire, rec string
		if err := rows.Scan(&j.ID, &j.ChatID, &j.Message, &fire, &rec, &j.DayOfWeek, &j.Interval); err != nil {
			return nil, fmt.Errorf("failed to scan reminder: %w", err)
		}
		t, err := decodeTime(fire)
		if err != nil {
			return nil, err
		}
		j.NextFire = t
		j.Recurrence = intent.Recurrence(rec)
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

// Fire times are stored as UTC RFC3339 text so lexicographic order in
// SQL matches chronological order.
func encodeTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func decodeTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse stored fire time %q: %w", s, err)
	}
	return t, nil
}
