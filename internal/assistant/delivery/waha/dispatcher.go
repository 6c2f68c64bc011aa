package waha

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/awesomefanda/adjnt/internal/assistant"
	"github.com/awesomefanda/adjnt/internal/model"
	pkgLog "github.com/awesomefanda/adjnt/pkg/log"
)

const (
	LogPrefixDispatch = "internal.assistant.delivery.waha.Dispatcher"

	// DefaultDedupSize bounds the recently-seen message id cache.
	DefaultDedupSize = 4096
)

// Sender pushes a reply back to a conversation.
type Sender interface {
	SendText(chatID, text string) error
}

// workItem is one admitted inbound message.
type workItem struct {
	MessageID string
	ChatID    string
	SenderID  string
	Text      string
}

// Dispatcher admits inbound messages at most once per message id and
// hands them to a bounded worker pool. Units for different conversations
// run concurrently with no ordering guarantee.
type Dispatcher struct {
	l       pkgLog.Logger
	uc      assistant.UseCase
	sender  Sender
	queue   chan workItem
	seen    *expirable.LRU[string, struct{}]
	workers int
	timeout time.Duration

	wg       sync.WaitGroup
	stopOnce sync.Once
}

// NewDispatcher sizes the pool and the dedup cache. Non-positive
// arguments fall back to sane defaults.
func NewDispatcher(l pkgLog.Logger, uc assistant.UseCase, sender Sender, workers, queueSize, dedupSize int, timeout time.Duration) *Dispatcher {
	if workers <= 0 {
		workers = 4
	}
	if queueSize <= 0 {
		queueSize = 64
	}
	if dedupSize <= 0 {
		dedupSize = DefaultDedupSize
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Dispatcher{
		l:       l,
		uc:      uc,
		sender:  sender,
		queue:   make(chan workItem, queueSize),
		seen:    expirable.NewLRU[string, struct{}](dedupSize, nil, 0),
		workers: workers,
		timeout: timeout,
	}
}

// Start launches the worker pool. Workers drain until Stop.
func (d *Dispatcher) Start(ctx context.Context) {
	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go func() {
			defer d.wg.Done()
			for item := range d.queue {
				d.process(ctx, item)
			}
		}()
	}
}

// Stop closes the queue and waits for in-flight units to finish.
func (d *Dispatcher) Stop() {
	d.stopOnce.Do(func() { close(d.queue) })
	d.wg.Wait()
}

// Enqueue admits a message. Returns false when the id was already seen
// or the queue is full (the message is dropped, not blocked on). The id
// is marked seen only after admission, so a redelivery of a message
// dropped on a full queue still gets in.
func (d *Dispatcher) Enqueue(messageID, chatID, senderID, text string) bool {
	if messageID != "" {
		if _, dup := d.seen.Get(messageID); dup {
			d.l.Debugf(context.Background(), "%s: duplicate message %s dropped", LogPrefixDispatch, messageID)
			return false
		}
	}

	select {
	case d.queue <- workItem{MessageID: messageID, ChatID: chatID, SenderID: senderID, Text: text}:
		if messageID != "" {
			d.seen.Add(messageID, struct{}{})
		}
		return true
	default:
		d.l.Warnf(context.Background(), "%s: queue full, message %s dropped", LogPrefixDispatch, messageID)
		return false
	}
}

// process runs one unit of work with a bounded deadline and pushes the
// reply. Outbound failures are logged and swallowed, never retried.
func (d *Dispatcher) process(ctx context.Context, item workItem) {
	unitCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	sc := model.Scope{ConversationID: item.ChatID, SenderID: item.SenderID}
	reply, err := d.uc.HandleMessage(unitCtx, sc, assistant.HandleMessageInput{
		Text: item.Text,
		Now:  time.Now(),
	})
	if err != nil {
		d.l.Errorf(unitCtx, "%s: unit for message %s failed: %v", LogPrefixDispatch, item.MessageID, err)
	}
	if reply == "" {
		return
	}

	if err := d.sender.SendText(item.ChatID, reply); err != nil {
		d.l.Errorf(unitCtx, "%s: failed to send reply to %s: %v", LogPrefixDispatch, item.ChatID, err)
	}
}
