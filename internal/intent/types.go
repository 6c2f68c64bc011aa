// Package intent defines the canonical action model: every inbound
// message resolves to exactly one Action, a tagged union keyed by Intent
// with one concrete payload record per variant.
package intent

import "time"

// Intent is the closed enumeration of things the assistant can do.
type Intent string

const (
	IntentTask            Intent = "TASK"
	IntentDelete          Intent = "DELETE"
	IntentList            Intent = "LIST"
	IntentMove            Intent = "MOVE"
	IntentRemind          Intent = "REMIND"
	IntentDeleteReminders Intent = "DELETE_REMINDERS"
	IntentUpdateReminder  Intent = "UPDATE_REMINDER"
	IntentListReminders   Intent = "LIST_REMINDERS"
	IntentTime            Intent = "TIME"
	IntentOnboard         Intent = "ONBOARD"
	IntentChat            Intent = "CHAT"
	IntentUnknown         Intent = "UNKNOWN"
)

// DeleteMode selects how a DELETE applies.
type DeleteMode string

const (
	DeleteSingle     DeleteMode = "SINGLE"
	DeleteAll        DeleteMode = "ALL"
	DeleteClearStore DeleteMode = "CLEAR_STORE"
	DeleteClearAll   DeleteMode = "CLEAR_ALL"
)

// Recurrence is the symbolic repeat rule attached to a reminder. The
// scheduling engine interprets it; the resolver only carries it along.
type Recurrence string

const (
	RecurrenceNone     Recurrence = ""
	RecurrenceDaily    Recurrence = "daily"
	RecurrenceWeekly   Recurrence = "weekly"
	RecurrenceWeekdays Recurrence = "weekdays"
	RecurrenceWeekend  Recurrence = "weekend"
	RecurrenceMonthly  Recurrence = "monthly"
	RecurrenceYearly   Recurrence = "yearly"
)

// Item is one normalized vault entry inside a TASK or DELETE payload.
type Item struct {
	Name  string
	Count int
	Store string
}

// TaskData adds items to the vault.
type TaskData struct {
	Items []Item
}

// DeleteData removes items from the vault.
type DeleteData struct {
	Mode  DeleteMode
	Items []Item
	Store string // only for CLEAR_STORE
}

// ListData lists the vault, optionally scoped to one store.
type ListData struct {
	Store string // "All" means every store
}

// MoveData relocates items between stores.
type MoveData struct {
	Item      string
	FromStore string
	ToStore   string
	MoveAll   bool
}

// RemindData schedules a reminder. Exactly one of Minutes or Timestamp
// is set after validation.
type RemindData struct {
	Item       string
	Minutes    int
	Timestamp  time.Time
	Recurrence Recurrence
	DayOfWeek  string // only with weekly
	Interval   int    // only with monthly, months between fires
}

// DeleteRemindersData cancels reminders whose text contains Item.
// An empty Item matches every reminder in the conversation.
type DeleteRemindersData struct {
	Item string
}

// UpdateReminderData moves the first matching reminder to a new time.
type UpdateReminderData struct {
	Item         string
	NewTimestamp time.Time
}

// ListRemindersData lists reminders, optionally filtered to one day or
// date window (today, tomorrow, this_week, a weekday name, an ISO date).
type ListRemindersData struct {
	DateFilter string
}

// ChatData carries the model's conversational answer.
type ChatData struct {
	Answer string
}

// Action is the canonical, validated outcome of classifying one message.
// Exactly the payload matching Intent is non-nil; ONBOARD, TIME and
// UNKNOWN carry no payload.
type Action struct {
	Intent Intent

	Task            *TaskData
	Delete          *DeleteData
	List            *ListData
	Move            *MoveData
	Remind          *RemindData
	DeleteReminders *DeleteRemindersData
	UpdateReminder  *UpdateReminderData
	ListReminders   *ListRemindersData
	Chat            *ChatData
}

// Unknown is the degraded action every failure path resolves to.
func Unknown() Action {
	return Action{Intent: IntentUnknown}
}

// DefaultStore is the bucket used when the user names no store.
const DefaultStore = "General"

// AllStores is the LIST payload value meaning "no store filter".
const AllStores = "All"
