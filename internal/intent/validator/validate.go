package validator

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/awesomefanda/adjnt/internal/intent"
	"github.com/awesomefanda/adjnt/internal/intent/classifier"
	"github.com/awesomefanda/adjnt/pkg/lexnorm"
)

const LogPrefixValidate = "internal.intent.validator.Validate"

// Validate consumes a classification result and produces the canonical
// action. ClassifierFailure, an unknown intent label and any payload
// missing a required field after normalization all degrade to UNKNOWN,
// never to an error. Running Validate over an already-canonical payload
// changes nothing.
func (v *ActionValidator) Validate(ctx context.Context, result classifier.Result, now time.Time) intent.Action {
	if result.Failed {
		v.l.Debugf(ctx, "%s: classifier failure (%s), degrading to UNKNOWN", LogPrefixValidate, result.Reason)
		return intent.Unknown()
	}

	candidate := result.Candidate
	data := candidate.Data
	if len(data) == 0 {
		data = json.RawMessage(`{}`)
	}

	switch intent.Intent(candidate.Intent) {
	case intent.IntentTask:
		return v.validateTask(ctx, data)
	case intent.IntentDelete:
		// Ambiguous verbs: a DELETE whose target reads like a scheduled
		// event is really a reminder cancellation.
		if item, ok := reminderPhrased(data); ok {
			v.l.Infof(ctx, "%s: DELETE re-routed to DELETE_REMINDERS for %q", LogPrefixValidate, item)
			return intent.Action{
				Intent:          intent.IntentDeleteReminders,
				DeleteReminders: &intent.DeleteRemindersData{Item: item},
			}
		}
		return v.validateDelete(ctx, data)
	case intent.IntentList:
		return v.validateList(data)
	case intent.IntentMove:
		return v.validateMove(data)
	case intent.IntentRemind:
		return v.validateRemind(ctx, data, now)
	case intent.IntentDeleteReminders:
		var raw rawDeleteReminders
		if err := json.Unmarshal(data, &raw); err != nil {
			return intent.Unknown()
		}
		return intent.Action{
			Intent:          intent.IntentDeleteReminders,
			DeleteReminders: &intent.DeleteRemindersData{Item: strings.ToLower(strings.TrimSpace(raw.Item))},
		}
	case intent.IntentUpdateReminder:
		return v.validateUpdateReminder(ctx, data, now)
	case intent.IntentListReminders:
		var raw rawListReminders
		if err := json.Unmarshal(data, &raw); err != nil {
			return intent.Unknown()
		}
		filter := strings.ToLower(strings.TrimSpace(raw.DateFilter))
		if filter == "none" {
			filter = ""
		}
		return intent.Action{
			Intent:        intent.IntentListReminders,
			ListReminders: &intent.ListRemindersData{DateFilter: filter},
		}
	case intent.IntentTime:
		return intent.Action{Intent: intent.IntentTime}
	case intent.IntentOnboard:
		return intent.Action{Intent: intent.IntentOnboard}
	case intent.IntentChat:
		var raw rawChat
		if err := json.Unmarshal(data, &raw); err != nil || strings.TrimSpace(raw.Answer) == "" {
			return intent.Unknown()
		}
		return intent.Action{
			Intent: intent.IntentChat,
			Chat:   &intent.ChatData{Answer: strings.TrimSpace(raw.Answer)},
		}
	default:
		v.l.Debugf(ctx, "%s: unknown intent label %q", LogPrefixValidate, candidate.Intent)
		return intent.Unknown()
	}
}

func (v *ActionValidator) validateTask(ctx context.Context, data json.RawMessage) intent.Action {
	var raw rawTask
	if err := json.Unmarshal(data, &raw); err != nil {
		v.l.Debugf(ctx, "%s: TASK payload rejected: %v", LogPrefixValidate, err)
		return intent.Unknown()
	}

	items := normalizeItems(raw.Items, intent.DefaultStore)
	if len(items) == 0 {
		return intent.Unknown()
	}
	return intent.Action{
		Intent: intent.IntentTask,
		Task:   &intent.TaskData{Items: items},
	}
}

func (v *ActionValidator) validateDelete(ctx context.Context, data json.RawMessage) intent.Action {
	var raw rawDelete
	if err := json.Unmarshal(data, &raw); err != nil {
		v.l.Debugf(ctx, "%s: DELETE payload rejected: %v", LogPrefixValidate, err)
		return intent.Unknown()
	}

	mode := intent.DeleteMode(strings.ToUpper(strings.TrimSpace(raw.Mode)))
	switch mode {
	case intent.DeleteSingle, intent.DeleteAll, intent.DeleteClearStore, intent.DeleteClearAll:
	default:
		// Mode absent or unrecognized: ALL when any item carries an
		// explicit store, SINGLE otherwise.
		mode = intent.DeleteSingle
		for _, it := range raw.Items {
			if strings.TrimSpace(it.Store) != "" {
				mode = intent.DeleteAll
				break
			}
		}
	}

	switch mode {
	case intent.DeleteClearAll:
		// CLEAR_ALL wins unconditionally, items are discarded.
		return intent.Action{
			Intent: intent.IntentDelete,
			Delete: &intent.DeleteData{Mode: intent.DeleteClearAll},
		}
	case intent.DeleteClearStore:
		store := strings.TrimSpace(raw.Store)
		if store == "" {
			return intent.Unknown()
		}
		return intent.Action{
			Intent: intent.IntentDelete,
			Delete: &intent.DeleteData{Mode: intent.DeleteClearStore, Store: lexnorm.CapitalizeStore(store)},
		}
	default:
		// A delete target with no store matches any store, so no General
		// default here.
		items := normalizeItems(raw.Items, "")
		if len(items) == 0 {
			return intent.Unknown()
		}
		return intent.Action{
			Intent: intent.IntentDelete,
			Delete: &intent.DeleteData{Mode: mode, Items: items},
		}
	}
}

func (v *ActionValidator) validateList(data json.RawMessage) intent.Action {
	var raw rawList
	if err := json.Unmarshal(data, &raw); err != nil {
		return intent.Unknown()
	}
	store := strings.TrimSpace(raw.Store)
	if store == "" {
		store = intent.AllStores
	} else {
		store = lexnorm.CapitalizeStore(store)
	}
	return intent.Action{
		Intent: intent.IntentList,
		List:   &intent.ListData{Store: store},
	}
}

func (v *ActionValidator) validateMove(data json.RawMessage) intent.Action {
	var raw rawMove
	if err := json.Unmarshal(data, &raw); err != nil {
		return intent.Unknown()
	}
	item := lexnorm.Singularize(strings.ToLower(strings.TrimSpace(raw.Item)))
	if item == "" {
		return intent.Unknown()
	}

	from := strings.TrimSpace(raw.FromStore)
	if from == "" {
		from = intent.DefaultStore
	}
	to := strings.TrimSpace(raw.ToStore)
	if to == "" {
		to = intent.DefaultStore
	}

	moveAll := true
	if raw.MoveAll != nil {
		moveAll = *raw.MoveAll
	}
	return intent.Action{
		Intent: intent.IntentMove,
		Move: &intent.MoveData{
			Item:      item,
			FromStore: lexnorm.CapitalizeStore(from),
			ToStore:   lexnorm.CapitalizeStore(to),
			MoveAll:   moveAll,
		},
	}
}

func (v *ActionValidator) validateRemind(ctx context.Context, data json.RawMessage, now time.Time) intent.Action {
	var raw rawRemind
	if err := json.Unmarshal(data, &raw); err != nil {
		v.l.Debugf(ctx, "%s: REMIND payload rejected: %v", LogPrefixValidate, err)
		return intent.Unknown()
	}
	item := strings.TrimSpace(raw.Item)
	if item == "" {
		return intent.Unknown()
	}

	out := intent.RemindData{Item: item}
	switch {
	case raw.Minutes >= 1:
		out.Minutes = int(raw.Minutes)
	case strings.TrimSpace(raw.Timestamp) != "":
		out.Timestamp = v.parser.Resolve(raw.Timestamp, now)
	default:
		out.Minutes = 5
	}

	switch rec := intent.Recurrence(strings.ToLower(strings.TrimSpace(raw.Recurrence))); rec {
	case intent.RecurrenceWeekly:
		out.Recurrence = rec
		out.DayOfWeek = strings.TrimSpace(raw.DayOfWeek)
	case intent.RecurrenceMonthly:
		out.Recurrence = rec
		out.Interval = int(raw.Interval)
		if out.Interval < 1 {
			out.Interval = 1
		}
	case intent.RecurrenceDaily, intent.RecurrenceWeekdays, intent.RecurrenceWeekend, intent.RecurrenceYearly:
		out.Recurrence = rec
	}

	return intent.Action{Intent: intent.IntentRemind, Remind: &out}
}

func (v *ActionValidator) validateUpdateReminder(ctx context.Context, data json.RawMessage, now time.Time) intent.Action {
	var raw rawUpdateReminder
	if err := json.Unmarshal(data, &raw); err != nil {
		return intent.Unknown()
	}
	item := strings.ToLower(strings.TrimSpace(raw.Item))
	ts := strings.TrimSpace(raw.NewTimestamp)
	if item == "" || ts == "" {
		return intent.Unknown()
	}
	return intent.Action{
		Intent: intent.IntentUpdateReminder,
		UpdateReminder: &intent.UpdateReminderData{
			Item:         item,
			NewTimestamp: v.parser.Resolve(ts, now),
		},
	}
}

// normalizeItems lower-cases and singularizes names, capitalizes stores
// and clamps counts to at least one. An absent store takes defaultStore;
// with an empty defaultStore it stays absent. Items with an empty name
// are dropped.
func normalizeItems(raw []rawItem, defaultStore string) []intent.Item {
	items := make([]intent.Item, 0, len(raw))
	for _, r := range raw {
		name := lexnorm.Singularize(strings.ToLower(strings.TrimSpace(r.Name)))
		if name == "" {
			continue
		}
		count := int(r.Count)
		if count < 1 {
			count = 1
		}
		store := strings.TrimSpace(r.Store)
		if store == "" {
			store = defaultStore
		}
		if store != "" {
			store = lexnorm.CapitalizeStore(store)
		}
		items = append(items, intent.Item{
			Name:  name,
			Count: count,
			Store: store,
		})
	}
	return items
}
