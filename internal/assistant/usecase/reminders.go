package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/awesomefanda/adjnt/internal/assistant"
	"github.com/awesomefanda/adjnt/internal/intent"
	"github.com/awesomefanda/adjnt/internal/model"
	"github.com/awesomefanda/adjnt/internal/reminder"
	"github.com/awesomefanda/adjnt/pkg/gcalendar"
)

const replyTimeLayout = "Mon, 02 Jan 2006 at 15:04"

func (uc *implUseCase) executeRemind(ctx context.Context, sc model.Scope, data *intent.RemindData, now time.Time) (string, error) {
	fireAt := data.Timestamp
	if data.Minutes > 0 {
		fireAt = now.Add(time.Duration(data.Minutes) * time.Minute)
	}

	job := reminder.Job{
		ID:         reminder.JobID(sc.ConversationID, data.Item, fireAt),
		ChatID:     sc.ConversationID,
		Message:    data.Item,
		NextFire:   fireAt,
		Recurrence: data.Recurrence,
		DayOfWeek:  data.DayOfWeek,
		Interval:   data.Interval,
	}
	if err := uc.scheduler.Add(ctx, job); err != nil {
		uc.l.Errorf(ctx, "%s: failed to schedule reminder: %v", LogPrefixExecute, err)
		return ReplyApology, assistant.ErrSchedulerUnavailable
	}

	uc.tryMirrorCalendarEvent(ctx, job)

	reply := fmt.Sprintf("Reminder set for %s: %s", fireAt.In(uc.location).Format(replyTimeLayout), data.Item)
	if suffix := recurrenceSuffix(data); suffix != "" {
		reply += " " + suffix
	}
	return reply, nil
}

func (uc *implUseCase) executeDeleteReminders(ctx context.Context, sc model.Scope, data *intent.DeleteRemindersData) (string, error) {
	jobs, err := uc.scheduler.ListByChat(ctx, sc.ConversationID)
	if err != nil {
		uc.l.Errorf(ctx, "%s: failed to list reminders: %v", LogPrefixExecute, err)
		return ReplyApology, assistant.ErrSchedulerUnavailable
	}

	removed := 0
	for _, job := range jobs {
		if data.Item != "" && !strings.Contains(strings.ToLower(job.Message), data.Item) {
			continue
		}
		if err := uc.scheduler.Remove(ctx, job.ID); err != nil {
			uc.l.Errorf(ctx, "%s: failed to remove reminder %s: %v", LogPrefixExecute, job.ID, err)
			return ReplyApology, assistant.ErrSchedulerUnavailable
		}
		removed++
	}

	if removed == 0 {
		if data.Item == "" {
			return ReplyNoReminders, nil
		}
		return fmt.Sprintf("No reminders matching %q found.", data.Item), nil
	}
	if removed == 1 {
		return "Cancelled 1 reminder.", nil
	}
	return fmt.Sprintf("Cancelled %d reminders.", removed), nil
}

func (uc *implUseCase) executeUpdateReminder(ctx context.Context, sc model.Scope, data *intent.UpdateReminderData) (string, error) {
	jobs, err := uc.scheduler.ListByChat(ctx, sc.ConversationID)
	if err != nil {
		uc.l.Errorf(ctx, "%s: failed to list reminders: %v", LogPrefixExecute, err)
		return ReplyApology, assistant.ErrSchedulerUnavailable
	}

	for _, job := range jobs {
		if !strings.Contains(strings.ToLower(job.Message), data.Item) {
			continue
		}
		// Remove then recreate under the id derived from the new time.
		if err := uc.scheduler.Remove(ctx, job.ID); err != nil {
			uc.l.Errorf(ctx, "%s: failed to remove reminder %s: %v", LogPrefixExecute, job.ID, err)
			return ReplyApology, assistant.ErrSchedulerUnavailable
		}
		updated := job
		updated.ID = reminder.JobID(sc.ConversationID, job.Message, data.NewTimestamp)
		updated.NextFire = data.NewTimestamp
		if err := uc.scheduler.Add(ctx, updated); err != nil {
			uc.l.Errorf(ctx, "%s: failed to reschedule reminder: %v", LogPrefixExecute, err)
			return ReplyApology, assistant.ErrSchedulerUnavailable
		}
		return fmt.Sprintf("Moved %q to %s.", job.Message, data.NewTimestamp.In(uc.location).Format(replyTimeLayout)), nil
	}

	return fmt.Sprintf("No reminder matching %q found.", data.Item), nil
}

func (uc *implUseCase) executeListReminders(ctx context.Context, sc model.Scope, data *intent.ListRemindersData, now time.Time) (string, error) {
	jobs, err := uc.scheduler.ListByChat(ctx, sc.ConversationID)
	if err != nil {
		uc.l.Errorf(ctx, "%s: failed to list reminders: %v", LogPrefixExecute, err)
		return ReplyApology, assistant.ErrSchedulerUnavailable
	}

	if from, to, ok := uc.dateMath.DayRange(data.DateFilter, now); ok {
		filtered := jobs[:0]
		for _, job := range jobs {
			local := job.NextFire.In(uc.location)
			if !local.Before(from) && !local.After(to) {
				filtered = append(filtered, job)
			}
		}
		jobs = filtered
	}

	if len(jobs) == 0 {
		if data.DateFilter != "" {
			return fmt.Sprintf("No reminders for %s.", data.DateFilter), nil
		}
		return ReplyNoReminders, nil
	}

	var b strings.Builder
	b.WriteString("Your reminders:")
	for _, job := range jobs {
		fmt.Fprintf(&b, "\n- %s: %s", job.NextFire.In(uc.location).Format(replyTimeLayout), job.Message)
		if job.Recurrence != intent.RecurrenceNone {
			fmt.Fprintf(&b, " (%s)", job.Recurrence)
		}
	}
	return b.String(), nil
}

// tryMirrorCalendarEvent mirrors a scheduled reminder into Google
// Calendar. Best-effort: failures are logged and never affect the reply.
func (uc *implUseCase) tryMirrorCalendarEvent(ctx context.Context, job reminder.Job) {
	if uc.calendar == nil {
		return
	}

	start := job.NextFire.In(uc.location)
	if _, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     job.Message,
		Description: "Reminder from Adjnt",
		StartTime:   start,
		EndTime:     start.Add(30 * time.Minute),
		Timezone:    uc.timezone,
	}); err != nil {
		uc.l.Warnf(ctx, "%s: calendar mirror failed: %v", LogPrefixExecute, err)
	}
}

// recurrenceSuffix renders the repeat rule for the confirmation reply.
func recurrenceSuffix(data *intent.RemindData) string {
	switch data.Recurrence {
	case intent.RecurrenceDaily:
		return "(repeats daily)"
	case intent.RecurrenceWeekly:
		if data.DayOfWeek != "" {
			return fmt.Sprintf("(repeats every %s)", data.DayOfWeek)
		}
		return "(repeats weekly)"
	case intent.RecurrenceWeekdays:
		return "(repeats on weekdays)"
	case intent.RecurrenceWeekend:
		return "(repeats on weekends)"
	case intent.RecurrenceMonthly:
		if data.Interval > 1 {
			return fmt.Sprintf("(repeats every %d months)", data.Interval)
		}
		return "(repeats monthly)"
	case intent.RecurrenceYearly:
		return "(repeats yearly)"
	default:
		return ""
	}
}
