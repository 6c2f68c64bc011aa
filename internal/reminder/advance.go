package reminder

import (
	"strings"
	"time"

	"github.com/awesomefanda/adjnt/internal/intent"
)

// NextOccurrence computes the fire time following after for a recurring
// job, preserving after's wall-clock time of day. One-shot jobs return
// false. AddDate is used throughout so the hour survives daylight-saving
// shifts in after's location.
func NextOccurrence(job Job, after time.Time) (time.Time, bool) {
	switch job.Recurrence {
	case intent.RecurrenceDaily:
		return after.AddDate(0, 0, 1), true
	case intent.RecurrenceWeekly:
		// A pinned weekday is calendar truth: snap to it even when the
		// first fire landed on a different day.
		if wd, ok := parseWeekday(job.DayOfWeek); ok {
			next := after.AddDate(0, 0, 1)
			for next.Weekday() != wd {
				next = next.AddDate(0, 0, 1)
			}
			return next, true
		}
		return after.AddDate(0, 0, 7), true
	case intent.RecurrenceWeekdays:
		next := after.AddDate(0, 0, 1)
		for next.Weekday() == time.Saturday || next.Weekday() == time.Sunday {
			next = next.AddDate(0, 0, 1)
		}
		return next, true
	case intent.RecurrenceWeekend:
		next := after.AddDate(0, 0, 1)
		for next.Weekday() != time.Saturday && next.Weekday() != time.Sunday {
			next = next.AddDate(0, 0, 1)
		}
		return next, true
	case intent.RecurrenceMonthly:
		months := job.Interval
		if months < 1 {
			months = 1
		}
		return after.AddDate(0, months, 0), true
	case intent.RecurrenceYearly:
		return after.AddDate(1, 0, 0), true
	default:
		return time.Time{}, false
	}
}

func parseWeekday(name string) (time.Weekday, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sunday":
		return time.Sunday, true
	case "monday":
		return time.Monday, true
	case "tuesday":
		return time.Tuesday, true
	case "wednesday":
		return time.Wednesday, true
	case "thursday":
		return time.Thursday, true
	case "friday":
		return time.Friday, true
	case "saturday":
		return time.Saturday, true
	default:
		return time.Sunday, false
	}
}
