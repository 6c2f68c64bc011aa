package datemath

import (
	"fmt"
	"strings"
	"time"
)

// Timestamp layouts accepted from the classifier, tried in order.
var absoluteLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02",
}

// DefaultHour is substituted when an expression carries no time of day.
// A midnight timestamp from the classifier almost always means "no time
// extracted", so 09:00 local is used instead of scheduling at midnight.
const DefaultHour = 9

// Parser converts relative or partial time expressions into absolute
// time.Time values anchored to a caller-supplied reference instant.
type Parser struct {
	location *time.Location
}

// NewParser creates a parser for the given IANA timezone string,
// e.g. "America/Los_Angeles".
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Resolve turns raw into an absolute timestamp relative to base.
// Accepted inputs:
//   - a fully-qualified timestamp (midnight is rewritten to 09:00:00)
//   - "today" / "tomorrow" / a weekday name, with an optional trailing
//     HH:MM:SS or HH:MM time component
//
// A bare weekday name always means the next occurrence strictly after
// base, never today. Unrecognized day tokens fall back to tomorrow.
// Resolve is total and deterministic: same (raw, base) in, same instant out.
func (p *Parser) Resolve(raw string, base time.Time) time.Time {
	raw = strings.TrimSpace(raw)
	base = base.In(p.location)

	if ts, ok := p.parseAbsolute(raw); ok {
		return p.repairMidnight(ts)
	}

	dayToken, clock := splitDayAndClock(raw)

	day := p.resolveDayToken(dayToken, base)
	hour, minute, second := DefaultHour, 0, 0
	if h, m, s, ok := parseClock(clock); ok {
		hour, minute, second = h, m, s
	}

	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, second, 0, p.location)
}

// DayRange resolves a reminder date filter into an inclusive [from, to]
// window. Supported filters: today, tomorrow, this_week, a weekday name,
// or an ISO date. Returns ok=false for empty or "none".
func (p *Parser) DayRange(filter string, base time.Time) (time.Time, time.Time, bool) {
	filter = strings.ToLower(strings.TrimSpace(filter))
	base = base.In(p.location)

	switch filter {
	case "", "none":
		return time.Time{}, time.Time{}, false
	case "today":
		start := p.startOfDay(base)
		return start, p.endOfDay(start), true
	case "tomorrow":
		start := p.startOfDay(base.AddDate(0, 0, 1))
		return start, p.endOfDay(start), true
	case "this_week":
		// Remaining days of the current week, today through Sunday inclusive.
		start := p.startOfDay(base)
		weekday := int(base.Weekday())
		if weekday == 0 {
			weekday = 7
		}
		end := p.endOfDay(p.startOfDay(base.AddDate(0, 0, 7-weekday)))
		return start, end, true
	}

	if wd, ok := weekdays[filter]; ok {
		start := p.startOfDay(base.AddDate(0, 0, daysUntilNext(base.Weekday(), wd)))
		return start, p.endOfDay(start), true
	}

	if ts, err := time.ParseInLocation("2006-01-02", filter, p.location); err == nil {
		return ts, p.endOfDay(ts), true
	}

	return time.Time{}, time.Time{}, false
}

// parseAbsolute tries the known absolute layouts.
func (p *Parser) parseAbsolute(raw string) (time.Time, bool) {
	for _, layout := range absoluteLayouts {
		if ts, err := time.ParseInLocation(layout, raw, p.location); err == nil {
			return ts.In(p.location), true
		}
	}
	return time.Time{}, false
}

// repairMidnight rewrites an exact-midnight timestamp to 09:00:00 same day.
func (p *Parser) repairMidnight(ts time.Time) time.Time {
	if ts.Hour() == 0 && ts.Minute() == 0 && ts.Second() == 0 {
		return time.Date(ts.Year(), ts.Month(), ts.Day(), DefaultHour, 0, 0, 0, p.location)
	}
	return ts
}

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// daysUntilNext returns days from current to the next occurrence of target,
// always in the range 1..7 — a matching weekday rolls a full week forward.
func daysUntilNext(current, target time.Weekday) int {
	days := int(target-current+7) % 7
	if days == 0 {
		days = 7
	}
	return days
}

// resolveDayToken maps a day token onto a calendar day relative to base.
func (p *Parser) resolveDayToken(token string, base time.Time) time.Time {
	token = strings.ToLower(strings.TrimSpace(token))
	token = strings.TrimPrefix(token, "next ")

	switch token {
	case "today":
		return p.startOfDay(base)
	case "tomorrow":
		return p.startOfDay(base.AddDate(0, 0, 1))
	}

	if wd, ok := weekdays[token]; ok {
		return p.startOfDay(base.AddDate(0, 0, daysUntilNext(base.Weekday(), wd)))
	}

	// Unrecognized day tokens mean tomorrow.
	return p.startOfDay(base.AddDate(0, 0, 1))
}

// splitDayAndClock splits "saturday 15:00:00" into its day and clock parts.
func splitDayAndClock(raw string) (string, string) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return "", ""
	}
	last := fields[len(fields)-1]
	if strings.Contains(last, ":") {
		return strings.Join(fields[:len(fields)-1], " "), last
	}
	return raw, ""
}

// parseClock parses HH:MM:SS or HH:MM.
func parseClock(clock string) (int, int, int, bool) {
	if clock == "" {
		return 0, 0, 0, false
	}
	if ts, err := time.Parse("15:04:05", clock); err == nil {
		return ts.Hour(), ts.Minute(), ts.Second(), true
	}
	if ts, err := time.Parse("15:04", clock); err == nil {
		return ts.Hour(), ts.Minute(), 0, true
	}
	return 0, 0, 0, false
}

func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

func (p *Parser) endOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}
