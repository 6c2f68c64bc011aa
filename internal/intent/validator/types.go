package validator

import (
	"bytes"
	"strconv"
)

// flexInt tolerates the number shapes a language model emits: bare
// integers, floats, quoted numbers, null. Anything unparseable decodes
// to zero instead of failing the whole payload.
type flexInt int

func (f *flexInt) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(bytes.TrimSpace(b), `"`)
	if len(b) == 0 || string(b) == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = flexInt(int(n))
	return nil
}

// Raw payload shapes as the classifier emits them, before any
// normalization or defaulting.

type rawItem struct {
	Name  string  `json:"name"`
	Count flexInt `json:"count"`
	Store string  `json:"store"`
}

type rawTask struct {
	Items []rawItem `json:"items"`
}

type rawDelete struct {
	Mode  string    `json:"mode"`
	Items []rawItem `json:"items"`
	Store string    `json:"store"`
}

type rawList struct {
	Store string `json:"store"`
}

type rawMove struct {
	Item      string `json:"item"`
	FromStore string `json:"from_store"`
	ToStore   string `json:"to_store"`
	MoveAll   *bool  `json:"move_all"`
}

type rawRemind struct {
	Item       string  `json:"item"`
	Minutes    flexInt `json:"minutes"`
	Timestamp  string  `json:"timestamp"`
	Recurrence string  `json:"recurrence"`
	DayOfWeek  string  `json:"day_of_week"`
	Interval   flexInt `json:"interval"`
}

type rawDeleteReminders struct {
	Item string `json:"item"`
}

type rawUpdateReminder struct {
	Item         string `json:"item"`
	NewTimestamp string `json:"new_timestamp"`
}

type rawListReminders struct {
	DateFilter string `json:"date_filter"`
}

type rawChat struct {
	Answer string `json:"answer"`
}
