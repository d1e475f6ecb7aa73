package domain

import (
	"strings"
	"time"

	"go.trai.ch/zerr"
)

// Frequency is the FREQ part of a recurrence expression.
type Frequency string

const (
	// FrequencyDaily recurs every day.
	FrequencyDaily Frequency = "DAILY"
	// FrequencyWeekly recurs on the weekdays listed in BYDAY.
	FrequencyWeekly Frequency = "WEEKLY"
)

var weekdayCodes = map[string]time.Weekday{
	"MO": time.Monday,
	"TU": time.Tuesday,
	"WE": time.Wednesday,
	"TH": time.Thursday,
	"FR": time.Friday,
	"SA": time.Saturday,
	"SU": time.Sunday,
}

// WeekdaySet is a bit set of weekdays. The zero value is empty.
type WeekdaySet uint8

// Add returns s with wd included.
func (s WeekdaySet) Add(wd time.Weekday) WeekdaySet { return s | 1<<uint(wd) }

// Has reports whether wd is in s.
func (s WeekdaySet) Has(wd time.Weekday) bool { return s&(1<<uint(wd)) != 0 }

// Empty reports whether s contains no weekday.
func (s WeekdaySet) Empty() bool { return s == 0 }

// Recurrence is a decoded recurrence expression.
type Recurrence struct {
	Frequency Frequency
	ByDay     WeekdaySet
}

// ParseRecurrence strictly parses the supported RRULE subset:
// FREQ=DAILY or FREQ=WEEKLY with an optional BYDAY list of MO..SU codes.
// It is used when a rule is edited; evaluation goes through Matches, which never fails.
func ParseRecurrence(expr string) (Recurrence, error) {
	fields, err := splitRecurrence(expr)
	if err != nil {
		return Recurrence{}, zerr.With(err, "rrule", expr)
	}

	var rec Recurrence
	for key, value := range fields {
		switch key {
		case "FREQ":
			switch Frequency(value) {
			case FrequencyDaily, FrequencyWeekly:
				rec.Frequency = Frequency(value)
			default:
				return Recurrence{}, zerr.With(zerr.Wrap(ErrInvalidRecurrence, "unsupported frequency"), "freq", value)
			}
		case "BYDAY":
			for code := range strings.SplitSeq(value, ",") {
				wd, ok := weekdayCodes[strings.TrimSpace(code)]
				if !ok {
					return Recurrence{}, zerr.With(zerr.Wrap(ErrInvalidRecurrence, "unknown weekday code"), "code", code)
				}
				rec.ByDay = rec.ByDay.Add(wd)
			}
		default:
			return Recurrence{}, zerr.With(zerr.Wrap(ErrInvalidRecurrence, "unsupported rule part"), "part", key)
		}
	}

	if rec.Frequency == "" {
		return Recurrence{}, zerr.With(zerr.Wrap(ErrInvalidRecurrence, "missing FREQ"), "rrule", expr)
	}
	if rec.Frequency == FrequencyDaily && !rec.ByDay.Empty() {
		return Recurrence{}, zerr.With(zerr.Wrap(ErrInvalidRecurrence, "BYDAY requires FREQ=WEEKLY"), "rrule", expr)
	}
	return rec, nil
}

func splitRecurrence(expr string) (map[string]string, error) {
	body := strings.TrimPrefix(strings.ToUpper(strings.TrimSpace(expr)), "RRULE:")
	if body == "" {
		return nil, zerr.Wrap(ErrInvalidRecurrence, "empty rule")
	}
	fields := make(map[string]string)
	for part := range strings.SplitSeq(body, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, ok := strings.Cut(part, "=")
		if !ok || strings.TrimSpace(value) == "" {
			return nil, zerr.With(zerr.Wrap(ErrInvalidRecurrence, "malformed rule part"), "part", part)
		}
		key = strings.TrimSpace(key)
		if _, dup := fields[key]; dup {
			return nil, zerr.With(zerr.Wrap(ErrInvalidRecurrence, "duplicate rule part"), "part", key)
		}
		fields[key] = strings.TrimSpace(value)
	}
	return fields, nil
}

// decodeLenient extracts FREQ and BYDAY without rejecting anything. Malformed
// parts and unknown weekday codes are dropped.
func decodeLenient(expr string) (Frequency, WeekdaySet) {
	body := strings.TrimPrefix(strings.ToUpper(strings.TrimSpace(expr)), "RRULE:")
	var (
		freq Frequency
		days WeekdaySet
	)
	for part := range strings.SplitSeq(body, ";") {
		key, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch strings.TrimSpace(key) {
		case "FREQ":
			freq = Frequency(strings.TrimSpace(value))
		case "BYDAY":
			for code := range strings.SplitSeq(value, ",") {
				if wd, known := weekdayCodes[strings.TrimSpace(code)]; known {
					days = days.Add(wd)
				}
			}
		}
	}
	return freq, days
}

// Matches reports whether rule recurs on date. It checks the rule's start and
// inclusive end, then the recurrence expression. An unknown or missing frequency
// never matches; a weekly rule without a usable BYDAY matches every day.
// Matches is total: it never panics and never returns an error.
func Matches(rule ScheduleRule, date Date) bool {
	if date.Before(rule.Start) {
		return false
	}
	if rule.End != nil && date.After(*rule.End) {
		return false
	}

	freq, days := decodeLenient(rule.RRule)
	switch freq {
	case FrequencyDaily:
		return true
	case FrequencyWeekly:
		return days.Empty() || days.Has(date.Weekday())
	default:
		return false
	}
}
