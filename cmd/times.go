package cmd

import (
	"fmt"
	"time"
)

const dueAtLayout = "2006-01-02 15:04"

// parseDueAt validates and parses an --at value.
// Returns the parsed time or an error with the expected format.
func parseDueAt(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("error: invalid --at format, expected YYYY-MM-DD HH:MM")
	}
	t, err := time.ParseInLocation(dueAtLayout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("error: invalid --at format, expected YYYY-MM-DD HH:MM")
	}
	return t, nil
}

// parseDueIn validates an --in duration string and returns the resolved
// absolute time. Valid formats: Go duration syntax (e.g., "2h", "30m",
// "1h30m", "45s").
func parseDueIn(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("error: invalid --in duration, expected format like 2h, 30m, or 1h30m (days not supported — use 24h)")
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("error: invalid --in duration, expected format like 2h, 30m, or 1h30m (days not supported — use 24h)")
	}
	return time.Now().Add(d), nil
}

// validateDueExclusion checks that --at and --in are not both set.
func validateDueExclusion(at, in string) error {
	if at != "" && in != "" {
		return fmt.Errorf("error: --at and --in are mutually exclusive, use only one")
	}
	return nil
}

// resolveDue turns the --at/--in flag pair into an epoch-millisecond due
// time. Returns:
//   - dueMs: nil when neither flag was given
//   - warning: non-empty when the resolved time is in the past; the note
//     is still saved but no reminder is armed
func resolveDue(at, in string) (dueMs *int64, warning string, err error) {
	if err := validateDueExclusion(at, in); err != nil {
		return nil, "", err
	}
	var t time.Time
	switch {
	case at != "":
		t, err = parseDueAt(at)
	case in != "":
		t, err = parseDueIn(in)
	default:
		return nil, "", nil
	}
	if err != nil {
		return nil, "", err
	}
	ms := t.UnixMilli()
	if !t.After(time.Now()) {
		return &ms, "warning: due time is in the past, saving note without a reminder", nil
	}
	return &ms, "", nil
}
