package timeutil

import (
	"fmt"
	"strings"
	"time"
)

const layoutClock = "15:04"

// ParseClock validates a time of day such as "8:05" or "08:05" and returns
// its canonical "HH:MM" form.
func ParseClock(input string) (string, error) {
	trimmed := strings.TrimSpace(input)
	t, err := time.Parse(layoutClock, trimmed)
	if err != nil {
		return "", fmt.Errorf("invalid time of day %q, want HH:MM", input)
	}
	return t.Format(layoutClock), nil
}

// FormatClock renders the local time of day of t as "HH:MM".
func FormatClock(t time.Time) string {
	return t.Local().Format(layoutClock)
}
