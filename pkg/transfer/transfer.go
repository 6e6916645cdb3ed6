// Package transfer moves habit lists in and out of the store as JSON and CSV.
package transfer

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"tableflip.dev/habitus/pkg/habit"
)

var (
	// ErrInvalidFormat is returned when an import payload is valid JSON but
	// not an array of habits.
	ErrInvalidFormat = errors.New("transfer: import must be a JSON array of habits")
	// ErrParse is returned when an import payload is not JSON at all.
	ErrParse = errors.New("transfer: import is not valid JSON")
)

// LogSection separates the habit table from the log table in CSV exports.
const LogSection = "--- Log Data ---"

var (
	habitHeader = []string{"id", "title", "description", "category", "icon", "color",
		"activeDays", "multiCheck", "targetEnabled", "targetDays", "freezeEnabled"}
	logHeader = []string{"habit_id", "date", "count"}
)

// ExportJSON writes habits as an indented JSON array, the same shape
// DecodeImport reads.
func ExportJSON(w io.Writer, habits []*habit.Habit) error {
	if habits == nil {
		habits = []*habit.Habit{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(habits)
}

// ExportCSV writes one row per habit, then the log table sorted by date.
func ExportCSV(w io.Writer, habits []*habit.Habit) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(habitHeader); err != nil {
		return err
	}
	for _, h := range habits {
		days := make([]string, 0, len(h.ActiveDays))
		for _, d := range h.ActiveDays {
			days = append(days, strconv.Itoa(d))
		}
		row := []string{
			h.ID,
			h.Title,
			h.Description,
			string(h.Category),
			h.Icon,
			h.Color,
			strings.Join(days, ";"),
			strconv.FormatBool(h.MultiCheck),
			strconv.FormatBool(h.TargetEnabled),
			strconv.Itoa(h.TargetDays),
			strconv.FormatBool(h.FreezeEnabled),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "\n%s\n", LogSection); err != nil {
		return err
	}

	if err := cw.Write(logHeader); err != nil {
		return err
	}
	for _, row := range logRows(habits) {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func logRows(habits []*habit.Habit) [][]string {
	var rows [][]string
	for _, h := range habits {
		for day, count := range h.Log {
			if count <= 0 {
				continue
			}
			rows = append(rows, []string{h.ID, day, strconv.Itoa(count)})
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i][1] != rows[j][1] {
			return rows[i][1] < rows[j][1]
		}
		return rows[i][0] < rows[j][0]
	})
	return rows
}

// DecodeImport parses an import payload. Records that cannot be decoded are
// dropped; a payload that is not an array is rejected as a whole.
func DecodeImport(data []byte) ([]*habit.Habit, int, error) {
	trimmed := bytes.TrimSpace(data)
	if !json.Valid(trimmed) {
		return nil, 0, ErrParse
	}
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, 0, ErrInvalidFormat
	}
	var records []json.RawMessage
	if err := json.Unmarshal(trimmed, &records); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrParse, err)
	}
	habits := make([]*habit.Habit, 0, len(records))
	dropped := 0
	for _, raw := range records {
		var h habit.Habit
		if err := json.Unmarshal(raw, &h); err != nil || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			dropped++
			continue
		}
		habits = append(habits, normalize(&h))
	}
	return habits, dropped, nil
}

func normalize(h *habit.Habit) *habit.Habit {
	h.ID = strings.TrimSpace(h.ID)
	h.Title = strings.TrimSpace(h.Title)
	// No activeDays means every day; store it as the explicit full week.
	h.ActiveDays = habit.NormalizeDays(h.ActiveDays)
	if h.Log == nil {
		h.Log = habit.Log{}
	}
	if h.Notes == nil {
		h.Notes = habit.Notes{}
	}
	if h.FreezeDates == nil {
		h.FreezeDates = []string{}
	}
	if h.Reminders == nil {
		h.Reminders = []string{}
	}
	return h
}

// Result counts the outcome of a merge.
type Result struct {
	Added   int
	Skipped int
}

// Merge appends incoming habits whose id is not already present. Habits
// without an id get a fresh one. existing is not modified.
func Merge(existing, incoming []*habit.Habit) ([]*habit.Habit, Result) {
	seen := make(map[string]struct{}, len(existing)+len(incoming))
	merged := make([]*habit.Habit, 0, len(existing)+len(incoming))
	for _, h := range existing {
		seen[h.ID] = struct{}{}
		merged = append(merged, h)
	}
	var res Result
	for _, h := range incoming {
		if h == nil {
			res.Skipped++
			continue
		}
		h = h.Clone()
		if h.ID == "" {
			h.ID = habit.NewID()
		}
		if _, dup := seen[h.ID]; dup {
			res.Skipped++
			continue
		}
		seen[h.ID] = struct{}{}
		merged = append(merged, h)
		res.Added++
	}
	return merged, res
}
