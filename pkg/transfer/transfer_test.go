package transfer

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"tableflip.dev/habitus/pkg/habit"
)

func water() *habit.Habit {
	return &habit.Habit{
		ID:          "h1",
		Title:       "Water",
		ActiveDays:  habit.AllDays(),
		FreezeDates: []string{},
		Reminders:   []string{},
		Log:         habit.Log{"2024-01-01": 1, "2024-01-02": 1},
		Notes:       habit.Notes{},
	}
}

// Records keep their full meaning through export and import. A record with no
// activeDays comes back with the explicit full week, which schedules the
// same days.
func TestJSONRoundTrip(t *testing.T) {
	original := []*habit.Habit{water()}
	var buf bytes.Buffer
	if err := ExportJSON(&buf, original); err != nil {
		t.Fatalf("export: %v", err)
	}
	incoming, dropped, err := DecodeImport(buf.Bytes())
	if err != nil || dropped != 0 {
		t.Fatalf("decode: %v (dropped %d)", err, dropped)
	}
	merged, res := Merge([]*habit.Habit{}, incoming)
	if res.Added != 1 || res.Skipped != 0 {
		t.Fatalf("unexpected result %+v", res)
	}
	if !reflect.DeepEqual(merged, original) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", merged[0], original[0])
	}
}

func TestImportWithoutActiveDaysMeansEveryDay(t *testing.T) {
	incoming, _, err := DecodeImport([]byte(`[{"id":"h1","title":"Water","log":{"2024-01-01":1,"2024-01-02":1}}]`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	merged, _ := Merge([]*habit.Habit{}, incoming)
	if !reflect.DeepEqual(merged, []*habit.Habit{water()}) {
		t.Fatalf("expected the full week default, got %+v", merged[0])
	}
}

func TestImportDropsInvalidDayKeys(t *testing.T) {
	incoming, dropped, err := DecodeImport([]byte(`[{"id":"h1","multiCheck":true,"log":{"2024-01-01":1,"not-a-day":40,"2024-13-45":2}}]`))
	if err != nil || dropped != 0 {
		t.Fatalf("decode: %v (dropped %d)", err, dropped)
	}
	merged, _ := Merge([]*habit.Habit{}, incoming)
	h := merged[0]
	if !reflect.DeepEqual(h.Log, habit.Log{"2024-01-01": 1}) {
		t.Fatalf("expected only valid days, got %v", h.Log)
	}
	if habit.Total(h) != 1 || habit.ActiveDayCount(h) != 1 {
		t.Fatalf("unexpected totals %d %d", habit.Total(h), habit.ActiveDayCount(h))
	}
}

func TestMergeSkipsExistingIDs(t *testing.T) {
	existing := []*habit.Habit{water()}
	incoming, _, err := DecodeImport([]byte(`[{"id":"h1","title":"X"},{"id":"h2","title":"Y"}]`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	merged, res := Merge(existing, incoming)
	if len(merged) != 2 || res.Added != 1 || res.Skipped != 1 {
		t.Fatalf("unexpected merge %v %+v", merged, res)
	}
	if merged[0].Title != "Water" || merged[1].ID != "h2" {
		t.Fatalf("expected h1 untouched and h2 appended, got %v", merged)
	}
	if len(existing) != 1 {
		t.Fatalf("merge modified its input")
	}
}

func TestMergeAssignsMissingIDs(t *testing.T) {
	incoming, _, err := DecodeImport([]byte(`[{"title":"A"},{"title":"B"}]`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	merged, res := Merge(nil, incoming)
	if res.Added != 2 || merged[0].ID == "" || merged[0].ID == merged[1].ID {
		t.Fatalf("expected two fresh ids, got %v", merged)
	}
}

func TestMergeSkipsDuplicatesWithinImport(t *testing.T) {
	incoming, _, err := DecodeImport([]byte(`[{"id":"h3","title":"A"},{"id":"h3","title":"B"}]`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	merged, res := Merge(nil, incoming)
	if len(merged) != 1 || merged[0].Title != "A" || res.Skipped != 1 {
		t.Fatalf("unexpected merge %v %+v", merged, res)
	}
}

func TestDecodeImportRejectsShape(t *testing.T) {
	tests := map[string]error{
		`{"id":"h1"}`: ErrInvalidFormat,
		`"habits"`:    ErrInvalidFormat,
		`42`:          ErrInvalidFormat,
		`[{"id":`:     ErrParse,
		``:            ErrParse,
		`not json`:    ErrParse,
	}
	for in, want := range tests {
		if _, _, err := DecodeImport([]byte(in)); !errors.Is(err, want) {
			t.Fatalf("DecodeImport(%q): expected %v, got %v", in, want, err)
		}
	}
}

func TestDecodeImportDropsBadRecords(t *testing.T) {
	habits, dropped, err := DecodeImport([]byte(`[{"id":"h1","title":"A","log":{"2024-01-01":"x"}},null,{"id":"h2","title":"B","log":{"2024-01-01":true}}]`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if dropped != 2 || len(habits) != 1 || habits[0].ID != "h2" {
		t.Fatalf("unexpected decode %v dropped=%d", habits, dropped)
	}
	if habit.Value(habits[0], "2024-01-01") != 1 {
		t.Fatalf("expected legacy boolean log value to decode as 1")
	}
}

func TestExportCSV(t *testing.T) {
	h1 := water()
	h1.Description = "8 glasses, at least"
	h2 := &habit.Habit{ID: "h2", Title: "Gym", ActiveDays: []int{1, 3, 5}, MultiCheck: true, TargetDays: 3,
		Log: habit.Log{"2023-12-31": 2}}
	var buf bytes.Buffer
	if err := ExportCSV(&buf, []*habit.Habit{h1, h2}); err != nil {
		t.Fatalf("export: %v", err)
	}
	want := strings.Join([]string{
		"id,title,description,category,icon,color,activeDays,multiCheck,targetEnabled,targetDays,freezeEnabled",
		`h1,Water,"8 glasses, at least",,,,0;1;2;3;4;5;6,false,false,0,false`,
		"h2,Gym,,,,,1;3;5,true,false,3,false",
		"",
		LogSection,
		"habit_id,date,count",
		"h2,2023-12-31,2",
		"h1,2024-01-01,1",
		"h1,2024-01-02,1",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Fatalf("unexpected csv:\n%s\nwant:\n%s", got, want)
	}
}
