package telemetry

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "telemetry.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordEventFillsDefaults(t *testing.T) {
	s := openTestStore(t)

	stored, err := s.RecordEvent(Event{SessionID: "sess", Skill: "coder", Context: "fix the bug", Completed: true})
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if stored.ID == "" {
		t.Error("ID not generated")
	}
	if stored.CreatedAt.IsZero() {
		t.Error("CreatedAt not stamped")
	}
}

func TestListEventsChronological(t *testing.T) {
	s := openTestStore(t)

	base := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	// Inserted out of order on purpose
	for _, ev := range []Event{
		{ID: "b", SessionID: "s", Skill: "coder", Context: "second", CreatedAt: base.Add(time.Minute)},
		{ID: "a", SessionID: "s", Skill: "coder", Context: "first", Completed: true, CreatedAt: base},
		{ID: "c", SessionID: "s", Skill: "writer", Context: "third", CreatedAt: base.Add(2 * time.Minute)},
	} {
		if _, err := s.RecordEvent(ev); err != nil {
			t.Fatalf("record %s: %v", ev.ID, err)
		}
	}

	events, err := s.ListEvents(0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("events: got %d, want 3", len(events))
	}
	for i, want := range []string{"a", "b", "c"} {
		if events[i].ID != want {
			t.Errorf("position %d: got %s, want %s", i, events[i].ID, want)
		}
	}
	if !events[0].Completed || events[1].Completed {
		t.Error("completed flag lost in round trip")
	}
	if !events[0].CreatedAt.Equal(base) {
		t.Errorf("created_at: got %v, want %v", events[0].CreatedAt, base)
	}
}

func TestListEventsLimit(t *testing.T) {
	s := openTestStore(t)

	base := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		_, err := s.RecordEvent(Event{SessionID: "s", Skill: "coder", Context: "x", CreatedAt: base.Add(time.Duration(i) * time.Second)})
		if err != nil {
			t.Fatal(err)
		}
	}

	events, err := s.ListEvents(2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(events) != 2 {
		t.Errorf("limited list: got %d, want 2", len(events))
	}

	n, err := s.CountEvents()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 5 {
		t.Errorf("count: got %d, want 5", n)
	}
}

func TestRecordEventDuplicateID(t *testing.T) {
	s := openTestStore(t)

	if _, err := s.RecordEvent(Event{ID: "dup", SessionID: "s", Skill: "coder", Context: "x"}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.RecordEvent(Event{ID: "dup", SessionID: "s", Skill: "coder", Context: "y"}); err == nil {
		t.Error("duplicate primary key accepted")
	}
}
