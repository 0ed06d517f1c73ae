package engine

import (
	"testing"
)

// MockObserver is a test observer that records events
type MockObserver struct {
	Events []Event
}

func (m *MockObserver) OnEvent(event Event) {
	m.Events = append(m.Events, event)
}

func (m *MockObserver) types() []EventType {
	out := make([]EventType, len(m.Events))
	for i, e := range m.Events {
		out[i] = e.Type
	}
	return out
}

func TestAddObserver(t *testing.T) {
	eng := New(NewSession(false))
	observer := &MockObserver{}

	eng.AddObserver(observer)

	if len(eng.observers) != 1 {
		t.Errorf("Expected 1 observer, got %d", len(eng.observers))
	}
}

func TestRemoveObserver(t *testing.T) {
	eng := New(NewSession(false))
	observer := &MockObserver{}

	eng.AddObserver(observer)
	eng.RemoveObserver(observer)

	if len(eng.observers) != 0 {
		t.Errorf("Expected 0 observers, got %d", len(eng.observers))
	}
}

func TestNotifyWithNoObservers(t *testing.T) {
	eng := New(NewSession(false))

	// Should not panic
	eng.notify(Event{Type: EventLexStart, CommandID: "test-cmd"})
}

func TestNotifyWithMultipleObservers(t *testing.T) {
	eng := New(NewSession(false))
	observer1 := &MockObserver{}
	observer2 := &MockObserver{}

	eng.AddObserver(observer1)
	eng.AddObserver(observer2)

	testEvent := Event{Type: EventLexStart, CommandID: "test-cmd", Data: "REMOVE T"}
	eng.notify(testEvent)

	if len(observer1.Events) != 1 {
		t.Errorf("Observer1: Expected 1 event, got %d", len(observer1.Events))
	}
	if len(observer2.Events) != 1 {
		t.Errorf("Observer2: Expected 1 event, got %d", len(observer2.Events))
	}

	if observer1.Events[0].Type != EventLexStart {
		t.Errorf("Observer1: Expected EventLexStart, got %v", observer1.Events[0].Type)
	}
	if observer2.Events[0].Type != EventLexStart {
		t.Errorf("Observer2: Expected EventLexStart, got %v", observer2.Events[0].Type)
	}
}

func TestEventTimestamp(t *testing.T) {
	eng := New(NewSession(false))
	observer := &MockObserver{}
	eng.AddObserver(observer)

	eng.notify(Event{Type: EventLexStart, CommandID: "test-cmd"})

	if observer.Events[0].Timestamp.IsZero() {
		t.Error("Expected timestamp to be set, got zero value")
	}
}

func TestLifecycleEvents(t *testing.T) {
	eng := New(NewSession(false))
	observer := &MockObserver{}
	eng.AddObserver(observer)

	if _, err := eng.Execute("CREATE T 1 int a", nil); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	want := []EventType{EventLexStart, EventLexEnd, EventParseStart, EventParseEnd, EventExecStart, EventExecEnd}
	got := observer.types()
	if len(got) != len(want) {
		t.Fatalf("Expected events %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d: expected %s, got %s", i, want[i], got[i])
		}
	}

	id := observer.Events[0].CommandID
	if id == "" {
		t.Fatal("Expected a command ID")
	}
	for _, e := range observer.Events {
		if e.CommandID != id {
			t.Errorf("event %s has command ID %s, expected %s", e.Type, e.CommandID, id)
		}
	}
}

func TestErrorEvent(t *testing.T) {
	eng := New(NewSession(false))
	observer := &MockObserver{}
	eng.AddObserver(observer)

	if _, err := eng.Execute("REMOVE T", nil); err == nil {
		t.Fatal("Expected an error")
	}

	last := observer.Events[len(observer.Events)-1]
	if last.Type != EventError {
		t.Fatalf("Expected last event to be %s, got %s", EventError, last.Type)
	}
	if last.Data != "Error during REMOVE: T does not name a table in the database" {
		t.Errorf("unexpected error data %v", last.Data)
	}
}

func TestCommandIDsAreUnique(t *testing.T) {
	a := NewCommand("QUIT")
	b := NewCommand("QUIT")

	if a.ID == b.ID {
		t.Errorf("Expected distinct IDs, both are %s", a.ID)
	}
	if b.Seq <= a.Seq {
		t.Errorf("Expected increasing sequence, got %d then %d", a.Seq, b.Seq)
	}

	a.Close()
	if a.Active {
		t.Error("Expected command to be inactive after Close")
	}
}
