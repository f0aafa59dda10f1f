package logging

import "testing"

func TestNewDefaultsToInfoConsole(t *testing.T) {
	l, err := New(nil)
	if err != nil {
		t.Fatalf("New(nil): %v", err)
	}
	if l == nil || l.SugaredLogger == nil {
		t.Fatal("expected a usable logger")
	}
}

func TestNewRejectsInvalidLevel(t *testing.T) {
	_, err := New(&Config{Level: "not-a-level", Format: "console"})
	if err == nil {
		t.Fatal("expected error for invalid log level")
	}
}

func TestNewAcceptsJSONFormat(t *testing.T) {
	l, err := New(&Config{Level: "debug", Format: "json"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if l == nil {
		t.Fatal("expected a usable logger")
	}
}

func TestWithFieldsHelpersDoNotPanic(t *testing.T) {
	l, err := New(&Config{Level: "info", Format: "console"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.WithNoteID("note-1").Infow("test")
	l.WithPageID("page-1").Infow("test")
	l.WithStrokeID("stroke-1").Infow("test")
	l.WithError(errTest("boom")).Infow("test")
}

type errTest string

func (e errTest) Error() string { return string(e) }

func TestGetReturnsUsableDefaultLogger(t *testing.T) {
	l := Get()
	if l == nil {
		t.Fatal("expected Get to return a non-nil default logger")
	}
}
