package id

import (
	"strings"
	"testing"

	"github.com/platinummonkey/boxnote/boxerr"
)

func TestParseNoteUuidRoundTrip(t *testing.T) {
	want := NewNoteUuid()
	got, err := ParseNoteUuid(want.String())
	if err != nil {
		t.Fatalf("ParseNoteUuid: %v", err)
	}
	if got.String() != want.String() {
		t.Fatalf("round trip mismatch: got %s, want %s", got, want)
	}
	if got.Simple() != strings.ReplaceAll(want.String(), "-", "") {
		t.Errorf("Simple() = %q", got.Simple())
	}
}

func TestParsePageUuidAcceptsSimpleForm(t *testing.T) {
	hyphenated := NewPageUuid()
	simpleForm := hyphenated.Simple()
	parsed, err := ParsePageUuid(simpleForm)
	if err != nil {
		t.Fatalf("ParsePageUuid(simple form): %v", err)
	}
	if parsed.UUID() != hyphenated.UUID() {
		t.Fatalf("expected simple-form parse to equal original")
	}
}

func TestParseTrimsSpacePadding(t *testing.T) {
	u := NewStrokeUuid()
	padded := u.String() + "    "
	got, err := ParseStrokeUuid(padded)
	if err != nil {
		t.Fatalf("ParseStrokeUuid(padded): %v", err)
	}
	if got.UUID() != u.UUID() {
		t.Fatalf("expected padded parse to equal original")
	}
}

func TestParseInvalidReturnsUuidParseKind(t *testing.T) {
	_, err := ParsePageUuid("not-a-uuid")
	if err == nil {
		t.Fatal("expected error")
	}
	if be, ok := err.(*boxerr.Error); !ok || be.Kind != boxerr.UuidParse {
		t.Fatalf("expected boxerr.UuidParse, got %v", err)
	}
}

func TestParseBytesRejectsInvalidUtf8(t *testing.T) {
	_, err := ParsePageModelUuidBytes([]byte{0xff, 0xfe, 0xfd})
	if err == nil {
		t.Fatal("expected error")
	}
	if be, ok := err.(*boxerr.Error); !ok || be.Kind != boxerr.UuidInvalidUtf8 {
		t.Fatalf("expected boxerr.UuidInvalidUtf8, got %v", err)
	}
}

func TestIsZero(t *testing.T) {
	var z NoteUuid
	if !z.IsZero() {
		t.Error("zero value should report IsZero")
	}
	if NewNoteUuid().IsZero() {
		t.Error("freshly generated uuid should not report IsZero")
	}
}

func TestCrossTypeUuidComparison(t *testing.T) {
	shared := NewPageUuid()
	vp, err := ParseVirtualPageUuid(shared.String())
	if err != nil {
		t.Fatalf("ParseVirtualPageUuid: %v", err)
	}
	if vp.UUID() != shared.UUID() {
		t.Fatal("expected a VirtualPageUuid and a PageUuid built from the same string to share a UUID value")
	}
}

func TestParsePenIdUUIDForm(t *testing.T) {
	u := NewPenUuid()
	p, err := ParsePenId(u.Simple())
	if err != nil {
		t.Fatalf("ParsePenId: %v", err)
	}
	if !p.IsUUID() {
		t.Fatal("expected UUID-form PenId")
	}
	got, ok := p.UUID()
	if !ok || got.UUID() != u.UUID() {
		t.Fatalf("expected UUID accessor to return original value")
	}
}

func TestParsePenIdSmallForm(t *testing.T) {
	p, err := ParsePenId("42")
	if err != nil {
		t.Fatalf("ParsePenId: %v", err)
	}
	if p.IsUUID() {
		t.Fatal("expected integer-form PenId")
	}
	n, ok := p.Small()
	if !ok || n != 42 {
		t.Fatalf("expected Small() == 42, got %d, ok=%v", n, ok)
	}
	if p.String() != "42" {
		t.Errorf("String() = %q, want 42", p.String())
	}
}

func TestParsePenIdInvalid(t *testing.T) {
	if _, err := ParsePenId("not-a-number-or-uuid"); err == nil {
		t.Fatal("expected error for unparsable PenId")
	}
}

func TestWarnOnReuseDetectsCrossKindReuse(t *testing.T) {
	ResetRegistry()
	shared := NewNoteUuid().UUID()

	var warnings []string
	w := recordingWarner(func(msg string, kv ...interface{}) {
		warnings = append(warnings, msg)
	})

	WarnOnReuse(w, shared, "note")
	if len(warnings) != 0 {
		t.Fatalf("expected no warning on first registration, got %v", warnings)
	}
	WarnOnReuse(w, shared, "page")
	if len(warnings) != 1 {
		t.Fatalf("expected one warning on cross-kind reuse, got %v", warnings)
	}
}

type recordingWarner func(msg string, kv ...interface{})

func (r recordingWarner) Warnw(msg string, kv ...interface{}) { r(msg, kv...) }
