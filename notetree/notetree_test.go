package notetree

import (
	"archive/zip"
	"bytes"
	"testing"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/platinummonkey/boxnote/archive"
	"github.com/platinummonkey/boxnote/id"
)

func buildZip(t *testing.T, files map[string]string) (*bytes.Reader, int64) {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, contents := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("zw.Create(%s): %v", name, err)
		}
		if _, err := w.Write([]byte(contents)); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zw.Close: %v", err)
	}
	data := buf.Bytes()
	return bytes.NewReader(data), int64(len(data))
}

// buildNoteMetadata builds the minimal wire bytes for one NoteMetadata
// record: just enough fields for record.DecodeNoteMetadata to succeed.
func buildNoteMetadata(noteID id.NoteUuid) []byte {
	var d []byte
	d = protowire.AppendTag(d, 1, protowire.BytesType)
	d = protowire.AppendBytes(d, []byte(noteID.String()))
	for _, tag := range []protowire.Number{2, 3} {
		d = protowire.AppendTag(d, tag, protowire.VarintType)
		d = protowire.AppendVarint(d, 0)
	}
	for _, tag := range []protowire.Number{11, 12, 13, 14, 20, 21, 44} {
		d = protowire.AppendTag(d, tag, protowire.BytesType)
		d = protowire.AppendBytes(d, nil)
	}
	return d
}

func buildNoteTree(noteIDs ...id.NoteUuid) []byte {
	var tree []byte
	for _, nid := range noteIDs {
		inner := buildNoteMetadata(nid)
		tree = protowire.AppendTag(tree, 1, protowire.BytesType)
		tree = protowire.AppendBytes(tree, inner)
	}
	return tree
}

func TestDecodeMultiNoteUsesNoteTreeEntry(t *testing.T) {
	noteA := id.NewNoteUuid()
	noteB := id.NewNoteUuid()

	r, size := buildZip(t, map[string]string{
		"root/note_tree": string(buildNoteTree(noteA, noteB)),
	})
	c, err := archive.Open(r, size)
	if err != nil {
		t.Fatalf("archive.Open: %v", err)
	}
	if c.Variant() != archive.MultiNote {
		t.Fatalf("expected MultiNote, got %v", c.Variant())
	}

	notes, err := Decode(c)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(notes) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(notes))
	}
	if _, ok := notes[noteA]; !ok {
		t.Errorf("missing note %s", noteA)
	}
	if _, ok := notes[noteB]; !ok {
		t.Errorf("missing note %s", noteB)
	}
}

func TestDecodeSingleNoteBuildsRootPrefixedPath(t *testing.T) {
	note := id.NewNoteUuid()
	rootPath := note.Simple()

	entryPath := rootPath + "/note/pb/note_info"
	r, size := buildZip(t, map[string]string{
		entryPath: string(buildNoteTree(note)),
	})
	c, err := archive.Open(r, size)
	if err != nil {
		t.Fatalf("archive.Open: %v", err)
	}
	if c.Variant() != archive.SingleNote {
		t.Fatalf("expected SingleNote, got %v", c.Variant())
	}

	notes, err := Decode(c)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(notes) != 1 {
		t.Fatalf("expected 1 note, got %d", len(notes))
	}
	if _, ok := notes[note]; !ok {
		t.Errorf("missing note %s in decoded result", note)
	}
}
