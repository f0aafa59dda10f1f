// Package boxnote is the public entry point: it opens a .note container
// and exposes Note and Page accessors over its decoded records.
package boxnote

import (
	"io"

	"github.com/platinummonkey/boxnote/archive"
	"github.com/platinummonkey/boxnote/id"
	"github.com/platinummonkey/boxnote/notetree"
	"github.com/platinummonkey/boxnote/record"
)

// File is the opened, decoded .note container: every note's metadata is
// read and indexed eagerly on Open, while each note's deeper records
// (virtual docs, pages, shapes, strokes) are fetched and memoized lazily
// per Note/Page accessor.
type File struct {
	archive *archive.Container
	notes   map[id.NoteUuid]record.NoteMetadata
}

// Open reads r as a zip-backed .note container and decodes its note tree.
func Open(r io.ReaderAt, size int64) (*File, error) {
	c, err := archive.Open(r, size)
	if err != nil {
		return nil, err
	}
	notes, err := notetree.Decode(c)
	if err != nil {
		return nil, err
	}
	return &File{archive: c, notes: notes}, nil
}

// Variant reports whether the underlying container is single-note or
// multi-note.
func (f *File) Variant() archive.Variant { return f.archive.Variant() }

// ListNotes returns every note's id and display name.
func (f *File) ListNotes() map[id.NoteUuid]string {
	names := make(map[id.NoteUuid]string, len(f.notes))
	for noteID, m := range f.notes {
		names[noteID] = m.Name
	}
	return names
}

// GetNote returns the Note accessor for noteID, or false if no such note
// exists in this container.
func (f *File) GetNote(noteID id.NoteUuid) (*Note, bool) {
	m, ok := f.notes[noteID]
	if !ok {
		return nil, false
	}
	return &Note{archive: f.archive, noteID: noteID, metadata: m}, true
}
