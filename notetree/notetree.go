// Package notetree locates and decodes the note tree for either archive
// layout: a single note_tree entry for multi-note containers, or the
// lone note's own metadata record for single-note containers.
package notetree

import (
	"io"
	"path"

	"github.com/platinummonkey/boxnote/archive"
	"github.com/platinummonkey/boxnote/id"
	"github.com/platinummonkey/boxnote/record"
)

const multiNotePath = "note_tree"

// Decode reads and decodes every note's metadata out of c, regardless of
// whether c is a single-note or multi-note container.
//
// MultiNote resolves "note_tree" through the ordinary root-path-prefixed
// relative lookup. SingleNote has no separate root_path/ prefix to add
// (relative paths resolve verbatim there), so the note's own id, which
// equals the container's root directory name, must be included in the
// path explicitly: {root_path}/note/pb/note_info.
func Decode(c *archive.Container) (map[id.NoteUuid]record.NoteMetadata, error) {
	relPath := multiNotePath
	if c.Variant() == archive.SingleNote {
		relPath = path.Join(c.RootPath(), "note", "pb", "note_info")
	}

	return archive.WithFileRelative(c, relPath, func(r io.Reader) (map[id.NoteUuid]record.NoteMetadata, error) {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		return record.DecodeNoteTree(data)
	})
}
