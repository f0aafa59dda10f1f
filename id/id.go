// Package id defines the nominal identifier types used throughout a .note
// container: one distinct Go type per UUID "kind" so a stroke id can never
// be passed where a page id is expected, plus the PenId tagged union and
// LayerId wrapper.
package id

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/platinummonkey/boxnote/boxerr"
)

// parse trims trailing space/NUL padding (points-file UUID fields are
// sometimes space-padded to a fixed 36-byte width, see the points package)
// and parses the remainder as a UUID in either the hyphenated or the
// 32-character simple form.
func parse(raw string) (uuid.UUID, error) {
	trimmed := strings.TrimRight(raw, " \x00")
	u, err := uuid.Parse(trimmed)
	if err != nil {
		return uuid.Nil, boxerr.Wrap(boxerr.UuidParse, "parse uuid", err).WithOffending(raw)
	}
	return u, nil
}

// parseBytes validates that raw is well-formed UTF-8 before delegating to
// parse, for identifiers read out of fixed-width byte buffers, where a
// truncated multi-byte codepoint is possible on a corrupt file.
func parseBytes(raw []byte) (uuid.UUID, error) {
	if !utf8.Valid(raw) {
		return uuid.Nil, boxerr.New(boxerr.UuidInvalidUtf8, "uuid field is not valid utf-8")
	}
	return parse(string(raw))
}

func simple(u uuid.UUID) string {
	return strings.ReplaceAll(u.String(), "-", "")
}
