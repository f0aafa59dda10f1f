// Package record decodes the protobuf-framed domain records of a .note
// container (NoteMetadata, VirtualDoc, VirtualPage, PageModel, Shape),
// including their embedded JSON sub-documents.
package record

import (
	"encoding/json"
	"regexp"
	"time"

	"github.com/platinummonkey/boxnote/boxerr"
)

// Dimensions is the one geometry shape reused by several JSON sub-documents
// (bounding boxes, page dimensions, viewport rectangles).
type Dimensions struct {
	Top       float32 `json:"top"`
	Right     float32 `json:"right"`
	Bottom    float32 `json:"bottom"`
	Left      float32 `json:"left"`
	Empty     bool    `json:"empty"`
	Stability uint32  `json:"stability"`
}

// Layer is one entry of a PageModel's layer list.
type Layer struct {
	ID   uint32 `json:"id"`
	Lock bool   `json:"lock"`
	Show bool   `json:"show"`
}

// penWithMapObjectPattern isolates the penWithMap sub-object itself (a flat
// object with no nested braces), so the bare-key repair below never
// touches any other field of the surrounding pen_settings_json document.
var penWithMapObjectPattern = regexp.MustCompile(`"penWithMap":\{[^{}]*\}`)

// penWithMapKeyPattern matches a bare decimal-integer JSON object key (the
// penWithMap quirk): a run of digits immediately followed by a colon, with
// no surrounding quotes.
var penWithMapKeyPattern = regexp.MustCompile(`(\d+):`)

// repairPenWithMap rewrites bare-integer object keys into quoted string
// keys so the standard JSON decoder accepts them. It is applied only to
// the pen_settings_json field's penWithMap sub-object, never generally.
func repairPenWithMap(raw string) string {
	return penWithMapObjectPattern.ReplaceAllStringFunc(raw, func(block string) string {
		return penWithMapKeyPattern.ReplaceAllString(block, `"$1":`)
	})
}

// parseJSON decodes raw into v, wrapping any failure as a Json error that
// preserves the offending text for diagnostics.
func parseJSON(raw string, v interface{}) error {
	if raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return boxerr.Wrap(boxerr.Json, "decode json", err).WithOffending(raw)
	}
	return nil
}

// epochMillisToUTC converts a 64-bit millisecond-epoch timestamp to a UTC
// time.Time, failing if it is not representable as a valid instant.
func epochMillisToUTC(ms int64) (time.Time, error) {
	if ms < 0 {
		return time.Time{}, boxerr.Newf(boxerr.InvalidTimestamp, "timestamp %d is negative", ms)
	}
	t := time.UnixMilli(ms).UTC()
	if t.Year() > 9999 {
		return time.Time{}, boxerr.Newf(boxerr.InvalidTimestamp, "timestamp %d is out of range", ms)
	}
	return t, nil
}

// utcToEpochMillis is the inverse of epochMillisToUTC.
func utcToEpochMillis(t time.Time) int64 {
	return t.UnixMilli()
}

// decodeColor reinterprets a signed 32-bit bit pattern as an unsigned
// ARGB8888 value (a bit-pattern reinterpretation, not sign extension).
func decodeColor(signed int32) uint32 {
	return uint32(signed)
}

// encodeColor is the inverse of decodeColor.
func encodeColor(u uint32) int32 {
	return int32(u)
}

// Color is an ARGB8888 value that is carried on the wire (inside embedded
// JSON) as a signed 32-bit integer. UnmarshalJSON/MarshalJSON perform the
// bit-pattern reinterpretation described in decodeColor/encodeColor so
// every other field of a JSON sub-document can be decoded with the
// standard library's struct-tag machinery.
type Color uint32

func (c *Color) UnmarshalJSON(b []byte) error {
	var signed int32
	if err := json.Unmarshal(b, &signed); err != nil {
		return boxerr.Wrap(boxerr.Json, "decode color", err).WithOffending(string(b))
	}
	*c = Color(decodeColor(signed))
	return nil
}

func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(encodeColor(uint32(c)))
}
