// Package points decodes the custom big-endian "points file" binary
// format: a header, a trailer-pointed index table, and the raw point
// arrays for each stroke on a page.
package points

import (
	"encoding/binary"
	"io"
	"strings"

	"github.com/platinummonkey/boxnote/boxerr"
	"github.com/platinummonkey/boxnote/id"
)

const (
	headerPageIDOffset   = 0x04
	headerPointsIDOffset = 0x28
	uuidFieldWidth       = 36
	tableEntrySize       = 44
	pointSize            = 16
)

// Header is the fixed-width prefix of every points file.
type Header struct {
	Version  uint32
	PageID   id.PageUuid
	PointsID id.PointsUuid
}

// Point is one timestamped, pressure-sampled sample along a stroke.
type Point struct {
	TimestampRel uint32
	X            float32
	Y            float32
	TiltX        int8
	TiltY        int8
	Pressure     uint16
}

// Stroke is the ordered sequence of points making up one pen stroke.
type Stroke struct {
	Points []Point
}

// tableEntry is one 44-byte points-table row.
type tableEntry struct {
	strokeID   id.StrokeUuid
	startAddr  uint32
	pointCount uint32
	flag       uint8
}

// File is a fully-decoded points file: its header plus every stroke,
// indexed by StrokeUuid.
type File struct {
	Header  Header
	Strokes map[id.StrokeUuid]Stroke
}

// GetStroke returns the stroke keyed by strokeID, or false if absent.
func (f File) GetStroke(strokeID id.StrokeUuid) (Stroke, bool) {
	s, ok := f.Strokes[strokeID]
	return s, ok
}

// Decode reads a complete points file from r, which must support seeking
// (the trailer and index table are only discoverable by reading from the
// end of the file backwards).
func Decode(r io.ReadSeeker) (File, error) {
	header, err := readHeader(r)
	if err != nil {
		return File{}, err
	}

	end, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return File{}, boxerr.Wrap(boxerr.Io, "seek to end", err)
	}
	pointsTableEnd := end - 4
	if pointsTableEnd < 0 {
		return File{}, boxerr.New(boxerr.Io, "points file too short for trailer")
	}

	if _, err := r.Seek(pointsTableEnd, io.SeekStart); err != nil {
		return File{}, boxerr.Wrap(boxerr.Io, "seek to trailer", err)
	}
	var tableStart uint32
	if err := binary.Read(r, binary.BigEndian, &tableStart); err != nil {
		return File{}, boxerr.Wrap(boxerr.Io, "read points_table_start", err)
	}

	entries, err := readTable(r, int64(tableStart), pointsTableEnd)
	if err != nil {
		return File{}, err
	}

	strokes := make(map[id.StrokeUuid]Stroke, len(entries))
	for _, e := range entries {
		stroke, err := readStroke(r, e)
		if err != nil {
			return File{}, err
		}
		strokes[e.strokeID] = stroke
	}

	return File{Header: header, Strokes: strokes}, nil
}

func readHeader(r io.ReadSeeker) (Header, error) {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return Header{}, boxerr.Wrap(boxerr.Io, "seek to header", err)
	}

	var version uint32
	if err := binary.Read(r, binary.BigEndian, &version); err != nil {
		return Header{}, boxerr.Wrap(boxerr.Io, "read version", err)
	}

	if _, err := r.Seek(headerPageIDOffset, io.SeekStart); err != nil {
		return Header{}, boxerr.Wrap(boxerr.Io, "seek to page_id", err)
	}
	pageIDBuf := make([]byte, uuidFieldWidth)
	if _, err := io.ReadFull(r, pageIDBuf); err != nil {
		return Header{}, boxerr.Wrap(boxerr.Io, "read page_id", err)
	}
	// Observed to be trailing-space padded to the fixed 36-byte width.
	pageID, err := id.ParsePageUuid(strings.TrimRight(string(pageIDBuf), " "))
	if err != nil {
		return Header{}, err
	}

	if _, err := r.Seek(headerPointsIDOffset, io.SeekStart); err != nil {
		return Header{}, boxerr.Wrap(boxerr.Io, "seek to points_id", err)
	}
	pointsIDBuf := make([]byte, uuidFieldWidth)
	if _, err := io.ReadFull(r, pointsIDBuf); err != nil {
		return Header{}, boxerr.Wrap(boxerr.Io, "read points_id", err)
	}
	// Not observed to be padded, but trimmed anyway for tolerance.
	pointsID, err := id.ParsePointsUuid(strings.TrimRight(string(pointsIDBuf), " "))
	if err != nil {
		return Header{}, err
	}

	return Header{Version: version, PageID: pageID, PointsID: pointsID}, nil
}

func readTable(r io.ReadSeeker, start, end int64) ([]tableEntry, error) {
	if _, err := r.Seek(start, io.SeekStart); err != nil {
		return nil, boxerr.Wrap(boxerr.Io, "seek to points table", err)
	}

	var entries []tableEntry
	for {
		pos, err := r.Seek(0, io.SeekCurrent)
		if err != nil {
			return nil, boxerr.Wrap(boxerr.Io, "read points table position", err)
		}
		if pos >= end {
			break
		}

		idBuf := make([]byte, uuidFieldWidth)
		if _, err := io.ReadFull(r, idBuf); err != nil {
			return nil, boxerr.Wrap(boxerr.Io, "read table entry stroke_id", err)
		}
		strokeID, err := id.ParseStrokeUuid(strings.TrimRight(string(idBuf), " "))
		if err != nil {
			return nil, err
		}

		var startAddr, packed uint32
		if err := binary.Read(r, binary.BigEndian, &startAddr); err != nil {
			return nil, boxerr.Wrap(boxerr.Io, "read table entry start_addr", err)
		}
		if err := binary.Read(r, binary.BigEndian, &packed); err != nil {
			return nil, boxerr.Wrap(boxerr.Io, "read table entry packed field", err)
		}

		entries = append(entries, tableEntry{
			strokeID:   strokeID,
			startAddr:  startAddr,
			pointCount: packed >> 4,
			flag:       uint8(packed & 0xF),
		})
	}
	return entries, nil
}

func readStroke(r io.ReadSeeker, e tableEntry) (Stroke, error) {
	if _, err := r.Seek(int64(e.startAddr), io.SeekStart); err != nil {
		return Stroke{}, boxerr.Wrap(boxerr.Io, "seek to stroke start", err)
	}

	points := make([]Point, 0, e.pointCount)
	for i := uint32(0); i < e.pointCount; i++ {
		var p Point
		if err := binary.Read(r, binary.BigEndian, &p.TimestampRel); err != nil {
			return Stroke{}, boxerr.Wrap(boxerr.Io, "read point timestamp", err)
		}
		if err := binary.Read(r, binary.BigEndian, &p.X); err != nil {
			return Stroke{}, boxerr.Wrap(boxerr.Io, "read point x", err)
		}
		if err := binary.Read(r, binary.BigEndian, &p.Y); err != nil {
			return Stroke{}, boxerr.Wrap(boxerr.Io, "read point y", err)
		}
		if err := binary.Read(r, binary.BigEndian, &p.TiltX); err != nil {
			return Stroke{}, boxerr.Wrap(boxerr.Io, "read point tilt_x", err)
		}
		if err := binary.Read(r, binary.BigEndian, &p.TiltY); err != nil {
			return Stroke{}, boxerr.Wrap(boxerr.Io, "read point tilt_y", err)
		}
		if err := binary.Read(r, binary.BigEndian, &p.Pressure); err != nil {
			return Stroke{}, boxerr.Wrap(boxerr.Io, "read point pressure", err)
		}
		points = append(points, p)
	}

	return Stroke{Points: points}, nil
}
