package boxnote

import (
	"archive/zip"
	"bytes"
	"io"
	"path"
	"strconv"
	"strings"
	"sync"

	"github.com/platinummonkey/boxnote/archive"
	"github.com/platinummonkey/boxnote/boxerr"
	"github.com/platinummonkey/boxnote/id"
	"github.com/platinummonkey/boxnote/logging"
	"github.com/platinummonkey/boxnote/points"
	"github.com/platinummonkey/boxnote/record"
)

// Page is a handle onto one page within a Note: its layout (PageModel),
// optional viewport/geometry record (VirtualPage), and the lazily
// fetched, memoized shape groups and points files that hold its drawn
// content.
type Page struct {
	archive        *archive.Container
	noteID         id.NoteUuid
	noteName       string
	pageID         id.PageUuid
	virtualPage    record.VirtualPage
	hasVirtualPage bool
	pageModel      record.PageModel

	mu          sync.Mutex
	shapeGroups map[id.ShapeGroupUuid]record.ShapeContainer
	pointsFiles map[id.PointsUuid][]points.File
}

// ID returns this page's identifier.
func (p *Page) ID() id.PageUuid { return p.pageID }

// NoteName returns the display name of the note this page belongs to.
func (p *Page) NoteName() string { return p.noteName }

// PageModel returns the page's required layout/layer record.
func (p *Page) PageModel() record.PageModel { return p.pageModel }

// VirtualPage returns the page's viewport/geometry record and whether one
// was present. A page may have a PageModel with no corresponding
// VirtualPage.
func (p *Page) VirtualPage() (record.VirtualPage, bool) { return p.virtualPage, p.hasVirtualPage }

// shardedFilename splits a sharded basename of the form
// "{segment}#{segment}#{timestamp_ms}[.ext]" into its '#'-delimited
// parts, with any file extension already stripped from the last part.
func shardedFilename(entryPath string) ([]string, error) {
	base := basenameWithoutExt(entryPath)
	parts := strings.Split(base, "#")
	if len(parts) != 3 {
		return nil, boxerr.Newf(boxerr.InvalidTimestampFormat, "malformed sharded filename %q", entryPath)
	}
	return parts, nil
}

func parseTimestampMs(raw string) (int64, error) {
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, boxerr.Wrap(boxerr.InvalidTimestampFormat, "parse shard timestamp", err).WithOffending(raw)
	}
	return ms, nil
}

// GetShapeGroups lists, decodes, and memoizes every shape-group nested
// zip for this page, indexed by ShapeGroupUuid. Each archive entry is
// copied into memory, re-opened as its own zip, and its sole entry
// decoded as a ShapeContainer.
func (p *Page) GetShapeGroups() (map[id.ShapeGroupUuid]record.ShapeContainer, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.shapeGroups != nil {
		return p.shapeGroups, nil
	}

	prefix := path.Join(p.noteID.Simple(), "shape") + "/"
	wantPrefix := p.pageID.Simple() + "#"

	groups := map[id.ShapeGroupUuid]record.ShapeContainer{}
	for _, entryPath := range p.archive.ListDirectory(prefix) {
		if !strings.HasPrefix(path.Base(entryPath), wantPrefix) {
			continue
		}

		parts, err := shardedFilename(entryPath)
		if err != nil {
			return nil, err
		}
		shapeGroupID, err := id.ParseShapeGroupUuid(parts[1])
		if err != nil {
			return nil, err
		}
		if _, err := parseTimestampMs(parts[2]); err != nil {
			return nil, err
		}

		container, err := archive.WithFileAbsolute(p.archive, entryPath, func(r io.Reader) (record.ShapeContainer, error) {
			outer, err := io.ReadAll(r)
			if err != nil {
				return record.ShapeContainer{}, boxerr.Wrap(boxerr.Io, "read shape group entry", err)
			}
			return decodeNestedShapeContainer(outer)
		})
		if err != nil {
			return nil, err
		}

		id.WarnOnReuse(logging.Get(), shapeGroupID.UUID(), "shape_group")
		for _, shape := range container.Shapes {
			id.WarnOnReuse(logging.Get(), shape.StrokeID.UUID(), "stroke")
			if shape.HasPoints {
				id.WarnOnReuse(logging.Get(), shape.PointsID.UUID(), "points")
			}
		}

		groups[shapeGroupID] = container
	}

	p.shapeGroups = groups
	return groups, nil
}

func decodeNestedShapeContainer(outer []byte) (record.ShapeContainer, error) {
	zr, err := zip.NewReader(bytes.NewReader(outer), int64(len(outer)))
	if err != nil {
		return record.ShapeContainer{}, boxerr.Wrap(boxerr.Zip, "open nested shape group zip", err)
	}
	if len(zr.File) == 0 {
		return record.ShapeContainer{}, boxerr.New(boxerr.InvalidContainerFormat, "shape group zip has no entries")
	}

	f, err := zr.File[0].Open()
	if err != nil {
		return record.ShapeContainer{}, boxerr.Wrap(boxerr.Zip, "open nested shape group entry", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return record.ShapeContainer{}, boxerr.Wrap(boxerr.Io, "read nested shape group entry", err)
	}

	return record.DecodeShapeContainer(data)
}

// GetPointsFiles lists, decodes, and memoizes every points-file shard for
// this page, indexed by PointsUuid. Multiple shards may share one
// PointsUuid (versioning by timestamp); all are kept, in archive listing
// order.
func (p *Page) GetPointsFiles() (map[id.PointsUuid][]points.File, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.pointsFiles != nil {
		return p.pointsFiles, nil
	}

	prefix := path.Join(p.noteID.Simple(), "point", p.pageID.Simple()) + "/"

	files := map[id.PointsUuid][]points.File{}
	for _, entryPath := range p.archive.ListDirectory(prefix) {
		parts, err := shardedFilename(entryPath)
		if err != nil {
			return nil, err
		}
		pointsID, err := id.ParsePointsUuid(parts[1])
		if err != nil {
			return nil, err
		}
		if _, err := parseTimestampMs(parts[2]); err != nil {
			return nil, err
		}

		pf, err := archive.WithFileAbsolute(p.archive, entryPath, func(r io.Reader) (points.File, error) {
			data, err := io.ReadAll(r)
			if err != nil {
				return points.File{}, boxerr.Wrap(boxerr.Io, "read points file entry", err)
			}
			return points.Decode(bytes.NewReader(data))
		})
		if err != nil {
			return nil, err
		}

		files[pointsID] = append(files[pointsID], pf)
	}

	p.pointsFiles = files
	return files, nil
}
