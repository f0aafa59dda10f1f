package boxnote

import (
	"io"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/platinummonkey/boxnote/archive"
	"github.com/platinummonkey/boxnote/id"
	"github.com/platinummonkey/boxnote/record"
)

// Note is a handle onto one note within an opened File. Its deeper
// records are fetched from the shared archive and memoized on first
// access; a Note must not be used from multiple goroutines without
// external synchronization beyond what the shared archive already
// guarantees for the archive reads themselves.
type Note struct {
	archive  *archive.Container
	noteID   id.NoteUuid
	metadata record.NoteMetadata

	mu           sync.Mutex
	virtualDoc   *record.VirtualDoc
	virtualPages map[id.VirtualPageUuid]record.VirtualPage
	pageModels   map[id.PageModelUuid][]record.PageModel
}

// ID returns this note's identifier.
func (n *Note) ID() id.NoteUuid { return n.noteID }

// Metadata returns the note's decoded NoteMetadata record.
func (n *Note) Metadata() record.NoteMetadata { return n.metadata }

// Name returns the note's display name.
func (n *Note) Name() string { return n.metadata.Name }

// Created returns the note's creation timestamp.
func (n *Note) Created() time.Time { return n.metadata.Created }

// Modified returns the note's last-modified timestamp.
func (n *Note) Modified() time.Time { return n.metadata.Modified }

// VirtualDoc reads and memoizes this note's single VirtualDoc record.
func (n *Note) VirtualDoc() (record.VirtualDoc, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.virtualDoc != nil {
		return *n.virtualDoc, nil
	}

	relPath := path.Join(n.noteID.Simple(), "virtual", "doc", "pb", n.noteID.Simple())
	doc, err := archive.WithFileRelative(n.archive, relPath, func(r io.Reader) (record.VirtualDoc, error) {
		data, err := io.ReadAll(r)
		if err != nil {
			return record.VirtualDoc{}, err
		}
		return record.DecodeVirtualDoc(data)
	})
	if err != nil {
		return record.VirtualDoc{}, err
	}

	n.virtualDoc = &doc
	return doc, nil
}

// VirtualPages lists, decodes, and memoizes every VirtualPage record
// under this note, indexed by VirtualPageUuid.
func (n *Note) VirtualPages() (map[id.VirtualPageUuid]record.VirtualPage, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.virtualPages != nil {
		return n.virtualPages, nil
	}

	prefix := path.Join(n.noteID.Simple(), "virtual", "page", "pb") + "/"
	pages := map[id.VirtualPageUuid]record.VirtualPage{}
	for _, entryPath := range n.archive.ListDirectory(prefix) {
		vpageID, err := id.ParseVirtualPageUuid(path.Base(entryPath))
		if err != nil {
			return nil, err
		}

		vp, err := archive.WithFileAbsolute(n.archive, entryPath, func(r io.Reader) (record.VirtualPage, error) {
			data, err := io.ReadAll(r)
			if err != nil {
				return record.VirtualPage{}, err
			}
			return record.DecodeVirtualPage(data)
		})
		if err != nil {
			return nil, err
		}

		pages[vpageID] = vp
	}

	n.virtualPages = pages
	return pages, nil
}

// PageModels lists, decodes, and memoizes every PageModelContainer group
// under this note, indexed by PageModelUuid (the filename's basename).
func (n *Note) PageModels() (map[id.PageModelUuid][]record.PageModel, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.pageModels != nil {
		return n.pageModels, nil
	}

	prefix := path.Join(n.noteID.Simple(), "pageModel", "pb") + "/"
	groups := map[id.PageModelUuid][]record.PageModel{}
	for _, entryPath := range n.archive.ListDirectory(prefix) {
		groupID, err := id.ParsePageModelUuid(path.Base(entryPath))
		if err != nil {
			return nil, err
		}

		models, err := archive.WithFileAbsolute(n.archive, entryPath, func(r io.Reader) ([]record.PageModel, error) {
			data, err := io.ReadAll(r)
			if err != nil {
				return nil, err
			}
			return record.DecodePageModelContainer(data)
		})
		if err != nil {
			return nil, err
		}

		groups[groupID] = models
	}

	n.pageModels = groups
	return groups, nil
}

// GetPage returns the Page accessor for pageID if some PageModel in some
// group has that PageID; the PageModel is required. The VirtualPage
// (compared by raw UUID, since a page's VirtualPage entry and PageModel
// entry share one identifier space) is optional, zero-or-one per
// PageUuid, and its absence does not make the page not-found. A missing
// page is reported by the bool return, not an error.
func (n *Note) GetPage(pageID id.PageUuid) (*Page, bool, error) {
	virtualPages, err := n.VirtualPages()
	if err != nil {
		return nil, false, err
	}
	pageModelGroups, err := n.PageModels()
	if err != nil {
		return nil, false, err
	}

	var (
		virtualPage record.VirtualPage
		hasVirtual  bool
	)
	for _, vp := range virtualPages {
		if vp.VirtualPageID.UUID() == pageID.UUID() {
			virtualPage = vp
			hasVirtual = true
			break
		}
	}

	var (
		pageModel record.PageModel
		hasModel  bool
	)
outer:
	for _, models := range pageModelGroups {
		for _, m := range models {
			if m.PageID == pageID {
				pageModel = m
				hasModel = true
				break outer
			}
		}
	}
	if !hasModel {
		return nil, false, nil
	}

	return &Page{
		archive:        n.archive,
		noteID:         n.noteID,
		pageID:         pageID,
		noteName:       n.metadata.Name,
		virtualPage:    virtualPage,
		hasVirtualPage: hasVirtual,
		pageModel:      pageModel,
	}, true, nil
}

// basenameWithoutExt strips a filename's extension, used when a sharded
// path segment needs to be parsed further (e.g. the points-file shard
// suffix).
func basenameWithoutExt(name string) string {
	base := path.Base(name)
	if idx := strings.LastIndex(base, "."); idx >= 0 {
		return base[:idx]
	}
	return base
}
