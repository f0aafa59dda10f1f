// Package archive adapts a zip-backed .note container, dispatching between
// its single-note and multi-note on-disk layouts and exposing a locked,
// shared handle so multiple Note/Page accessors can safely read from the
// same archive.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/platinummonkey/boxnote/boxerr"
)

// Variant distinguishes the two container layouts a .note archive can use.
type Variant int

const (
	// SingleNote containers store exactly one note under the archive's
	// root directory, with no note_tree entry in it.
	SingleNote Variant = iota

	// MultiNote containers store one or more notes, each namespaced
	// under a shared root directory, with a note_tree entry listing them.
	MultiNote
)

func (v Variant) String() string {
	if v == MultiNote {
		return "multi-note"
	}
	return "single-note"
}

// Container is a shared, lock-guarded handle onto a .note archive's zip
// reader. Every Note and Page accessor built on top of a Container shares
// the same underlying *Container pointer, so WithFileRelative/
// WithFileAbsolute calls across accessors are mutually exclusive.
type Container struct {
	mu       sync.Mutex
	zr       *zip.Reader
	variant  Variant
	rootPath string
}

// Open inspects the first entry of the zip archive backing r to determine
// the container's root path and variant, then returns a ready Container.
func Open(r io.ReaderAt, size int64) (*Container, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, boxerr.Wrap(boxerr.Zip, "open zip archive", err)
	}
	if len(zr.File) == 0 {
		return nil, boxerr.New(boxerr.InvalidContainerFormat, "archive is empty")
	}

	firstName := zr.File[0].Name
	rootPath, ok := firstPathComponent(firstName)
	if !ok {
		return nil, boxerr.New(boxerr.InvalidContainerFormat, "could not derive root path from first entry")
	}

	variant := SingleNote
	if _, err := zr.Open(rootPath + "/note_tree"); err == nil {
		variant = MultiNote
	}

	return &Container{zr: zr, variant: variant, rootPath: rootPath}, nil
}

func firstPathComponent(name string) (string, bool) {
	name = strings.TrimPrefix(name, "/")
	idx := strings.Index(name, "/")
	if idx < 0 {
		return "", false
	}
	return name[:idx], true
}

// Variant reports whether this is a single-note or multi-note container.
func (c *Container) Variant() Variant { return c.variant }

// RootPath returns the archive's root directory name. Multi-note relative
// paths are resolved under it automatically; single-note relative paths
// are not, so single-note callers (see notetree.Decode) include it
// explicitly.
func (c *Container) RootPath() string { return c.rootPath }

// resolvePath maps a logical relative path onto the archive's actual entry
// name, prefixing with the root path for multi-note containers.
func (c *Container) resolvePath(path string) string {
	if c.variant == SingleNote {
		return path
	}
	return fmt.Sprintf("%s/%s", c.rootPath, path)
}

// ListDirectory returns every archive entry whose name starts with the
// (root-resolved) prefix and is not itself a directory entry.
func (c *Container) ListDirectory(prefix string) []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	resolved := c.resolvePath(prefix)
	var names []string
	for _, f := range c.zr.File {
		if strings.HasPrefix(f.Name, resolved) && !strings.HasSuffix(f.Name, "/") {
			names = append(names, f.Name)
		}
	}
	return names
}

// WithFileRelative opens the archive entry at path (resolved against the
// container's root path for multi-note containers) and hands it to fn,
// holding the container lock for the duration of fn so concurrent
// accessors cannot interleave zip reads.
func WithFileRelative[T any](c *Container, path string, fn func(io.Reader) (T, error)) (T, error) {
	return withFile(c, c.resolvePath(path), fn)
}

// WithFileAbsolute is WithFileRelative without root-path resolution, for
// callers that already have a fully-qualified archive entry name (as
// produced by ListDirectory).
func WithFileAbsolute[T any](c *Container, path string, fn func(io.Reader) (T, error)) (T, error) {
	return withFile(c, path, fn)
}

func withFile[T any](c *Container, resolvedPath string, fn func(io.Reader) (T, error)) (T, error) {
	var zero T

	c.mu.Lock()
	defer c.mu.Unlock()

	f, err := c.zr.Open(resolvedPath)
	if err != nil {
		return zero, boxerr.Wrap(boxerr.Zip, fmt.Sprintf("open %q", resolvedPath), err)
	}
	defer f.Close()

	return fn(f)
}
