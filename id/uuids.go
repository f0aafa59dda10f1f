package id

import "github.com/google/uuid"

// NoteUuid identifies a single note within a container.
type NoteUuid struct{ raw uuid.UUID }

// NewNoteUuid generates a fresh random NoteUuid.
func NewNoteUuid() NoteUuid { return NoteUuid{raw: uuid.New()} }

// ParseNoteUuid parses a hyphenated or 32-character simple UUID string
// (optionally trailing-space padded).
func ParseNoteUuid(s string) (NoteUuid, error) {
	u, err := parse(s)
	if err != nil {
		return NoteUuid{}, err
	}
	return NoteUuid{raw: u}, nil
}

// ParseNoteUuidBytes parses a fixed-width byte buffer as in ParseNoteUuid.
func ParseNoteUuidBytes(b []byte) (NoteUuid, error) {
	u, err := parseBytes(b)
	if err != nil {
		return NoteUuid{}, err
	}
	return NoteUuid{raw: u}, nil
}

func (u NoteUuid) String() string  { return u.raw.String() }
func (u NoteUuid) Simple() string  { return simple(u.raw) }
func (u NoteUuid) IsZero() bool    { return u.raw == uuid.Nil }
func (u NoteUuid) UUID() uuid.UUID { return u.raw }

// PageUuid identifies a page within a note.
type PageUuid struct{ raw uuid.UUID }

func NewPageUuid() PageUuid { return PageUuid{raw: uuid.New()} }

func ParsePageUuid(s string) (PageUuid, error) {
	u, err := parse(s)
	if err != nil {
		return PageUuid{}, err
	}
	return PageUuid{raw: u}, nil
}

func ParsePageUuidBytes(b []byte) (PageUuid, error) {
	u, err := parseBytes(b)
	if err != nil {
		return PageUuid{}, err
	}
	return PageUuid{raw: u}, nil
}

func (u PageUuid) String() string  { return u.raw.String() }
func (u PageUuid) Simple() string  { return simple(u.raw) }
func (u PageUuid) IsZero() bool    { return u.raw == uuid.Nil }
func (u PageUuid) UUID() uuid.UUID { return u.raw }

// PageModelUuid identifies the per-page layout/layer model.
type PageModelUuid struct{ raw uuid.UUID }

func NewPageModelUuid() PageModelUuid { return PageModelUuid{raw: uuid.New()} }

func ParsePageModelUuid(s string) (PageModelUuid, error) {
	u, err := parse(s)
	if err != nil {
		return PageModelUuid{}, err
	}
	return PageModelUuid{raw: u}, nil
}

func ParsePageModelUuidBytes(b []byte) (PageModelUuid, error) {
	u, err := parseBytes(b)
	if err != nil {
		return PageModelUuid{}, err
	}
	return PageModelUuid{raw: u}, nil
}

func (u PageModelUuid) String() string  { return u.raw.String() }
func (u PageModelUuid) Simple() string  { return simple(u.raw) }
func (u PageModelUuid) IsZero() bool    { return u.raw == uuid.Nil }
func (u PageModelUuid) UUID() uuid.UUID { return u.raw }

// VirtualDocUuid identifies a note's single virtual document record.
type VirtualDocUuid struct{ raw uuid.UUID }

func NewVirtualDocUuid() VirtualDocUuid { return VirtualDocUuid{raw: uuid.New()} }

func ParseVirtualDocUuid(s string) (VirtualDocUuid, error) {
	u, err := parse(s)
	if err != nil {
		return VirtualDocUuid{}, err
	}
	return VirtualDocUuid{raw: u}, nil
}

func ParseVirtualDocUuidBytes(b []byte) (VirtualDocUuid, error) {
	u, err := parseBytes(b)
	if err != nil {
		return VirtualDocUuid{}, err
	}
	return VirtualDocUuid{raw: u}, nil
}

func (u VirtualDocUuid) String() string  { return u.raw.String() }
func (u VirtualDocUuid) Simple() string  { return simple(u.raw) }
func (u VirtualDocUuid) IsZero() bool    { return u.raw == uuid.Nil }
func (u VirtualDocUuid) UUID() uuid.UUID { return u.raw }

// VirtualPageUuid identifies a virtual page record.
type VirtualPageUuid struct{ raw uuid.UUID }

func NewVirtualPageUuid() VirtualPageUuid { return VirtualPageUuid{raw: uuid.New()} }

func ParseVirtualPageUuid(s string) (VirtualPageUuid, error) {
	u, err := parse(s)
	if err != nil {
		return VirtualPageUuid{}, err
	}
	return VirtualPageUuid{raw: u}, nil
}

func ParseVirtualPageUuidBytes(b []byte) (VirtualPageUuid, error) {
	u, err := parseBytes(b)
	if err != nil {
		return VirtualPageUuid{}, err
	}
	return VirtualPageUuid{raw: u}, nil
}

func (u VirtualPageUuid) String() string  { return u.raw.String() }
func (u VirtualPageUuid) Simple() string  { return simple(u.raw) }
func (u VirtualPageUuid) IsZero() bool    { return u.raw == uuid.Nil }
func (u VirtualPageUuid) UUID() uuid.UUID { return u.raw }

// ShapeGroupUuid identifies a shape group (one sharded shape-container
// zip entry) within a page.
type ShapeGroupUuid struct{ raw uuid.UUID }

func NewShapeGroupUuid() ShapeGroupUuid { return ShapeGroupUuid{raw: uuid.New()} }

func ParseShapeGroupUuid(s string) (ShapeGroupUuid, error) {
	u, err := parse(s)
	if err != nil {
		return ShapeGroupUuid{}, err
	}
	return ShapeGroupUuid{raw: u}, nil
}

func ParseShapeGroupUuidBytes(b []byte) (ShapeGroupUuid, error) {
	u, err := parseBytes(b)
	if err != nil {
		return ShapeGroupUuid{}, err
	}
	return ShapeGroupUuid{raw: u}, nil
}

func (u ShapeGroupUuid) String() string  { return u.raw.String() }
func (u ShapeGroupUuid) Simple() string  { return simple(u.raw) }
func (u ShapeGroupUuid) IsZero() bool    { return u.raw == uuid.Nil }
func (u ShapeGroupUuid) UUID() uuid.UUID { return u.raw }

// StrokeUuid identifies a single pen stroke within a points file.
type StrokeUuid struct{ raw uuid.UUID }

func NewStrokeUuid() StrokeUuid { return StrokeUuid{raw: uuid.New()} }

func ParseStrokeUuid(s string) (StrokeUuid, error) {
	u, err := parse(s)
	if err != nil {
		return StrokeUuid{}, err
	}
	return StrokeUuid{raw: u}, nil
}

func ParseStrokeUuidBytes(b []byte) (StrokeUuid, error) {
	u, err := parseBytes(b)
	if err != nil {
		return StrokeUuid{}, err
	}
	return StrokeUuid{raw: u}, nil
}

func (u StrokeUuid) String() string  { return u.raw.String() }
func (u StrokeUuid) Simple() string  { return simple(u.raw) }
func (u StrokeUuid) IsZero() bool    { return u.raw == uuid.Nil }
func (u StrokeUuid) UUID() uuid.UUID { return u.raw }

// PointsUuid identifies a points file shard for a page.
type PointsUuid struct{ raw uuid.UUID }

func NewPointsUuid() PointsUuid { return PointsUuid{raw: uuid.New()} }

func ParsePointsUuid(s string) (PointsUuid, error) {
	u, err := parse(s)
	if err != nil {
		return PointsUuid{}, err
	}
	return PointsUuid{raw: u}, nil
}

func ParsePointsUuidBytes(b []byte) (PointsUuid, error) {
	u, err := parseBytes(b)
	if err != nil {
		return PointsUuid{}, err
	}
	return PointsUuid{raw: u}, nil
}

func (u PointsUuid) String() string  { return u.raw.String() }
func (u PointsUuid) Simple() string  { return simple(u.raw) }
func (u PointsUuid) IsZero() bool    { return u.raw == uuid.Nil }
func (u PointsUuid) UUID() uuid.UUID { return u.raw }

// PenUuid identifies a pen profile when the owning pen has a UUID-form id
// (see PenId).
type PenUuid struct{ raw uuid.UUID }

func NewPenUuid() PenUuid { return PenUuid{raw: uuid.New()} }

func ParsePenUuid(s string) (PenUuid, error) {
	u, err := parse(s)
	if err != nil {
		return PenUuid{}, err
	}
	return PenUuid{raw: u}, nil
}

func (u PenUuid) String() string  { return u.raw.String() }
func (u PenUuid) Simple() string  { return simple(u.raw) }
func (u PenUuid) IsZero() bool    { return u.raw == uuid.Nil }
func (u PenUuid) UUID() uuid.UUID { return u.raw }
