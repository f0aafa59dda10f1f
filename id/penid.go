package id

import "strconv"

// PenId is a tagged variant discriminating between a pen identified by
// UUID and one identified by a small integer id, mirroring how the wire
// format stores both forms in the same string field. A 32-character hex
// string (no hyphens) is treated as a UUID; anything else is parsed as a
// decimal integer.
type PenId struct {
	uuid   PenUuid
	small  uint32
	isUUID bool
}

// ParsePenId discriminates by string length/shape: exactly 32 hex
// characters means a bare (unhyphenated) UUID, otherwise the string is
// parsed as a decimal integer.
func ParsePenId(s string) (PenId, error) {
	if len(s) == 32 {
		if u, err := ParsePenUuid(s); err == nil {
			return PenId{uuid: u, isUUID: true}, nil
		}
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return PenId{}, err
	}
	return PenId{small: uint32(n)}, nil
}

// IsUUID reports whether this PenId holds a UUID-form value.
func (p PenId) IsUUID() bool { return p.isUUID }

// UUID returns the UUID-form value and true, or the zero value and false.
func (p PenId) UUID() (PenUuid, bool) { return p.uuid, p.isUUID }

// Small returns the integer-form value and true, or 0 and false.
func (p PenId) Small() (uint32, bool) { return p.small, !p.isUUID }

func (p PenId) String() string {
	if p.isUUID {
		return p.uuid.Simple()
	}
	return strconv.FormatUint(uint64(p.small), 10)
}

// LayerId identifies a drawing layer within a page model; it is a plain
// integer on the wire, wrapped here only to keep it out of the layer-count
// and page-id integer namespaces.
type LayerId uint32
