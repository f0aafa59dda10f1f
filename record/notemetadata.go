package record

import (
	"time"

	"github.com/platinummonkey/boxnote/boxerr"
	"github.com/platinummonkey/boxnote/id"
	"github.com/platinummonkey/boxnote/wire"
)

// Protobuf tag numbers are wire-frozen; see the project glossary. They
// must never be renumbered.
const (
	tagNoteID               = 1
	tagNoteCreated           = 2
	tagNoteModified          = 3
	tagNoteName              = 6
	tagNoteFlag              = 8
	tagNotePenWidth          = 9
	tagNoteScaleFactor       = 10
	tagNotePenSettingsJSON   = 11
	tagNoteCanvasStateJSON   = 12
	tagNoteBackgroundJSON    = 13
	tagNoteDeviceInfoJSON    = 14
	tagNoteFillColor         = 15
	tagNotePenType           = 16
	tagNoteActivePagesJSON   = 20
	tagNoteReservedPagesJSON = 21
	tagNoteCanvasWidth       = 22
	tagNoteCanvasHeight      = 23
	tagNoteLocation          = 24
	tagNoteHasShareSection   = 31
	tagNoteStrokeDataLen     = 32
	tagNoteHasShareUser      = 37
	tagNoteShareUser         = 39
	tagNoteHasJSON7          = 40
	tagNoteDetachedPagesJSON = 44
)

// NoteMetadata is the decoded per-note record stored in the note tree.
type NoteMetadata struct {
	NoteID   id.NoteUuid
	Created  time.Time
	Modified time.Time
	Name     string

	Flag        uint32
	PenWidth    float32
	PenType     uint32
	ScaleFactor float32
	FillColor   Color

	ActivePages     []string
	ReservedPages   []string
	DetachedPages   []string

	CanvasWidth  float32
	CanvasHeight float32
	Location     string
	ShareUser    string

	HasShareSection uint32
	StrokeDataLen   uint32
	HasShareUser    uint32
	HasJSON7        uint32

	PenSettings      PenSettings
	CanvasState      CanvasState
	BackgroundConfig BackgroundConfig
	DeviceInfo       DeviceInfo
}

// rawNoteMetadata mirrors the wire-frozen protobuf NoteMetadata message
// field-for-field before JSON sub-document decoding.
type rawNoteMetadata struct {
	noteID             string
	created            uint64
	modified           uint64
	noteName           string
	flag               uint32
	penWidth           float32
	scaleFactor        float32
	penSettingsJSON    string
	canvasStateJSON    string
	backgroundCfgJSON  string
	deviceInfoJSON     string
	fillColor          uint32
	penType            uint32
	activePagesJSON    string
	reservedPagesJSON  string
	canvasWidth        float32
	canvasHeight       float32
	location           string
	hasShareSection    uint32
	strokeDataLen      uint32
	hasShareUser       uint32
	shareUser          string
	hasJSON7           uint32
	detachedPagesJSON  string
}

func decodeRawNoteMetadata(data []byte) (rawNoteMetadata, error) {
	var raw rawNoteMetadata
	err := wire.Each(data, func(f wire.Field) error {
		switch f.Number {
		case tagNoteID:
			raw.noteID = f.Str()
		case tagNoteCreated:
			raw.created = f.Uint64()
		case tagNoteModified:
			raw.modified = f.Uint64()
		case tagNoteName:
			raw.noteName = f.Str()
		case tagNoteFlag:
			raw.flag = uint32(f.Uint64())
		case tagNotePenWidth:
			raw.penWidth = f.Float32()
		case tagNoteScaleFactor:
			raw.scaleFactor = f.Float32()
		case tagNotePenSettingsJSON:
			raw.penSettingsJSON = f.Str()
		case tagNoteCanvasStateJSON:
			raw.canvasStateJSON = f.Str()
		case tagNoteBackgroundJSON:
			raw.backgroundCfgJSON = f.Str()
		case tagNoteDeviceInfoJSON:
			raw.deviceInfoJSON = f.Str()
		case tagNoteFillColor:
			raw.fillColor = uint32(f.Uint64())
		case tagNotePenType:
			raw.penType = uint32(f.Uint64())
		case tagNoteActivePagesJSON:
			raw.activePagesJSON = f.Str()
		case tagNoteReservedPagesJSON:
			raw.reservedPagesJSON = f.Str()
		case tagNoteCanvasWidth:
			raw.canvasWidth = f.Float32()
		case tagNoteCanvasHeight:
			raw.canvasHeight = f.Float32()
		case tagNoteLocation:
			raw.location = f.Str()
		case tagNoteHasShareSection:
			raw.hasShareSection = uint32(f.Uint64())
		case tagNoteStrokeDataLen:
			raw.strokeDataLen = uint32(f.Uint64())
		case tagNoteHasShareUser:
			raw.hasShareUser = uint32(f.Uint64())
		case tagNoteShareUser:
			raw.shareUser = f.Str()
		case tagNoteHasJSON7:
			raw.hasJSON7 = uint32(f.Uint64())
		case tagNoteDetachedPagesJSON:
			raw.detachedPagesJSON = f.Str()
		}
		return nil
	})
	return raw, err
}

// DecodeNoteMetadata decodes a single NoteMetadata protobuf record,
// including its four embedded JSON settings sub-documents, its three
// page-list JSON fields, and the penWithMap quirk repair (applied only to
// pen_settings_json).
func DecodeNoteMetadata(data []byte) (NoteMetadata, error) {
	raw, err := decodeRawNoteMetadata(data)
	if err != nil {
		return NoteMetadata{}, boxerr.Wrap(boxerr.ProtobufDecode, "decode NoteMetadata", err)
	}

	noteID, err := id.ParseNoteUuid(raw.noteID)
	if err != nil {
		return NoteMetadata{}, err
	}
	created, err := epochMillisToUTC(int64(raw.created))
	if err != nil {
		return NoteMetadata{}, err
	}
	modified, err := epochMillisToUTC(int64(raw.modified))
	if err != nil {
		return NoteMetadata{}, err
	}

	var m NoteMetadata
	m.NoteID = noteID
	m.Created = created
	m.Modified = modified
	m.Name = raw.noteName
	m.Flag = raw.flag
	m.PenWidth = raw.penWidth
	m.ScaleFactor = raw.scaleFactor
	m.FillColor = Color(raw.fillColor)
	m.PenType = raw.penType
	m.CanvasWidth = raw.canvasWidth
	m.CanvasHeight = raw.canvasHeight
	m.Location = raw.location
	m.HasShareSection = raw.hasShareSection
	m.StrokeDataLen = raw.strokeDataLen
	m.HasShareUser = raw.hasShareUser
	m.ShareUser = raw.shareUser
	m.HasJSON7 = raw.hasJSON7

	if err := parseJSON(repairPenWithMap(raw.penSettingsJSON), &m.PenSettings); err != nil {
		return NoteMetadata{}, err
	}
	if err := parseJSON(raw.canvasStateJSON, &m.CanvasState); err != nil {
		return NoteMetadata{}, err
	}
	if err := parseJSON(raw.backgroundCfgJSON, &m.BackgroundConfig); err != nil {
		return NoteMetadata{}, err
	}
	if err := parseJSON(raw.deviceInfoJSON, &m.DeviceInfo); err != nil {
		return NoteMetadata{}, err
	}

	var activePages, reservedPages, detachedPages PageNameList
	if err := parseJSON(raw.activePagesJSON, &activePages); err != nil {
		return NoteMetadata{}, err
	}
	if err := parseJSON(raw.reservedPagesJSON, &reservedPages); err != nil {
		return NoteMetadata{}, err
	}
	if err := parseJSON(raw.detachedPagesJSON, &detachedPages); err != nil {
		return NoteMetadata{}, err
	}
	m.ActivePages = activePages.PageNameList
	m.ReservedPages = reservedPages.PageNameList
	m.DetachedPages = detachedPages.PageNameList

	return m, nil
}

// DecodeNoteTree decodes the repeated-NoteMetadata wrapper message (protobuf tag
// 1) found at note_tree (MultiNote) or {root}/note/pb/note_info
// (SingleNote), indexing the result by NoteUuid.
func DecodeNoteTree(data []byte) (map[id.NoteUuid]NoteMetadata, error) {
	notes := map[id.NoteUuid]NoteMetadata{}
	err := wire.Each(data, func(f wire.Field) error {
		if f.Number != 1 {
			return nil
		}
		m, err := DecodeNoteMetadata(f.Bytes())
		if err != nil {
			return err
		}
		notes[m.NoteID] = m
		return nil
	})
	if err != nil {
		return nil, boxerr.Wrap(boxerr.ProtobufDecode, "decode NoteTree", err)
	}
	return notes, nil
}
