package record

import (
	"time"

	"github.com/platinummonkey/boxnote/boxerr"
	"github.com/platinummonkey/boxnote/id"
	"github.com/platinummonkey/boxnote/wire"
)

const (
	tagVDocUUID        = 1
	tagVDocCreated      = 2
	tagVDocModified     = 3
	tagVDocTemplateUUID = 4
	tagVDocStability    = 5
	tagVDocContentJSON  = 9
)

// Content is the JSON sub-document embedded in a VirtualDoc's
// content_json field.
type Content struct {
	ContentID           string     `json:"contentId"`
	ContentPageID       string     `json:"contentPageId"`
	ContentPageSize     Dimensions `json:"contentPageSize"`
	ContentRelativePath string     `json:"contentRelativePath"`
	ContentType         string     `json:"contentType"`
}

// VirtualDoc is the single per-note virtual document record.
type VirtualDoc struct {
	VirtualDocID id.VirtualDocUuid
	Created      time.Time
	Modified     time.Time

	// PageID is the note's template page (the protobuf's template_uuid
	// field).
	PageID    id.PageUuid
	Stability float32
	Content   Content
}

// DecodeVirtualDoc decodes the VirtualDoc protobuf record found at
// {note_id}/virtual/doc/pb/{note_id}.
func DecodeVirtualDoc(data []byte) (VirtualDoc, error) {
	var (
		rawUUID, rawTemplateUUID, rawContentJSON string
		created, modified                        uint64
		stability                                float32
	)

	err := wire.Each(data, func(f wire.Field) error {
		switch f.Number {
		case tagVDocUUID:
			rawUUID = f.Str()
		case tagVDocCreated:
			created = f.Uint64()
		case tagVDocModified:
			modified = f.Uint64()
		case tagVDocTemplateUUID:
			rawTemplateUUID = f.Str()
		case tagVDocStability:
			stability = f.Float32()
		case tagVDocContentJSON:
			rawContentJSON = f.Str()
		}
		return nil
	})
	if err != nil {
		return VirtualDoc{}, boxerr.Wrap(boxerr.ProtobufDecode, "decode VirtualDoc", err)
	}

	docID, err := id.ParseVirtualDocUuid(rawUUID)
	if err != nil {
		return VirtualDoc{}, err
	}
	pageID, err := id.ParsePageUuid(rawTemplateUUID)
	if err != nil {
		return VirtualDoc{}, err
	}
	createdAt, err := epochMillisToUTC(int64(created))
	if err != nil {
		return VirtualDoc{}, err
	}
	modifiedAt, err := epochMillisToUTC(int64(modified))
	if err != nil {
		return VirtualDoc{}, err
	}

	var content Content
	if err := parseJSON(rawContentJSON, &content); err != nil {
		return VirtualDoc{}, err
	}

	return VirtualDoc{
		VirtualDocID: docID,
		Created:      createdAt,
		Modified:     modifiedAt,
		PageID:       pageID,
		Stability:    stability,
		Content:      content,
	}, nil
}
