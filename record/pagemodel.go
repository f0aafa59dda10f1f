package record

import (
	"time"

	"github.com/platinummonkey/boxnote/boxerr"
	"github.com/platinummonkey/boxnote/id"
	"github.com/platinummonkey/boxnote/wire"
)

const (
	tagPageModelPageUUID      = 1
	tagPageModelLayersJSON    = 2
	tagPageModelCreated       = 5
	tagPageModelModified      = 6
	tagPageModelDimensionsJSON = 7
)

// pageModelLayers is the JSON sub-document embedded in a PageModel's
// layers_json field.
type pageModelLayers struct {
	LayerList []Layer `json:"layerList"`
}

// PageModel describes one page's layout: its dimensions and layer list.
type PageModel struct {
	PageID     id.PageUuid
	Layers     []Layer
	Created    time.Time
	Modified   time.Time
	Dimensions Dimensions
}

// DecodePageModel decodes a single PageModel protobuf record (as found
// inside a PageModelContainer's repeated page_model field).
func DecodePageModel(data []byte) (PageModel, error) {
	var (
		rawPageUUID        string
		layersJSON, dimsJSON string
		created, modified  uint64
	)

	err := wire.Each(data, func(f wire.Field) error {
		switch f.Number {
		case tagPageModelPageUUID:
			rawPageUUID = f.Str()
		case tagPageModelLayersJSON:
			layersJSON = f.Str()
		case tagPageModelCreated:
			created = f.Uint64()
		case tagPageModelModified:
			modified = f.Uint64()
		case tagPageModelDimensionsJSON:
			dimsJSON = f.Str()
		}
		return nil
	})
	if err != nil {
		return PageModel{}, boxerr.Wrap(boxerr.ProtobufDecode, "decode PageModel", err)
	}

	pageID, err := id.ParsePageUuid(rawPageUUID)
	if err != nil {
		return PageModel{}, err
	}
	createdAt, err := epochMillisToUTC(int64(created))
	if err != nil {
		return PageModel{}, err
	}
	modifiedAt, err := epochMillisToUTC(int64(modified))
	if err != nil {
		return PageModel{}, err
	}

	var layers pageModelLayers
	if err := parseJSON(layersJSON, &layers); err != nil {
		return PageModel{}, err
	}
	var dims Dimensions
	if err := parseJSON(dimsJSON, &dims); err != nil {
		return PageModel{}, err
	}

	return PageModel{
		PageID:     pageID,
		Layers:     layers.LayerList,
		Created:    createdAt,
		Modified:   modifiedAt,
		Dimensions: dims,
	}, nil
}

// DecodePageModelContainer decodes the PageModelContainer{page_model:
// repeated} message found at {note_id}/pageModel/pb/{page_model_id}.
func DecodePageModelContainer(data []byte) ([]PageModel, error) {
	var models []PageModel
	err := wire.Each(data, func(f wire.Field) error {
		if f.Number != 1 {
			return nil
		}
		m, err := DecodePageModel(f.Bytes())
		if err != nil {
			return err
		}
		models = append(models, m)
		return nil
	})
	if err != nil {
		return nil, boxerr.Wrap(boxerr.ProtobufDecode, "decode PageModelContainer", err)
	}
	return models, nil
}
