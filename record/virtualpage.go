package record

import (
	"time"

	"github.com/platinummonkey/boxnote/boxerr"
	"github.com/platinummonkey/boxnote/id"
	"github.com/platinummonkey/boxnote/wire"
)

const (
	tagVPageUUID          = 1
	tagVPageCreated       = 2
	tagVPageModified      = 3
	tagVPageZoomScale     = 4
	tagVPageDimensionsJSON = 6
	tagVPageLayoutJSON    = 7
	tagVPageGeoJSON       = 8
	tagVPageGeoLayout     = 9
	tagVPageTemplatePath  = 10
	tagVPagePageNumber    = 12
)

// VirtualPage is one of potentially many per-note viewport/geometry
// records, wrapped on the wire in a VirtualPageContainer.
type VirtualPage struct {
	VirtualPageID id.VirtualPageUuid
	Created       time.Time
	Modified      time.Time
	ZoomScale     float32
	Dimensions    Dimensions
	Layout        Dimensions
	Geo           Dimensions
	GeoLayout     string
	TemplatePath  string
	PageNumber    string
}

// DecodeVirtualPage decodes a VirtualPageContainer{virtual_page} message
// found at {note_id}/virtual/page/pb/{vpage_id}.
func DecodeVirtualPage(data []byte) (VirtualPage, error) {
	var inner []byte
	err := wire.Each(data, func(f wire.Field) error {
		if f.Number == 1 {
			inner = f.Bytes()
		}
		return nil
	})
	if err != nil {
		return VirtualPage{}, boxerr.Wrap(boxerr.ProtobufDecode, "decode VirtualPageContainer", err)
	}
	if inner == nil {
		return VirtualPage{}, boxerr.New(boxerr.ProtobufDecode, "VirtualPageContainer missing required virtual_page field")
	}

	var (
		rawUUID                                   string
		created, modified                         uint64
		zoomScale                                 float32
		dimsJSON, layoutJSON, geoJSON             string
		geoLayout, templatePath, pageNumber       string
	)

	err = wire.Each(inner, func(f wire.Field) error {
		switch f.Number {
		case tagVPageUUID:
			rawUUID = f.Str()
		case tagVPageCreated:
			created = f.Uint64()
		case tagVPageModified:
			modified = f.Uint64()
		case tagVPageZoomScale:
			zoomScale = f.Float32()
		case tagVPageDimensionsJSON:
			dimsJSON = f.Str()
		case tagVPageLayoutJSON:
			layoutJSON = f.Str()
		case tagVPageGeoJSON:
			geoJSON = f.Str()
		case tagVPageGeoLayout:
			geoLayout = f.Str()
		case tagVPageTemplatePath:
			templatePath = f.Str()
		case tagVPagePageNumber:
			pageNumber = f.Str()
		}
		return nil
	})
	if err != nil {
		return VirtualPage{}, boxerr.Wrap(boxerr.ProtobufDecode, "decode VirtualPage", err)
	}

	pageID, err := id.ParseVirtualPageUuid(rawUUID)
	if err != nil {
		return VirtualPage{}, err
	}
	createdAt, err := epochMillisToUTC(int64(created))
	if err != nil {
		return VirtualPage{}, err
	}
	modifiedAt, err := epochMillisToUTC(int64(modified))
	if err != nil {
		return VirtualPage{}, err
	}

	var dims, layout, geo Dimensions
	if err := parseJSON(dimsJSON, &dims); err != nil {
		return VirtualPage{}, err
	}
	if err := parseJSON(layoutJSON, &layout); err != nil {
		return VirtualPage{}, err
	}
	if err := parseJSON(geoJSON, &geo); err != nil {
		return VirtualPage{}, err
	}

	return VirtualPage{
		VirtualPageID: pageID,
		Created:       createdAt,
		Modified:      modifiedAt,
		ZoomScale:     zoomScale,
		Dimensions:    dims,
		Layout:        layout,
		Geo:           geo,
		GeoLayout:     geoLayout,
		TemplatePath:  templatePath,
		PageNumber:    pageNumber,
	}, nil
}
