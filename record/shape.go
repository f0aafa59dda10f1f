package record

import (
	"time"

	"github.com/platinummonkey/boxnote/boxerr"
	"github.com/platinummonkey/boxnote/id"
	"github.com/platinummonkey/boxnote/wire"
)

// Wire-frozen Shape protobuf tags; see the project glossary. tag1 is
// named stroke_uuid on the wire but identifies this shape's own stroke
// entry in its page's points file (see Shape.StrokeID / PointsFile).
const (
	tagShapeStrokeUUID      = 1
	tagShapeCreated         = 2
	tagShapeModified        = 3
	tagShapeUnknown         = 4
	tagShapeStrokeWidth     = 5
	tagShapeBboxJSON        = 7
	tagShapeRenderScaleJSON = 11
	tagShapeZOrder          = 12
	tagShapePointsUUID      = 16
	tagShapeLineStyleJSON   = 17
	tagShapeGroupUUID       = 18
	tagShapeEmptyArrayJSON  = 21
)

// DisplayScale is the JSON sub-document carried in a shape's
// render_scale_json field.
type DisplayScale struct {
	DisplayScale         float32 `json:"displayScale"`
	MaxPressure          float32 `json:"maxPressure"`
	RevisedDisplayScale  float32 `json:"revisedDisplayScale"`
	Source               uint32  `json:"source"`
}

// LineStyleContainer is the JSON sub-document carried in a shape's
// (optional) line_style_json field.
type LineStyleContainer struct {
	LineStyle LineStyle `json:"lineStyle"`
}

// Shape is one drawn element within a ShapeGroup: a stroke's identity,
// bounding box, z-order, and an optional reference to the points file
// holding its geometry.
type Shape struct {
	// StrokeID is this shape's own entry key into its page's PointsFile
	// stroke map (wire field stroke_uuid).
	StrokeID id.StrokeUuid
	Created  time.Time
	Modified time.Time

	// Unknown is the protobuf tag-4 signed integer with no observed
	// semantic use.
	Unknown int64

	StrokeWidth float32
	Bbox        Dimensions
	RenderScale DisplayScale
	ZOrder      int64

	// PointsID selects which points file holds this shape's geometry; a
	// shape with no PointsID (HasPoints false) contributes no rendered
	// geometry.
	PointsID   id.PointsUuid
	HasPoints  bool

	LineStyle    LineStyleContainer
	HasLineStyle bool

	ShapeGroupID id.ShapeGroupUuid

	// PointsJSON is the wire's empty_array_json field, carried verbatim;
	// no consumer in this library decodes it further.
	PointsJSON string
}

// ShapeContainer is the decoded repeated-Shape wrapper message found as
// the single entry of a shape group's nested zip.
type ShapeContainer struct {
	Shapes []Shape
}

// DecodeShape decodes a single Shape protobuf record.
func DecodeShape(data []byte) (Shape, error) {
	var (
		rawStrokeUUID, rawPointsUUID, rawGroupUUID string
		created, modified                          uint64
		unknown, zOrder                            int64
		strokeWidth                                float32
		bboxJSON, renderScaleJSON, lineStyleJSON   string
		emptyArrayJSON                              string
	)

	err := wire.Each(data, func(f wire.Field) error {
		switch f.Number {
		case tagShapeStrokeUUID:
			rawStrokeUUID = f.Str()
		case tagShapeCreated:
			created = f.Uint64()
		case tagShapeModified:
			modified = f.Uint64()
		case tagShapeUnknown:
			unknown = f.Int64()
		case tagShapeStrokeWidth:
			strokeWidth = f.Float32()
		case tagShapeBboxJSON:
			bboxJSON = f.Str()
		case tagShapeRenderScaleJSON:
			renderScaleJSON = f.Str()
		case tagShapeZOrder:
			zOrder = f.Int64()
		case tagShapePointsUUID:
			rawPointsUUID = f.Str()
		case tagShapeLineStyleJSON:
			lineStyleJSON = f.Str()
		case tagShapeGroupUUID:
			rawGroupUUID = f.Str()
		case tagShapeEmptyArrayJSON:
			emptyArrayJSON = f.Str()
		}
		return nil
	})
	if err != nil {
		return Shape{}, boxerr.Wrap(boxerr.ProtobufDecode, "decode Shape", err)
	}

	strokeID, err := id.ParseStrokeUuid(rawStrokeUUID)
	if err != nil {
		return Shape{}, err
	}
	groupID, err := id.ParseShapeGroupUuid(rawGroupUUID)
	if err != nil {
		return Shape{}, err
	}
	createdAt, err := epochMillisToUTC(int64(created))
	if err != nil {
		return Shape{}, err
	}
	modifiedAt, err := epochMillisToUTC(int64(modified))
	if err != nil {
		return Shape{}, err
	}

	var bbox Dimensions
	if err := parseJSON(bboxJSON, &bbox); err != nil {
		return Shape{}, err
	}
	var renderScale DisplayScale
	if err := parseJSON(renderScaleJSON, &renderScale); err != nil {
		return Shape{}, err
	}

	s := Shape{
		StrokeID:     strokeID,
		Created:      createdAt,
		Modified:     modifiedAt,
		Unknown:      unknown,
		StrokeWidth:  strokeWidth,
		Bbox:         bbox,
		RenderScale:  renderScale,
		ZOrder:       zOrder,
		ShapeGroupID: groupID,
		PointsJSON:   emptyArrayJSON,
	}

	if rawPointsUUID != "" {
		pointsID, err := id.ParsePointsUuid(rawPointsUUID)
		if err != nil {
			return Shape{}, err
		}
		s.PointsID = pointsID
		s.HasPoints = true
	}

	if lineStyleJSON != "" {
		var ls LineStyleContainer
		if err := parseJSON(lineStyleJSON, &ls); err != nil {
			return Shape{}, err
		}
		s.LineStyle = ls
		s.HasLineStyle = true
	}

	return s, nil
}

// DecodeShapeContainer decodes a ShapeContainer{shapes: repeated Shape}
// message, the sole entry of a page's nested shape-group zip.
func DecodeShapeContainer(data []byte) (ShapeContainer, error) {
	var sc ShapeContainer
	err := wire.Each(data, func(f wire.Field) error {
		if f.Number != 1 {
			return nil
		}
		s, err := DecodeShape(f.Bytes())
		if err != nil {
			return err
		}
		sc.Shapes = append(sc.Shapes, s)
		return nil
	})
	if err != nil {
		return ShapeContainer{}, boxerr.Wrap(boxerr.ProtobufDecode, "decode ShapeContainer", err)
	}
	return sc, nil
}
