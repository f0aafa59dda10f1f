// Package render rasterizes a boxnote Page into an in-memory bitmap: a
// white canvas with one black polyline per drawn stroke, painted in
// ascending z-order.
package render

import (
	"image"
	"sort"

	"github.com/fogleman/gg"

	"github.com/platinummonkey/boxnote/boxnote"
	"github.com/platinummonkey/boxnote/id"
	"github.com/platinummonkey/boxnote/logging"
	"github.com/platinummonkey/boxnote/points"
	"github.com/platinummonkey/boxnote/record"
)

// orderedShape pairs a decoded Shape with the index at which it was
// encountered while flattening the page's shape groups.
type orderedShape struct {
	shape record.Shape
	index int
}

// Page rasterizes p onto a white canvas sized from its PageModel
// dimensions, drawing every resolvable stroke as a fixed-width black
// polyline in ascending z-order (stable on ties). A shape whose
// points_id or stroke lookup fails is logged and skipped, never fatal.
func Page(log *logging.Logger, p *boxnote.Page) (image.Image, error) {
	model := p.PageModel()
	width := int(model.Dimensions.Right - model.Dimensions.Left)
	height := int(model.Dimensions.Bottom - model.Dimensions.Top)
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}

	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	shapeGroups, err := p.GetShapeGroups()
	if err != nil {
		return nil, err
	}
	pointsFiles, err := p.GetPointsFiles()
	if err != nil {
		return nil, err
	}

	shapes := collectShapesInOrder(shapeGroups)

	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(1)
	for _, os := range shapes {
		shape := os.shape
		if !shape.HasPoints {
			continue
		}

		stroke, ok := resolveStroke(pointsFiles, shape.PointsID, shape.StrokeID)
		if !ok {
			log.Warnw("skipping shape with unresolvable stroke",
				"stroke_id", shape.StrokeID.String(),
				"points_id", shape.PointsID.String(),
			)
			continue
		}
		if len(stroke.Points) == 0 {
			continue
		}

		drawPolyline(dc, stroke)
	}

	return dc.Image(), nil
}

// collectShapesInOrder flattens every shape group's shapes into one
// ascending-z-order, ties-stable sequence. Groups are visited in
// ascending order of their ShapeGroupUuid string and each group's shapes
// in wire order; the stable sort keeps that encounter order among
// equal-z_order shapes, so a later one paints over an earlier one.
func collectShapesInOrder(groups map[id.ShapeGroupUuid]record.ShapeContainer) []orderedShape {
	groupIDs := make([]id.ShapeGroupUuid, 0, len(groups))
	for gid := range groups {
		groupIDs = append(groupIDs, gid)
	}
	sort.Slice(groupIDs, func(i, j int) bool {
		return groupIDs[i].String() < groupIDs[j].String()
	})

	var shapes []orderedShape
	idx := 0
	for _, gid := range groupIDs {
		for _, s := range groups[gid].Shapes {
			shapes = append(shapes, orderedShape{shape: s, index: idx})
			idx++
		}
	}

	sort.SliceStable(shapes, func(i, j int) bool {
		return shapes[i].shape.ZOrder < shapes[j].shape.ZOrder
	})
	return shapes
}

func resolveStroke(files map[id.PointsUuid][]points.File, pointsID id.PointsUuid, strokeID id.StrokeUuid) (points.Stroke, bool) {
	for _, pf := range files[pointsID] {
		if s, ok := pf.GetStroke(strokeID); ok {
			return s, true
		}
	}
	return points.Stroke{}, false
}

func drawPolyline(dc *gg.Context, stroke points.Stroke) {
	first := stroke.Points[0]
	dc.MoveTo(float64(first.X), float64(first.Y))
	for _, pt := range stroke.Points[1:] {
		dc.LineTo(float64(pt.X), float64(pt.Y))
	}
	dc.Stroke()
}
