// Package pdfexport renders a boxnote Page to a single-page PDF, as an
// alternative to the PNG raster output of package render.
package pdfexport

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/signintech/gopdf"

	"github.com/platinummonkey/boxnote/boxnote"
	"github.com/platinummonkey/boxnote/id"
	"github.com/platinummonkey/boxnote/points"
	"github.com/platinummonkey/boxnote/record"
)

// PDF page size in points (1pt = 1/72in); a Letter-ish page large enough
// to hold typical Boox canvas dimensions without clipping.
const (
	pdfWidth  = 612.0
	pdfHeight = 792.0
)

// WritePDF renders p to a single-page PDF at outputPath, scaling the
// page's PageModel dimensions to fit the fixed PDF page size.
func WritePDF(p *boxnote.Page, outputPath string) error {
	model := p.PageModel()
	canvasWidth := float64(model.Dimensions.Right - model.Dimensions.Left)
	canvasHeight := float64(model.Dimensions.Bottom - model.Dimensions.Top)
	if canvasWidth <= 0 {
		canvasWidth = pdfWidth
	}
	if canvasHeight <= 0 {
		canvasHeight = pdfHeight
	}
	scaleX := pdfWidth / canvasWidth
	scaleY := pdfHeight / canvasHeight

	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: gopdf.Rect{W: pdfWidth, H: pdfHeight}})
	pdf.AddPage()
	pdf.SetStrokeColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.SetLineType("round")

	shapeGroups, err := p.GetShapeGroups()
	if err != nil {
		return err
	}
	pointsFiles, err := p.GetPointsFiles()
	if err != nil {
		return err
	}

	for _, group := range shapeGroups {
		for _, shape := range group.Shapes {
			if !shape.HasPoints {
				continue
			}
			stroke, ok := resolveStroke(pointsFiles, shape)
			if !ok || len(stroke.Points) < 2 {
				continue
			}
			drawStroke(&pdf, stroke, scaleX, scaleY)
		}
	}

	if err := pdf.WritePdf(outputPath); err != nil {
		return fmt.Errorf("write pdf %s: %w", outputPath, err)
	}

	return addPDFMetadata(outputPath, p.NoteName())
}

// addPDFMetadata stamps the note's display name as the PDF's Title,
// rewriting the file in place via a temp file swap.
func addPDFMetadata(pdfPath, noteName string) error {
	properties := map[string]string{
		"Creator":  "boxnote",
		"Producer": "boxnote",
	}
	if noteName != "" {
		properties["Title"] = noteName
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(pdfPath), "pdf-metadata-*.pdf")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	_ = tmpFile.Close()
	defer os.Remove(tmpPath)

	conf := model.NewDefaultConfiguration()
	if err := api.AddPropertiesFile(pdfPath, tmpPath, properties, conf); err != nil {
		return fmt.Errorf("add pdf properties: %w", err)
	}

	if err := os.Rename(tmpPath, pdfPath); err != nil {
		return fmt.Errorf("replace original file: %w", err)
	}
	return nil
}

func resolveStroke(files map[id.PointsUuid][]points.File, shape record.Shape) (points.Stroke, bool) {
	for _, pf := range files[shape.PointsID] {
		if s, ok := pf.GetStroke(shape.StrokeID); ok {
			return s, true
		}
	}
	return points.Stroke{}, false
}

func drawStroke(pdf *gopdf.GoPdf, stroke points.Stroke, scaleX, scaleY float64) {
	first := stroke.Points[0]
	x1, y1 := float64(first.X)*scaleX, float64(first.Y)*scaleY
	for _, pt := range stroke.Points[1:] {
		x2, y2 := float64(pt.X)*scaleX, float64(pt.Y)*scaleY
		pdf.Line(x1, y1, x2, y2)
		x1, y1 = x2, y2
	}
}
