package render

import (
	"archive/zip"
	"bytes"
	"encoding/binary"
	"image"
	"testing"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/platinummonkey/boxnote/boxnote"
	"github.com/platinummonkey/boxnote/id"
	"github.com/platinummonkey/boxnote/logging"
	"github.com/platinummonkey/boxnote/points"
	"github.com/platinummonkey/boxnote/record"
)

func TestResolveStrokeSearchesAllShards(t *testing.T) {
	pointsID := id.NewPointsUuid()
	strokeID := id.NewStrokeUuid()
	want := points.Stroke{Points: []points.Point{{X: 1, Y: 2}}}

	files := map[id.PointsUuid][]points.File{
		pointsID: {
			{Strokes: map[id.StrokeUuid]points.Stroke{id.NewStrokeUuid(): {}}},
			{Strokes: map[id.StrokeUuid]points.Stroke{strokeID: want}},
		},
	}

	got, ok := resolveStroke(files, pointsID, strokeID)
	if !ok {
		t.Fatal("expected resolveStroke to find the stroke in the second shard")
	}
	if len(got.Points) != 1 || got.Points[0].X != 1 {
		t.Errorf("got %+v", got)
	}
}

func TestResolveStrokeMissingReturnsFalse(t *testing.T) {
	_, ok := resolveStroke(map[id.PointsUuid][]points.File{}, id.NewPointsUuid(), id.NewStrokeUuid())
	if ok {
		t.Fatal("expected resolveStroke to report false for an unknown points id")
	}
}

func TestCollectShapesInOrderSortsByZOrderStably(t *testing.T) {
	groupA := id.NewShapeGroupUuid()
	groupB := id.NewShapeGroupUuid()

	groups := map[id.ShapeGroupUuid]record.ShapeContainer{
		groupA: {Shapes: []record.Shape{{ZOrder: 5}, {ZOrder: 1}}},
		groupB: {Shapes: []record.Shape{{ZOrder: 1}, {ZOrder: 3}}},
	}

	shapes := collectShapesInOrder(groups)
	if len(shapes) != 4 {
		t.Fatalf("expected 4 shapes, got %d", len(shapes))
	}
	for i := 1; i < len(shapes); i++ {
		if shapes[i].shape.ZOrder < shapes[i-1].shape.ZOrder {
			t.Fatalf("shapes not sorted ascending by ZOrder: %+v", shapes)
		}
	}
}

// --- end-to-end Page() rendering, built via the public boxnote API ---

func buildContainerZip(t *testing.T, files map[string][]byte) (*bytes.Reader, int64) {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, contents := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("zw.Create(%s): %v", name, err)
		}
		if _, err := w.Write(contents); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zw.Close: %v", err)
	}
	data := buf.Bytes()
	return bytes.NewReader(data), int64(len(data))
}

func appendStr(d []byte, num protowire.Number, s string) []byte {
	d = protowire.AppendTag(d, num, protowire.BytesType)
	return protowire.AppendBytes(d, []byte(s))
}

func appendVarint(d []byte, num protowire.Number, v uint64) []byte {
	d = protowire.AppendTag(d, num, protowire.VarintType)
	return protowire.AppendVarint(d, v)
}

func appendFixed32(d []byte, num protowire.Number, f float32) []byte {
	d = protowire.AppendTag(d, num, protowire.Fixed32Type)
	return protowire.AppendFixed32(d, protowire.EncodeFixed32(f))
}

func wrap(num protowire.Number, inner []byte) []byte {
	var d []byte
	d = protowire.AppendTag(d, num, protowire.BytesType)
	return protowire.AppendBytes(d, inner)
}

func buildNoteMetadata(noteID id.NoteUuid, name string) []byte {
	var d []byte
	d = appendStr(d, 1, noteID.String())
	d = appendVarint(d, 2, 0)
	d = appendVarint(d, 3, 0)
	d = appendStr(d, 6, name)
	d = appendStr(d, 11, "")
	d = appendStr(d, 12, "")
	d = appendStr(d, 13, "")
	d = appendStr(d, 14, "")
	d = appendStr(d, 20, "")
	d = appendStr(d, 21, "")
	d = appendStr(d, 44, "")
	return d
}

func buildNoteTree(notes ...[]byte) []byte {
	var tree []byte
	for _, n := range notes {
		tree = append(tree, wrap(1, n)...)
	}
	return tree
}

func buildVirtualPageContainer(vpID id.VirtualPageUuid) []byte {
	var inner []byte
	inner = appendStr(inner, 1, vpID.String())
	inner = appendVarint(inner, 2, 0)
	inner = appendVarint(inner, 3, 0)
	inner = appendFixed32(inner, 4, 1.0)
	inner = appendStr(inner, 6, `{"right":50,"bottom":40}`)
	inner = appendStr(inner, 7, "")
	inner = appendStr(inner, 8, "")
	inner = appendStr(inner, 9, "")
	inner = appendStr(inner, 10, "")
	inner = appendStr(inner, 12, "1")
	return wrap(1, inner)
}

func buildPageModelContainer(pageID id.PageUuid) []byte {
	var inner []byte
	inner = appendStr(inner, 1, pageID.String())
	inner = appendStr(inner, 2, "")
	inner = appendVarint(inner, 5, 0)
	inner = appendVarint(inner, 6, 0)
	inner = appendStr(inner, 7, `{"right":50,"bottom":40}`)
	return wrap(1, inner)
}

func buildShape(strokeID id.StrokeUuid, groupID id.ShapeGroupUuid, pointsID id.PointsUuid, hasPoints bool, zOrder int64) []byte {
	var d []byte
	d = appendStr(d, 1, strokeID.String())
	d = appendVarint(d, 2, 0)
	d = appendVarint(d, 3, 0)
	d = appendFixed32(d, 5, 1.0)
	d = appendStr(d, 7, "")
	d = appendStr(d, 11, "")
	d = appendVarint(d, 12, uint64(zOrder))
	if hasPoints {
		d = appendStr(d, 16, pointsID.String())
	}
	d = appendStr(d, 18, groupID.String())
	d = appendStr(d, 21, "")
	return d
}

func buildShapeContainer(shapes ...[]byte) []byte {
	var c []byte
	for _, s := range shapes {
		c = append(c, wrap(1, s)...)
	}
	return c
}

func buildNestedShapeZip(t *testing.T, payload []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("shapes.pb")
	if err != nil {
		t.Fatalf("nested zw.Create: %v", err)
	}
	if _, err := w.Write(payload); err != nil {
		t.Fatalf("nested write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("nested zw.Close: %v", err)
	}
	return buf.Bytes()
}

func pad36(s string) string {
	for len(s) < 36 {
		s += " "
	}
	return s
}

func buildPointsFile(t *testing.T, pageID id.PageUuid, pointsID id.PointsUuid, strokeID id.StrokeUuid) []byte {
	t.Helper()
	var buf bytes.Buffer
	_ = binary.Write(&buf, binary.BigEndian, uint32(1))
	buf.WriteString(pad36(pageID.String()))
	buf.WriteString(pad36(pointsID.String()))

	pointsStart := buf.Len()
	_ = binary.Write(&buf, binary.BigEndian, uint32(1))
	_ = binary.Write(&buf, binary.BigEndian, float32(5))
	_ = binary.Write(&buf, binary.BigEndian, float32(10))
	_ = binary.Write(&buf, binary.BigEndian, int8(0))
	_ = binary.Write(&buf, binary.BigEndian, int8(0))
	_ = binary.Write(&buf, binary.BigEndian, uint16(200))
	_ = binary.Write(&buf, binary.BigEndian, uint32(2))
	_ = binary.Write(&buf, binary.BigEndian, float32(20))
	_ = binary.Write(&buf, binary.BigEndian, float32(30))
	_ = binary.Write(&buf, binary.BigEndian, int8(0))
	_ = binary.Write(&buf, binary.BigEndian, int8(0))
	_ = binary.Write(&buf, binary.BigEndian, uint16(210))

	tableStart := buf.Len()
	buf.WriteString(pad36(strokeID.String()))
	_ = binary.Write(&buf, binary.BigEndian, uint32(pointsStart))
	packed := (uint32(2) << 4) | uint32(0)
	_ = binary.Write(&buf, binary.BigEndian, packed)

	_ = binary.Write(&buf, binary.BigEndian, uint32(tableStart))
	return buf.Bytes()
}

func joinPath(segments ...string) string {
	out := segments[0]
	for _, s := range segments[1:] {
		out += "/" + s
	}
	return out
}

func TestPageRendersResolvableStrokeAndSkipsUnresolvable(t *testing.T) {
	noteID := id.NewNoteUuid()
	pageID := id.NewPageUuid()
	vpID, err := id.ParseVirtualPageUuid(pageID.String())
	if err != nil {
		t.Fatalf("ParseVirtualPageUuid: %v", err)
	}
	pageModelGroupID := id.NewPageModelUuid()
	shapeGroupID := id.NewShapeGroupUuid()
	strokeID := id.NewStrokeUuid()
	pointsID := id.NewPointsUuid()
	danglingPointsID := id.NewPointsUuid()
	danglingStrokeID := id.NewStrokeUuid()

	shapes := buildShapeContainer(
		buildShape(strokeID, shapeGroupID, pointsID, true, 1),
		buildShape(danglingStrokeID, shapeGroupID, danglingPointsID, true, 2),
	)

	noteRoot := "root"
	files := map[string][]byte{
		noteRoot + "/note_tree": buildNoteTree(buildNoteMetadata(noteID, "Render Note")),
		joinPath(noteRoot, noteID.Simple(), "virtual/page/pb", vpID.Simple()):          buildVirtualPageContainer(vpID),
		joinPath(noteRoot, noteID.Simple(), "pageModel/pb", pageModelGroupID.Simple()): buildPageModelContainer(pageID),
		joinPath(noteRoot, noteID.Simple(), "shape", pageID.Simple()+"#"+shapeGroupID.Simple()+"#1000.zip"): buildNestedShapeZip(t, shapes),
		joinPath(noteRoot, noteID.Simple(), "point", pageID.Simple(), pageID.Simple()+"#"+pointsID.Simple()+"#1000.points"): buildPointsFile(t, pageID, pointsID, strokeID),
	}

	r, size := buildContainerZip(t, files)
	boxFile, err := boxnote.Open(r, size)
	if err != nil {
		t.Fatalf("boxnote.Open: %v", err)
	}
	note, ok := boxFile.GetNote(noteID)
	if !ok {
		t.Fatal("expected GetNote to find the note")
	}
	page, ok, err := note.GetPage(pageID)
	if err != nil {
		t.Fatalf("GetPage: %v", err)
	}
	if !ok {
		t.Fatal("expected GetPage to find the page")
	}

	log, err := logging.New(&logging.Config{Level: "info", Format: "console"})
	if err != nil {
		t.Fatalf("logging.New: %v", err)
	}

	img, err := Page(log, page)
	if err != nil {
		t.Fatalf("Page: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 50 || bounds.Dy() != 40 {
		t.Fatalf("expected 50x40 canvas, got %dx%d", bounds.Dx(), bounds.Dy())
	}

	// The resolvable stroke's first point (5,10) should have been painted
	// black; a point far from any drawn stroke should remain white.
	if c := colorAt(img, 5, 10); c == (whiteRGB) {
		t.Error("expected the resolvable stroke's path to be painted")
	}
	if c := colorAt(img, 49, 1); c != whiteRGB {
		t.Errorf("expected an undrawn pixel to remain white, got %v", c)
	}
}

type rgb struct{ r, g, b uint32 }

var whiteRGB = rgb{0xffff, 0xffff, 0xffff}

func colorAt(img image.Image, x, y int) rgb {
	r, g, b, _ := img.At(x, y).RGBA()
	return rgb{r, g, b}
}
