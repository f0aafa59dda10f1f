package record

// The JSON sub-documents embedded in a NoteMetadata's protobuf string
// fields. Field names follow the wire's camelCase convention via json
// struct tags; PenSettings.PenWidthMap is the one field requiring the
// penWithMap bare-integer-key repair (see DecodeNoteMetadata).

type PenSettings struct {
	FillColor          Color             `json:"fillColor"`
	GraphicsShapeColor Color             `json:"graphicsShapeColor"`
	GraphicsShapeType  uint8             `json:"graphicsShapeType"`
	NormalPenShapeType uint8             `json:"normalPenShapeType"`
	PenLineStyle       PenLineStyle      `json:"penLineStyle"`
	PenWidthMap        map[uint8]float32 `json:"penWithMap"`
	QuickPenList       QuickPenList      `json:"quickPenList"`
	ShapeLineStyle     PenLineStyle      `json:"shapeLineStyle"`
}

type PenLineStyle struct {
	LineStyle LineStyle `json:"lineStyle"`
}

type LineStyle struct {
	Phase float32 `json:"phase"`
	Type  uint8   `json:"type"`
}

type QuickPenList struct {
	QuickPens  []QuickPen `json:"quickPens"`
	SelectedID string     `json:"selectedId"`
}

type QuickPen struct {
	Color Color   `json:"color"`
	ID    string  `json:"id"`
	Type  uint8   `json:"type"`
	Width float32 `json:"width"`
}

type CanvasState struct {
	CanvasExpandType string              `json:"canvasExpandType"`
	CoverPageID      string              `json:"coverPageId"`
	DefaultPageRect  Dimensions          `json:"defaultPageRect"`
	PageInfoMap      map[string]PageInfo `json:"pageInfoMap"`
	ZoomInfo         ZoomInfo            `json:"zoomInfo"`
}

type PageInfo struct {
	CurrentLayerID  uint32  `json:"currentLayerId"`
	Height          uint32  `json:"height"`
	LastModifyTime  uint64  `json:"lastModifyTime"`
	LayerCount      uint32  `json:"layerCount"`
	LayerList       []Layer `json:"layerList"`
	Width           uint32  `json:"width"`
}

type ZoomInfo struct {
	FitToScreen    bool        `json:"fitToScreen"`
	ScaleType      uint8       `json:"scaleType"`
	ViewPortHeight float32     `json:"viewPortHeight"`
	ViewPortPos    ViewPortPos `json:"viewPortPos"`
	ViewPortWidth  float32     `json:"viewPortWidth"`
	ViewportScale  float32     `json:"viewportScale"`
}

type ViewPortPos struct {
	IsEmpty   bool    `json:"isEmpty"`
	Pressure  float32 `json:"pressure"`
	Size      float32 `json:"size"`
	TiltX     int32   `json:"tiltX"`
	TiltY     int32   `json:"tiltY"`
	Timestamp uint64  `json:"timestamp"`
	X         float32 `json:"x"`
	Y         float32 `json:"y"`
}

type BackgroundConfig struct {
	BackgroundConfig     BackgroundSettings        `json:"bkGroundConfig"`
	DocumentBackground   DocBackground             `json:"docBKGround"`
	PageBackgrounds      map[string]PageBackground `json:"pageBKGroundMap"`
	UseDocumentBackground bool                     `json:"useDocBKGround"`
}

type BackgroundSettings struct {
	ApplyAllPage     bool  `json:"applyAllPage"`
	AsDefault        bool  `json:"asDefault"`
	CanvasAutoExpand bool  `json:"canvasAutoExpand"`
	ScaleType        uint8 `json:"scaleType"`
}

type DocBackground struct {
	Cloud    bool    `json:"cloud"`
	Global   bool    `json:"global"`
	Height   float32 `json:"height"`
	ResIndex uint32  `json:"resIndex"`
	Type     uint32  `json:"type"`
	Visible  bool    `json:"visible"`
	Width    float32 `json:"width"`
}

type PageBackground struct {
	Cloud    bool    `json:"cloud"`
	Global   bool    `json:"global"`
	Height   float32 `json:"height"`
	ResID    string  `json:"resId"`
	ResIndex uint32  `json:"resIndex"`
	Title    string  `json:"title"`
	Type     uint32  `json:"type"`
	Value    string  `json:"value"`
	Visible  bool    `json:"visible"`
	Width    float32 `json:"width"`
}

type DeviceInfo struct {
	DeviceName string           `json:"deviceName"`
	Size       DeviceDimensions `json:"size"`
}

type DeviceDimensions struct {
	Width  float32 `json:"width"`
	Height float32 `json:"height"`
}

type PageNameList struct {
	PageNameList []string `json:"pageNameList"`
}
