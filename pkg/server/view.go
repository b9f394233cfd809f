package server

// ViewOptions is the presentation state. Values are immutable snapshots:
// every mutation returns a new value, so concurrent readers never observe a
// half-applied toggle.
type ViewOptions struct {
	Zoom            int  `json:"zoom"`
	ShowLineNumbers bool `json:"showLineNumbers"`
	ShowPageNumbers bool `json:"showPageNumbers"`
	DarkMode        bool `json:"isDarkMode"`
	ShowStatusBar   bool `json:"showStatusBar"`
	SplitView       bool `json:"isSplitView"`
	TypewriterMode  bool `json:"isTypewriterMode"`
}

const (
	zoomMin  = 50
	zoomMax  = 200
	zoomStep = 10
)

// DefaultViewOptions starts at 100% zoom with every toggle off.
func DefaultViewOptions() ViewOptions {
	return ViewOptions{Zoom: 100}
}

// ZoomIn steps the zoom up, clamped at 200.
func (v ViewOptions) ZoomIn() ViewOptions {
	v.Zoom = min(zoomMax, v.Zoom+zoomStep)
	return v
}

// ZoomOut steps the zoom down, clamped at 50.
func (v ViewOptions) ZoomOut() ViewOptions {
	v.Zoom = max(zoomMin, v.Zoom-zoomStep)
	return v
}

// ZoomReset returns to 100%.
func (v ViewOptions) ZoomReset() ViewOptions {
	v.Zoom = 100
	return v
}

// EditorConfig is the page/typography state, immutable like ViewOptions.
type EditorConfig struct {
	FontFamily string  `json:"fontFamily"`
	FontSize   int     `json:"fontSize"`
	LineHeight float64 `json:"lineHeight"`
	MaxWidth   string  `json:"maxWidth"`
	TextAlign  string  `json:"textAlign"`
}

// DefaultEditorConfig matches the initial manuscript page.
func DefaultEditorConfig() EditorConfig {
	return EditorConfig{
		FontFamily: "Merriweather",
		FontSize:   18,
		LineHeight: 1.8,
		MaxWidth:   "21cm",
		TextAlign:  "left",
	}
}

// pageWidths maps the page-preset verbs to physical page widths.
var pageWidths = map[string]string{
	"page_a4":     "21cm",
	"page_a5":     "14.8cm",
	"page_6x9":    "15.24cm",
	"page_pocket": "10.8cm",
}

// Panel names for the side panel; empty string means closed.
const (
	PanelStructure    = "structure"
	PanelOrganization = "organization"
)
