package prompt

import "fmt"

// CoverMode selects the layout of a cover-art generation request.
type CoverMode string

const (
	CoverFull      CoverMode = "full"      // front + spine + back spread
	CoverImage     CoverMode = "image"     // single illustration
	CoverVariation CoverMode = "variation" // four layout variations
)

// CoverSpec carries the author-supplied fields of the cover form.
type CoverSpec struct {
	Title   string
	Author  string
	Quote   string
	Details string // visual description, often produced by TaskCoverDescription
	Style   string
}

// DefaultCoverStyle matches the form's preselected option.
const DefaultCoverStyle = "cinematic photorealistic"

// CoverStyles lists the artistic styles offered by the cover form.
var CoverStyles = []string{
	"cinematic photorealistic 8k",
	"digital art fantasy oil painting",
	"minimalist clean vector design",
	"vintage retro book cover",
	"dark gothic horror surreal",
	"watercolor artistic soft",
}

// BuildCover assembles the image-generation prompt for a cover request.
func BuildCover(mode CoverMode, spec CoverSpec) string {
	style := spec.Style
	if style == "" {
		style = DefaultCoverStyle
	}
	switch mode {
	case CoverImage:
		return fmt.Sprintf(`A high-quality artistic illustration suitable for a book cover.
Subject: %s.
Style: %s.
Atmosphere: Cinematic, detailed.`, spec.Details, style)
	case CoverVariation:
		return fmt.Sprintf(`Create 4 different stylistic layout variations for a book cover concept. Subject: %s. Style: %s. Show variety in composition and typography.`, spec.Details, style)
	default:
		return fmt.Sprintf(`Create a full book cover spread design including front cover, spine, and back cover.
Title: "%s".
Author: "%s".
Style: %s.
Visuals: %s.
The front cover should feature the main imagery. The back cover should be complementary. The spine should have the title.
Atmosphere: Professional, high resolution, commercial book cover quality.
Optional text/quote: "%s".`, spec.Title, spec.Author, style, spec.Details, spec.Quote)
	}
}
