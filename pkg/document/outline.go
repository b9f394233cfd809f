package document

import (
	"regexp"
	"strings"
)

// EntryKind classifies one outline entry.
type EntryKind string

const (
	Header EntryKind = "header"
	Scene  EntryKind = "scene"
	Marker EntryKind = "marker"
)

// Entry is one derived structural landmark. It has no identity and no
// persistence: the whole sequence is recomputed from scratch per pass.
type Entry struct {
	Level string    `json:"level"` // "h1" | "h2" | "h3" | "scene" | "marker"
	Text  string    `json:"text"`
	Kind  EntryKind `json:"kind"`
}

// SceneBreakText is the fixed label for scene-break entries.
const SceneBreakText = "Mudança de Cena"

// NoStructureMessage is shown when extraction finds nothing.
const NoStructureMessage = "Nenhuma estrutura detectada. Use Títulos (H1, H2), Mudanças de Cena (***) ou Marcadores ([...]) no texto."

// markerRX matches the first bracketed span, non-greedy: in "[a [b] c]"
// the first ']' closes the match, capturing "[a [b]".
var markerRX = regexp.MustCompile(`\[(.*?)\]`)

// Extract walks the document in order and emits the outline. A horizontal
// rule, or any block whose text contains "***" or "* * *", yields a scene
// break; a paragraph additionally yields at most one marker entry for its
// first bracketed span. Scene break and marker are not mutually exclusive
// for the same paragraph. Entries keep traversal order; indentation by
// heading level is a presentation concern, not data.
func Extract(d *Document) []Entry {
	var entries []Entry
	for _, blk := range d.Blocks {
		switch blk.Kind {
		case H1, H2, H3:
			entries = append(entries, Entry{Level: string(blk.Kind), Text: blk.Text, Kind: Header})
		case Rule:
			entries = append(entries, Entry{Level: "scene", Text: SceneBreakText, Kind: Scene})
		case Paragraph:
			if hasSceneBreak(blk.Text) {
				entries = append(entries, Entry{Level: "scene", Text: SceneBreakText, Kind: Scene})
			}
			if m := markerRX.FindString(blk.Text); m != "" {
				entries = append(entries, Entry{Level: "marker", Text: m, Kind: Marker})
			}
		}
	}
	return entries
}

func hasSceneBreak(text string) bool {
	return strings.Contains(text, "***") || strings.Contains(text, "* * *")
}
