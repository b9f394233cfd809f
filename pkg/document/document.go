// Package document owns the manuscript's block-tree representation and the
// structure extraction over it. The tree is deliberately host-UI-agnostic:
// the editor surface renders it, the extractor walks it, and nothing in
// here knows about a browser.
package document

import (
	"strings"
	"unicode/utf8"
)

// Kind tags one block-level content node.
type Kind string

const (
	H1        Kind = "h1"
	H2        Kind = "h2"
	H3        Kind = "h3"
	Paragraph Kind = "p"
	Rule      Kind = "hr"
	Image     Kind = "img"
)

// Block is one block-level node: a heading, paragraph, horizontal rule, or
// image. Text holds the node's plain text; Src holds an image source.
type Block struct {
	Kind Kind   `json:"kind"`
	Text string `json:"text,omitempty"`
	Src  string `json:"src,omitempty"`
}

// Document is the single working manuscript: an ordered block sequence.
type Document struct {
	Blocks []Block
}

// PlainText is the derived projection used for AI prompts and counting.
// Blocks contribute their text in order, one line each; rules and images
// contribute nothing.
func (d *Document) PlainText() string {
	var b strings.Builder
	for _, blk := range d.Blocks {
		if blk.Kind == Rule || blk.Kind == Image {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(blk.Text)
	}
	return b.String()
}

// WordCount counts whitespace-separated words in the plain-text projection.
func (d *Document) WordCount() int {
	return len(strings.Fields(d.PlainText()))
}

// CharCount counts characters (runes) in the plain-text projection.
func (d *Document) CharCount() int {
	return utf8.RuneCountInString(d.PlainText())
}

// Empty reports whether the manuscript has no visible content.
func (d *Document) Empty() bool {
	return strings.TrimSpace(d.PlainText()) == "" && !d.hasNonText()
}

func (d *Document) hasNonText() bool {
	for _, blk := range d.Blocks {
		if blk.Kind == Rule || blk.Kind == Image {
			return true
		}
	}
	return false
}
