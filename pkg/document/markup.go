package document

import (
	"strings"

	"golang.org/x/net/html"
)

// ParseMarkup hydrates a Document from a persisted markup snapshot. The
// snapshot is the editor surface's HTML: semantic blocks only (headings
// 1–3, paragraphs, rules, images). Anything else flattens into paragraphs,
// so parse∘render∘parse is stable even on foreign input. Parsing never
// fails: malformed markup degrades into text blocks.
func ParseMarkup(markup string) *Document {
	doc := &Document{}
	if strings.TrimSpace(markup) == "" {
		return doc
	}
	root, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		doc.Blocks = append(doc.Blocks, Block{Kind: Paragraph, Text: markup})
		return doc
	}
	body := findBody(root)
	if body == nil {
		return doc
	}
	collectBlocks(body, doc)
	return doc
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}

func collectBlocks(n *html.Node, doc *Document) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			if text := strings.TrimSpace(c.Data); text != "" {
				doc.Blocks = append(doc.Blocks, Block{Kind: Paragraph, Text: text})
			}
		case html.ElementNode:
			switch c.Data {
			case "h1", "h2", "h3":
				doc.Blocks = append(doc.Blocks, Block{Kind: Kind(c.Data), Text: textContent(c)})
			case "hr":
				doc.Blocks = append(doc.Blocks, Block{Kind: Rule})
			case "img":
				doc.Blocks = append(doc.Blocks, Block{Kind: Image, Src: attr(c, "src")})
			case "p":
				doc.Blocks = append(doc.Blocks, Block{Kind: Paragraph, Text: textContent(c)})
			case "br", "script", "style":
				// no block contribution
			default:
				if containsBlockElement(c) {
					collectBlocks(c, doc)
				} else {
					doc.Blocks = append(doc.Blocks, Block{Kind: Paragraph, Text: textContent(c)})
				}
			}
		}
	}
}

var blockTags = map[string]bool{
	"h1": true, "h2": true, "h3": true, "p": true, "hr": true, "img": true, "div": true,
}

func containsBlockElement(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && blockTags[c.Data] {
			return true
		}
		if containsBlockElement(c) {
			return true
		}
	}
	return false
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// Render serializes the document back to its markup snapshot form.
func Render(d *Document) string {
	var b strings.Builder
	for _, blk := range d.Blocks {
		switch blk.Kind {
		case H1, H2, H3:
			tag := string(blk.Kind)
			b.WriteString("<" + tag + ">" + html.EscapeString(blk.Text) + "</" + tag + ">")
		case Rule:
			b.WriteString("<hr>")
		case Image:
			b.WriteString(`<img src="` + html.EscapeString(blk.Src) + `">`)
		default:
			b.WriteString("<p>" + html.EscapeString(blk.Text) + "</p>")
		}
	}
	return b.String()
}
