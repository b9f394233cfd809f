// Package surface wraps the host's rich-text editing surface with a stable
// command contract. It is the only component allowed to read or write
// document content; everyone else consumes snapshots or issues commands
// through it. Formatting itself stays delegated to the host surface; there
// is no formatting or undo engine here.
package surface

import (
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"athena/pkg/document"
	"athena/pkg/utils"
)

// Command is one formatting command forwarded to the host surface
// (bold, undo, insertText, ...). The host executes it natively.
type Command struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
}

// Surface owns the working manuscript. A read-only surface mirrors another
// one (the split preview) and never fires change notifications, which keeps
// the live editor and its mirror from feeding back into each other.
type Surface struct {
	readOnly bool

	mu        sync.Mutex
	doc       *document.Document
	pending   []Command
	listeners []func()
}

// New creates an empty editable surface.
func New() *Surface {
	return &Surface{doc: &document.Document{}}
}

// NewMirror creates a read-only surface for split-view previews.
func NewMirror() *Surface {
	return &Surface{readOnly: true, doc: &document.Document{}}
}

// OnChange registers a listener for typing-equivalent content changes.
func (s *Surface) OnChange(fn func()) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

func (s *Surface) notify() {
	s.mu.Lock()
	ls := append([]func(){}, s.listeners...)
	s.mu.Unlock()
	for _, fn := range ls {
		fn()
	}
}

// ExecuteCommand records a formatting command for the host surface. It does
// not touch the document model: the host applies the command and syncs the
// resulting markup back through ReplaceContent.
func (s *Surface) ExecuteCommand(name, value string) Command {
	cmd := Command{Name: name, Value: value}
	s.mu.Lock()
	s.pending = append(s.pending, cmd)
	s.mu.Unlock()
	return cmd
}

// DrainCommands returns and clears the recorded command queue.
func (s *Surface) DrainCommands() []Command {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.pending
	s.pending = nil
	return out
}

// AppendPlainText appends text as paragraphs and fires the same change
// notification direct typing would, so derived state (counts, outline)
// stays consistent.
func (s *Surface) AppendPlainText(text string) {
	s.mu.Lock()
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		s.doc.Blocks = append(s.doc.Blocks, document.Block{Kind: document.Paragraph, Text: line})
	}
	s.mu.Unlock()
	s.notify()
}

// ReplaceContent swaps the full document for the given markup. Read-only
// mirrors skip the notification path.
func (s *Surface) ReplaceContent(markup string) {
	s.mu.Lock()
	s.doc = document.ParseMarkup(markup)
	s.mu.Unlock()
	if s.readOnly {
		return
	}
	s.notify()
}

// InsertImage appends an image block (data URI or URL) and notifies.
func (s *Surface) InsertImage(src string) {
	s.mu.Lock()
	s.doc.Blocks = append(s.doc.Blocks, document.Block{Kind: document.Image, Src: src})
	s.mu.Unlock()
	s.notify()
}

// Clear empties the document and notifies.
func (s *Surface) Clear() {
	s.mu.Lock()
	s.doc = &document.Document{}
	s.mu.Unlock()
	if s.readOnly {
		return
	}
	s.notify()
}

// Content returns the current markup snapshot.
func (s *Surface) Content() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return document.Render(s.doc)
}

// Snapshot returns a copy of the document for read-only consumers such as
// the structure extractor.
func (s *Surface) Snapshot() *document.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return &document.Document{Blocks: append([]document.Block(nil), s.doc.Blocks...)}
}

// PlainText returns the derived plain-text projection.
func (s *Surface) PlainText() string {
	return s.Snapshot().PlainText()
}

// Counts reports words, characters, and estimated model tokens.
func (s *Surface) Counts() (words, chars, tokens int) {
	doc := s.Snapshot()
	words = doc.WordCount()
	chars = doc.CharCount()
	tokens, err := utils.NumTokens(doc.PlainText())
	if err != nil {
		log.Debug("token estimate unavailable", "error", err)
		tokens = 0
	}
	return words, chars, tokens
}
