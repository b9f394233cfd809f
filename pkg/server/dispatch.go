package server

import (
	"context"
	"fmt"
	"strings"

	"athena/pkg/organizer"
	"athena/pkg/surface"
	"athena/pkg/utils"
)

// Namespace groups the action verbs by origin menu.
type Namespace string

const (
	NSAI      Namespace = "ai"
	NSView    Namespace = "view"
	NSOrg     Namespace = "org"
	NSEdit    Namespace = "edit"
	NSTools   Namespace = "tools"
	NSFile    Namespace = "file"
	NSApp     Namespace = "app"
	NSUnknown Namespace = ""
)

// Action is the typed form of a menu action string. Parsing happens once at
// the boundary; everything downstream switches on typed fields.
type Action struct {
	NS    Namespace
	Verb  string
	Param string
}

// Known reports whether the action resolved to a recognized namespace.
func (a Action) Known() bool { return a.NS != NSUnknown }

// String reassembles the wire form.
func (a Action) String() string {
	switch a.NS {
	case NSUnknown:
		return a.Verb
	case NSFile:
		return a.Verb
	}
	out := string(a.NS) + ":" + a.Verb
	if a.Param != "" {
		out += ":" + a.Param
	}
	return out
}

// bareVerbs are the file actions sent without a namespace prefix.
var bareVerbs = map[string]bool{"new": true, "save": true, "save_as": true}

var knownNamespaces = map[Namespace]bool{
	NSAI: true, NSView: true, NSOrg: true, NSEdit: true, NSTools: true, NSApp: true,
}

// ParseAction converts a raw "ns:verb[:param]" string into an Action.
// Anything unrecognized keeps NSUnknown and dispatches to a no-op.
func ParseAction(raw string) Action {
	raw = strings.TrimSpace(raw)
	if bareVerbs[raw] {
		return Action{NS: NSFile, Verb: raw}
	}
	if raw == "install_app" {
		return Action{NS: NSApp, Verb: "install_app"}
	}
	parts := strings.SplitN(raw, ":", 3)
	if len(parts) < 2 || !knownNamespaces[Namespace(parts[0])] {
		return Action{Verb: raw}
	}
	a := Action{NS: Namespace(parts[0]), Verb: parts[1]}
	if len(parts) == 3 {
		a.Param = parts[2]
	}
	return a
}

// Outcome is what one dispatched action produced.
type Outcome struct {
	Kind    string            `json:"kind"`
	Title   string            `json:"title,omitempty"`
	Content string            `json:"content,omitempty"`
	Handle  string            `json:"handle,omitempty"`
	Stale   bool              `json:"stale,omitempty"`
	View    *ViewOptions      `json:"view,omitempty"`
	Config  *EditorConfig     `json:"config,omitempty"`
	Command *surface.Command  `json:"command,omitempty"`
	Export  *Export           `json:"export,omitempty"`
	Image   string            `json:"image,omitempty"` // data URI
	Diff    []utils.WordDelta `json:"diff,omitempty"`
}

// Export is a downloadable rendition of the manuscript.
type Export struct {
	Name string `json:"name"`
	MIME string `json:"mime"`
	Body string `json:"body"`
}

// Outcome kinds.
const (
	OutcomeNone       = "none"
	OutcomeModal      = "modal"
	OutcomeSuggestion = "suggestion"
	OutcomeView       = "view"
	OutcomeConfig     = "config"
	OutcomeCommand    = "command"
	OutcomeExport     = "export"
	OutcomePanel      = "panel"
	OutcomeCover      = "cover"
	OutcomeCleared    = "cleared"
)

func none() Outcome { return Outcome{Kind: OutcomeNone} }

// Dispatch routes a parsed action. format is the save_as file extension and
// is ignored elsewhere.
func (s *Server) Dispatch(ctx context.Context, a Action, format string) Outcome {
	switch a.NS {
	case NSApp:
		return s.dispatchApp(a)
	case NSAI:
		return s.dispatchAI(ctx, a)
	case NSView:
		return s.dispatchView(a)
	case NSOrg:
		return s.dispatchOrg(a)
	case NSEdit:
		return s.dispatchEdit(a)
	case NSTools:
		return s.dispatchTools(ctx, a)
	case NSFile:
		return s.dispatchFile(a, format)
	default:
		return none()
	}
}

func (s *Server) dispatchApp(a Action) Outcome {
	if a.Verb != "credits" {
		// install_app is entirely client-side.
		return none()
	}
	return Outcome{
		Kind:  OutcomeModal,
		Title: "Créditos",
		Content: "Programação e Design: Jorge Pereira de Oliveira\n" +
			"Athena Editor v1.2 (PWA Enabled)\n" +
			"Desenvolvido com Google Gemini AI",
	}
}

func (s *Server) dispatchView(a Action) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch a.Verb {
	case "zoom_in":
		s.view = s.view.ZoomIn()
	case "zoom_out":
		s.view = s.view.ZoomOut()
	case "zoom_reset":
		s.view = s.view.ZoomReset()
	case "linenumbers":
		s.view.ShowLineNumbers = !s.view.ShowLineNumbers
	case "pagenumbers":
		s.view.ShowPageNumbers = !s.view.ShowPageNumbers
	case "theme":
		s.view.DarkMode = !s.view.DarkMode
	case "statusbar":
		s.view.ShowStatusBar = !s.view.ShowStatusBar
	case "split":
		s.view.SplitView = !s.view.SplitView
		if s.view.SplitView {
			s.Mirror.ReplaceContent(s.Surface.Content())
		}
	case "typewriter":
		s.view.TypewriterMode = !s.view.TypewriterMode
	case "structure", "visual_map":
		if s.panel == PanelStructure {
			s.panel = ""
		} else {
			s.panel = PanelStructure
		}
	default:
		return none()
	}
	v := s.view
	return Outcome{Kind: OutcomeView, View: &v}
}

func (s *Server) dispatchOrg(a Action) Outcome {
	switch {
	case a.Verb == "scenes" && a.Param == "new":
		s.Organizer.RequestScene()
		s.openOrgView("scenes")
	case a.Verb == "scenes":
		s.openOrgView("scenes")
	case organizer.ValidView(a.Verb):
		s.openOrgView(a.Verb)
	default:
		return none()
	}
	return Outcome{Kind: OutcomePanel, Content: s.currentOrgView()}
}

func (s *Server) openOrgView(view string) {
	s.mu.Lock()
	s.orgView = view
	s.panel = PanelOrganization
	s.mu.Unlock()
}

func (s *Server) currentOrgView() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orgView
}

func (s *Server) dispatchEdit(a Action) Outcome {
	if width, ok := pageWidths[a.Verb]; ok {
		s.mu.Lock()
		s.config.MaxWidth = width
		cfg := s.config
		s.mu.Unlock()
		return Outcome{Kind: OutcomeConfig, Config: &cfg}
	}
	var cmd surface.Command
	switch a.Verb {
	case "transform_upper":
		cmd = s.Surface.ExecuteCommand("insertText", strings.ToUpper(a.Param))
	case "transform_lower":
		cmd = s.Surface.ExecuteCommand("insertText", strings.ToLower(a.Param))
	default:
		cmd = s.Surface.ExecuteCommand(a.Verb, a.Param)
	}
	return Outcome{Kind: OutcomeCommand, Command: &cmd}
}

func (s *Server) dispatchFile(a Action, format string) Outcome {
	text := s.Surface.PlainText()
	switch a.Verb {
	case "new":
		s.Surface.Clear()
		return Outcome{Kind: OutcomeCleared}
	case "save":
		return Outcome{Kind: OutcomeExport, Export: &Export{
			Name: "meu_livro_athena.txt",
			MIME: "text/plain;charset=utf-8",
			Body: text,
		}}
	case "save_as":
		if format == "" {
			format = "txt"
		}
		body := text
		if format == "md" {
			body = "# Meu Livro\n\n" + text
		}
		return Outcome{Kind: OutcomeExport, Export: &Export{
			Name: fmt.Sprintf("documento.%s", format),
			MIME: "text/plain;charset=utf-8",
			Body: body,
		}}
	}
	return none()
}
