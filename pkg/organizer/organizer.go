// Package organizer holds the author's planning material: five independent
// collections (scenes, timeline, characters, notes, research), each with
// its own storage key and lifecycle. No cross-collection references are
// enforced; relations live in free text.
package organizer

import (
	"strings"
	"sync"

	"athena/pkg/store"
)

// Storage keys, one per collection.
const (
	KeyScenes     = "athena_scenes"
	KeyTimeline   = "athena_timeline"
	KeyCharacters = "athena_chars"
	KeyNotes      = "athena_notes"
	KeyResearch   = "athena_research"
)

// Scene is one scene card. JSON field names match the persisted form.
type Scene struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"desc"`
}

// TimelineEvent is one dated event on the story timeline.
type TimelineEvent struct {
	ID          int64  `json:"id"`
	TimeLabel   string `json:"time"`
	Description string `json:"event"`
}

// Character is one character sheet.
type Character struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Traits string `json:"traits"`
}

// Note is a free-form annotation.
type Note struct {
	ID      int64  `json:"id"`
	Content string `json:"content"`
}

// ResearchItem is a research link or topic.
type ResearchItem struct {
	ID      int64  `json:"id"`
	Content string `json:"content"`
}

// Views lists the organization panel views in menu order.
var Views = []string{"scenes", "timeline", "characters", "notes", "research"}

// ValidView reports whether name is an organization view.
func ValidView(name string) bool {
	for _, v := range Views {
		if v == name {
			return true
		}
	}
	return false
}

// defaultScenes seeds a brand-new workspace; every other collection starts
// empty.
func defaultScenes() []Scene {
	return []Scene{
		{ID: 1, Title: "Cena Inicial", Description: "O protagonista acorda..."},
		{ID: 2, Title: "Incidente Incitante", Description: "Uma carta misteriosa chega..."},
	}
}

// Organizer bundles the five collections plus the pending new-scene signal
// other components may arm.
type Organizer struct {
	Scenes     *Collection[Scene]
	Timeline   *Collection[TimelineEvent]
	Characters *Collection[Character]
	Notes      *Collection[Note]
	Research   *Collection[ResearchItem]

	mu           sync.Mutex
	pendingScene bool
}

// New hydrates every collection from the store.
func New(st store.Store) *Organizer {
	return &Organizer{
		Scenes: NewCollection(st, KeyScenes, defaultScenes(),
			func(s Scene) int64 { return s.ID },
			func(s *Scene, id int64) { s.ID = id }),
		Timeline: NewCollection(st, KeyTimeline, nil,
			func(e TimelineEvent) int64 { return e.ID },
			func(e *TimelineEvent, id int64) { e.ID = id }),
		Characters: NewCollection(st, KeyCharacters, nil,
			func(c Character) int64 { return c.ID },
			func(c *Character, id int64) { c.ID = id }),
		Notes: NewCollection(st, KeyNotes, nil,
			func(n Note) int64 { return n.ID },
			func(n *Note, id int64) { n.ID = id }),
		Research: NewCollection(st, KeyResearch, nil,
			func(r ResearchItem) int64 { return r.ID },
			func(r *ResearchItem, id int64) { r.ID = id }),
	}
}

// AddScene runs the new-scene flow: an empty or cancelled title creates
// nothing. The new scene's description starts empty.
func (o *Organizer) AddScene(title string) (Scene, bool) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Scene{}, false
	}
	return o.Scenes.Add(Scene{Title: title}), true
}

// RequestScene arms the cross-component new-scene signal, the equivalent
// of pressing the "new scene" button from outside the panel.
func (o *Organizer) RequestScene() {
	o.mu.Lock()
	o.pendingScene = true
	o.mu.Unlock()
}

// ConsumeSceneRequest reports whether a new-scene request is pending and
// clears it, so the flow fires exactly once.
func (o *Organizer) ConsumeSceneRequest() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	pending := o.pendingScene
	o.pendingScene = false
	return pending
}

// ScenePending reports the signal without clearing it.
func (o *Organizer) ScenePending() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.pendingScene
}
