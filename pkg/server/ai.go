package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/segmentio/ksuid"

	"athena/pkg/gateway"
	"athena/pkg/organizer"
	"athena/pkg/prompt"
	"athena/pkg/schema"
	"athena/pkg/utils"
)

// Suggestion is the latest AI result held for a panel.
type Suggestion struct {
	Handle  string `json:"handle"`
	Task    string `json:"task"`
	Content string `json:"content"`
	OK      bool   `json:"ok"`
}

// Result panels. Narrative analysis and grammar review each have a
// dedicated panel; everything else lands in the assistant modal.
const (
	panelNarrative = "narrative"
	panelGrammar   = "grammar"
	panelAssistant = "assistant"
)

func panelFor(task prompt.Task) string {
	switch task {
	case prompt.TaskNarrativeAnalysis:
		return panelNarrative
	case prompt.TaskGrammarCheck:
		return panelGrammar
	default:
		return panelAssistant
	}
}

// beginPanel mints a request handle and bumps the panel generation, which
// invalidates any still-running request for the same panel.
func (s *Server) beginPanel(panel string) (string, uint64) {
	s.pmu.Lock()
	defer s.pmu.Unlock()
	s.generations[panel]++
	return ksuid.New().String(), s.generations[panel]
}

// deliver stores the suggestion unless a newer request superseded it. There
// is no hard cancel: the superseded request finishes and its result is
// dropped here.
func (s *Server) deliver(panel string, gen uint64, sug Suggestion) bool {
	s.pmu.Lock()
	defer s.pmu.Unlock()
	if s.generations[panel] != gen {
		log.Debug("dropping stale result", "panel", panel, "handle", sug.Handle)
		return false
	}
	s.latest[panel] = sug
	return true
}

// PanelSuggestion returns the last delivered suggestion for a panel.
func (s *Server) PanelSuggestion(panel string) (Suggestion, bool) {
	s.pmu.Lock()
	defer s.pmu.Unlock()
	sug, ok := s.latest[panel]
	return sug, ok
}

// ClosePanel discards the panel's suggestion and invalidates in-flight
// requests targeting it.
func (s *Server) ClosePanel(panel string) {
	s.pmu.Lock()
	defer s.pmu.Unlock()
	s.generations[panel]++
	delete(s.latest, panel)
}

func (s *Server) dispatchAI(ctx context.Context, a Action) Outcome {
	switch a.Verb {
	case "cover_auto":
		description, ok := s.complete(ctx, prompt.TaskCoverDescription, "")
		if !ok {
			return Outcome{Kind: OutcomeModal, Title: "Erro", Content: description}
		}
		return s.generateCover(ctx, prompt.CoverFull, prompt.CoverSpec{
			Title:   "Meu Livro",
			Author:  "Autor",
			Details: description,
		})
	case "cover_edit":
		return s.generateCover(ctx, prompt.CoverFull, prompt.CoverSpec{
			Title:  "Título",
			Author: "Autor",
		})
	case "cover_style":
		return s.generateCover(ctx, prompt.CoverFull, prompt.CoverSpec{
			Title:  "Meu Livro",
			Author: "Autor",
			Style:  a.Param,
		})
	}

	task := prompt.ParseTask(a.Verb)
	if !prompt.Known(task) {
		return none()
	}
	return s.runTask(ctx, task, a.Param)
}

// MsgEmptyEditor is the local answer for manuscript tasks issued against an
// empty editor. No backend call is made.
const MsgEmptyEditor = "Por favor, escreva algo no editor antes de solicitar uma análise."

// runTask executes one text task against the manuscript and delivers the
// result to the task's panel. An empty manuscript short-circuits with a
// local message; template generation is exempt since it works from the
// chosen narrative model, not the text.
func (s *Server) runTask(ctx context.Context, task prompt.Task, param string) Outcome {
	text := s.Surface.PlainText()
	if task != prompt.TaskTemplate && strings.TrimSpace(text) == "" {
		return s.deliverLocal(task, MsgEmptyEditor)
	}
	req := gateway.Request{
		Prompt:      prompt.Build(task, text, param),
		Temperature: prompt.Temperature(task),
		Fallback:    prompt.Fallback(task),
	}
	if task == prompt.TaskNarrativeAnalysis {
		req.System = prompt.Persona
	}
	if task == prompt.TaskCharacter {
		format := schema.StructuredOutputsResponseFormat()
		req.Format = &format
	}

	panel := panelFor(task)
	handle, gen := s.beginPanel(panel)
	log.Debug("running task", "task", task, "handle", handle, "prompt", utils.LimitStr(req.Prompt, 80))

	content, ok := s.Gateway.Complete(ctx, req)
	delivered := s.deliver(panel, gen, Suggestion{
		Handle:  handle,
		Task:    string(task),
		Content: content,
		OK:      ok,
	})

	out := Outcome{
		Kind:    OutcomeSuggestion,
		Title:   "Sugestão da Athena",
		Content: content,
		Handle:  handle,
		Stale:   !delivered,
	}
	if ok {
		switch task {
		case prompt.TaskGrammarCheck, prompt.TaskRewrite:
			out.Diff = utils.DiffWords(prompt.EmbeddedText(task, text), content)
		case prompt.TaskCharacter:
			s.fileExtraction(content)
		}
	}
	return out
}

// deliverLocal posts a locally produced message to the task's panel
// without touching the backend.
func (s *Server) deliverLocal(task prompt.Task, msg string) Outcome {
	panel := panelFor(task)
	handle, gen := s.beginPanel(panel)
	delivered := s.deliver(panel, gen, Suggestion{
		Handle:  handle,
		Task:    string(task),
		Content: msg,
	})
	return Outcome{
		Kind:    OutcomeSuggestion,
		Title:   "Sugestão da Athena",
		Content: msg,
		Handle:  handle,
		Stale:   !delivered,
	}
}

// complete is runTask without panel bookkeeping, for internal steps like
// the cover description.
func (s *Server) complete(ctx context.Context, task prompt.Task, param string) (string, bool) {
	req := gateway.Request{
		Prompt:      prompt.Build(task, s.Surface.PlainText(), param),
		Temperature: prompt.Temperature(task),
		Fallback:    prompt.Fallback(task),
	}
	return s.Gateway.Complete(ctx, req)
}

// fileExtraction parses a structured character answer and files it into the
// organization collections. Unparseable answers are left as plain text.
func (s *Server) fileExtraction(content string) {
	var ext schema.Extraction
	if err := json.Unmarshal([]byte(stripFences(content)), &ext); err != nil {
		log.Debug("character answer is not structured, keeping as text", "error", err)
		return
	}
	for _, ch := range ext.Characters {
		if strings.TrimSpace(ch.Name) == "" {
			continue
		}
		s.Organizer.Characters.Add(organizer.Character{
			Name:   ch.Name,
			Role:   ch.Role,
			Traits: ch.Traits,
		})
	}
	for _, ev := range ext.Timeline {
		if strings.TrimSpace(ev.Event) == "" {
			continue
		}
		s.Organizer.Timeline.Add(organizer.TimelineEvent{
			TimeLabel:   ev.Time,
			Description: ev.Event,
		})
	}
	log.Debug("filed structured extraction", "data", utils.PrettyJSON(ext))
}

// stripFences removes a surrounding markdown code fence, which models add
// even when asked for raw JSON.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func (s *Server) dispatchTools(ctx context.Context, a Action) Outcome {
	switch a.Verb {
	case "wordcount":
		words, chars, tokens := s.Surface.Counts()
		return Outcome{
			Kind:    OutcomeModal,
			Title:   "Contador de Palavras",
			Content: fmt.Sprintf("Palavras: %d\nCaracteres: %d\nTokens: %d", words, chars, tokens),
		}
	case "dict":
		return s.lookup(prompt.TaskWordDefinition, a.Param)
	case "synonyms":
		return s.lookup(prompt.TaskWordSynonyms, a.Param)
	case "check":
		return s.runTask(ctx, prompt.TaskGrammarCheck, "")
	default:
		return none()
	}
}

// lookup serves dictionary and synonym queries through the coalescing
// cache, so repeated lookups of the same word cost one backend call.
func (s *Server) lookup(task prompt.Task, word string) Outcome {
	word = strings.TrimSpace(word)
	if word == "" {
		return none()
	}
	title := "Dicionário"
	if task == prompt.TaskWordSynonyms {
		title = "Sinônimos"
	}
	content, err := s.lookups.Do(lookupKey{task: task, word: word})
	if err != nil {
		return Outcome{Kind: OutcomeModal, Title: title, Content: err.Error()}
	}
	return Outcome{Kind: OutcomeModal, Title: title, Content: content}
}

// lookupWord is the flight fetch function. Failures come back as errors so
// they are never cached.
func (s *Server) lookupWord(k lookupKey) (string, error) {
	content, ok := s.Gateway.Complete(context.Background(), gateway.Request{
		Prompt:      prompt.Build(k.task, k.word, ""),
		Temperature: prompt.Temperature(k.task),
		Fallback:    prompt.Fallback(k.task),
	})
	if !ok {
		return "", errors.New(content)
	}
	return content, nil
}
