package server

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseActionRoundTrip(t *testing.T) {
	for _, raw := range []string{
		"ai:continue_story",
		"ai:cover_style:dark gothic horror surreal",
		"view:zoom_in",
		"org:scenes:new",
		"edit:bold",
		"tools:wordcount",
		"app:credits",
		"new",
		"save",
		"save_as",
	} {
		a := ParseAction(raw)
		require.True(t, a.Known(), raw)
		assert.Equal(t, raw, a.String(), raw)
	}
}

func TestParseActionUnknown(t *testing.T) {
	for _, raw := range []string{"", "garbage", "bogus:verb", "ai"} {
		assert.False(t, ParseAction(raw).Known(), raw)
	}
}

func TestUnknownActionIsNoOp(t *testing.T) {
	s := newTestServer(t, nil, true)
	out := s.Dispatch(context.Background(), ParseAction("bogus:thing"), "")
	assert.Equal(t, OutcomeNone, out.Kind)

	out = s.Dispatch(context.Background(), ParseAction("view:bogus_toggle"), "")
	assert.Equal(t, OutcomeNone, out.Kind)
	assert.Equal(t, 100, s.view.Zoom, "state is untouched by unknown verbs")
}

func TestZoomClamping(t *testing.T) {
	s := newTestServer(t, nil, true)
	ctx := context.Background()

	for range 15 {
		s.Dispatch(ctx, ParseAction("view:zoom_in"), "")
	}
	assert.Equal(t, 200, s.view.Zoom)

	for range 30 {
		s.Dispatch(ctx, ParseAction("view:zoom_out"), "")
	}
	assert.Equal(t, 50, s.view.Zoom)

	out := s.Dispatch(ctx, ParseAction("view:zoom_reset"), "")
	require.NotNil(t, out.View)
	assert.Equal(t, 100, out.View.Zoom)
}

func TestViewToggles(t *testing.T) {
	s := newTestServer(t, nil, true)
	ctx := context.Background()

	out := s.Dispatch(ctx, ParseAction("view:theme"), "")
	require.NotNil(t, out.View)
	assert.True(t, out.View.DarkMode)

	before := *out.View
	s.Dispatch(ctx, ParseAction("view:theme"), "")
	assert.True(t, before.DarkMode, "returned snapshots are immutable")
	assert.False(t, s.view.DarkMode)
}

func TestStructureToggleOpensAndClosesPanel(t *testing.T) {
	s := newTestServer(t, nil, true)
	ctx := context.Background()

	s.Dispatch(ctx, ParseAction("view:structure"), "")
	assert.Equal(t, PanelStructure, s.panel)
	s.Dispatch(ctx, ParseAction("view:visual_map"), "")
	assert.Empty(t, s.panel, "the same panel toggles closed")
}

func TestPagePresets(t *testing.T) {
	s := newTestServer(t, nil, true)
	ctx := context.Background()

	cases := map[string]string{
		"edit:page_a4":     "21cm",
		"edit:page_a5":     "14.8cm",
		"edit:page_6x9":    "15.24cm",
		"edit:page_pocket": "10.8cm",
	}
	for action, width := range cases {
		out := s.Dispatch(ctx, ParseAction(action), "")
		require.NotNil(t, out.Config, action)
		assert.Equal(t, width, out.Config.MaxWidth, action)
	}
}

func TestEditForwardsFormatCommands(t *testing.T) {
	s := newTestServer(t, nil, true)
	ctx := context.Background()

	out := s.Dispatch(ctx, ParseAction("edit:bold"), "")
	require.NotNil(t, out.Command)
	assert.Equal(t, "bold", out.Command.Name)

	out = s.Dispatch(ctx, ParseAction("edit:transform_upper:era uma vez"), "")
	require.NotNil(t, out.Command)
	assert.Equal(t, "insertText", out.Command.Name)
	assert.Equal(t, "ERA UMA VEZ", out.Command.Value)

	cmds := s.Surface.DrainCommands()
	assert.Len(t, cmds, 2)
}

func TestOrgScenesNewArmsSignal(t *testing.T) {
	s := newTestServer(t, nil, true)

	out := s.Dispatch(context.Background(), ParseAction("org:scenes:new"), "")
	assert.Equal(t, OutcomePanel, out.Kind)
	assert.Equal(t, "scenes", s.orgView)
	assert.Equal(t, PanelOrganization, s.panel)
	assert.True(t, s.Organizer.ScenePending())
}

func TestOrgOpensOtherViews(t *testing.T) {
	s := newTestServer(t, nil, true)
	ctx := context.Background()

	out := s.Dispatch(ctx, ParseAction("org:timeline"), "")
	assert.Equal(t, "timeline", out.Content)
	assert.False(t, s.Organizer.ScenePending())

	out = s.Dispatch(ctx, ParseAction("org:covers"), "")
	assert.Equal(t, OutcomeNone, out.Kind)
}

func TestSaveExportsPlainText(t *testing.T) {
	s := newTestServer(t, nil, true)
	s.Surface.ReplaceContent("<p>Era uma vez.</p>")

	out := s.Dispatch(context.Background(), ParseAction("save"), "")
	require.NotNil(t, out.Export)
	assert.Equal(t, "meu_livro_athena.txt", out.Export.Name)
	assert.Equal(t, "Era uma vez.", out.Export.Body)
}

func TestSaveAsMarkdownPrefixesHeading(t *testing.T) {
	s := newTestServer(t, nil, true)
	s.Surface.ReplaceContent("<p>Era uma vez.</p>")
	ctx := context.Background()

	out := s.Dispatch(ctx, ParseAction("save_as"), "md")
	require.NotNil(t, out.Export)
	assert.Equal(t, "documento.md", out.Export.Name)
	assert.Equal(t, "# Meu Livro\n\nEra uma vez.", out.Export.Body)

	out = s.Dispatch(ctx, ParseAction("save_as"), "")
	require.NotNil(t, out.Export)
	assert.Equal(t, "documento.txt", out.Export.Name)
	assert.Equal(t, "Era uma vez.", out.Export.Body)
}

func TestFileNewClearsDocument(t *testing.T) {
	s := newTestServer(t, nil, true)
	s.Surface.ReplaceContent("<p>conteúdo</p>")

	out := s.Dispatch(context.Background(), ParseAction("new"), "")
	assert.Equal(t, OutcomeCleared, out.Kind)
	assert.Empty(t, s.Surface.Content())
}

func TestCreditsModal(t *testing.T) {
	s := newTestServer(t, nil, true)
	out := s.Dispatch(context.Background(), ParseAction("app:credits"), "")
	assert.Equal(t, OutcomeModal, out.Kind)
	assert.Equal(t, "Créditos", out.Title)
	assert.Contains(t, out.Content, "Athena Editor")
}

func TestWordcountModal(t *testing.T) {
	s := newTestServer(t, nil, true)
	s.Surface.ReplaceContent("<p>uma frase com cinco palavras</p>")

	out := s.Dispatch(context.Background(), ParseAction("tools:wordcount"), "")
	assert.Equal(t, OutcomeModal, out.Kind)
	assert.Contains(t, out.Content, "Palavras: 5")
}

func TestSplitViewFillsMirror(t *testing.T) {
	s := newTestServer(t, nil, true)
	s.Surface.ReplaceContent("<p>texto ao vivo</p>")

	s.Dispatch(context.Background(), ParseAction("view:split"), "")
	assert.Equal(t, "texto ao vivo", s.Mirror.PlainText())

	s.Surface.AppendPlainText("mais um parágrafo")
	assert.Contains(t, s.Mirror.PlainText(), "mais um parágrafo")
}
