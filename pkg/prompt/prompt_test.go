package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContinueStoryKeepsTail(t *testing.T) {
	doc := strings.Repeat("a", 2000) + strings.Repeat("b", 3000)

	embedded := EmbeddedText(TaskContinueStory, doc)
	require.Len(t, embedded, 3000)
	assert.Equal(t, strings.Repeat("b", 3000), embedded)

	p := Build(TaskContinueStory, doc, "")
	assert.Contains(t, p, strings.Repeat("b", 3000))
	assert.NotContains(t, p, "aaab")
}

func TestStoryMapKeepsHead(t *testing.T) {
	doc := strings.Repeat("x", 30000) + strings.Repeat("y", 20000)

	embedded := EmbeddedText(TaskStoryMap, doc)
	require.Len(t, embedded, 30000)
	assert.Equal(t, strings.Repeat("x", 30000), embedded)
	assert.NotContains(t, embedded, "y")
}

func TestTruncationDirectionPerFamily(t *testing.T) {
	long := strings.Repeat("á", 40000) // multi-byte on purpose

	tails := []Task{TaskContinueStory, TaskNextParagraph, TaskSmartContinue, TaskCliffhangers}
	heads := []Task{
		TaskNarrativeAnalysis, TaskGrammarCheck, TaskStoryConnections, TaskStoryConflicts,
		TaskVoiceAnalysis, TaskStyleAnalysis, TaskHeroJourney, TaskTensionPeaks,
		TaskSceneObjective, TaskCoverDescription,
	}
	for _, task := range append(tails, heads...) {
		b, ok := budgets[task]
		require.True(t, ok, "missing budget for %s", task)
		embedded := []rune(EmbeddedText(task, long))
		assert.Len(t, embedded, b.limit, "budget for %s", task)
	}
	for _, task := range tails {
		assert.True(t, budgets[task].tail, "%s must keep the tail", task)
	}
	for _, task := range heads {
		assert.False(t, budgets[task].tail, "%s must keep the head", task)
	}
}

func TestShortTextEmbeddedWhole(t *testing.T) {
	assert.Equal(t, "curto", EmbeddedText(TaskStoryMap, "curto"))
	assert.Equal(t, "curto", EmbeddedText(TaskContinueStory, "curto"))
	// Note-driven generators have no budget at all.
	assert.Equal(t, strings.Repeat("n", 50000), EmbeddedText(TaskExpand, strings.Repeat("n", 50000)))
}

func TestUnknownTaskYieldsEmptyInstruction(t *testing.T) {
	assert.Empty(t, Build(Task("definitely_not_a_task"), "texto", ""))
	assert.False(t, Known(Task("definitely_not_a_task")))
	assert.True(t, Known(TaskGrammarCheck))
	assert.True(t, Known(TaskSceneTwist))
	assert.True(t, Known(TaskRewrite))
	assert.True(t, Known(TaskTemplate))
}

func TestNarrativeAnalysisEmbedsModelAndTruncationNotice(t *testing.T) {
	p := Build(TaskNarrativeAnalysis, "era uma vez", ModelSaveTheCat)
	assert.Contains(t, p, ModelSaveTheCat)
	assert.NotContains(t, p, "texto truncado")

	long := strings.Repeat("z", 16000)
	p = Build(TaskNarrativeAnalysis, long, "")
	assert.Contains(t, p, ModelHerosJourney, "empty param falls back to the default model")
	assert.Contains(t, p, "...(texto truncado)")
}

func TestRewriteDefaultsTone(t *testing.T) {
	assert.Contains(t, Build(TaskRewrite, "ele saiu", ""), "mais dramático")
	assert.Contains(t, Build(TaskRewrite, "ele saiu", "cômico"), "cômico")
}

func TestTemperatures(t *testing.T) {
	assert.Equal(t, 0.7, Temperature(TaskNarrativeAnalysis))
	assert.Equal(t, 0.1, Temperature(TaskGrammarCheck))
	assert.Equal(t, 0.85, Temperature(TaskSceneTwist))
	assert.Equal(t, 0.85, Temperature(TaskRewrite))
	assert.Equal(t, 0.85, Temperature(TaskTemplate))
	assert.Equal(t, -1.0, Temperature(TaskContinueStory))
	assert.Equal(t, -1.0, Temperature(Task("nope")))
}

func TestBuildCover(t *testing.T) {
	spec := CoverSpec{Title: "Meu Livro", Author: "Autora", Details: "uma torre de cristal"}

	full := BuildCover(CoverFull, spec)
	assert.Contains(t, full, `Title: "Meu Livro"`)
	assert.Contains(t, full, DefaultCoverStyle)
	assert.Contains(t, full, "spine")

	img := BuildCover(CoverImage, CoverSpec{Details: "um corvo", Style: "watercolor artistic soft"})
	assert.Contains(t, img, "um corvo")
	assert.Contains(t, img, "watercolor")
	assert.NotContains(t, img, "spine")

	vars := BuildCover(CoverVariation, spec)
	assert.Contains(t, vars, "4 different stylistic layout variations")
}

func TestWordTools(t *testing.T) {
	assert.Contains(t, Build(TaskWordDefinition, "efêmero", ""), `"efêmero"`)
	assert.Contains(t, Build(TaskWordSynonyms, "belo", ""), "5 sinônimos")
}
