package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMarkupBlocks(t *testing.T) {
	doc := ParseMarkup(`<h1>Título</h1><p>Primeiro parágrafo.</p><hr><img src="data:image/png;base64,AAAA"><h3>Sub</h3>`)

	require.Len(t, doc.Blocks, 5)
	assert.Equal(t, Block{Kind: H1, Text: "Título"}, doc.Blocks[0])
	assert.Equal(t, Block{Kind: Paragraph, Text: "Primeiro parágrafo."}, doc.Blocks[1])
	assert.Equal(t, Block{Kind: Rule}, doc.Blocks[2])
	assert.Equal(t, Image, doc.Blocks[3].Kind)
	assert.Equal(t, "data:image/png;base64,AAAA", doc.Blocks[3].Src)
	assert.Equal(t, Block{Kind: H3, Text: "Sub"}, doc.Blocks[4])
}

func TestParseMarkupFlattensContainers(t *testing.T) {
	doc := ParseMarkup(`<div><p>dentro</p><div>solto</div></div>`)

	require.Len(t, doc.Blocks, 2)
	assert.Equal(t, "dentro", doc.Blocks[0].Text)
	assert.Equal(t, "solto", doc.Blocks[1].Text)
	assert.Equal(t, Paragraph, doc.Blocks[1].Kind)
}

func TestParseMarkupInlineFormattingKeepsText(t *testing.T) {
	doc := ParseMarkup(`<p>um <b>trecho</b> com <i>ênfase</i></p>`)

	require.Len(t, doc.Blocks, 1)
	assert.Equal(t, "um trecho com ênfase", doc.Blocks[0].Text)
}

func TestParseRenderParseStable(t *testing.T) {
	doc := ParseMarkup(`<h2>Capítulo 1</h2><p>Era uma vez.</p><hr><p>[NOTA] revisar</p>`)

	again := ParseMarkup(Render(doc))
	assert.Equal(t, doc.Blocks, again.Blocks)
}

func TestEmptyMarkup(t *testing.T) {
	doc := ParseMarkup("   ")
	assert.Empty(t, doc.Blocks)
	assert.True(t, doc.Empty())
	assert.Equal(t, "", doc.PlainText())
}

func TestCounts(t *testing.T) {
	doc := ParseMarkup(`<p>três palavras aqui</p><p>e mais duas</p>`)
	assert.Equal(t, 6, doc.WordCount())
	// 18 + newline + 11 runes
	assert.Equal(t, 30, doc.CharCount())
}
