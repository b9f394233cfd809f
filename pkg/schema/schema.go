// Package schema declares the structured-output contract used when the
// model extracts planning material (character sheets, timeline events) from
// a manuscript for the organization panel.
package schema

import (
	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go/v3"
)

func generateSchema[T any]() any {
	r := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	return r.Reflect(v)
}

// Extraction is the full structured answer for a manuscript scan.
type Extraction struct {
	Characters []CharacterSheet `json:"characters" jsonschema_description:"Personagens extraídos do manuscrito com suas características"`
	Timeline   []TimelineEvent  `json:"timeline" jsonschema_description:"Eventos datados extraídos do manuscrito, em ordem cronológica"`
}

// CharacterSheet is one extracted character, shaped to slot straight into
// the organizer's character collection.
type CharacterSheet struct {
	Name   string `json:"name" jsonschema_description:"Nome canônico do personagem"`
	Role   string `json:"role" jsonschema_description:"Papel na história em uma frase (ex: Protagonista, Mentor, Antagonista)"`
	Traits string `json:"traits" jsonschema_description:"Traços de personalidade resumidos a partir do texto"`
}

// TimelineEvent is one extracted story event.
type TimelineEvent struct {
	Time  string `json:"time" jsonschema_description:"Quando o evento ocorre (data, hora ou marcador relativo como 'Três dias depois')"`
	Event string `json:"event" jsonschema_description:"Descrição breve do evento"`
}

var ExtractionSchema = generateSchema[Extraction]()

// StructuredOutputsResponseFormat is the response format for providers that
// support strict JSON-schema outputs.
func StructuredOutputsResponseFormat() openai.ChatCompletionNewParamsResponseFormatUnion {
	p := openai.ResponseFormatJSONSchemaJSONSchemaParam{
		Name:        "manuscript_extraction",
		Description: openai.String("Characters and timeline events extracted from a fiction manuscript"),
		Schema:      ExtractionSchema,
		Strict:      openai.Bool(true),
	}
	return openai.ChatCompletionNewParamsResponseFormatUnion{
		OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{JSONSchema: p},
	}
}
