// Package prompt maps editor tasks to the instruction strings sent to the
// generative backend. Everything here is pure string assembly: no network,
// no side effects, and Build never fails. An unknown task simply yields
// an empty instruction, which the gateway treats as a caller error.
package prompt

import (
	"fmt"
	"strings"
)

// Narrative structure models offered by the narrative assistant panel.
const (
	ModelHerosJourney    = "Jornada do Herói"
	ModelThreeActs       = "Estrutura de Três Atos"
	ModelSaveTheCat      = "Save the Cat"
	ModelKishotenketsu   = "Kishōtenketsu"
	ModelFreytagsPyramid = "Pirâmide de Freytag"
)

// NarrativeModels lists the selectable models in menu order.
var NarrativeModels = []string{
	ModelHerosJourney,
	ModelThreeActs,
	ModelSaveTheCat,
	ModelKishotenketsu,
	ModelFreytagsPyramid,
}

// Build produces the full instruction for a task. text is the manuscript
// (or, for the word tools, the word itself; for note-driven generators,
// the author's notes). param carries the optional free-text argument:
// narrative model, desired tone, or continuation context.
func Build(task Task, text, param string) string {
	switch task {
	case TaskNarrativeAnalysis:
		model := param
		if model == "" {
			model = ModelHerosJourney
		}
		body, truncated := clip(text, 15000, false)
		suffix := ""
		if truncated {
			suffix = " ...(texto truncado)"
		}
		return fmt.Sprintf(`Você é um editor literário experiente e crítico.
Analise o seguinte texto com base na estrutura narrativa: %s.

O texto é:
"%s"%s

Forneça uma análise estruturada em Markdown (use tópicos):
1. Identifique em que ponto da estrutura %s este texto parece se encaixar.
2. Pontos fortes da narrativa atual.
3. Sugestões de melhoria para fortalecer a tensão narrativa e o desenvolvimento de personagens.
4. Ideias para a próxima cena seguindo a lógica do modelo escolhido.

Seja direto, construtivo e use português culto.`, model, body, suffix, model)

	case TaskGrammarCheck:
		body, _ := clip(text, 10000, false)
		return fmt.Sprintf(`Atue como um revisor gramatical de língua portuguesa (PT-BR) extremamente rigoroso.
Verifique o texto abaixo em busca de:
1. Erros ortográficos.
2. Erros de concordância verbal e nominal.
3. Erros de pontuação.
4. Sugestões de estilo para tornar a prosa mais fluida e literária (evitando repetições e cacofonias).

Texto:
"%s"

Retorne a resposta em Markdown.
Se o texto estiver perfeito, elogie e diga que não há correções.
Se houver erros, liste-os no formato:
- **Erro encontrado**: [trecho errado] -> **Sugestão**: [correção] (Explicação breve).`, body)

	case TaskContinueStory:
		body, _ := clip(text, 3000, true)
		return fmt.Sprintf(`Você é um co-autor. Continue a história abaixo, mantendo o mesmo tom, estilo de escrita e voz do narrador.
Escreva apenas a continuação (cerca de 200 palavras).

Contexto adicional do autor: %s

Texto atual:
"%s"`, param, body)

	case TaskWordDefinition:
		return fmt.Sprintf(`Defina a palavra "%s" no contexto literário e da língua portuguesa. Seja breve e dê um exemplo de uso.`, text)

	case TaskWordSynonyms:
		return fmt.Sprintf(`Forneça 5 sinônimos sofisticados/literários para a palavra "%s" e 3 antônimos. Formate como lista.`, text)

	case TaskRewrite:
		tone := param
		if tone == "" {
			tone = "mais dramático"
		}
		return fmt.Sprintf(`Reescreva o seguinte texto alterando o tom para: %s. Mantenha a ideia central, mas adapte o vocabulário e a construção frasal. Texto: "%s"`, tone, text)

	case TaskTemplate:
		return fmt.Sprintf(`Gere um esboço estrutural vazio mas guiado e detalhado baseado no modelo narrativo: "%s". Para cada etapa do modelo, forneça uma explicação do que deve ser escrito e deixe um espaço para o autor preencher.`, param)
	}

	tpl, ok := templates[task]
	if !ok {
		return ""
	}
	body := text
	if b, ok := budgets[task]; ok && b.limit > 0 {
		body, _ = clip(text, b.limit, b.tail)
	}
	return fmt.Sprintf(tpl, body)
}

// templates holds the single-argument creative prompts; the embedded text
// is already truncated per the budgets table before substitution.
var templates = map[Task]string{
	TaskNextParagraph: `Com base no texto a seguir, escreva o próximo parágrafo mantendo o estilo, tom e voz narrativa. Texto: "%s"`,
	TaskExpand:        `Expanda o seguinte trecho de texto. Adicione detalhes sensoriais, aprofunde a descrição do ambiente e das emoções, mantendo o sentido original, mas tornando-o mais literário e imersivo: "%s"`,
	TaskSummarize:     `Resuma o seguinte texto em um único parágrafo conciso e objetivo, capturando os pontos principais: "%s"`,
	TaskSynopsis:      `Crie uma sinopse comercial e atraente para um livro baseado nas seguintes premissas/notas: "%s". A sinopse deve apresentar o protagonista, o conflito central e ter um gancho forte.`,
	TaskTitles:        `Gere 10 sugestões de títulos criativos, comerciais e literários para uma história sobre: "%s". Explique brevemente o porquê de cada título.`,
	TaskCharacter:     `Crie uma ficha detalhada de personagem (Nome, Idade, Aparência Física, Personalidade, Motivação, Medo, Segredo) baseada nestas notas: "%s".`,
	TaskChapters:      `Crie uma estrutura de capítulos (Outline) detalhada para uma história sobre: "%s". Liste capitulo por capitulo com uma breve descrição do que acontece em cada um (Arco Narrativo).`,

	TaskStoryMap: `Atue como um analista literário. Com base no texto completo fornecido, crie um "Mapa de História" (Timeline) estruturado.
1. Crie uma linha do tempo cronológica dos eventos principais apresentados.
2. Analise os arcos dramáticos atuais (Início, Meio, Fim).
3. Avalie o ritmo (pacing) da narrativa (onde está lento, onde está rápido).
Texto: "%s"`,
	TaskStoryConnections: `Analise o texto e mapeie as conexões profundas da história.
1. Conexões entre Eventos: Mostre causa e consequência (Evento A causou Evento B).
2. Conexões entre Personagens: Como eles se relacionam e influenciam uns aos outros.
3. Identifique "Pontas Soltas" ou elementos introduzidos que precisam de resolução.
Texto: "%s"`,
	TaskStoryConflicts: `Analise o texto e foque exclusivamente nos conflitos.
1. Liste os conflitos atuais (manifestos).
2. Sugira 3 opções de Conflitos Internos para o protagonista baseados na sua personalidade.
3. Sugira 3 opções de Conflitos Externos (antagonistas, ambiente, sociedade) que poderiam piorar a situação.
Texto: "%s"`,

	TaskSmartContinue: `Você é o próprio autor escrevendo. Continue o texto a partir do ponto exato onde parou, completando a frase se necessário e adicionando cerca de 100-150 palavras que fluam organicamente. Não repita o texto anterior.
Contexto: "%s"`,
	TaskShowDontTell: `Reescreva o trecho abaixo aplicando rigorosamente a técnica "Show, Don't Tell" (Mostrar, não contar).
Em vez de adjetivos abstratos ou descrições expositivas de emoções (ex: "ele estava triste"), use ações físicas, detalhes sensoriais e linguagem corporal para evocar a cena.
Trecho Original: "%s"`,
	TaskVoiceAnalysis: `Faça uma análise técnica da Voz Narrativa no texto fornecido.
Analise e comente sobre:
1. A Consistência do tom (Formal, coloquial, lírico, seco?).
2. A Perspectiva (1ª, 3ª limitada, 3ª onisciente) e se há quebras de foco.
3. O "Distanciamento Psíquico" (Estamos muito perto ou muito longe dos pensamentos do personagem?).
4. Sugestões para tornar a voz mais única e marcante.
Texto: "%s"`,

	TaskStyleAnalysis: `Atue como um crítico literário e faça uma "Análise de Estilo" profunda do autor deste texto.
Identifique:
1. **Impressão Digital**: Qual é a marca registrada deste texto? (Ex: Uso de metáforas complexas, diálogos rápidos, descrições densas).
2. **Vocabulário**: Analise a riqueza lexical. É repetitiva? É arcaica? É moderna?
3. **Vícios**: Existem padrões que empobrecem o texto? (Ex: excesso de adjetivos, frases muito longas).
4. **Comparação**: Se possível, compare o estilo com autores consagrados para referência.
Texto: "%s"`,
	TaskStyleRhythm: `Analise exclusivamente o **Ritmo e a Cadência** do texto abaixo.
1. Identifique parágrafos onde a leitura "engasga" ou se torna monótona.
2. Analise a variação do tamanho das frases (o autor intercala frases curtas e longas para criar dinamismo?).
3. Aponte cacofonias ou aliterações acidentais que quebram a imersão.
4. Sugira como melhorar a musicalidade da prosa neste trecho.
Texto: "%s"`,
	TaskStyleRepetition: `Faça uma varredura no texto buscando **Repetições de Palavras e Ecos**.
Não liste conectivos comuns (o, a, de, que) a menos que usados excessivamente.
Foque em substantivos, adjetivos e verbos que aparecem muito próximos uns dos outros.
Para cada repetição encontrada, cite o trecho e sugira um sinônimo ou uma reestruturação da frase.
Texto: "%s"`,
	TaskStyleWeak: `Identifique **Frases Fracas e Passivas** no texto.
Procure por:
1. Excesso de voz passiva.
2. Uso excessivo de verbos de ligação (ser/estar) em vez de verbos de ação.
3. Advérbios terminados em "-mente" que poderiam ser cortados.
4. Clichês e lugares-comuns.
Liste os exemplos encontrados e ofereça uma reescrita mais forte e ativa para cada um.
Texto: "%s"`,
	TaskStyleShow: `Analise o texto abaixo buscando oportunidades de "Show, Don't Tell" (Mostrar vs Dizer).
Identifique trechos onde o autor está apenas informando uma emoção ou estado (Ex: "Ele estava com raiva") e sugira como reescrever isso mostrando a ação (Ex: "Ele cerrou os punhos até os nós dos dedos ficarem brancos").
Texto: "%s"`,

	TaskHeroJourney: `Analise o texto atual sob a ótica da **Jornada do Herói** (Joseph Campbell).
1. Em qual estágio da jornada o protagonista parece estar neste trecho?
2. Quais elementos arquetípicos estão presentes ou faltando?
3. Sugira como conduzir a história para a próxima etapa da Jornada de forma natural.
Texto: "%s"`,
	TaskCharacterArc: `Analise o **Arco do Personagem Principal** com base no texto fornecido.
1. Defina o estado inicial do personagem (sua "Mentira" ou falha trágica).
2. Identifique sinais de mudança ou resistência à mudança neste trecho.
3. Sugira situações que forcem o personagem a confrontar seus medos.
Texto: "%s"`,
	TaskSceneTriggers: `Analise os **Gatilhos de Cena e Transições** no texto.
1. Identifique como as cenas começam e terminam (Entradas e Saídas). Elas são fortes?
2. Existem "Ganchos" ao final das cenas que obrigam o leitor a continuar?
3. Sugira gatilhos de ação mais fortes para iniciar as próximas cenas.
Texto: "%s"`,
	TaskPlotPoints: `Identifique os **Pontos de Virada Automáticos** (Plot Points) no texto, se houver.
Se não houver pontos de virada claros, sugira onde eles poderiam ser inseridos para aumentar a tensão.
Considere a estrutura de 3 Atos:
- Incidente Incitante
- Ponto de Virada 1
- Ponto Médio (Midpoint)
- Ponto de Virada 2
Texto: "%s"`,
	TaskCentralConflict: `Identifique e analise o **Conflito Central** da história com base neste texto.
1. Qual é a força antagônica principal?
2. O que está em jogo (Stakes)? São altos o suficiente?
3. Sugira maneiras de elevar o risco e tornar o conflito mais pessoal para o protagonista.
Texto: "%s"`,
	TaskSubplots: `Com base nos personagens secundários e pontas soltas apresentadas no texto, sugira 3 **Subtramas Possíveis** que enriqueceriam a história.
Para cada subtrama, explique como ela se conecta ou reflete o tema principal da obra.
Texto: "%s"`,
	TaskCliffhangers: `Analise o final do texto fornecido e sugira 3 opções de **Ganchos e Cliffhangers** poderosos para encerrar este capítulo/trecho, deixando o leitor desesperado para ler a continuação.
Texto: "%s"`,

	TaskTextMusicAnalysis: `Atue como um maestro literário e realize uma **Análise Profunda da Música do Texto**.
1. **Sonoridade**: Avalie a eufonia geral. O texto flui suavemente ou é propositalmente áspero?
2. **Aliterações e Assonâncias**: Identifique padrões sonoros (repetições de consoantes ou vogais) que criam musicalidade.
3. **Ritmo**: O texto tem um ritmo hipnótico, staccato, ou irregular?
4. **Sugestão**: Como o autor pode melhorar a "acústica" da leitura mental deste trecho?
Texto: "%s"`,
	TaskNarrativeSpeed: `Analise a **Velocidade Narrativa** deste trecho.
1. Identifique passagens "Rápidas" (muita ação, diálogo curto, pouca adjetivação).
2. Identifique passagens "Lentas" (descrição densa, introspecção, explicação).
3. **Equilíbrio**: A alternância entre rápido e lento está engajante ou cansativa?
4. **Sugestão**: Indique onde acelerar ou desacelerar para melhorar o impacto da cena.
Texto: "%s"`,
	TaskSentenceBreathing: `Analise a **Respiração das Frases** e a pontuação.
1. **Comprimento das Frases**: O autor varia entre frases curtas, médias e longas? (A falta de variedade cria monotonia).
2. **Pontuação**: O uso de vírgulas e pontos finais dita um ritmo de leitura confortável? O leitor fica "sem ar" em algum momento?
3. **Parágrafos**: A estrutura visual dos parágrafos convida à leitura?
Texto: "%s"`,
	TaskEmotionalIntensity: `Mapeie a **Intensidade Emocional** do texto.
1. Qual é a emoção predominante neste trecho?
2. Identifique frases ou palavras específicas que carregam a maior carga emocional (palavras-gatilho).
3. O texto evoca a emoção de forma visceral ou distante?
4. Sugira como intensificar a conexão emocional com o leitor.
Texto: "%s"`,
	TaskTensionPeaks: `Analise os **Picos e Vales de Tensão** (Tension Map).
1. Identifique o momento de maior tensão (Clímax da cena) neste trecho.
2. Identifique os momentos de relaxamento ou alívio cômico.
3. A curva de tensão é ascendente? Se for plana, sugira como introduzir micro-tensões ou obstáculos.
Texto: "%s"`,

	TaskSceneObjective: `Analise a cena fornecida e foque no **Objetivo do Personagem**.
1. O que o protagonista quer *nesta cena específica*? (Se não estiver claro, isso é um problema).
2. O objetivo é tangível ou abstrato?
3. Sugira como tornar o objetivo mais urgente ou vital.
Texto: "%s"`,
	TaskSceneConflict: `Analise o **Conflito Imediato** da cena.
1. Quem ou o que está impedindo o protagonista de conseguir o que quer AGORA?
2. O conflito é direto (embate) ou indireto (ambiente, dúvida interna)?
3. Sugira formas de aumentar o atrito entre a vontade do protagonista e a força antagonista da cena.
Texto: "%s"`,
	TaskSceneObstacle: `Identifique ou sugira **Obstáculos** para esta cena.
Com base no contexto, sugira 3 obstáculos (físicos, sociais ou internos) que poderiam surgir repentinamente para dificultar a vida do personagem neste momento.
Texto: "%s"`,
	TaskSceneTwist: `Atue como um roteirista e sugira uma **Reviravolta (Twist)** para esta cena.
Analise o que o leitor espera que aconteça e sugira algo diferente que surpreenda, mas faça sentido. Pode ser uma revelação, uma traição ou uma coincidência trágica.
Texto: "%s"`,
	TaskSceneEmotion: `Analise o **Valor Emocional (Scene Charge)**.
1. A cena começa com carga Positiva (+) ou Negativa (-)?
2. Ela termina com a mesma carga ou houve mudança? (Cenas boas geralmente invertem a carga).
3. Se a cena for "reta" (começa feliz, termina feliz), sugira um evento que altere o humor para o polo oposto.
Texto: "%s"`,
	TaskSceneExit: `Analise o desfecho desta cena e sugira uma **Saída de Cena (Scene Exit)** poderosa.
1. Como terminar esta cena de forma que o leitor *precise* ler a próxima?
2. Sugira uma frase final de impacto ou uma ação suspensa (cliffhanger menor).
Texto: "%s"`,

	TaskCoverDescription: `Atue como um diretor de arte. Analise o texto completo e crie um Prompt Visual detalhado (em Inglês) para gerar uma capa de livro que capture perfeitamente a essência da história.
Descreva:
1. O Assunto Central (personagem principal ou elemento simbólico).
2. O Cenário/Ambiente.
3. O Estilo Artístico sugerido (ex: cinematic, dark fantasy, minimalist).
4. A Iluminação e Paleta de Cores.
Retorne APENAS o prompt descritivo em inglês, sem introduções.
Texto para análise: "%s"`,
}

// EmbeddedText returns the portion of text a task would embed. Exposed so
// callers (and tests) can verify the truncation direction contract without
// picking the body back out of the assembled prompt.
func EmbeddedText(task Task, text string) string {
	b, ok := budgets[task]
	if !ok || b.limit == 0 {
		return text
	}
	body, _ := clip(text, b.limit, b.tail)
	return body
}

// Fallback is the message surfaced when the backend answers with empty or
// unusable content for the task.
func Fallback(task Task) string {
	switch task {
	case TaskNarrativeAnalysis:
		return "Não foi possível gerar uma análise."
	case TaskGrammarCheck:
		return "Nenhuma sugestão gerada."
	case TaskWordDefinition:
		return "Definição não encontrada."
	case TaskWordSynonyms:
		return "Sinônimos não encontrados."
	case TaskContinueStory:
		return "Não foi possível gerar uma continuação."
	default:
		return "Não foi possível gerar o conteúdo criativo."
	}
}

// clip keeps the head (or tail) of s up to limit runes and reports whether
// anything was cut. Rune-indexed so multi-byte Portuguese text never splits
// mid-character.
func clip(s string, limit int, tail bool) (string, bool) {
	if limit <= 0 {
		return s, false
	}
	r := []rune(s)
	if len(r) <= limit {
		return s, false
	}
	if tail {
		return string(r[len(r)-limit:]), true
	}
	return string(r[:limit]), true
}

// ParseTask converts an action parameter into a Task, tolerating
// surrounding whitespace. Unknown strings come back as-is so the caller
// can decide whether to no-op.
func ParseTask(s string) Task {
	return Task(strings.TrimSpace(s))
}
