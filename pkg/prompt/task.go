package prompt

// Task identifies one generative request the editor can issue. The set is
// closed: Build returns an empty instruction for anything else.
type Task string

const (
	TaskNarrativeAnalysis Task = "narrative_analysis"
	TaskGrammarCheck      Task = "grammar_check"
	TaskContinueStory     Task = "continue_story"
	TaskWordDefinition    Task = "word_definition"
	TaskWordSynonyms      Task = "word_synonyms"

	// Content generation.
	TaskNextParagraph Task = "next_paragraph"
	TaskExpand        Task = "expand"
	TaskSummarize     Task = "summarize"
	TaskRewrite       Task = "rewrite"
	TaskSynopsis      Task = "synopsis"
	TaskTitles        Task = "titles"
	TaskCharacter     Task = "character"
	TaskChapters      Task = "chapters"
	TaskTemplate      Task = "template"

	// Narrative map.
	TaskStoryMap         Task = "story_map"
	TaskStoryConnections Task = "story_connections"
	TaskStoryConflicts   Task = "story_conflicts"

	// Smart editing.
	TaskSmartContinue Task = "smart_continue"
	TaskShowDontTell  Task = "show_dont_tell"
	TaskVoiceAnalysis Task = "voice_analysis"

	// Style assistant.
	TaskStyleAnalysis   Task = "style_analysis"
	TaskStyleRhythm     Task = "style_rhythm"
	TaskStyleRepetition Task = "style_repetition"
	TaskStyleWeak       Task = "style_weak"
	TaskStyleShow       Task = "style_show"

	// Narrative tools.
	TaskHeroJourney     Task = "hero_journey"
	TaskCharacterArc    Task = "character_arc"
	TaskSceneTriggers   Task = "scene_triggers"
	TaskPlotPoints      Task = "plot_points"
	TaskCentralConflict Task = "central_conflict"
	TaskSubplots        Task = "subplots"
	TaskCliffhangers    Task = "cliffhangers"

	// Text music.
	TaskTextMusicAnalysis  Task = "text_music_analysis"
	TaskNarrativeSpeed     Task = "narrative_speed"
	TaskSentenceBreathing  Task = "sentence_breathing"
	TaskEmotionalIntensity Task = "emotional_intensity"
	TaskTensionPeaks       Task = "tension_peaks"

	// Scene lab.
	TaskSceneObjective Task = "scene_objective"
	TaskSceneConflict  Task = "scene_conflict"
	TaskSceneObstacle  Task = "scene_obstacle"
	TaskSceneTwist     Task = "scene_twist"
	TaskSceneEmotion   Task = "scene_emotion"
	TaskSceneExit      Task = "scene_exit"

	TaskCoverDescription Task = "cover_description"
)

// Persona is the system instruction used for narrative analysis requests.
const Persona = "Você é a Athena, uma IA assistente para escritores profissionais."

// budget describes how much of the manuscript a task embeds and which end
// of it survives truncation. Continuation tasks keep the tail (the model
// must see where the prose stopped); analysis tasks keep the head. A zero
// limit embeds the input whole.
type budget struct {
	limit int
	tail  bool
}

var budgets = map[Task]budget{
	TaskNarrativeAnalysis:  {limit: 15000},
	TaskGrammarCheck:       {limit: 10000},
	TaskContinueStory:      {limit: 3000, tail: true},
	TaskNextParagraph:      {limit: 3000, tail: true},
	TaskSmartContinue:      {limit: 2000, tail: true},
	TaskCliffhangers:       {limit: 5000, tail: true},
	TaskStoryMap:           {limit: 30000},
	TaskStoryConnections:   {limit: 30000},
	TaskStoryConflicts:     {limit: 30000},
	TaskVoiceAnalysis:      {limit: 5000},
	TaskStyleAnalysis:      {limit: 10000},
	TaskStyleRhythm:        {limit: 5000},
	TaskStyleRepetition:    {limit: 5000},
	TaskStyleWeak:          {limit: 5000},
	TaskStyleShow:          {limit: 5000},
	TaskHeroJourney:        {limit: 20000},
	TaskCharacterArc:       {limit: 20000},
	TaskSceneTriggers:      {limit: 20000},
	TaskPlotPoints:         {limit: 20000},
	TaskCentralConflict:    {limit: 20000},
	TaskSubplots:           {limit: 20000},
	TaskTextMusicAnalysis:  {limit: 10000},
	TaskNarrativeSpeed:     {limit: 15000},
	TaskSentenceBreathing:  {limit: 10000},
	TaskEmotionalIntensity: {limit: 15000},
	TaskTensionPeaks:       {limit: 20000},
	TaskSceneObjective:     {limit: 10000},
	TaskSceneConflict:      {limit: 10000},
	TaskSceneObstacle:      {limit: 10000},
	TaskSceneTwist:         {limit: 10000},
	TaskSceneEmotion:       {limit: 10000},
	TaskSceneExit:          {limit: 10000},
	TaskCoverDescription:   {limit: 30000},
}

// Temperature returns the sampling temperature for the task, or -1 when
// the provider default should apply.
func Temperature(task Task) float64 {
	switch task {
	case TaskNarrativeAnalysis:
		return 0.7
	case TaskGrammarCheck:
		return 0.1
	case TaskRewrite, TaskTemplate:
		return 0.85
	case TaskContinueStory, TaskWordDefinition, TaskWordSynonyms:
		return -1
	default:
		if _, ok := templates[task]; ok {
			return 0.85
		}
		return -1
	}
}

// Known reports whether the task belongs to the closed enumeration.
func Known(task Task) bool {
	switch task {
	case TaskNarrativeAnalysis, TaskGrammarCheck, TaskContinueStory,
		TaskWordDefinition, TaskWordSynonyms, TaskRewrite, TaskTemplate:
		return true
	}
	_, ok := templates[task]
	return ok
}
