package services

import (
	"context"
	"strings"

	"github.com/coursegen/backend/internal/chapters"
	"github.com/coursegen/backend/internal/clients"
	"github.com/coursegen/backend/internal/clients/llm"
	"github.com/coursegen/backend/internal/models"
	"go.uber.org/zap"
)

// Completer is the language-model client used to write course content
type Completer interface {
	// Complete returns the model reply to prompt or a *clients.FetchError
	Complete(ctx context.Context, prompt string, opts llm.Options) (string, error)
}

type courseOutline struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Modules     []outlineModule `json:"modules"`
}

type outlineModule struct {
	Title   string          `json:"title"`
	Lessons []outlineLesson `json:"lessons"`
}

type outlineLesson struct {
	Title         string                `json:"title"`
	Description   string                `json:"description"`
	SearchQuery   string                `json:"search_query"`
	AINotes       string                `json:"ai_notes"`
	QuizQuestions []models.QuizQuestion `json:"quiz_questions"`
}

type lessonContent struct {
	AINotes       string                `json:"ai_notes"`
	QuizQuestions []models.QuizQuestion `json:"quiz_questions"`
}

type studyNoteContent struct {
	GoldenNotes []models.GoldenNote `json:"golden_notes"`
	Summaries   []string            `json:"summaries"`
}

var (
	outlineOptions   = llm.Options{System: systemPrompt, Temperature: 0.7}
	lessonOptions    = llm.Options{System: systemPrompt, Temperature: 0.5}
	chapterOptions   = llm.Options{Temperature: 0.2, MaxTokens: 500}
	condenseOptions  = llm.Options{Temperature: 0.2, MaxTokens: 30}
	studyNoteOptions = llm.Options{System: systemPrompt, Temperature: 0.5}
)

// contentGenerator asks the language model for course content and falls back to
// deterministic mock content whenever the model is unavailable.
type contentGenerator struct {
	llm    Completer
	logger *zap.Logger
}

func newContentGenerator(completer Completer, logger *zap.Logger) *contentGenerator {
	return &contentGenerator{
		llm:    completer,
		logger: logger,
	}
}

// courseIntro returns a title and description for a course built from source material
func (g *contentGenerator) courseIntro(ctx context.Context, topic string, difficulty models.Difficulty, source string) (string, string) {
	var out struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := g.completeJSON(ctx, "course_intro", courseIntroPrompt(topic, difficulty, source), lessonOptions, &out); err != nil {
		return mockCourseTitle(topic, difficulty), mockCourseDescription(topic, difficulty)
	}

	title := strings.TrimSpace(out.Title)
	if title == "" {
		title = mockCourseTitle(topic, difficulty)
	}
	description := strings.TrimSpace(out.Description)
	if description == "" {
		description = mockCourseDescription(topic, difficulty)
	}
	return title, description
}

// outline returns a full course structure for a topic. A reply that cannot be decoded
// or carries no lessons is replaced by the mock outline.
func (g *contentGenerator) outline(ctx context.Context, topic, learnerPrompt string, difficulty models.Difficulty) courseOutline {
	var out courseOutline
	if err := g.completeJSON(ctx, "course_outline", courseOutlinePrompt(topic, learnerPrompt, difficulty), outlineOptions, &out); err != nil {
		return mockOutline(topic, difficulty, nil)
	}

	modules := out.Modules[:0]
	for _, m := range out.Modules {
		if strings.TrimSpace(m.Title) == "" || len(m.Lessons) == 0 {
			continue
		}
		modules = append(modules, m)
	}
	if len(modules) == 0 {
		g.logger.Warn("course outline has no lessons, using mock outline", zap.String("topic", topic))
		return mockOutline(topic, difficulty, nil)
	}
	out.Modules = modules

	if strings.TrimSpace(out.Title) == "" {
		out.Title = mockCourseTitle(topic, difficulty)
	}
	if strings.TrimSpace(out.Description) == "" {
		out.Description = mockCourseDescription(topic, difficulty)
	}
	return out
}

// lesson returns notes and quiz questions for a lesson
func (g *contentGenerator) lesson(ctx context.Context, lessonTitle, topic string, difficulty models.Difficulty, material string) (string, []models.QuizQuestion) {
	var out lessonContent
	if err := g.completeJSON(ctx, "lesson_content", lessonContentPrompt(lessonTitle, topic, difficulty, material), lessonOptions, &out); err != nil {
		return mockLessonNotes(lessonTitle), mockQuestions(lessonTitle)
	}

	notes := strings.TrimSpace(out.AINotes)
	if notes == "" {
		notes = mockLessonNotes(lessonTitle)
	}
	questions := validQuestions(out.QuizQuestions)
	if len(questions) == 0 {
		questions = mockQuestions(lessonTitle)
	}
	return notes, questions
}

// lessonNotes returns free-form notes for a lesson
func (g *contentGenerator) lessonNotes(ctx context.Context, lessonTitle, material string) string {
	text, err := g.llm.Complete(ctx, lessonNotesPrompt(lessonTitle, material), lessonOptions)
	if err != nil {
		g.logFailure("lesson_notes", err)
		return mockLessonNotes(lessonTitle)
	}
	return text
}

// studyNote returns study cards and summaries for a module. External failures give the
// mock study note; a reply that cannot be decoded gives an empty one.
func (g *contentGenerator) studyNote(ctx context.Context, moduleTitle string, lessonTitles []string, difficulty models.Difficulty) models.StudyNote {
	var out studyNoteContent
	err := g.completeJSON(ctx, "study_note", studyNotePrompt(moduleTitle, lessonTitles, difficulty), studyNoteOptions, &out)
	switch {
	case clients.IsKind(err, clients.KindDecode):
		return models.StudyNote{GoldenNotes: []models.GoldenNote{}, Summaries: []string{}}
	case err != nil:
		return mockStudyNote(moduleTitle, lessonTitles)
	}

	note := models.StudyNote{
		GoldenNotes: make([]models.GoldenNote, 0, len(out.GoldenNotes)),
		Summaries:   make([]string, 0, len(out.Summaries)),
	}
	for _, card := range out.GoldenNotes {
		if strings.TrimSpace(card.Title) == "" {
			continue
		}
		if card.Examples == nil {
			card.Examples = []string{}
		}
		if card.KeyPoints == nil {
			card.KeyPoints = []string{}
		}
		note.GoldenNotes = append(note.GoldenNotes, card)
	}
	for _, line := range out.Summaries {
		if line = strings.TrimSpace(line); line != "" {
			note.Summaries = append(note.Summaries, line)
		}
	}
	return note
}

// transcriptChapters asks the model to split a transcript into chapters
func (g *contentGenerator) transcriptChapters(ctx context.Context, transcript string, duration int) []chapters.Chapter {
	if strings.TrimSpace(transcript) == "" {
		return nil
	}

	text, err := g.llm.Complete(ctx, chaptersPrompt(transcript, duration), chapterOptions)
	if err != nil {
		g.logFailure("transcript_chapters", err)
		return nil
	}
	return chapters.ParseAIChapters(text)
}

// topic condenses a free-text learner prompt into a course topic
func (g *contentGenerator) topic(ctx context.Context, prompt string) string {
	text, err := g.llm.Complete(ctx, condenseTopicPrompt(prompt), condenseOptions)
	if err != nil {
		g.logFailure("condense_topic", err)
		return mockTopic(prompt)
	}

	topic := strings.Trim(strings.TrimSpace(firstLine(text)), `"'.`)
	if topic == "" {
		return mockTopic(prompt)
	}
	return topic
}

func (g *contentGenerator) completeJSON(ctx context.Context, op, prompt string, opts llm.Options, v any) error {
	text, err := g.llm.Complete(ctx, prompt, opts)
	if err != nil {
		g.logFailure(op, err)
		return err
	}
	if err := llm.DecodeJSON(text, v); err != nil {
		g.logger.Warn("failed to decode completion", zap.String("op", op), zap.Error(err))
		return err
	}
	return nil
}

func (g *contentGenerator) logFailure(op string, err error) {
	if clients.IsKind(err, clients.KindNotConfigured) {
		g.logger.Debug("language model not configured, using mock content", zap.String("op", op))
		return
	}
	g.logger.Warn("language model call failed, using mock content", zap.String("op", op), zap.Error(err))
}

// validQuestions keeps questions with text, at least two options and an answer index inside the options
func validQuestions(questions []models.QuizQuestion) []models.QuizQuestion {
	valid := make([]models.QuizQuestion, 0, len(questions))
	for _, q := range questions {
		if strings.TrimSpace(q.Question) == "" || len(q.Options) < 2 {
			continue
		}
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
			continue
		}
		valid = append(valid, q)
	}
	return valid
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
