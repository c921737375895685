package services

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/coursegen/backend/internal/chapters"
	"github.com/coursegen/backend/internal/models"
)

const (
	maxOutlineChapters   = 8
	maxDescriptionPrompt = 500
	maxTranscriptPrompt  = 2000
	maxLessonTranscript  = 1000
)

const systemPrompt = "You are an instructional designer who writes accurate, well structured course material."

func chaptersPrompt(transcript string, duration int) string {
	return fmt.Sprintf(`Analyze this video transcript and create logical chapters with timestamps.
Video duration: %d seconds

Transcript:
%s

Create 5-8 chapters with timestamps in this format:
- 00:00 Introduction
- 02:30 Main Topic 1
- 05:15 Main Topic 2

Return only the chapters in the format above, no additional text.`, duration, truncate(transcript, maxTranscriptPrompt))
}

func condenseTopicPrompt(prompt string) string {
	return fmt.Sprintf(`A learner described what they want to study:
%q

Reply with the course topic only, in at most six words, without quotes or punctuation at the end.`, prompt)
}

func courseIntroPrompt(topic string, difficulty models.Difficulty, source string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write a title and a two sentence description for a %s level course about %q.\n", difficulty, topic)
	if source != "" {
		fmt.Fprintf(&b, "The course is built from: %s\n", truncate(source, maxDescriptionPrompt))
	}
	b.WriteString(`
Format as JSON:
{"title": "Course Title", "description": "Course description"}`)
	return b.String()
}

func courseOutlinePrompt(topic, learnerPrompt string, difficulty models.Difficulty) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate a comprehensive course structure for %q at %s level.\n", topic, difficulty)
	if learnerPrompt != "" {
		fmt.Fprintf(&b, "The learner asked for: %s\n", truncate(learnerPrompt, maxDescriptionPrompt))
	}
	b.WriteString(`
Generate a complete course structure with:
1. Course title and description
2. 3-5 modules, each with 2-4 lessons
3. Each lesson has a title, a short description, a YouTube search query that finds a matching video, and comprehensive notes
4. 3-5 multiple choice quiz questions for each lesson

Format as JSON:
{
  "title": "Course Title",
  "description": "Course description",
  "modules": [
    {
      "title": "Module Title",
      "lessons": [
        {
          "title": "Lesson Title",
          "description": "Lesson description",
          "search_query": "youtube search query",
          "ai_notes": "Key concepts, examples and best practices...",
          "quiz_questions": [
            {"question": "Question text", "options": ["A", "B", "C", "D"], "correct_answer": 0}
          ]
        }
      ]
    }
  ]
}`)
	return b.String()
}

func lessonContentPrompt(lessonTitle, topic string, difficulty models.Difficulty, material string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate study material for the lesson %q of a %s level course about %q.\n", lessonTitle, difficulty, topic)
	if material != "" {
		fmt.Fprintf(&b, "Based on this video material: %s\n", truncate(material, maxLessonTranscript))
	}
	b.WriteString(`
Include comprehensive notes covering:
- Key concepts and definitions
- Important points to remember
- Examples and explanations
- Practical tips and best practices

Also write 3-5 multiple choice questions with four options each.

Format as JSON:
{
  "ai_notes": "Structured notes...",
  "quiz_questions": [
    {"question": "Question text", "options": ["A", "B", "C", "D"], "correct_answer": 0}
  ]
}`)
	return b.String()
}

func lessonNotesPrompt(lessonTitle, material string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate comprehensive notes for the lesson: %q\n", lessonTitle)
	if material != "" {
		fmt.Fprintf(&b, "Context: %s\n", truncate(material, maxLessonTranscript))
	}
	b.WriteString(`
Include:
- Key concepts and definitions
- Important points to remember
- Examples and explanations
- Practical tips and best practices

Format as clear, structured notes.`)
	return b.String()
}

func studyNotePrompt(moduleTitle string, lessonTitles []string, difficulty models.Difficulty) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a study guide for the module %q of a %s level course.\n", moduleTitle, difficulty)
	if len(lessonTitles) > 0 {
		b.WriteString("The module covers these lessons:\n")
		for _, title := range lessonTitles {
			fmt.Fprintf(&b, "- %s\n", title)
		}
	}
	b.WriteString(`
Write 3-6 golden note cards and 3-6 one sentence summaries.

Format as JSON:
{
  "golden_notes": [
    {"title": "Concept", "explanation": "Explanation", "examples": ["Example"], "key_points": ["Point"]}
  ],
  "summaries": ["Summary sentence"]
}`)
	return b.String()
}

func outlineChapterLines(chs []chapters.Chapter) string {
	var b strings.Builder
	for i, ch := range chs {
		if i == maxOutlineChapters {
			break
		}
		fmt.Fprintf(&b, "- %s: %s\n", ch.Timestamp, ch.Title)
	}
	return b.String()
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
