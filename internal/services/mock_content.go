package services

import (
	"fmt"
	"strings"

	"github.com/coursegen/backend/internal/chapters"
	"github.com/coursegen/backend/internal/models"
)

// Deterministic content used whenever the language model is unavailable or fails.

func mockCourseTitle(topic string, difficulty models.Difficulty) string {
	return fmt.Sprintf("Learn %s - %s Course", topic, titleCase(string(difficulty)))
}

func mockCourseDescription(topic string, difficulty models.Difficulty) string {
	return fmt.Sprintf("A comprehensive course on %s designed for %s level learners.", topic, difficulty)
}

func mockLessonNotes(lessonTitle string) string {
	return fmt.Sprintf("AI-generated notes for %s. This lesson covers key concepts, important points, examples, and practical tips related to %s.",
		lessonTitle, strings.ToLower(lessonTitle))
}

func mockQuestions(lessonTitle string) []models.QuizQuestion {
	return []models.QuizQuestion{
		{
			Question:      fmt.Sprintf("What is the main topic of %s?", lessonTitle),
			Options:       []string{lessonTitle, "An unrelated subject", "A review of earlier lessons", "None of the above"},
			CorrectAnswer: 0,
		},
	}
}

func mockStudyNote(moduleTitle string, lessonTitles []string) models.StudyNote {
	cards := make([]models.GoldenNote, 0, len(lessonTitles))
	summaries := make([]string, 0, len(lessonTitles))
	for _, title := range lessonTitles {
		cards = append(cards, models.GoldenNote{
			Title:       title,
			Explanation: fmt.Sprintf("%s is a core part of %s.", title, moduleTitle),
			Examples:    []string{fmt.Sprintf("Revisit the %s lesson and apply it to a small exercise.", title)},
			KeyPoints:   []string{fmt.Sprintf("Understand the purpose of %s", strings.ToLower(title))},
		})
		summaries = append(summaries, fmt.Sprintf("%s: review the key concepts and examples.", title))
	}

	return models.StudyNote{
		GoldenNotes: cards,
		Summaries:   summaries,
	}
}

// mockOutline builds a topic course. With chapters it makes one lesson per chapter and
// starts a new module every chapters.LessonsPerModule lessons.
func mockOutline(topic string, difficulty models.Difficulty, chs []chapters.Chapter) courseOutline {
	outline := courseOutline{
		Title:       mockCourseTitle(topic, difficulty),
		Description: mockCourseDescription(topic, difficulty),
	}

	if len(chs) > 0 {
		current := outlineModule{Title: fmt.Sprintf("Introduction to %s", topic)}
		for i, ch := range chs {
			if i == maxOutlineChapters {
				break
			}
			if i > 0 && i%chapters.LessonsPerModule == 0 {
				outline.Modules = append(outline.Modules, current)
				current = outlineModule{Title: fmt.Sprintf("Module %d", len(outline.Modules)+1)}
			}
			current.Lessons = append(current.Lessons, mockOutlineLesson(ch.Title, topic))
		}
		if len(current.Lessons) > 0 {
			outline.Modules = append(outline.Modules, current)
		}
		return outline
	}

	outline.Modules = []outlineModule{
		{
			Title: fmt.Sprintf("Introduction to %s", topic),
			Lessons: []outlineLesson{
				mockOutlineLesson(fmt.Sprintf("Getting Started with %s", topic), topic),
				mockOutlineLesson(fmt.Sprintf("Core Concepts of %s", topic), topic),
			},
		},
		{
			Title: fmt.Sprintf("Advanced %s Techniques", topic),
			Lessons: []outlineLesson{
				mockOutlineLesson(fmt.Sprintf("Advanced Features in %s", topic), topic),
				mockOutlineLesson(fmt.Sprintf("%s Best Practices", topic), topic),
			},
		},
	}
	return outline
}

func mockOutlineLesson(title, topic string) outlineLesson {
	return outlineLesson{
		Title:         title,
		Description:   fmt.Sprintf("Learn about %s", strings.ToLower(title)),
		SearchQuery:   fmt.Sprintf("%s %s tutorial", topic, title),
		AINotes:       mockLessonNotes(title),
		QuizQuestions: mockQuestions(title),
	}
}

// mockTopic condenses a free-text prompt to its first words
func mockTopic(prompt string) string {
	const maxWords = 6
	words := strings.Fields(prompt)
	if len(words) > maxWords {
		words = words[:maxWords]
	}
	topic := strings.TrimRight(strings.Join(words, " "), ".,;:!?")
	if topic == "" {
		return defaultTopic
	}
	return topic
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
