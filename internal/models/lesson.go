package models

import (
	"time"

	"github.com/coursegen/backend/internal/chapters"
)

// LessonType represents the kind of content a lesson carries
type LessonType string

const (
	LessonTypeVideo LessonType = "video"
	LessonTypeQuiz  LessonType = "quiz"
	LessonTypeNotes LessonType = "notes"
)

// Lesson represents a single lesson of a module
type Lesson struct {
	ID               int        `json:"id"`
	ModuleID         int        `json:"moduleId"`
	Title            string     `json:"title"`
	LessonType       LessonType `json:"lessonType"`
	YoutubeVideoID   *string    `json:"youtubeVideoId"`
	AINotes          string     `json:"aiNotes"`
	Duration         int        `json:"duration"`
	Order            int        `json:"order"`
	ChapterTimestamp *string    `json:"chapterTimestamp"`
	Quiz             *Quiz      `json:"quiz"`
	StudyNote        *StudyNote `json:"studyNote,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
}

// TimestampSeconds converts the chapter timestamp into seconds for video navigation
func (l *Lesson) TimestampSeconds() int {
	if l.ChapterTimestamp == nil {
		return 0
	}
	return chapters.TimestampToSeconds(*l.ChapterTimestamp)
}
