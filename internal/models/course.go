package models

import "time"

// Difficulty represents the target level of a course
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// IsValid reports whether d is one of the supported difficulties
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// SourceType represents what a course was generated from
type SourceType string

const (
	SourceTypeVideo    SourceType = "video"
	SourceTypePlaylist SourceType = "playlist"
	SourceTypeTopic    SourceType = "topic"
	SourceTypePrompt   SourceType = "prompt"
)

// Course represents a generated course with its modules
type Course struct {
	ID            int        `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	YoutubeSource *string    `json:"youtubeSource"`
	SourceType    SourceType `json:"sourceType"`
	Difficulty    Difficulty `json:"difficulty"`
	Modules       []Module   `json:"modules"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// CourseListItem represents a course in list responses
type CourseListItem struct {
	ID            int        `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	YoutubeSource *string    `json:"youtubeSource"`
	SourceType    SourceType `json:"sourceType"`
	Difficulty    Difficulty `json:"difficulty"`
	ModuleCount   int        `json:"moduleCount"`
	LessonCount   int        `json:"lessonCount"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// CourseShortInfo represents a course with only ID and Title
type CourseShortInfo struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

// GenerateCourseRequest represents a request to generate a course
type GenerateCourseRequest struct {
	YoutubeURL string     `json:"youtubeUrl,omitempty"`
	Topic      string     `json:"topic,omitempty"`
	Prompt     string     `json:"prompt,omitempty"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
}
