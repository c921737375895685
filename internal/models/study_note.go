package models

import "time"

// GoldenNote is a single study card
type GoldenNote struct {
	Title       string   `json:"title"`
	Explanation string   `json:"explanation"`
	Examples    []string `json:"examples"`
	KeyPoints   []string `json:"key_points"`
}

// StudyNote holds generated study cards and summaries plus the learner's own notes
type StudyNote struct {
	ID          int          `json:"id"`
	LessonID    int          `json:"lessonId"`
	GoldenNotes []GoldenNote `json:"goldenNotes"`
	Summaries   []string     `json:"summaries"`
	OwnNotes    string       `json:"ownNotes"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// UpdateOwnNotesRequest represents a learner notes update
type UpdateOwnNotesRequest struct {
	OwnNotes string `json:"ownNotes"`
}
