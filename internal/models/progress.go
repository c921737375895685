package models

import "time"

// DefaultUserID is used when a request does not name a user
const DefaultUserID = 1

// UserProgress represents a learner's progress on a lesson
type UserProgress struct {
	ID          int       `json:"id"`
	UserID      int       `json:"userId"`
	LessonID    int       `json:"lessonId"`
	LessonTitle string    `json:"lessonTitle,omitempty"`
	ModuleTitle string    `json:"moduleTitle,omitempty"`
	CourseTitle string    `json:"courseTitle,omitempty"`
	Completed   bool      `json:"completed"`
	QuizScore   *int      `json:"quizScore"`
	CompletedAt time.Time `json:"completedAt"`
}

// CompleteLessonRequest represents a request to mark a lesson as completed
type CompleteLessonRequest struct {
	UserID int `json:"userId"`
}

// ProgressStats holds aggregated progress of a learner
type ProgressStats struct {
	CompletedLessons int
	AverageScore     float64
}

// DashboardResponse represents learner dashboard statistics
type DashboardResponse struct {
	CompletedLessons     int               `json:"completedLessons"`
	TotalLessons         int               `json:"totalLessons"`
	CompletionPercentage int               `json:"completionPercentage"`
	AverageScore         float64           `json:"averageScore"`
	ActiveCourses        []CourseShortInfo `json:"activeCourses"`
}
