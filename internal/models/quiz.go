package models

import "time"

// QuizQuestion represents a multiple choice question
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
}

// Quiz represents the questions attached to a lesson
type Quiz struct {
	ID        int            `json:"id"`
	LessonID  int            `json:"lessonId"`
	Questions []QuizQuestion `json:"questions"`
	CreatedAt time.Time      `json:"createdAt"`
}

// SubmitQuizRequest represents a quiz submission
type SubmitQuizRequest struct {
	Answers []int `json:"answers"`
	UserID  int   `json:"userId"`
}

// QuizResult represents the scored outcome of a quiz submission
type QuizResult struct {
	Score          int  `json:"score"`
	CorrectAnswers int  `json:"correctAnswers"`
	TotalQuestions int  `json:"totalQuestions"`
	Completed      bool `json:"completed"`
}
