package models

import "time"

// Module represents an ordered group of lessons inside a course
type Module struct {
	ID        int       `json:"id"`
	CourseID  int       `json:"courseId"`
	Title     string    `json:"title"`
	Order     int       `json:"order"`
	Lessons   []Lesson  `json:"lessons"`
	CreatedAt time.Time `json:"createdAt"`
}
