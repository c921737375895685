package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/coursegen/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestCourseService(courseRepo *mockCourseRepository, moduleRepo *mockModuleRepository, lessonRepo *mockLessonRepository, quizRepo *mockQuizRepository) *courseService {
	return NewCourseService(courseRepo, moduleRepo, lessonRepo, quizRepo, zap.NewNop())
}

func TestCourseService_GetCourses(t *testing.T) {
	tests := []struct {
		name          string
		courseRepo    *mockCourseRepository
		expectedError bool
		expectedCount int
	}{
		{
			name: "success",
			courseRepo: &mockCourseRepository{
				courses: []models.CourseListItem{{ID: 2, Title: "Go"}, {ID: 1, Title: "Rust"}},
			},
			expectedCount: 2,
		},
		{
			name:          "repository error",
			courseRepo:    &mockCourseRepository{err: errors.New("database error")},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestCourseService(tt.courseRepo, &mockModuleRepository{}, &mockLessonRepository{}, &mockQuizRepository{})

			result, err := svc.GetCourses(context.Background())

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Len(t, result, tt.expectedCount)
			}
		})
	}
}

func TestCourseService_GetCourse(t *testing.T) {
	t.Run("nests lessons and quizzes under modules", func(t *testing.T) {
		courseRepo := &mockCourseRepository{course: &models.Course{ID: 1, Title: "Learn Go"}}
		moduleRepo := &mockModuleRepository{modules: []models.Module{
			{ID: 10, CourseID: 1, Title: "Module 1: Basics", Order: 1, Lessons: []models.Lesson{}},
			{ID: 11, CourseID: 1, Title: "Module 2: Concurrency", Order: 2, Lessons: []models.Lesson{}},
		}}
		lessonRepo := &mockLessonRepository{lessons: []models.Lesson{
			{ID: 100, ModuleID: 10, Title: "Variables", Order: 1},
			{ID: 101, ModuleID: 10, Title: "Functions", Order: 2},
			{ID: 102, ModuleID: 11, Title: "Goroutines", Order: 1},
		}}
		quizRepo := &mockQuizRepository{quizzes: map[int]*models.Quiz{
			100: {ID: 5, LessonID: 100, Questions: []models.QuizQuestion{{Question: "Q", Options: []string{"A", "B"}}}},
		}}
		svc := newTestCourseService(courseRepo, moduleRepo, lessonRepo, quizRepo)

		course, err := svc.GetCourse(context.Background(), 1)

		require.NoError(t, err)
		require.Len(t, course.Modules, 2)
		require.Len(t, course.Modules[0].Lessons, 2)
		require.Len(t, course.Modules[1].Lessons, 1)
		assert.Equal(t, "Functions", course.Modules[0].Lessons[1].Title)
		assert.Equal(t, "Goroutines", course.Modules[1].Lessons[0].Title)
		require.NotNil(t, course.Modules[0].Lessons[0].Quiz)
		assert.Equal(t, 5, course.Modules[0].Lessons[0].Quiz.ID)
		assert.Nil(t, course.Modules[0].Lessons[1].Quiz)
	})

	t.Run("course not found", func(t *testing.T) {
		courseRepo := &mockCourseRepository{err: fmt.Errorf("course %w", models.ErrNotFound)}
		svc := newTestCourseService(courseRepo, &mockModuleRepository{}, &mockLessonRepository{}, &mockQuizRepository{})

		course, err := svc.GetCourse(context.Background(), 1)

		assert.Nil(t, course)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("lesson error", func(t *testing.T) {
		courseRepo := &mockCourseRepository{course: &models.Course{ID: 1}}
		lessonRepo := &mockLessonRepository{err: errors.New("database error")}
		svc := newTestCourseService(courseRepo, &mockModuleRepository{}, lessonRepo, &mockQuizRepository{})

		_, err := svc.GetCourse(context.Background(), 1)

		assert.ErrorContains(t, err, "failed to get lessons")
	})

	t.Run("quiz error", func(t *testing.T) {
		courseRepo := &mockCourseRepository{course: &models.Course{ID: 1}}
		lessonRepo := &mockLessonRepository{lessons: []models.Lesson{{ID: 1, ModuleID: 1}}}
		quizRepo := &mockQuizRepository{err: errors.New("database error")}
		svc := newTestCourseService(courseRepo, &mockModuleRepository{}, lessonRepo, quizRepo)

		_, err := svc.GetCourse(context.Background(), 1)

		assert.ErrorContains(t, err, "failed to get quizzes")
	})
}

func TestCourseService_DeleteCourse(t *testing.T) {
	tests := []struct {
		name       string
		courseRepo *mockCourseRepository
		notFound   bool
	}{
		{name: "success", courseRepo: &mockCourseRepository{}},
		{name: "not found", courseRepo: &mockCourseRepository{deleteErr: fmt.Errorf("course %w", models.ErrNotFound)}, notFound: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestCourseService(tt.courseRepo, &mockModuleRepository{}, &mockLessonRepository{}, &mockQuizRepository{})

			err := svc.DeleteCourse(context.Background(), 7)

			assert.Equal(t, 7, tt.courseRepo.deletedID)
			if tt.notFound {
				assert.ErrorIs(t, err, models.ErrNotFound)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCourseService_GetModule(t *testing.T) {
	moduleRepo := &mockModuleRepository{module: &models.Module{ID: 10, Title: "Module 1: Basics", Lessons: []models.Lesson{}}}
	lessonRepo := &mockLessonRepository{lessons: []models.Lesson{{ID: 100, ModuleID: 10}, {ID: 101, ModuleID: 10}}}
	quizRepo := &mockQuizRepository{quizzes: map[int]*models.Quiz{101: {ID: 3, LessonID: 101}}}
	svc := newTestCourseService(&mockCourseRepository{}, moduleRepo, lessonRepo, quizRepo)

	module, err := svc.GetModule(context.Background(), 10)

	require.NoError(t, err)
	require.Len(t, module.Lessons, 2)
	assert.Nil(t, module.Lessons[0].Quiz)
	assert.Equal(t, 3, module.Lessons[1].Quiz.ID)
}

func TestCourseService_GetLesson(t *testing.T) {
	tests := []struct {
		name       string
		lessonRepo *mockLessonRepository
		quizRepo   *mockQuizRepository
		notFound   bool
		hasQuiz    bool
	}{
		{
			name:       "with quiz",
			lessonRepo: &mockLessonRepository{lesson: &models.Lesson{ID: 4, Title: "Intro"}},
			quizRepo:   &mockQuizRepository{quizzes: map[int]*models.Quiz{4: {ID: 1, LessonID: 4}}},
			hasQuiz:    true,
		},
		{
			name:       "without quiz",
			lessonRepo: &mockLessonRepository{lesson: &models.Lesson{ID: 4, Title: "Intro"}},
			quizRepo:   &mockQuizRepository{},
		},
		{
			name:       "not found",
			lessonRepo: &mockLessonRepository{err: fmt.Errorf("lesson %w", models.ErrNotFound)},
			quizRepo:   &mockQuizRepository{},
			notFound:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestCourseService(&mockCourseRepository{}, &mockModuleRepository{}, tt.lessonRepo, tt.quizRepo)

			lesson, err := svc.GetLesson(context.Background(), 4)

			if tt.notFound {
				assert.ErrorIs(t, err, models.ErrNotFound)
				assert.Nil(t, lesson)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Intro", lesson.Title)
			assert.Equal(t, tt.hasQuiz, lesson.Quiz != nil)
		})
	}
}

func TestCourseService_GetQuiz(t *testing.T) {
	tests := []struct {
		name          string
		lessonRepo    *mockLessonRepository
		quizRepo      *mockQuizRepository
		expectedError bool
		notFound      bool
	}{
		{
			name:       "success",
			lessonRepo: &mockLessonRepository{exists: true},
			quizRepo:   &mockQuizRepository{quiz: &models.Quiz{ID: 1, LessonID: 4}},
		},
		{
			name:          "lesson missing",
			lessonRepo:    &mockLessonRepository{exists: false},
			quizRepo:      &mockQuizRepository{},
			expectedError: true,
			notFound:      true,
		},
		{
			name:          "quiz missing",
			lessonRepo:    &mockLessonRepository{exists: true},
			quizRepo:      &mockQuizRepository{err: fmt.Errorf("quiz %w", models.ErrNotFound)},
			expectedError: true,
			notFound:      true,
		},
		{
			name:          "lesson lookup error",
			lessonRepo:    &mockLessonRepository{err: errors.New("database error")},
			quizRepo:      &mockQuizRepository{},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestCourseService(&mockCourseRepository{}, &mockModuleRepository{}, tt.lessonRepo, tt.quizRepo)

			quiz, err := svc.GetQuiz(context.Background(), 4)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Equal(t, tt.notFound, errors.Is(err, models.ErrNotFound))
				assert.Nil(t, quiz)
			} else {
				require.NoError(t, err)
				assert.Equal(t, 4, quiz.LessonID)
			}
		})
	}
}
