package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/coursegen/backend/internal/chapters"
	"github.com/coursegen/backend/internal/clients"
	"github.com/coursegen/backend/internal/clients/youtube"
	"github.com/coursegen/backend/internal/models"
	"go.uber.org/zap"
)

// VideoCatalog is the video-platform client used to build courses from YouTube sources
type VideoCatalog interface {
	// Configured reports whether an API key was provided
	Configured() bool
	// Video fetches metadata of a single video
	Video(ctx context.Context, id string) (*youtube.Video, error)
	// Playlist fetches a playlist with up to maxVideos of its videos
	Playlist(ctx context.Context, id string, maxVideos int) (*youtube.Playlist, error)
	// Search returns up to maxResults videos matching query
	Search(ctx context.Context, query string, maxResults int) ([]youtube.SearchResult, error)
	// Transcript downloads the captions of a video
	Transcript(ctx context.Context, videoID string) (string, error)
}

// CourseReader loads a persisted course with its modules, lessons and quizzes
type CourseReader interface {
	GetCourse(ctx context.Context, id int) (*models.Course, error)
}

const (
	defaultTopic      = "General Course"
	youtubeTopic      = "YouTube Course"
	maxPlaylistVideos = 25
)

type generationService struct {
	courseRepo CourseRepository
	reader     CourseReader
	videos     VideoCatalog
	content    *contentGenerator
	policy     chapters.Policy
	logger     *zap.Logger
}

// NewGenerationService creates a new course generation service.
//
// "policy" selects how video chapters are grouped into modules.
func NewGenerationService(
	courseRepo CourseRepository,
	reader CourseReader,
	videos VideoCatalog,
	completer Completer,
	policy chapters.Policy,
	logger *zap.Logger,
) *generationService {
	return &generationService{
		courseRepo: courseRepo,
		reader:     reader,
		videos:     videos,
		content:    newContentGenerator(completer, logger),
		policy:     policy,
		logger:     logger,
	}
}

// ValidateGenerateRequest trims and normalizes req in place and reports invalid fields.
//
// At least one of youtubeUrl, topic or prompt is required. youtubeUrl must point at a
// YouTube video or playlist. An empty difficulty defaults to beginner.
func ValidateGenerateRequest(req *models.GenerateCourseRequest) error {
	req.YoutubeURL = strings.TrimSpace(req.YoutubeURL)
	req.Topic = strings.TrimSpace(req.Topic)
	req.Prompt = strings.TrimSpace(req.Prompt)
	req.Difficulty = models.Difficulty(strings.ToLower(strings.TrimSpace(string(req.Difficulty))))

	verr := models.NewValidationError()
	if req.YoutubeURL == "" && req.Topic == "" && req.Prompt == "" {
		verr.Add("source", "one of youtubeUrl, topic or prompt is required")
	}
	if req.YoutubeURL != "" {
		if _, ok := youtube.ParseURL(req.YoutubeURL); !ok {
			verr.Add("youtubeUrl", "must be a YouTube video or playlist URL")
		}
	}
	if req.Difficulty == "" {
		req.Difficulty = models.DifficultyBeginner
	} else if !req.Difficulty.IsValid() {
		verr.Add("difficulty", "must be one of beginner, intermediate, advanced")
	}

	if verr.HasErrors() {
		return verr
	}
	return nil
}

// GenerateCourse builds a course from the request and persists it.
//
// External API failures never fail generation; they are logged and replaced with mock
// content. Validation errors are returned as *models.ValidationError.
func (s *generationService) GenerateCourse(ctx context.Context, req models.GenerateCourseRequest) (*models.Course, error) {
	if err := ValidateGenerateRequest(&req); err != nil {
		return nil, err
	}

	course := s.buildCourse(ctx, req)

	if err := s.courseRepo.CreateTree(ctx, course); err != nil {
		s.logger.Error("failed to save generated course", zap.String("title", course.Title), zap.Error(err))
		return nil, fmt.Errorf("failed to save course: %w", err)
	}

	s.logger.Info("course generated",
		zap.Int("course_id", course.ID),
		zap.String("source_type", string(course.SourceType)),
		zap.Int("modules", len(course.Modules)),
	)

	saved, err := s.reader.GetCourse(ctx, course.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load generated course: %w", err)
	}

	return saved, nil
}

func (s *generationService) buildCourse(ctx context.Context, req models.GenerateCourseRequest) *models.Course {
	if req.YoutubeURL != "" {
		source, _ := youtube.ParseURL(req.YoutubeURL)
		if source.Kind == youtube.SourceVideo {
			return s.fromVideo(ctx, req, source.ID)
		}

		if course, ok := s.fromPlaylist(ctx, req, source.ID); ok {
			return course
		}
		topic := req.Topic
		if topic == "" {
			topic = youtubeTopic
		}
		course := s.fromTopic(ctx, req, topic, models.SourceTypePlaylist)
		course.YoutubeSource = &req.YoutubeURL
		return course
	}

	if req.Topic != "" {
		return s.fromTopic(ctx, req, req.Topic, models.SourceTypeTopic)
	}

	return s.fromTopic(ctx, req, s.content.topic(ctx, req.Prompt), models.SourceTypePrompt)
}

// fromVideo builds modules from the chapters of a single video. Chapters come from the
// description, then from the transcript, and finally a single chapter covers the video.
func (s *generationService) fromVideo(ctx context.Context, req models.GenerateCourseRequest, videoID string) *models.Course {
	video, err := s.videos.Video(ctx, videoID)
	if err != nil {
		s.logFetchFailure("video", err)
		video = &youtube.Video{ID: videoID}
	}

	topic := req.Topic
	if topic == "" {
		topic = video.Title
	}
	if topic == "" {
		topic = youtubeTopic
	}

	chs := chapters.Extract(video.Description)
	if len(chs) == 0 && err == nil {
		chs = s.transcriptChapters(ctx, videoID, video.Duration)
	}
	if len(chs) == 0 {
		title := video.Title
		if title == "" {
			title = topic
		}
		chs = []chapters.Chapter{{Timestamp: chapters.FormatTimestamp(0), Title: title}}
	}

	title, description := s.content.courseIntro(ctx, topic, req.Difficulty, video.Title+"\n"+outlineChapterLines(chs))

	return &models.Course{
		Title:         title,
		Description:   description,
		YoutubeSource: &req.YoutubeURL,
		SourceType:    models.SourceTypeVideo,
		Difficulty:    req.Difficulty,
		Modules:       s.modulesFromChapters(ctx, chapters.Group(chs, videoID, video.Duration, s.policy), topic, req.Difficulty, video.Description),
	}
}

// fromPlaylist turns every playlist video into a chapter with its own video and duration
func (s *generationService) fromPlaylist(ctx context.Context, req models.GenerateCourseRequest, playlistID string) (*models.Course, bool) {
	playlist, err := s.videos.Playlist(ctx, playlistID, maxPlaylistVideos)
	if err != nil {
		s.logFetchFailure("playlist", err)
		return nil, false
	}
	if len(playlist.Videos) == 0 {
		return nil, false
	}

	topic := req.Topic
	if topic == "" {
		topic = playlist.Title
	}
	if topic == "" {
		topic = youtubeTopic
	}

	chs := make([]chapters.Chapter, 0, len(playlist.Videos))
	total := 0
	for i, v := range playlist.Videos {
		title := strings.TrimSpace(v.Title)
		if title == "" {
			title = fmt.Sprintf("Video %d", i+1)
		}
		chs = append(chs, chapters.Chapter{
			Timestamp: chapters.FormatTimestamp(0),
			Title:     title,
			VideoID:   v.ID,
			Duration:  v.Duration,
		})
		total += v.Duration
	}

	title, description := s.content.courseIntro(ctx, topic, req.Difficulty, playlist.Title+"\n"+playlist.Description)

	return &models.Course{
		Title:         title,
		Description:   description,
		YoutubeSource: &req.YoutubeURL,
		SourceType:    models.SourceTypePlaylist,
		Difficulty:    req.Difficulty,
		Modules:       s.modulesFromChapters(ctx, chapters.Group(chs, "", total, s.policy), topic, req.Difficulty, playlist.Description),
	}, true
}

// fromTopic builds a course from a language-model outline, matching lessons to search results
func (s *generationService) fromTopic(ctx context.Context, req models.GenerateCourseRequest, topic string, sourceType models.SourceType) *models.Course {
	outline := s.content.outline(ctx, topic, req.Prompt, req.Difficulty)

	course := &models.Course{
		Title:       outline.Title,
		Description: outline.Description,
		SourceType:  sourceType,
		Difficulty:  req.Difficulty,
		Modules:     make([]models.Module, 0, len(outline.Modules)),
	}

	for i, om := range outline.Modules {
		module := models.Module{
			Title:   strings.TrimSpace(om.Title),
			Order:   i + 1,
			Lessons: make([]models.Lesson, 0, len(om.Lessons)+2),
		}

		for j, ol := range om.Lessons {
			title := strings.TrimSpace(ol.Title)
			if title == "" {
				title = fmt.Sprintf("Lesson %d", j+1)
			}
			notes := strings.TrimSpace(ol.AINotes)
			if notes == "" {
				notes = mockLessonNotes(title)
			}
			questions := validQuestions(ol.QuizQuestions)
			if len(questions) == 0 {
				questions = mockQuestions(title)
			}

			lesson := models.Lesson{
				Title:      title,
				LessonType: models.LessonTypeVideo,
				AINotes:    notes,
				Order:      j + 1,
				Quiz:       &models.Quiz{Questions: questions},
			}
			if videoID := s.matchVideo(ctx, topic, title, ol.SearchQuery); videoID != "" {
				lesson.YoutubeVideoID = &videoID
			}
			module.Lessons = append(module.Lessons, lesson)
		}

		s.finishModule(ctx, &module, req.Difficulty)
		course.Modules = append(course.Modules, module)
	}

	return course
}

func (s *generationService) modulesFromChapters(ctx context.Context, descriptors []chapters.ModuleDescriptor, topic string, difficulty models.Difficulty, material string) []models.Module {
	modules := make([]models.Module, 0, len(descriptors))
	for _, d := range descriptors {
		module := models.Module{
			Title:   d.Title,
			Order:   d.Order,
			Lessons: make([]models.Lesson, 0, len(d.Lessons)+2),
		}

		for _, ld := range d.Lessons {
			notes, questions := s.content.lesson(ctx, ld.Title, topic, difficulty, material)
			lesson := models.Lesson{
				Title:      ld.Title,
				LessonType: models.LessonTypeVideo,
				AINotes:    notes,
				Duration:   ld.Duration,
				Order:      ld.Order,
				Quiz:       &models.Quiz{Questions: questions},
			}
			if ld.VideoID != "" {
				videoID := ld.VideoID
				lesson.YoutubeVideoID = &videoID
			}
			if ld.ChapterTimestamp != "" {
				timestamp := ld.ChapterTimestamp
				lesson.ChapterTimestamp = &timestamp
			}
			module.Lessons = append(module.Lessons, lesson)
		}

		s.finishModule(ctx, &module, difficulty)
		modules = append(modules, module)
	}

	return modules
}

// finishModule appends the review quiz and the study guide to a module and renumbers its lessons
func (s *generationService) finishModule(ctx context.Context, module *models.Module, difficulty models.Difficulty) {
	titles := make([]string, 0, len(module.Lessons))
	var review []models.QuizQuestion
	for _, lesson := range module.Lessons {
		titles = append(titles, lesson.Title)
		if lesson.Quiz != nil && len(lesson.Quiz.Questions) > 0 {
			review = append(review, lesson.Quiz.Questions[0])
		}
	}

	if len(review) > 0 {
		module.Lessons = append(module.Lessons, models.Lesson{
			Title:      module.Title + ": Module Review",
			LessonType: models.LessonTypeQuiz,
			AINotes:    fmt.Sprintf("Review questions covering every lesson of %s.", module.Title),
			Quiz:       &models.Quiz{Questions: review},
		})
	}

	note := s.content.studyNote(ctx, module.Title, titles, difficulty)
	module.Lessons = append(module.Lessons, models.Lesson{
		Title:      module.Title + ": Complete Study Guide",
		LessonType: models.LessonTypeNotes,
		AINotes:    strings.Join(note.Summaries, "\n"),
		StudyNote:  &note,
	})

	for i := range module.Lessons {
		module.Lessons[i].Order = i + 1
	}
}

func (s *generationService) transcriptChapters(ctx context.Context, videoID string, duration int) []chapters.Chapter {
	transcript, err := s.videos.Transcript(ctx, videoID)
	if err != nil {
		s.logFetchFailure("transcript", err)
		return nil
	}
	return s.content.transcriptChapters(ctx, transcript, duration)
}

// matchVideo returns the first search result for a lesson or "" when search is unavailable
func (s *generationService) matchVideo(ctx context.Context, topic, lessonTitle, query string) string {
	if !s.videos.Configured() {
		return ""
	}
	if strings.TrimSpace(query) == "" {
		query = topic + " " + lessonTitle
	}

	results, err := s.videos.Search(ctx, query, 1)
	if err != nil {
		s.logFetchFailure("search", err)
		return ""
	}
	if len(results) == 0 {
		return ""
	}
	return results[0].VideoID
}

func (s *generationService) logFetchFailure(op string, err error) {
	if clients.IsKind(err, clients.KindNotConfigured) {
		s.logger.Debug("youtube not configured, using fallback", zap.String("op", op))
		return
	}
	s.logger.Warn("youtube call failed, using fallback", zap.String("op", op), zap.Error(err))
}
