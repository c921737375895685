package chapters

import (
	"fmt"
	"strings"
)

// Policy selects how chapters are partitioned into modules
type Policy string

const (
	// PolicyFixedCount starts a new module every LessonsPerModule chapters
	PolicyFixedCount Policy = "fixed"
	// PolicyDurationBounded closes a module when its cumulative duration would exceed a cap
	// chosen from the size class of the joining chapter
	PolicyDurationBounded Policy = "duration"
)

// LessonsPerModule is the module size of the fixed-count policy
const LessonsPerModule = 3

// ParsePolicy maps a configuration value to a Policy, defaulting to PolicyFixedCount
func ParsePolicy(value string) Policy {
	switch Policy(strings.ToLower(strings.TrimSpace(value))) {
	case PolicyDurationBounded:
		return PolicyDurationBounded
	default:
		return PolicyFixedCount
	}
}

// LessonDescriptor describes a video lesson before it is persisted
type LessonDescriptor struct {
	Title            string
	VideoID          string
	Duration         int
	Order            int
	ChapterTimestamp string
}

// ModuleDescriptor describes a module and its lessons before it is persisted
type ModuleDescriptor struct {
	Title   string
	Order   int
	Lessons []LessonDescriptor
}

// Group partitions ordered chapters into modules.
//
// Chapters are never split or reordered and no module is empty. Module and lesson
// orders are dense and start at 1. Chapters without their own VideoID use videoID.
func Group(chs []Chapter, videoID string, totalDuration int, policy Policy) []ModuleDescriptor {
	if len(chs) == 0 {
		return nil
	}

	durations := chapterDurations(chs, totalDuration)

	var modules []ModuleDescriptor
	var current *ModuleDescriptor
	currentDuration := 0

	for i, ch := range chs {
		d := durations[i]

		startNew := current == nil
		if !startNew {
			switch policy {
			case PolicyDurationBounded:
				startNew = currentDuration+d > durationCap(d)
			default:
				startNew = len(current.Lessons) >= LessonsPerModule
			}
		}

		if startNew {
			modules = append(modules, ModuleDescriptor{
				Title: moduleTitle(len(modules)+1, ch.Title),
				Order: len(modules) + 1,
			})
			current = &modules[len(modules)-1]
			currentDuration = 0
		}

		lessonVideo := ch.VideoID
		if lessonVideo == "" {
			lessonVideo = videoID
		}

		current.Lessons = append(current.Lessons, LessonDescriptor{
			Title:            ch.Title,
			VideoID:          lessonVideo,
			Duration:         d,
			Order:            len(current.Lessons) + 1,
			ChapterTimestamp: ch.Timestamp,
		})
		currentDuration += d
	}

	return modules
}

// chapterDurations derives each chapter duration from the start of the next chapter.
// The last chapter runs until totalDuration. An explicit Duration always wins.
func chapterDurations(chs []Chapter, totalDuration int) []int {
	durations := make([]int, len(chs))
	for i, ch := range chs {
		if ch.Duration > 0 {
			durations[i] = ch.Duration
			continue
		}

		end := totalDuration
		if i+1 < len(chs) {
			end = chs[i+1].Seconds
		}
		durations[i] = max(end-ch.Seconds, 0)
	}
	return durations
}

// durationCap returns the cumulative module cap a chapter of length d may join.
// Chapters longer than 40 minutes only fit in a module of their own.
func durationCap(d int) int {
	const minute = 60
	switch {
	case d <= 10*minute:
		return 30 * minute
	case d <= 20*minute:
		return 45 * minute
	case d <= 40*minute:
		return 60 * minute
	default:
		return d
	}
}

func moduleTitle(n int, chapterTitle string) string {
	return fmt.Sprintf("Module %d: %s", n, chapterTitle)
}
