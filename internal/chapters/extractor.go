// Package chapters turns free-text video descriptions into ordered chapter lists
// and groups those chapters into course modules.
package chapters

import (
	"fmt"
	"iter"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Chapter is a timestamped section label found in a video description or AI output
type Chapter struct {
	Timestamp string `json:"timestamp"`
	Title     string `json:"title"`
	Seconds   int    `json:"seconds"`
	// VideoID and Duration are only set when chapters come from a playlist
	VideoID  string `json:"videoId,omitempty"`
	Duration int    `json:"duration,omitempty"`
}

// minTitleLength is the shortest accepted title length (exclusive)
const minTitleLength = 3

const (
	tsPattern  = `(\d{1,2}:\d{2}(?::\d{2})?)`
	sepPattern = `[\s\-–—|:]*`
)

// linePatterns are tried in order, the first match wins.
// Every pattern captures the timestamp in group 1 and the title in group 2.
var linePatterns = []*regexp.Regexp{
	// plain: "1:23 Title"
	regexp.MustCompile(`^` + tsPattern + `\s+(.+)$`),
	// dash-separated: "1:23 - Title", "1:23-Title", "1:23 | Title"
	regexp.MustCompile(`^` + tsPattern + `\s*[\-–—|:]+\s*(.+)$`),
	// bullet-separated: "- 1:23 Title", "• 1:23 - Title"
	regexp.MustCompile(`^[\-–—•*·▪►>]+\s*` + tsPattern + sepPattern + `(.+)$`),
	// parenthetical: "(1:23) Title", "[1:23] Title"
	regexp.MustCompile(`^[(\[]` + tsPattern + `[)\]]` + sepPattern + `(.+)$`),
	// numbered list: "1. 1:23 Title", "2) (1:23) Title"
	regexp.MustCompile(`^\d+[.)]\s*[(\[]?` + tsPattern + `[)\]]?` + sepPattern + `(.+)$`),
	// lettered list: "a. 1:23 Title", "B) [1:23] Title"
	regexp.MustCompile(`^[A-Za-z][.)]\s*[(\[]?` + tsPattern + `[)\]]?` + sepPattern + `(.+)$`),
}

// aiChapterPattern matches the "00:00 Title" shape anywhere in an AI output line
var aiChapterPattern = regexp.MustCompile(tsPattern + `\s+(.+)`)

// enumerationPattern matches a leading enumeration marker: "1.", "2)", "a.", "IV -"
var enumerationPattern = regexp.MustCompile(`^(?:\d+|[A-Za-z]|[IVX]{1,4}|[ivx]{1,4})(?:[.)]|\s*[:\-–—]\s)\s*`)

const separatorSymbols = " \t-–—|:•*·▪►>.,;~=_"

// Extract parses a multi-line text into chapters sorted by their position in the video.
//
// Lines that match none of the known chapter-marker conventions are ignored.
// Chapters with a normalized title of three characters or fewer are dropped, as are
// chapters whose timestamp does not convert to a valid position.
func Extract(text string) []Chapter {
	var result []Chapter
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		timestamp, rawTitle, ok := matchLine(line)
		if !ok {
			continue
		}

		title := NormalizeTitle(rawTitle)
		if utf8.RuneCountInString(title) <= minTitleLength {
			continue
		}

		seconds, ok := parseTimestamp(timestamp)
		if !ok {
			continue
		}

		result = append(result, Chapter{
			Timestamp: timestamp,
			Title:     title,
			Seconds:   seconds,
		})
	}

	sortBySeconds(result)
	return result
}

// All returns a lazy sequence over the chapters of text.
// The sequence can be ranged over any number of times and always yields the same chapters.
func All(text string) iter.Seq[Chapter] {
	return func(yield func(Chapter) bool) {
		for _, ch := range Extract(text) {
			if !yield(ch) {
				return
			}
		}
	}
}

// ParseAIChapters parses chapter listings produced by a language model,
// for example "- 00:00 Introduction".
//
// Only a single leading bullet is stripped and titles are not normalized further.
func ParseAIChapters(text string) []Chapter {
	var result []Chapter
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		for _, bullet := range []string{"-", "•", "*"} {
			if strings.HasPrefix(line, bullet) {
				line = strings.TrimSpace(strings.TrimPrefix(line, bullet))
				break
			}
		}

		m := aiChapterPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		title := strings.TrimSpace(m[2])
		if utf8.RuneCountInString(title) <= minTitleLength {
			continue
		}

		seconds, ok := parseTimestamp(m[1])
		if !ok {
			continue
		}

		result = append(result, Chapter{
			Timestamp: m[1],
			Title:     title,
			Seconds:   seconds,
		})
	}

	sortBySeconds(result)
	return result
}

// NormalizeTitle strips separator symbols and leading enumeration markers from a chapter title
func NormalizeTitle(title string) string {
	title = strings.Trim(title, separatorSymbols)
	title = enumerationPattern.ReplaceAllString(title, "")
	return strings.Trim(title, separatorSymbols)
}

// TimestampToSeconds converts "MM:SS" or "HH:MM:SS" into seconds.
//
// Any other number of parts, or a non-numeric part, yields 0.
func TimestampToSeconds(timestamp string) int {
	parts := strings.Split(timestamp, ":")
	values := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || v < 0 {
			return 0
		}
		values = append(values, v)
	}

	switch len(values) {
	case 2:
		return values[0]*60 + values[1]
	case 3:
		return values[0]*3600 + values[1]*60 + values[2]
	default:
		return 0
	}
}

// FormatTimestamp renders seconds as "M:SS" below one hour and "H:MM:SS" otherwise
func FormatTimestamp(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h == 0 {
		return fmt.Sprintf("%d:%02d", m, s)
	}
	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}

// matchLine returns the timestamp and raw title of the first pattern matching line
func matchLine(line string) (string, string, bool) {
	for _, p := range linePatterns {
		if m := p.FindStringSubmatch(line); m != nil {
			return m[1], m[2], true
		}
	}
	return "", "", false
}

// parseTimestamp validates a timestamp and converts it to seconds.
// Minute and second fields below the leading one must be under 60.
func parseTimestamp(timestamp string) (int, bool) {
	parts := strings.Split(timestamp, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, false
	}
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil || v < 0 {
			return 0, false
		}
		if i > 0 && v >= 60 {
			return 0, false
		}
	}
	return TimestampToSeconds(timestamp), true
}

func sortBySeconds(chs []Chapter) {
	slices.SortStableFunc(chs, func(a, b Chapter) int {
		return a.Seconds - b.Seconds
	})
}
