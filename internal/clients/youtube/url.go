package youtube

import (
	"net/url"
	"regexp"
	"strings"
)

// SourceKind tells whether a URL points at a single video or a playlist
type SourceKind string

const (
	SourceVideo    SourceKind = "video"
	SourcePlaylist SourceKind = "playlist"
)

// Source is the parsed form of a YouTube URL
type Source struct {
	Kind SourceKind
	ID   string
}

var idPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ParseURL recognizes watch, short (youtu.be), embed, /v/, shorts, live and playlist URLs.
// A watch URL carrying both a video and a playlist resolves to the video.
func ParseURL(raw string) (Source, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Source{}, false
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return Source{}, false
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	query := u.Query()

	switch host {
	case "youtu.be":
		return videoSource(segments[0])
	case "youtube.com", "m.youtube.com", "music.youtube.com", "youtube-nocookie.com":
	default:
		return Source{}, false
	}

	switch segments[0] {
	case "watch":
		if v := query.Get("v"); v != "" {
			return videoSource(v)
		}
		return playlistSource(query.Get("list"))
	case "playlist":
		return playlistSource(query.Get("list"))
	case "embed", "v", "shorts", "live":
		if len(segments) < 2 {
			return Source{}, false
		}
		return videoSource(segments[1])
	default:
		return Source{}, false
	}
}

// WatchURL returns the canonical watch URL of a video
func WatchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}

func videoSource(id string) (Source, bool) {
	if !idPattern.MatchString(id) {
		return Source{}, false
	}
	return Source{Kind: SourceVideo, ID: id}, true
}

func playlistSource(id string) (Source, bool) {
	if !idPattern.MatchString(id) {
		return Source{}, false
	}
	return Source{Kind: SourcePlaylist, ID: id}, true
}
