// Package youtube wraps the YouTube Data API v3 calls used for course generation.
package youtube

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/coursegen/backend/internal/clients"
	"go.uber.org/zap"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"
)

// DefaultTimeout bounds every API call when no timeout is configured
const DefaultTimeout = 10 * time.Second

// maxPageSize is the largest page the Data API returns for list calls
const maxPageSize = 50

// Video holds the metadata used to build a course from a single video
type Video struct {
	ID           string
	Title        string
	Description  string
	ChannelTitle string
	Duration     int
}

// Playlist holds playlist metadata and its videos in playlist order
type Playlist struct {
	ID          string
	Title       string
	Description string
	Videos      []Video
}

// SearchResult is a single video returned by a search
type SearchResult struct {
	VideoID      string
	Title        string
	ChannelTitle string
}

// CaptionTrack describes one caption track of a video
type CaptionTrack struct {
	ID       string
	Language string
	Kind     string
}

type client struct {
	service *yt.Service
	timeout time.Duration
	logger  *zap.Logger
}

// NewClient creates a YouTube client. An empty apiKey yields a client whose calls
// all fail with clients.KindNotConfigured.
func NewClient(ctx context.Context, apiKey string, timeout time.Duration, logger *zap.Logger, opts ...option.ClientOption) (*client, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	c := &client{
		timeout: timeout,
		logger:  logger,
	}
	if apiKey == "" {
		return c, nil
	}

	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	service, err := yt.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create youtube service: %w", err)
	}
	c.service = service

	return c, nil
}

// Configured reports whether an API key was provided
func (c *client) Configured() bool {
	return c.service != nil
}

// Video fetches title, description, channel and duration of a video
func (c *client) Video(ctx context.Context, id string) (*Video, error) {
	const op = "youtube.video"
	if c.service == nil {
		return nil, clients.NewError(clients.KindNotConfigured, op, nil)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.service.Videos.List([]string{"snippet", "contentDetails"}).Id(id).Context(ctx).Do()
	if err != nil {
		return nil, classify(op, err)
	}
	if len(resp.Items) == 0 {
		return nil, clients.NewError(clients.KindNotFound, op, fmt.Errorf("video %s not found", id))
	}

	return toVideo(resp.Items[0]), nil
}

// Playlist fetches playlist metadata and up to maxVideos of its videos with their durations
func (c *client) Playlist(ctx context.Context, id string, maxVideos int) (*Playlist, error) {
	const op = "youtube.playlist"
	if c.service == nil {
		return nil, clients.NewError(clients.KindNotConfigured, op, nil)
	}

	metaCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.service.Playlists.List([]string{"snippet"}).Id(id).Context(metaCtx).Do()
	if err != nil {
		return nil, classify(op, err)
	}
	if len(resp.Items) == 0 || resp.Items[0].Snippet == nil {
		return nil, clients.NewError(clients.KindNotFound, op, fmt.Errorf("playlist %s not found", id))
	}

	videos, err := c.PlaylistVideos(ctx, id, maxVideos)
	if err != nil {
		return nil, err
	}

	snippet := resp.Items[0].Snippet
	return &Playlist{
		ID:          id,
		Title:       snippet.Title,
		Description: snippet.Description,
		Videos:      videos,
	}, nil
}

// PlaylistVideos lists up to maxVideos videos of a playlist in playlist order, including durations
func (c *client) PlaylistVideos(ctx context.Context, id string, maxVideos int) ([]Video, error) {
	const op = "youtube.playlist_videos"
	if c.service == nil {
		return nil, clients.NewError(clients.KindNotConfigured, op, nil)
	}
	if maxVideos <= 0 {
		maxVideos = maxPageSize
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var ids []string
	titles := make(map[string]string)
	pageToken := ""
	for len(ids) < maxVideos {
		call := c.service.PlaylistItems.List([]string{"snippet", "contentDetails"}).
			PlaylistId(id).
			MaxResults(int64(min(maxPageSize, maxVideos-len(ids)))).
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		resp, err := call.Do()
		if err != nil {
			return nil, classify(op, err)
		}

		for _, item := range resp.Items {
			if item.ContentDetails == nil || item.ContentDetails.VideoId == "" {
				continue
			}
			ids = append(ids, item.ContentDetails.VideoId)
			if item.Snippet != nil {
				titles[item.ContentDetails.VideoId] = item.Snippet.Title
			}
		}

		pageToken = resp.NextPageToken
		if pageToken == "" {
			break
		}
	}

	if len(ids) == 0 {
		return nil, clients.NewError(clients.KindNotFound, op, fmt.Errorf("playlist %s has no videos", id))
	}
	if len(ids) > maxVideos {
		ids = ids[:maxVideos]
	}

	details := make(map[string]*Video, len(ids))
	for start := 0; start < len(ids); start += maxPageSize {
		end := min(start+maxPageSize, len(ids))
		resp, err := c.service.Videos.List([]string{"snippet", "contentDetails"}).Id(ids[start:end]...).Context(ctx).Do()
		if err != nil {
			return nil, classify(op, err)
		}
		for _, item := range resp.Items {
			details[item.Id] = toVideo(item)
		}
	}

	videos := make([]Video, 0, len(ids))
	for _, videoID := range ids {
		if v, ok := details[videoID]; ok {
			videos = append(videos, *v)
			continue
		}
		// private or deleted videos keep their playlist title without details
		videos = append(videos, Video{ID: videoID, Title: titles[videoID]})
	}

	return videos, nil
}

// Search returns up to maxResults videos matching query
func (c *client) Search(ctx context.Context, query string, maxResults int) ([]SearchResult, error) {
	const op = "youtube.search"
	if c.service == nil {
		return nil, clients.NewError(clients.KindNotConfigured, op, nil)
	}
	if maxResults <= 0 || maxResults > maxPageSize {
		maxResults = 5
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.service.Search.List([]string{"snippet"}).
		Q(query).
		Type("video").
		MaxResults(int64(maxResults)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, classify(op, err)
	}

	results := make([]SearchResult, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Id == nil || item.Id.VideoId == "" {
			continue
		}
		r := SearchResult{VideoID: item.Id.VideoId}
		if item.Snippet != nil {
			r.Title = item.Snippet.Title
			r.ChannelTitle = item.Snippet.ChannelTitle
		}
		results = append(results, r)
	}

	return results, nil
}

// CaptionTracks lists the caption tracks of a video
func (c *client) CaptionTracks(ctx context.Context, videoID string) ([]CaptionTrack, error) {
	const op = "youtube.caption_tracks"
	if c.service == nil {
		return nil, clients.NewError(clients.KindNotConfigured, op, nil)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.service.Captions.List([]string{"snippet"}, videoID).Context(ctx).Do()
	if err != nil {
		return nil, classify(op, err)
	}

	tracks := make([]CaptionTrack, 0, len(resp.Items))
	for _, item := range resp.Items {
		track := CaptionTrack{ID: item.Id}
		if item.Snippet != nil {
			track.Language = item.Snippet.Language
			track.Kind = item.Snippet.TrackKind
		}
		tracks = append(tracks, track)
	}

	return tracks, nil
}

// Transcript downloads the first caption track of a video as plain SRT text.
// Caption download requires OAuth for most videos, so a key-only client usually gets an upstream error.
func (c *client) Transcript(ctx context.Context, videoID string) (string, error) {
	const op = "youtube.transcript"
	tracks, err := c.CaptionTracks(ctx, videoID)
	if err != nil {
		return "", err
	}
	if len(tracks) == 0 {
		return "", clients.NewError(clients.KindNotFound, op, fmt.Errorf("video %s has no captions", videoID))
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.service.Captions.Download(tracks[0].ID).Tfmt("srt").Context(ctx).Download()
	if err != nil {
		return "", classify(op, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", clients.NewError(clients.KindUpstream, op, err)
	}

	return string(body), nil
}

func toVideo(item *yt.Video) *Video {
	v := &Video{ID: item.Id}
	if item.Snippet != nil {
		v.Title = item.Snippet.Title
		v.Description = item.Snippet.Description
		v.ChannelTitle = item.Snippet.ChannelTitle
	}
	if item.ContentDetails != nil {
		v.Duration = ParseDuration(item.ContentDetails.Duration)
	}
	return v
}

func classify(op string, err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound {
		return clients.NewError(clients.KindNotFound, op, err)
	}
	return clients.NewError(clients.KindUpstream, op, err)
}
