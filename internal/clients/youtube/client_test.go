package youtube

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coursegen/backend/internal/clients"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// setupTestClient creates a client backed by a fake Data API server
func setupTestClient(t *testing.T, handler http.HandlerFunc) *client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger, err := zap.NewDevelopment()
	require.NoError(t, err)

	c, err := NewClient(context.Background(), "test-key", time.Second, logger, option.WithEndpoint(server.URL+"/"))
	require.NoError(t, err)
	return c
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func apiKey(r *http.Request) string {
	if key := r.URL.Query().Get("key"); key != "" {
		return key
	}
	return r.Header.Get("X-Goog-Api-Key")
}

func TestNewClient_NotConfigured(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	c, err := NewClient(context.Background(), "", 0, logger)
	require.NoError(t, err)
	assert.False(t, c.Configured())
	assert.Equal(t, DefaultTimeout, c.timeout)

	ctx := context.Background()
	_, err = c.Video(ctx, "abc")
	assert.True(t, clients.IsKind(err, clients.KindNotConfigured))
	_, err = c.Playlist(ctx, "PL", 10)
	assert.True(t, clients.IsKind(err, clients.KindNotConfigured))
	_, err = c.PlaylistVideos(ctx, "PL", 10)
	assert.True(t, clients.IsKind(err, clients.KindNotConfigured))
	_, err = c.Search(ctx, "go", 5)
	assert.True(t, clients.IsKind(err, clients.KindNotConfigured))
	_, err = c.Transcript(ctx, "abc")
	assert.True(t, clients.IsKind(err, clients.KindNotConfigured))
}

func TestClient_Video(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		body          string
		expectedKind  clients.Kind
		expectedError bool
		expected      *Video
	}{
		{
			name:   "success",
			status: http.StatusOK,
			body: `{"items":[{"id":"abc","snippet":{"title":"Go Tutorial","description":"0:00 Intro","channelTitle":"Gopher"},
				"contentDetails":{"duration":"PT1H2M3S"}}]}`,
			expected: &Video{ID: "abc", Title: "Go Tutorial", Description: "0:00 Intro", ChannelTitle: "Gopher", Duration: 3723},
		},
		{
			name:          "empty result",
			status:        http.StatusOK,
			body:          `{"items":[]}`,
			expectedError: true,
			expectedKind:  clients.KindNotFound,
		},
		{
			name:          "upstream failure",
			status:        http.StatusForbidden,
			body:          `{"error":{"code":403,"message":"quota exceeded"}}`,
			expectedError: true,
			expectedKind:  clients.KindUpstream,
		},
		{
			name:          "not found status",
			status:        http.StatusNotFound,
			body:          `{"error":{"code":404,"message":"not found"}}`,
			expectedError: true,
			expectedKind:  clients.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := setupTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/youtube/v3/videos", r.URL.Path)
				assert.Equal(t, "test-key", apiKey(r))
				writeJSON(w, tt.status, tt.body)
			})

			video, err := c.Video(context.Background(), "abc")

			if tt.expectedError {
				assert.Error(t, err)
				assert.True(t, clients.IsKind(err, tt.expectedKind), "unexpected error: %v", err)
				assert.Nil(t, video)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, video)
			}
		})
	}
}

func TestClient_Playlist(t *testing.T) {
	c := setupTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/youtube/v3/playlists":
			writeJSON(w, http.StatusOK, `{"items":[{"id":"PL1","snippet":{"title":"Go Course","description":"All of Go"}}]}`)
		case "/youtube/v3/playlistItems":
			assert.Equal(t, "PL1", r.URL.Query().Get("playlistId"))
			writeJSON(w, http.StatusOK, `{"items":[
				{"snippet":{"title":"Part 1"},"contentDetails":{"videoId":"v1"}},
				{"snippet":{"title":"Part 2"},"contentDetails":{"videoId":"v2"}},
				{"snippet":{"title":"Deleted video"},"contentDetails":{"videoId":"v3"}}
			]}`)
		case "/youtube/v3/videos":
			writeJSON(w, http.StatusOK, `{"items":[
				{"id":"v2","snippet":{"title":"Part 2"},"contentDetails":{"duration":"PT20M"}},
				{"id":"v1","snippet":{"title":"Part 1"},"contentDetails":{"duration":"PT10M"}}
			]}`)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	})

	playlist, err := c.Playlist(context.Background(), "PL1", 10)

	require.NoError(t, err)
	assert.Equal(t, "Go Course", playlist.Title)
	assert.Equal(t, "All of Go", playlist.Description)
	require.Len(t, playlist.Videos, 3)
	assert.Equal(t, Video{ID: "v1", Title: "Part 1", Duration: 600}, playlist.Videos[0])
	assert.Equal(t, Video{ID: "v2", Title: "Part 2", Duration: 1200}, playlist.Videos[1])
	assert.Equal(t, Video{ID: "v3", Title: "Deleted video"}, playlist.Videos[2])
}

func TestClient_Search(t *testing.T) {
	c := setupTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/youtube/v3/search", r.URL.Path)
		assert.Equal(t, "golang channels", r.URL.Query().Get("q"))
		assert.Equal(t, "video", r.URL.Query().Get("type"))
		writeJSON(w, http.StatusOK, `{"items":[
			{"id":{"kind":"youtube#video","videoId":"s1"},"snippet":{"title":"Channels explained","channelTitle":"Gopher"}},
			{"id":{"kind":"youtube#channel","channelId":"c1"},"snippet":{"title":"A channel"}}
		]}`)
	})

	results, err := c.Search(context.Background(), "golang channels", 3)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, SearchResult{VideoID: "s1", Title: "Channels explained", ChannelTitle: "Gopher"}, results[0])
}

func TestClient_Transcript(t *testing.T) {
	tests := []struct {
		name         string
		handler      http.HandlerFunc
		expected     string
		expectedKind clients.Kind
	}{
		{
			name: "success",
			handler: func(w http.ResponseWriter, r *http.Request) {
				switch r.URL.Path {
				case "/youtube/v3/captions":
					writeJSON(w, http.StatusOK, `{"items":[{"id":"cap1","snippet":{"language":"en","trackKind":"standard"}}]}`)
				case "/youtube/v3/captions/cap1":
					w.WriteHeader(http.StatusOK)
					_, _ = w.Write([]byte("1\n00:00:00,000 --> 00:00:02,000\nHello gophers\n"))
				default:
					w.WriteHeader(http.StatusNotFound)
				}
			},
			expected: "1\n00:00:00,000 --> 00:00:02,000\nHello gophers\n",
		},
		{
			name: "no tracks",
			handler: func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusOK, `{"items":[]}`)
			},
			expectedKind: clients.KindNotFound,
		},
		{
			name: "download forbidden",
			handler: func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path == "/youtube/v3/captions" {
					writeJSON(w, http.StatusOK, `{"items":[{"id":"cap1","snippet":{"language":"en"}}]}`)
					return
				}
				writeJSON(w, http.StatusUnauthorized, `{"error":{"code":401,"message":"login required"}}`)
			},
			expectedKind: clients.KindUpstream,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := setupTestClient(t, tt.handler)

			transcript, err := c.Transcript(context.Background(), "abc")

			if tt.expectedKind != "" {
				assert.True(t, clients.IsKind(err, tt.expectedKind), "unexpected error: %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, transcript)
		})
	}
}
