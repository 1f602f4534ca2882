package unsplash

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/dixieflatline76/Backdrop/pkg/photo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const randomPhotoBody = `{
  "id": "abc123",
  "color": "#0c2626",
  "urls": {"small": "https://images.example/abc123-small.jpg", "full": "https://images.example/abc123.jpg"},
  "links": {
    "html": "https://unsplash.com/photos/abc123",
    "download": "https://unsplash.com/photos/abc123/download",
    "download_location": "https://api.unsplash.com/photos/abc123/download"
  },
  "user": {"first_name": "Grace", "last_name": null}
}`

func newTestClient(serverURL, key string) *Client {
	c := NewClient(http.DefaultClient, key)
	c.baseURL = serverURL
	return c
}

func TestRandomPhoto(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, RandomPhotoPath, r.URL.Path)
		assert.Equal(t, "Client-ID test-key", r.Header.Get("Authorization"))
		assert.Equal(t, APIVersion, r.Header.Get("Accept-Version"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(randomPhotoBody))
	}))
	defer server.Close()

	rec, err := newTestClient(server.URL, "test-key").RandomPhoto(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "abc123", rec.ID)
	assert.Equal(t, "Grace", rec.AuthorName())
	assert.Equal(t, "https://images.example/abc123.jpg", rec.URLs.Full)
}

func TestRandomPhotoAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("Rate Limit Exceeded"))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL, "test-key").RandomPhoto(context.Background())
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Equal(t, "Rate Limit Exceeded", apiErr.Body)
}

func TestRandomPhotoInvalidRecord(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id": "abc123"}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL, "test-key").RandomPhoto(context.Background())
	assert.ErrorIs(t, err, photo.ErrInvalidRecord)
}

func TestRandomPhotoMissingKey(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	c := newTestClient(server.URL, "")
	_, err := c.RandomPhoto(context.Background())
	assert.ErrorIs(t, err, ErrMissingAccessKey)
	assert.Zero(t, calls.Load())

	c.SetAccessKey("late-key")
	_, err = c.RandomPhoto(context.Background())
	assert.NotErrorIs(t, err, ErrMissingAccessKey)
	assert.Equal(t, int32(1), calls.Load())
}

func TestFetchImage(t *testing.T) {
	payload := []byte{0x89, 'P', 'N', 'G', 0x00, 0x01}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"), "image requests carry no credentials")
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(payload)
	}))
	defer server.Close()

	c := newTestClient(server.URL, "test-key")

	data, err := c.FetchImage(context.Background(), server.URL+"/full.png")
	require.NoError(t, err)
	assert.Equal(t, payload, data)

	_, err = c.FetchImage(context.Background(), server.URL+"/missing")
	assert.Error(t, err)
}

func TestTrackDownload(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/photos/abc123/download", r.URL.Path)
		assert.Equal(t, "Client-ID test-key", r.Header.Get("Authorization"))
		hits.Add(1)
		_, _ = w.Write([]byte(`{"url": "https://images.example/abc123.jpg"}`))
	}))
	defer server.Close()

	c := newTestClient(server.URL, "test-key")

	rec := photo.Record{ID: "abc123", Links: photo.Links{DownloadLocation: server.URL + "/photos/abc123/download"}}
	require.NoError(t, c.TrackDownload(context.Background(), rec))
	assert.Equal(t, int32(1), hits.Load())

	require.NoError(t, c.TrackDownload(context.Background(), photo.Record{ID: "no-location"}))
	assert.Equal(t, int32(1), hits.Load())
}

func TestUserAgentTransport(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(r.Header.Get("User-Agent")))
	}))
	defer server.Close()

	client := &http.Client{Transport: &UserAgentTransport{RoundTripper: http.DefaultTransport, UserAgent: "Backdrop/test"}}
	c := NewClient(client, "k")

	data, err := c.FetchImage(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, "Backdrop/test", string(data))
}
