// Package unsplash talks to the Unsplash API.
package unsplash

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/dixieflatline76/Backdrop/pkg/photo"
	"github.com/dixieflatline76/Backdrop/util/log"
	"golang.org/x/time/rate"
)

// ErrMissingAccessKey is returned when no access key is configured.
var ErrMissingAccessKey = errors.New("unsplash: access key is missing")

// APIError is a non-200 answer from the API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("unsplash api returned status %d: %s", e.StatusCode, e.Body)
}

// Client fetches random photos and image bytes.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter

	mu        sync.RWMutex
	accessKey string
}

// NewClient creates a Client. A nil httpClient uses NewHTTPClient.
func NewClient(httpClient *http.Client, accessKey string) *Client {
	if httpClient == nil {
		httpClient = NewHTTPClient()
	}
	return &Client{
		httpClient: httpClient,
		accessKey:  accessKey,
		baseURL:    DefaultBaseURL,
		limiter:    rate.NewLimiter(rate.Every(time.Hour/requestsPerHour), requestBurst),
	}
}

// SetAccessKey replaces the key used for API requests.
func (c *Client) SetAccessKey(key string) {
	c.mu.Lock()
	c.accessKey = key
	c.mu.Unlock()
}

func (c *Client) key() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accessKey
}

// RandomPhoto fetches one random photo.
func (c *Client) RandomPhoto(ctx context.Context) (photo.Record, error) {
	body, err := c.apiGet(ctx, c.baseURL+RandomPhotoPath)
	if err != nil {
		return photo.Record{}, err
	}
	rec, err := photo.Decode(body)
	if err != nil {
		return photo.Record{}, err
	}
	log.Debugf("Unsplash: random photo %s by %s", rec.ID, rec.AuthorName())
	return rec, nil
}

// TrackDownload reports a use of rec to Unsplash, as its API guidelines
// require. Records without a download location are ignored.
func (c *Client) TrackDownload(ctx context.Context, rec photo.Record) error {
	if rec.Links.DownloadLocation == "" {
		return nil
	}
	_, err := c.apiGet(ctx, rec.Links.DownloadLocation)
	return err
}

// FetchImage downloads raw image bytes. Image CDN requests carry no
// credentials and are not rate limited.
func (c *Client) FetchImage(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image download returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	if len(data) > MaxImageBytes {
		return nil, fmt.Errorf("image exceeds %d bytes", MaxImageBytes)
	}
	return data, nil
}

func (c *Client) apiGet(ctx context.Context, url string) ([]byte, error) {
	key := c.key()
	if key == "" {
		return nil, ErrMissingAccessKey
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Client-ID "+key)
	req.Header.Set("Accept-Version", APIVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		log.Printf("Unsplash: API error %d: %s", resp.StatusCode, string(body))
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}
