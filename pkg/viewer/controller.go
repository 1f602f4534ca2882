// Package viewer owns the photo currently on screen and the actions that
// can be taken on it.
package viewer

import (
	"context"
	"errors"
	"sync"

	"github.com/dixieflatline76/Backdrop/pkg/photo"
	"github.com/dixieflatline76/Backdrop/util"
	"github.com/dixieflatline76/Backdrop/util/log"
)

var (
	// ErrNoPhoto is returned by actions that need a current photo.
	ErrNoPhoto = errors.New("no photo selected")
	// ErrBusy is returned when the same action is already running.
	ErrBusy = errors.New("operation already in progress")
)

// PhotoSource supplies random photos.
type PhotoSource interface {
	RandomPhoto(ctx context.Context) (photo.Record, error)
}

// Wallpaper runs the set-wallpaper and download workflows.
type Wallpaper interface {
	SetWallpaper(ctx context.Context, rec photo.Record) (string, error)
	Download(ctx context.Context, rec photo.Record) (string, error)
}

// Listener receives the state after every transition. It is called outside
// the controller lock and may be called from any goroutine, but never
// concurrently and never with a state older than one already delivered. A
// listener must not start a transition synchronously.
type Listener func(State)

// Controller holds the current photo. All state changes go through its
// transition methods.
type Controller struct {
	source    PhotoSource
	wallpaper Wallpaper

	mu        sync.Mutex
	state     State
	seq       uint64
	listeners []Listener

	deliverMu sync.Mutex
	delivered uint64

	fetches *util.SafeCounter
}

// NewController creates a controller with no current photo.
func NewController(source PhotoSource, wallpaper Wallpaper) *Controller {
	return &Controller{
		source:    source,
		wallpaper: wallpaper,
		fetches:   util.NewSafeCounter(),
	}
}

// AddListener registers l for state changes.
func (c *Controller) AddListener(l Listener) {
	c.mu.Lock()
	c.listeners = append(c.listeners, l)
	c.mu.Unlock()
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// GetPhoto fetches a random photo and makes it current. Overlapping calls are
// not deduplicated; the last response to arrive wins.
func (c *Controller) GetPhoto(ctx context.Context) error {
	c.fetchStarted()

	rec, err := c.source.RandomPhoto(ctx)
	if err != nil {
		log.Printf("Viewer: failed to fetch photo: %v", err)
		c.fetchFailed(err)
		return err
	}
	c.fetchSucceeded(rec)
	return nil
}

// SetPhoto makes rec current without fetching.
func (c *Controller) SetPhoto(rec photo.Record) {
	c.transition(func(s *State) {
		s.Photo = rec
		s.HasPhoto = true
		s.LastError = nil
	})
}

// SetWallpaper applies the current photo as the desktop wallpaper.
func (c *Controller) SetWallpaper(ctx context.Context) (string, error) {
	return c.runAction(ctx, func(s *State) *bool { return &s.SetWallpaperLoading }, c.wallpaper.SetWallpaper)
}

// Download saves the current photo to the downloads directory.
func (c *Controller) Download(ctx context.Context) (string, error) {
	return c.runAction(ctx, func(s *State) *bool { return &s.DownloadLoading }, c.wallpaper.Download)
}

// runAction raises the action's loading flag, runs it on the current photo
// and lowers the flag on every exit path.
func (c *Controller) runAction(ctx context.Context, flag func(*State) *bool,
	action func(context.Context, photo.Record) (string, error)) (string, error) {

	c.mu.Lock()
	if !c.state.HasPhoto {
		c.mu.Unlock()
		return "", ErrNoPhoto
	}
	if *flag(&c.state) {
		c.mu.Unlock()
		return "", ErrBusy
	}
	*flag(&c.state) = true
	rec := c.state.Photo
	c.publishLocked()

	var (
		path string
		err  error
	)
	defer func() {
		c.transition(func(s *State) {
			*flag(s) = false
			s.LastError = err
		})
	}()

	path, err = action(ctx, rec)
	return path, err
}

func (c *Controller) fetchStarted() {
	c.transition(func(s *State) {
		c.fetches.Increment()
		s.GetPhotoLoading = true
	})
}

func (c *Controller) fetchSucceeded(rec photo.Record) {
	c.transition(func(s *State) {
		s.GetPhotoLoading = c.fetches.Decrement() > 0
		s.Photo = rec
		s.HasPhoto = true
		s.LastError = nil
	})
}

func (c *Controller) fetchFailed(err error) {
	c.transition(func(s *State) {
		s.GetPhotoLoading = c.fetches.Decrement() > 0
		s.LastError = err
	})
}

// transition applies fn under the lock, then notifies listeners.
func (c *Controller) transition(fn func(*State)) {
	c.mu.Lock()
	fn(&c.state)
	c.publishLocked()
}

// publishLocked numbers the current state, releases c.mu and delivers the
// snapshot unless a newer one has already gone out.
func (c *Controller) publishLocked() {
	c.seq++
	seq, snapshot, listeners := c.seq, c.state, c.listeners
	c.mu.Unlock()

	c.deliverMu.Lock()
	defer c.deliverMu.Unlock()
	if seq <= c.delivered {
		log.Debugf("Viewer: dropped stale state %d", seq)
		return
	}
	c.delivered = seq
	for _, l := range listeners {
		l(snapshot)
	}
}
