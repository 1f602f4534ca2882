// Package wallpaper sets photos as the desktop wallpaper and saves them to the
// user's downloads.
package wallpaper

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dixieflatline76/Backdrop/pkg/photo"
	"github.com/dixieflatline76/Backdrop/util/log"
	"golang.org/x/sync/singleflight"
)

// Step names a stage of a workflow.
type Step string

// Workflow steps.
const (
	StepCheckCache  Step = "check-cache"
	StepMaterialize Step = "materialize"
	StepApply       Step = "apply"
	StepRecord      Step = "record"
	StepFetch       Step = "fetch"
	StepWrite       Step = "write"
)

// StepError is a failure at one step of a workflow.
type StepError struct {
	Step Step
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("wallpaper %s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// History is the persisted list of photos that have been set.
type History interface {
	List() ([]photo.Record, error)
	Append(rec photo.Record) (bool, error)
}

// ImageFetcher downloads raw image bytes.
type ImageFetcher interface {
	FetchImage(ctx context.Context, url string) ([]byte, error)
}

// DownloadTracker is optionally implemented by an ImageFetcher that wants to
// hear about photos that were actually used.
type DownloadTracker interface {
	TrackDownload(ctx context.Context, rec photo.Record) error
}

const trackTimeout = 15 * time.Second

// Service runs the set-wallpaper and download workflows.
type Service struct {
	os      OS
	history History
	fetcher ImageFetcher
	paths   Paths

	mu    sync.RWMutex
	scale ScaleMode

	materialize singleflight.Group
}

// NewService wires the platform wallpaper primitive to history and fetcher.
func NewService(history History, fetcher ImageFetcher, paths Paths) *Service {
	return &Service{
		os:      getOS(),
		history: history,
		fetcher: fetcher,
		paths:   paths,
		scale:   ScaleStretch,
	}
}

// SetScale changes the scale mode used by later SetWallpaper calls.
func (s *Service) SetScale(mode ScaleMode) {
	s.mu.Lock()
	s.scale = mode
	s.mu.Unlock()
}

// Scale returns the current scale mode.
func (s *Service) Scale() ScaleMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scale
}

// Paths returns the directories the service writes to.
func (s *Service) Paths() Paths {
	return s.paths
}

// SetWallpaper makes rec the desktop wallpaper and records it in history.
// A photo already in history is applied from its cached file without any
// network access. It returns the applied file path.
func (s *Service) SetWallpaper(ctx context.Context, rec photo.Record) (string, error) {
	path, cached, err := s.checkCache(rec)
	if err != nil {
		return "", &StepError{Step: StepCheckCache, Err: err}
	}

	if cached {
		log.Debugf("Wallpaper: cache hit for %s", rec.ID)
	} else {
		if err := s.materializeOnce(ctx, rec, path); err != nil {
			return "", &StepError{Step: StepMaterialize, Err: err}
		}
	}

	scale := s.Scale()
	if err := s.os.setWallpaper(path, scale); err != nil {
		log.Printf("Wallpaper: failed to apply %s: %v", path, err)
		return "", &StepError{Step: StepApply, Err: err}
	}
	log.Printf("Wallpaper: applied %s (%s)", path, scale)

	if !cached {
		if _, err := s.history.Append(rec); err != nil {
			return path, &StepError{Step: StepRecord, Err: err}
		}
		s.track(rec)
	}
	return path, nil
}

func (s *Service) checkCache(rec photo.Record) (string, bool, error) {
	path, err := s.paths.CachePath(rec.ID)
	if err != nil {
		return "", false, err
	}
	list, err := s.history.List()
	if err != nil {
		return "", false, err
	}
	return path, photo.ContainsID(list, rec.ID), nil
}

// materializeOnce collapses concurrent materializations of the same photo.
func (s *Service) materializeOnce(ctx context.Context, rec photo.Record, path string) error {
	_, err, shared := s.materialize.Do(rec.ID, func() (interface{}, error) {
		return nil, s.materializeImage(ctx, rec.URLs.Full, path)
	})
	if shared {
		log.Debugf("Wallpaper: shared materialization of %s", rec.ID)
	}
	return err
}

// Download saves the photo's download rendition verbatim to the downloads
// directory, replacing any file of the same name.
func (s *Service) Download(ctx context.Context, rec photo.Record) (string, error) {
	path, err := s.paths.DownloadPath(rec.ID)
	if err != nil {
		return "", &StepError{Step: StepWrite, Err: err}
	}

	data, err := s.fetcher.FetchImage(ctx, rec.Links.Download)
	if err != nil {
		return "", &StepError{Step: StepFetch, Err: err}
	}
	if err := writeFileAtomic(path, data); err != nil {
		return "", &StepError{Step: StepWrite, Err: err}
	}
	log.Printf("Wallpaper: downloaded %s to %s (%d bytes)", rec.ID, path, len(data))

	s.track(rec)
	return path, nil
}

// track notifies the fetcher in the background when it is a DownloadTracker.
func (s *Service) track(rec photo.Record) {
	tracker, ok := s.fetcher.(DownloadTracker)
	if !ok {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), trackTimeout)
		defer cancel()
		if err := tracker.TrackDownload(ctx, rec); err != nil {
			log.Printf("Wallpaper: failed to track download of %s: %v", rec.ID, err)
		}
	}()
}
