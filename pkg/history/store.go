// Package history persists the photos that have been set as wallpaper.
package history

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/dixieflatline76/Backdrop/pkg/photo"
	"github.com/dixieflatline76/Backdrop/util/log"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

// PicturesKey names the record holding the history list.
const PicturesKey = "pictures"

// ErrNotFound is returned by Load when nothing has been persisted yet.
var ErrNotFound = errors.New("history: key not found")

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// document is the on-disk shape of the pictures record.
type document struct {
	List []photo.Record `json:"list"`
}

// Store keeps the history list as one JSON document per key under dir.
type Store struct {
	mu  sync.Mutex
	dir string
}

// NewStore returns a store rooted at dir. The directory is created on first write.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the file backing key.
func (s *Store) Path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Load reads the history list. A missing record yields ErrNotFound; a record
// without a list yields an empty list.
func (s *Store) Load() ([]photo.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// List is Load with a missing record treated as empty.
func (s *Store) List() ([]photo.Record, error) {
	list, err := s.Load()
	if errors.Is(err, ErrNotFound) {
		return []photo.Record{}, nil
	}
	return list, err
}

// Contains reports whether a record with id has been persisted.
func (s *Store) Contains(id string) (bool, error) {
	list, err := s.List()
	if err != nil {
		return false, err
	}
	return photo.ContainsID(list, id), nil
}

// Append adds rec unless a record with the same id is present. The
// read-modify-write holds the store lock, so concurrent appends are not lost.
func (s *Store) Append(rec photo.Record) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load()
	if err != nil && !errors.Is(err, ErrNotFound) {
		return false, err
	}
	if photo.ContainsID(list, rec.ID) {
		log.Debugf("Store: %s already in history", rec.ID)
		return false, nil
	}

	list = append(list, rec)
	if err := s.save(document{List: list}); err != nil {
		return false, err
	}
	log.Printf("Store: added %s to history (%d entries)", rec.ID, len(list))
	return true, nil
}

func (s *Store) load() ([]photo.Record, error) {
	data, err := os.ReadFile(s.Path(PicturesKey))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode history: %w", err)
	}
	if doc.List == nil {
		doc.List = []photo.Record{}
	}
	return doc.List, nil
}

// save writes to a uniquely named temp file and renames it over the record.
func (s *Store) save(doc document) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}

	target := s.Path(PicturesKey)
	tmp := target + "." + uuid.NewString() + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to write history: %w", err)
	}
	if err := os.Rename(tmp, target); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace history: %w", err)
	}
	return nil
}
