package wallpaper

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/disintegration/imaging"
	"github.com/dixieflatline76/Backdrop/pkg/history"
	"github.com/dixieflatline76/Backdrop/pkg/photo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fakeFetcher serves fixed bytes and counts requests per URL.
type fakeFetcher struct {
	mu    sync.Mutex
	data  []byte
	err   error
	delay time.Duration
	calls map[string]int
}

func newFakeFetcher(data []byte) *fakeFetcher {
	return &fakeFetcher{data: data, calls: make(map[string]int)}
}

func (f *fakeFetcher) FetchImage(ctx context.Context, url string) ([]byte, error) {
	f.mu.Lock()
	f.calls[url]++
	f.mu.Unlock()
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	return f.data, f.err
}

func (f *fakeFetcher) total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		n += c
	}
	return n
}

// trackingFetcher also implements DownloadTracker.
type trackingFetcher struct {
	*fakeFetcher
	tracked chan string
}

func (f *trackingFetcher) TrackDownload(ctx context.Context, rec photo.Record) error {
	f.tracked <- rec.ID
	return nil
}

func jpegBytes(t *testing.T) []byte {
	t.Helper()
	img := imaging.New(8, 4, color.NRGBA{R: 200, G: 40, B: 40, A: 255})
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, img, imaging.JPEG))
	return buf.Bytes()
}

func record(id string) photo.Record {
	return photo.Record{
		ID:    id,
		URLs:  photo.URLs{Small: "http://x/small.png", Full: "http://x/full.png"},
		Links: photo.Links{HTML: "http://x/" + id, Download: "http://x/" + id + "/download"},
		User:  photo.User{FirstName: "Ada"},
	}
}

type fixture struct {
	svc     *Service
	os      *MockOS
	store   *history.Store
	fetcher *fakeFetcher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	home := t.TempDir()
	store := history.NewStore(filepath.Join(home, ".backdrop", "storage"))
	fetcher := newFakeFetcher(jpegBytes(t))
	mockOS := &MockOS{}

	svc := NewService(store, fetcher, NewPaths(home))
	svc.os = mockOS
	return &fixture{svc: svc, os: mockOS, store: store, fetcher: fetcher}
}

func TestSetWallpaperCacheHit(t *testing.T) {
	f := newFixture(t)
	for _, id := range []string{"a", "b"} {
		_, err := f.store.Append(record(id))
		require.NoError(t, err)
	}

	wantPath, err := f.svc.Paths().CachePath("b")
	require.NoError(t, err)
	f.os.On("setWallpaper", wantPath, ScaleStretch).Return(nil).Once()

	path, err := f.svc.SetWallpaper(context.Background(), record("b"))
	require.NoError(t, err)

	assert.Equal(t, wantPath, path)
	assert.Equal(t, "unsplash-b.png", filepath.Base(path))
	assert.Zero(t, f.fetcher.total(), "a cache hit does not fetch")
	f.os.AssertExpectations(t)

	list, err := f.store.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].ID)
	assert.Equal(t, "b", list[1].ID)
}

func TestSetWallpaperCacheMiss(t *testing.T) {
	f := newFixture(t)

	wantPath, err := f.svc.Paths().CachePath("c")
	require.NoError(t, err)
	f.os.On("setWallpaper", wantPath, ScaleStretch).Return(nil).Once()

	path, err := f.svc.SetWallpaper(context.Background(), record("c"))
	require.NoError(t, err)
	assert.Equal(t, wantPath, path)

	assert.Equal(t, 1, f.fetcher.calls["http://x/full.png"])
	assert.Equal(t, 1, f.fetcher.total())
	f.os.AssertExpectations(t)

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()
	img, err := png.Decode(file)
	require.NoError(t, err, "the cached file is a PNG")
	assert.Equal(t, image.Rect(0, 0, 8, 4), img.Bounds())

	list, err := f.store.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, record("c"), list[0])

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "only the cached file remains")
}

func TestSetWallpaperUsesConfiguredScale(t *testing.T) {
	f := newFixture(t)
	f.svc.SetScale(ScaleFill)
	f.os.On("setWallpaper", mock.Anything, ScaleFill).Return(nil).Once()

	_, err := f.svc.SetWallpaper(context.Background(), record("d"))
	require.NoError(t, err)
	f.os.AssertExpectations(t)
}

func TestSetWallpaperFetchFailure(t *testing.T) {
	f := newFixture(t)
	f.fetcher.err = errors.New("connection reset")

	_, err := f.svc.SetWallpaper(context.Background(), record("e"))

	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, StepMaterialize, stepErr.Step)
	f.os.AssertNotCalled(t, "setWallpaper", mock.Anything, mock.Anything)

	list, err := f.store.List()
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestSetWallpaperUndecodableImage(t *testing.T) {
	f := newFixture(t)
	f.fetcher.data = []byte("<html>not an image</html>")

	_, err := f.svc.SetWallpaper(context.Background(), record("f"))

	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, StepMaterialize, stepErr.Step)

	path, _ := f.svc.Paths().CachePath("f")
	assert.NoFileExists(t, path)
}

func TestSetWallpaperApplyFailureDoesNotRecord(t *testing.T) {
	f := newFixture(t)
	applyErr := errors.New("unsupported desktop environment")
	f.os.On("setWallpaper", mock.Anything, ScaleStretch).Return(applyErr).Once()

	_, err := f.svc.SetWallpaper(context.Background(), record("g"))

	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, StepApply, stepErr.Step)
	assert.ErrorIs(t, err, applyErr)

	list, err := f.store.List()
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestSetWallpaperHistoryReadFailure(t *testing.T) {
	f := newFixture(t)
	storePath := f.store.Path(history.PicturesKey)
	require.NoError(t, os.MkdirAll(filepath.Dir(storePath), 0755))
	require.NoError(t, os.WriteFile(storePath, []byte("{broken"), 0644))

	_, err := f.svc.SetWallpaper(context.Background(), record("h"))

	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, StepCheckCache, stepErr.Step)
	assert.Zero(t, f.fetcher.total())
}

func TestSetWallpaperConcurrentSamePhotoFetchesOnce(t *testing.T) {
	f := newFixture(t)
	f.fetcher.delay = 50 * time.Millisecond
	f.os.On("setWallpaper", mock.Anything, ScaleStretch).Return(nil)

	var wg sync.WaitGroup
	wg.Add(2)
	for i := 0; i < 2; i++ {
		go func() {
			defer wg.Done()
			_, err := f.svc.SetWallpaper(context.Background(), record("i"))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, f.fetcher.total())
	list, err := f.store.List()
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestDownload(t *testing.T) {
	f := newFixture(t)
	f.fetcher.data = []byte("original bytes")

	path, err := f.svc.Download(context.Background(), record("j"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(f.svc.Paths().DownloadsDir, "unsplash-j.png"), path)
	assert.Equal(t, 1, f.fetcher.calls["http://x/j/download"])

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "original bytes", string(data), "downloads are written verbatim")

	f.fetcher.data = []byte("newer bytes")
	_, err = f.svc.Download(context.Background(), record("j"))
	require.NoError(t, err)
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "newer bytes", string(data), "an existing file is overwritten")

	list, err := f.store.List()
	require.NoError(t, err)
	assert.Empty(t, list, "downloads do not touch history")
	f.os.AssertNotCalled(t, "setWallpaper", mock.Anything, mock.Anything)
}

func TestDownloadFailureLeavesNoFile(t *testing.T) {
	f := newFixture(t)
	f.fetcher.err = errors.New("timeout")

	_, err := f.svc.Download(context.Background(), record("k"))

	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, StepFetch, stepErr.Step)
	assert.NoDirExists(t, f.svc.Paths().DownloadsDir)
}

func TestTrackerIsNotified(t *testing.T) {
	f := newFixture(t)
	tracker := &trackingFetcher{fakeFetcher: f.fetcher, tracked: make(chan string, 2)}
	f.svc.fetcher = tracker
	f.os.On("setWallpaper", mock.Anything, ScaleStretch).Return(nil)

	_, err := f.svc.SetWallpaper(context.Background(), record("l"))
	require.NoError(t, err)
	_, err = f.svc.Download(context.Background(), record("l"))
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		select {
		case id := <-tracker.tracked:
			assert.Equal(t, "l", id)
		case <-time.After(2 * time.Second):
			t.Fatal("tracker was not notified")
		}
	}
}
