package wallpaper

import "github.com/stretchr/testify/mock"

// MockOS records wallpaper primitive calls.
type MockOS struct {
	mock.Mock
}

func (m *MockOS) setWallpaper(path string, scale ScaleMode) error {
	args := m.Called(path, scale)
	return args.Error(0)
}
