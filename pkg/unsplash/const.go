package unsplash

import "time"

const (
	// DefaultBaseURL is the Unsplash API root.
	DefaultBaseURL = "https://api.unsplash.com"
	// RandomPhotoPath returns one random photo.
	RandomPhotoPath = "/photos/random"
	// APIVersion is sent in the Accept-Version header.
	APIVersion = "v1"

	// HTTPClientRequestTimeout bounds a single request including the body.
	HTTPClientRequestTimeout = 60 * time.Second
	// MaxImageBytes caps image downloads.
	MaxImageBytes = 100 << 20

	// Demo applications get 50 requests per hour.
	requestsPerHour = 50
	requestBurst    = 5
)
