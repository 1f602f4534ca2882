package unsplash

import (
	"fmt"
	"net/http"

	"github.com/dixieflatline76/Backdrop/config"
)

// UserAgentTransport sets the User-Agent header on every request.
type UserAgentTransport struct {
	http.RoundTripper
	UserAgent string
}

// RoundTrip clones the request before touching its headers.
func (t *UserAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clonedReq := req.Clone(req.Context())
	clonedReq.Header.Set("User-Agent", t.UserAgent)
	return t.RoundTripper.RoundTrip(clonedReq)
}

// UserAgent identifies this application to remote servers.
func UserAgent() string {
	return fmt.Sprintf("%s/%s", config.AppName, config.AppVersion)
}

// NewHTTPClient returns the client used for API and image requests.
func NewHTTPClient() *http.Client {
	return &http.Client{
		Timeout: HTTPClientRequestTimeout,
		Transport: &UserAgentTransport{
			RoundTripper: http.DefaultTransport,
			UserAgent:    UserAgent(),
		},
	}
}
