package api

import (
	"net"
	"net/http"
	"os"
	"time"

	"pedia-cli/auth"
	"pedia-cli/types"

	"github.com/google/uuid"
)

const dialTimeout = 10 * time.Second
const reqTimeout = 30 * time.Second

type Api struct{}

var apiHost string

var Client types.ApiClient = (*Api)(nil)

func init() {
	apiHost = os.Getenv("PEDIA_API_HOST")
	if apiHost == "" {
		if os.Getenv("PEDIA_ENV") == "development" {
			apiHost = "http://localhost:8000"
		} else {
			apiHost = "https://api.pedia.dev"
		}
	}
}

func getApiHost() string {
	return apiHost
}

type authenticatedTransport struct {
	underlyingTransport http.RoundTripper
}

// RoundTrip executes a single HTTP transaction, attaching the session
// credential (when present) and a request id for log correlation.
func (t *authenticatedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	auth.SetAuthHeader(req)
	req.Header.Set("X-Request-Id", uuid.NewString())
	return t.underlyingTransport.RoundTrip(req)
}

var netDialer = &net.Dialer{
	Timeout: dialTimeout,
}

var unauthenticatedClient = &http.Client{
	Transport: &http.Transport{
		Dial: netDialer.Dial,
	},
	Timeout: reqTimeout,
}

var authenticatedClient = &http.Client{
	Transport: &authenticatedTransport{
		underlyingTransport: &http.Transport{
			Dial: netDialer.Dial,
		},
	},
	Timeout: reqTimeout,
}
