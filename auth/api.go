package auth

import (
	"net/http"

	"pedia-cli/types"
)

var apiClient types.ApiClient

func SetApiClient(client types.ApiClient) {
	apiClient = client
}

// SetAuthHeader attaches the current session credential to an outgoing
// request. Anonymous requests go out without the header; the server
// decides which reads are public.
func SetAuthHeader(req *http.Request) {
	if Current == nil || Current.Token == "" {
		return
	}

	req.Header.Set("Authorization", "Token "+Current.Token)
}
