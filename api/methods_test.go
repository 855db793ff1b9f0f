package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pedia-cli/auth"
	"pedia-cli/shared"
	"pedia-cli/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withTestServer(t *testing.T, handler http.Handler) *Api {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	prevHost := apiHost
	apiHost = server.URL
	t.Cleanup(func() { apiHost = prevHost })

	return &Api{}
}

func TestSignInDecodesSession(t *testing.T) {
	api := withTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/login/", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)

		var req shared.SignInRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice", req.Username)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(shared.SessionResponse{
			Token: "tok",
			User:  &shared.User{Id: 1, Username: "alice"},
		})
	}))

	session, apiErr := api.SignIn(shared.SignInRequest{Username: "alice", Password: "secret"})
	require.Nil(t, apiErr)
	assert.Equal(t, "tok", session.Token)
	assert.Equal(t, "alice", session.User.Username)
}

func TestSignInSurfacesServerMessage(t *testing.T) {
	api := withTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "invalid credentials"})
	}))

	_, apiErr := api.SignIn(shared.SignInRequest{Username: "a", Password: "wrong"})
	require.NotNil(t, apiErr)
	assert.Equal(t, shared.ApiErrorTypeValidation, apiErr.Type)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "invalid credentials", apiErr.Msg)
}

func TestErrorFallsBackToGenericMessage(t *testing.T) {
	api := withTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, apiErr := api.ListEntries()
	require.NotNil(t, apiErr)
	assert.Equal(t, shared.ApiErrorTypeOther, apiErr.Type)
	assert.Equal(t, "request failed", apiErr.Msg)
}

func TestGetEntryNotFound(t *testing.T) {
	api := withTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, apiErr := api.GetEntry(42)
	require.NotNil(t, apiErr)
	assert.Equal(t, shared.ApiErrorTypeNotFound, apiErr.Type)
}

func TestAuthenticatedRequestsCarryCredential(t *testing.T) {
	prev := auth.Current
	auth.Current = &types.ClientAuth{Token: "tok-alice"}
	t.Cleanup(func() { auth.Current = prev })

	var gotAuth, gotRequestId string
	api := withTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestId = r.Header.Get("X-Request-Id")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("[]"))
	}))

	_, apiErr := api.ListEntries()
	require.Nil(t, apiErr)
	assert.Equal(t, "Token tok-alice", gotAuth)
	assert.NotEmpty(t, gotRequestId)
}

func TestAnonymousReadsOmitAuthHeader(t *testing.T) {
	prev := auth.Current
	auth.Current = nil
	t.Cleanup(func() { auth.Current = prev })

	var gotAuth string
	api := withTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("[]"))
	}))

	entries, apiErr := api.ListEntries()
	require.Nil(t, apiErr)
	assert.Empty(t, entries)
	assert.Empty(t, gotAuth)
}

func TestListEntriesByCategoryQuery(t *testing.T) {
	var gotQuery string
	api := withTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("[]"))
	}))

	_, apiErr := api.ListEntriesByCategory(3, 5)
	require.Nil(t, apiErr)
	assert.Equal(t, "category=3&limit=5", gotQuery)
}

func TestListComments(t *testing.T) {
	api := withTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/entries/7/comments/", r.URL.Path)
		require.Equal(t, http.MethodGet, r.Method)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]*shared.Comment{
			{Id: 2, EntryId: 7, Content: "second"},
			{Id: 1, EntryId: 7, Content: "first"},
		})
	}))

	comments, apiErr := api.ListComments(7)
	require.Nil(t, apiErr)
	require.Len(t, comments, 2)
	assert.Equal(t, "second", comments[0].Content)
	assert.Equal(t, 7, comments[1].EntryId)
}
