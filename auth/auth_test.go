package auth

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"pedia-cli/fs"
	"pedia-cli/shared"
	"pedia-cli/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClient implements types.ApiClient with overridable auth behavior.
type stubClient struct {
	signInRes *shared.SessionResponse
	signInErr *shared.ApiError

	userRes *shared.User
	userErr *shared.ApiError

	signOutErr *shared.ApiError

	signInCalls  int
	userCalls    int
	signOutCalls int
	registerErr  *shared.ApiError
}

func (s *stubClient) SignIn(req shared.SignInRequest) (*shared.SessionResponse, *shared.ApiError) {
	s.signInCalls++
	return s.signInRes, s.signInErr
}

func (s *stubClient) Register(req shared.RegisterRequest) *shared.ApiError {
	return s.registerErr
}

func (s *stubClient) SignOut() *shared.ApiError {
	s.signOutCalls++
	return s.signOutErr
}

func (s *stubClient) GetCurrentUser() (*shared.User, *shared.ApiError) {
	s.userCalls++
	return s.userRes, s.userErr
}

func (s *stubClient) ListEntries() ([]*shared.Entry, *shared.ApiError)   { return nil, nil }
func (s *stubClient) ListMyEntries() ([]*shared.Entry, *shared.ApiError) { return nil, nil }
func (s *stubClient) ListEntriesByCategory(categoryId, limit int) ([]*shared.Entry, *shared.ApiError) {
	return nil, nil
}
func (s *stubClient) GetEntry(entryId int) (*shared.Entry, *shared.ApiError) { return nil, nil }
func (s *stubClient) CreateEntry(req shared.CreateEntryRequest) (*shared.Entry, *shared.ApiError) {
	return nil, nil
}
func (s *stubClient) UpdateEntry(entryId int, req shared.UpdateEntryRequest) (*shared.Entry, *shared.ApiError) {
	return nil, nil
}
func (s *stubClient) DeleteEntry(entryId int) *shared.ApiError { return nil }
func (s *stubClient) LikeEntry(entryId int) *shared.ApiError   { return nil }
func (s *stubClient) ListComments(entryId int) ([]*shared.Comment, *shared.ApiError) {
	return nil, nil
}
func (s *stubClient) CreateComment(entryId int, req shared.CreateCommentRequest) (*shared.Comment, *shared.ApiError) {
	return nil, nil
}
func (s *stubClient) ListCategories() ([]*shared.Category, *shared.ApiError) { return nil, nil }
func (s *stubClient) ListTags() ([]*shared.Tag, *shared.ApiError)            { return nil, nil }

func setupAuth(t *testing.T, client *stubClient) {
	t.Helper()

	fs.HomeAuthPath = filepath.Join(t.TempDir(), "auth.json")
	Current = nil
	resolved = false
	SetApiClient(client)
}

func sessionFor(username string) *shared.SessionResponse {
	return &shared.SessionResponse{
		Token: "tok-" + username,
		User:  &shared.User{Id: 1, Username: username},
	}
}

func TestSignInSuccess(t *testing.T) {
	client := &stubClient{signInRes: sessionFor("alice")}
	setupAuth(t, client)

	require.Nil(t, SignIn("alice", "secret"))
	assert.True(t, IsAuthenticated())
	assert.Equal(t, "alice", Current.User.Username)

	// only the credential is persisted, never the identity
	bytes, err := os.ReadFile(fs.HomeAuthPath)
	require.NoError(t, err)

	var persisted map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes, &persisted))
	assert.Equal(t, "tok-alice", persisted["token"])
	assert.NotContains(t, persisted, "user")
}

func TestSignInFailureLeavesPriorSessionUntouched(t *testing.T) {
	client := &stubClient{signInRes: sessionFor("alice")}
	setupAuth(t, client)
	require.Nil(t, SignIn("alice", "secret"))

	client.signInRes = nil
	client.signInErr = &shared.ApiError{
		Type:   shared.ApiErrorTypeValidation,
		Status: 400,
		Msg:    "invalid credentials",
	}

	apiErr := SignIn("a", "wrong")
	require.NotNil(t, apiErr)
	assert.Equal(t, "invalid credentials", apiErr.Msg)

	assert.True(t, IsAuthenticated())
	assert.Equal(t, "alice", Current.User.Username)
}

func TestSignOutAlwaysClearsLocally(t *testing.T) {
	tests := []struct {
		name       string
		signOutErr *shared.ApiError
	}{
		{"server confirms", nil},
		{"server errors", &shared.ApiError{Type: shared.ApiErrorTypeOther, Status: 500, Msg: "boom"}},
		{"network down", &shared.ApiError{Type: shared.ApiErrorTypeTransport, Msg: "connection refused"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			client := &stubClient{signInRes: sessionFor("alice"), signOutErr: test.signOutErr}
			setupAuth(t, client)
			require.Nil(t, SignIn("alice", "secret"))

			SignOut()

			assert.False(t, IsAuthenticated())
			assert.Nil(t, Current)
			_, err := os.Stat(fs.HomeAuthPath)
			assert.True(t, os.IsNotExist(err))
		})
	}
}

func TestCheckAuthWithoutCredentialSkipsNetwork(t *testing.T) {
	client := &stubClient{}
	setupAuth(t, client)

	assert.False(t, CheckAuth())
	assert.Equal(t, 0, client.userCalls)
}

func TestCheckAuthValidatesPersistedCredential(t *testing.T) {
	client := &stubClient{userRes: &shared.User{Id: 1, Username: "alice"}}
	setupAuth(t, client)

	// a credential from a previous run is untrusted until validated
	require.NoError(t, os.WriteFile(fs.HomeAuthPath, []byte(`{"token":"tok-alice"}`), 0600))

	require.NoError(t, Resolve())
	assert.False(t, IsAuthenticated())

	assert.True(t, CheckAuth())
	assert.True(t, IsAuthenticated())
	assert.Equal(t, "alice", Current.User.Username)
	assert.Equal(t, 1, client.userCalls)
}

func TestCheckAuthRejectionRemovesPersistedCredential(t *testing.T) {
	client := &stubClient{
		userErr: &shared.ApiError{Type: shared.ApiErrorTypeAuth, Status: 401, Msg: "invalid token"},
	}
	setupAuth(t, client)

	require.NoError(t, os.WriteFile(fs.HomeAuthPath, []byte(`{"token":"stale"}`), 0600))

	assert.False(t, CheckAuth())
	assert.False(t, IsAuthenticated())
	assert.Nil(t, Current)

	_, err := os.Stat(fs.HomeAuthPath)
	assert.True(t, os.IsNotExist(err))
}

func TestSessionTruthTable(t *testing.T) {
	client := &stubClient{
		signInRes: sessionFor("alice"),
		userRes:   &shared.User{Id: 1, Username: "alice"},
	}
	setupAuth(t, client)

	assert.False(t, IsAuthenticated())

	require.Nil(t, SignIn("alice", "secret"))
	assert.True(t, IsAuthenticated())

	assert.True(t, CheckAuth())
	assert.True(t, IsAuthenticated())

	SignOut()
	assert.False(t, IsAuthenticated())

	// a failing checkAuth after re-login drops back to anonymous
	require.Nil(t, SignIn("alice", "secret"))
	client.userErr = &shared.ApiError{Type: shared.ApiErrorTypeAuth, Status: 401, Msg: "expired"}
	client.userRes = nil
	assert.False(t, CheckAuth())
	assert.False(t, IsAuthenticated())
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		confirm  string
		wantMsg  string
	}{
		{"mismatched confirmation", "bob", "secret1", "secret2", "passwords do not match"},
		{"short password", "bob", "abc", "abc", "password must be at least 6 characters"},
		{"blank username", "  ", "secret1", "secret1", "username is required"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			client := &stubClient{}
			setupAuth(t, client)

			apiErr := Register(test.username, "bob@example.com", test.password, test.confirm)
			require.NotNil(t, apiErr)
			assert.Equal(t, shared.ApiErrorTypeValidation, apiErr.Type)
			assert.Equal(t, test.wantMsg, apiErr.Msg)
			assert.Equal(t, 0, client.signInCalls)
		})
	}
}

func TestRegisterSignsInOnSuccess(t *testing.T) {
	client := &stubClient{signInRes: sessionFor("bob")}
	setupAuth(t, client)

	require.Nil(t, Register("bob", "bob@example.com", "secret1", "secret1"))
	assert.True(t, IsAuthenticated())
	assert.Equal(t, 1, client.signInCalls)
}

var _ types.ApiClient = (*stubClient)(nil)
