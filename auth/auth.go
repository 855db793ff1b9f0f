package auth

import (
	"fmt"
	"log"
	"strings"

	"pedia-cli/shared"
	"pedia-cli/term"
	"pedia-cli/types"
)

// SignIn authenticates against the server. On success the credential and
// identity are set together and the credential is persisted. On failure
// the prior session, whatever it was, is left untouched and the
// server-reported message comes back as the error.
func SignIn(username, password string) *shared.ApiError {
	if apiClient == nil {
		return &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: "api client not set"}
	}

	res, apiErr := apiClient.SignIn(shared.SignInRequest{
		Username: username,
		Password: password,
	})
	if apiErr != nil {
		return apiErr
	}

	err := setAuth(&types.ClientAuth{Token: res.Token, User: res.User})
	if err != nil {
		return &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error storing auth: %v", err)}
	}

	return nil
}

// Register creates an account and signs in with the new credentials.
// Validation failures are reported without a network call.
func Register(username, email, password, confirm string) *shared.ApiError {
	if strings.TrimSpace(username) == "" {
		return &shared.ApiError{Type: shared.ApiErrorTypeValidation, Msg: "username is required"}
	}
	if password != confirm {
		return &shared.ApiError{Type: shared.ApiErrorTypeValidation, Msg: "passwords do not match"}
	}
	if len(password) < 6 {
		return &shared.ApiError{Type: shared.ApiErrorTypeValidation, Msg: "password must be at least 6 characters"}
	}

	apiErr := apiClient.Register(shared.RegisterRequest{
		Username: username,
		Email:    email,
		Password: password,
	})
	if apiErr != nil {
		return apiErr
	}

	return SignIn(username, password)
}

// SignOut never fails observably. The server-side invalidation call is
// attempted, but the local session is cleared regardless of its outcome.
// A transport failure must not leave the client signed in.
func SignOut() {
	_ = Resolve()

	if apiClient != nil && Current != nil && Current.Token != "" {
		apiErr := apiClient.SignOut()
		if apiErr != nil {
			log.Printf("server-side sign out failed: %v", apiErr.Msg)
		}
	}

	clearAuth()
}

// CheckAuth validates the persisted credential against the server. It is
// the sole repair mechanism for a stale or rejected credential: any
// failure clears the session locally, including the persisted token.
func CheckAuth() bool {
	err := Resolve()
	if err != nil {
		log.Printf("error resolving auth: %v", err)
		return false
	}

	if Current == nil || Current.Token == "" {
		return false
	}

	user, apiErr := apiClient.GetCurrentUser()
	if apiErr != nil {
		clearAuth()
		return false
	}

	Current.User = user
	return true
}

// IsAuthenticated is a pure predicate: true iff both the credential and a
// validated identity are present. No side effects, no network.
func IsAuthenticated() bool {
	return Current != nil && Current.Token != "" && Current.User != nil
}

// MustResolveAuth exits with a sign-in hint unless a valid session exists.
// Commands that write (create, like, comment) call this up front.
func MustResolveAuth() {
	term.StartSpinner("")
	ok := CheckAuth()
	term.StopSpinner()

	if !ok {
		term.OutputErrorAndExit("You are not signed in. Run 'pedia sign-in' first.")
	}
}
