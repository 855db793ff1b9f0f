package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"pedia-cli/shared"
)

func apiErrorTypeForStatus(status int) shared.ApiErrorType {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return shared.ApiErrorTypeAuth
	case http.StatusNotFound:
		return shared.ApiErrorTypeNotFound
	case http.StatusBadRequest:
		return shared.ApiErrorTypeValidation
	default:
		return shared.ApiErrorTypeOther
	}
}

// HandleApiError converts a non-2xx response into an ApiError, preferring
// the server's structured message when the body is JSON.
func HandleApiError(r *http.Response, errBody []byte) *shared.ApiError {
	errType := apiErrorTypeForStatus(r.StatusCode)

	if !strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		return &shared.ApiError{
			Type:   errType,
			Status: r.StatusCode,
			Msg:    fallbackMsg(errBody, errType),
		}
	}

	var body struct {
		Message string `json:"message"`
		Detail  string `json:"detail"`
	}
	if err := json.Unmarshal(errBody, &body); err != nil {
		log.Printf("Error unmarshalling error body: %v\n", err)
		return &shared.ApiError{
			Type:   errType,
			Status: r.StatusCode,
			Msg:    fallbackMsg(errBody, errType),
		}
	}

	msg := body.Message
	if msg == "" {
		msg = body.Detail
	}
	if msg == "" {
		msg = fallbackMsg(errBody, errType)
	}

	return &shared.ApiError{
		Type:   errType,
		Status: r.StatusCode,
		Msg:    msg,
	}
}

func fallbackMsg(errBody []byte, errType shared.ApiErrorType) string {
	msg := strings.TrimSpace(string(errBody))
	if msg != "" {
		return msg
	}
	switch errType {
	case shared.ApiErrorTypeAuth:
		return "authentication failed"
	case shared.ApiErrorTypeNotFound:
		return "not found"
	default:
		return "request failed"
	}
}

func transportError(err error) *shared.ApiError {
	return &shared.ApiError{
		Type: shared.ApiErrorTypeTransport,
		Msg:  "error sending request: " + err.Error(),
	}
}
