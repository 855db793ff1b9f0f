package shared

type ApiErrorType string

const (
	ApiErrorTypeTransport  ApiErrorType = "transport"
	ApiErrorTypeAuth       ApiErrorType = "auth"
	ApiErrorTypeValidation ApiErrorType = "validation"
	ApiErrorTypeNotFound   ApiErrorType = "not_found"
	ApiErrorTypeOther      ApiErrorType = "other"
)

// ApiError is the client-side shape of anything that goes wrong talking to
// the server, whether the request never got there (transport) or the server
// rejected it (everything else, keyed off the response status).
type ApiError struct {
	Type   ApiErrorType `json:"type"`
	Status int          `json:"status,omitempty"`
	Msg    string       `json:"message"`
}

func (e *ApiError) Error() string {
	return e.Msg
}

func (e *ApiError) IsAuthError() bool {
	return e.Type == ApiErrorTypeAuth
}
