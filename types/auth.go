package types

import "pedia-cli/shared"

// ClientAuth is the client's session record. Only the token is ever
// written to disk. The identity comes from the server on each validation
// and is never trusted from a previous run.
type ClientAuth struct {
	Token string       `json:"token"`
	User  *shared.User `json:"-"`
}
