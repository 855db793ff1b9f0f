package auth

import (
	"encoding/json"
	"fmt"
	"os"

	"pedia-cli/fs"
	"pedia-cli/types"
)

var Current *types.ClientAuth

var resolved bool

// Resolve loads the persisted credential, if any. The credential is not
// trusted until CheckAuth validates it against the server, so resolving
// alone never makes IsAuthenticated true.
func Resolve() error {
	if resolved {
		return nil
	}
	resolved = true

	bytes, err := os.ReadFile(fs.HomeAuthPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("error reading auth.json: %v", err)
	}

	var auth types.ClientAuth
	err = json.Unmarshal(bytes, &auth)
	if err != nil {
		return fmt.Errorf("error unmarshalling auth.json: %v", err)
	}

	if auth.Token != "" {
		Current = &auth
	}

	return nil
}

func setAuth(auth *types.ClientAuth) error {
	Current = auth
	resolved = true

	return writeCurrentAuth()
}

func writeCurrentAuth() error {
	if Current == nil {
		return fmt.Errorf("error writing auth: auth not loaded")
	}

	bytes, err := json.Marshal(Current)
	if err != nil {
		return fmt.Errorf("error marshalling auth: %v", err)
	}

	err = os.WriteFile(fs.HomeAuthPath, bytes, os.ModePerm)
	if err != nil {
		return fmt.Errorf("error writing auth: %v", err)
	}

	return nil
}

func clearAuth() {
	Current = nil
	resolved = true

	err := os.Remove(fs.HomeAuthPath)
	if err != nil && !os.IsNotExist(err) {
		// session state is already cleared locally, which is what matters
		fmt.Fprintf(os.Stderr, "error removing auth.json: %v\n", err)
	}
}
