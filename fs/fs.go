package fs

import (
	"os"
	"path/filepath"

	"pedia-cli/term"
)

var HomeDir string
var HomePediaDir string
var HomeAuthPath string
var CacheDir string
var HomeLogPath string

func init() {
	home, err := os.UserHomeDir()
	if err != nil {
		term.OutputErrorAndExit("Couldn't find home dir: %v", err)
	}
	HomeDir = home

	if os.Getenv("PEDIA_ENV") == "development" {
		HomePediaDir = filepath.Join(home, ".pedia-home-dev")
	} else {
		HomePediaDir = filepath.Join(home, ".pedia-home")
	}

	err = os.MkdirAll(HomePediaDir, os.ModePerm)
	if err != nil {
		term.OutputErrorAndExit("Error creating %s: %v", HomePediaDir, err)
	}

	CacheDir = filepath.Join(HomePediaDir, "cache")
	HomeAuthPath = filepath.Join(HomePediaDir, "auth.json")
	HomeLogPath = filepath.Join(HomePediaDir, "pedia.log")

	err = os.MkdirAll(CacheDir, os.ModePerm)
	if err != nil {
		term.OutputErrorAndExit("Error creating %s: %v", CacheDir, err)
	}
}
