package main

import (
	"log"

	"pedia-cli/api"
	"pedia-cli/auth"
	"pedia-cli/cmd"
	"pedia-cli/fs"

	"gopkg.in/natefinch/lumberjack.v2"
)

func init() {
	// inter-package dependency injection to avoid circular imports
	auth.SetApiClient(api.Client)

	// rotating file logger so command output stays clean
	log.SetOutput(&lumberjack.Logger{
		Filename:   fs.HomeLogPath,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     30, // days
	})
}

func main() {
	cmd.Execute()
}
