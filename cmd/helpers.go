package cmd

import (
	"pedia-cli/api"
	"pedia-cli/fs"
	"pedia-cli/query"
)

func newEngine() *query.Engine {
	return query.NewEngine(api.Client, query.NewCache(fs.CacheDir))
}
