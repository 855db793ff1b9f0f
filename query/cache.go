package query

import (
	"encoding/json"
	"log"

	"pedia-cli/shared"
	"pedia-cli/types"

	"github.com/peterbourgon/diskv/v3"
)

const (
	cacheKeyEntries    = "entries"
	cacheKeyMyEntries  = "my-entries"
	cacheKeyCategories = "categories"
	cacheKeyTags       = "tags"
)

// Cache keeps the last successfully fetched collections on disk so a
// listing view can fall back to a stale result when the transport fails.
type Cache struct {
	d *diskv.Diskv
}

func NewCache(basePath string) *Cache {
	return &Cache{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    func(s string) []string { return []string{} },
		CacheSizeMax: 1024 * 1024, // 1MB
	})}
}

func entriesKey(scope types.Scope) string {
	if scope.Mine {
		return cacheKeyMyEntries
	}
	return cacheKeyEntries
}

func (c *Cache) write(key string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("cache: error marshalling %s: %v", key, err)
		return
	}
	if err := c.d.Write(key, data); err != nil {
		log.Printf("cache: error writing %s: %v", key, err)
	}
}

func (c *Cache) storeEntries(scope types.Scope, entries []*shared.Entry) {
	c.write(entriesKey(scope), entries)
}

func (c *Cache) storeTaxonomy(categories []*shared.Category, tags []*shared.Tag) {
	c.write(cacheKeyCategories, categories)
	c.write(cacheKeyTags, tags)
}

// Entries returns the last cached entry collection for the scope, or nil
// when nothing has been cached yet.
func (c *Cache) Entries(scope types.Scope) []*shared.Entry {
	data, err := c.d.Read(entriesKey(scope))
	if err != nil {
		return nil
	}

	var entries []*shared.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Printf("cache: error unmarshalling entries: %v", err)
		return nil
	}
	return entries
}

func (c *Cache) Categories() []*shared.Category {
	data, err := c.d.Read(cacheKeyCategories)
	if err != nil {
		return nil
	}

	var categories []*shared.Category
	if err := json.Unmarshal(data, &categories); err != nil {
		log.Printf("cache: error unmarshalling categories: %v", err)
		return nil
	}
	return categories
}

func (c *Cache) Tags() []*shared.Tag {
	data, err := c.d.Read(cacheKeyTags)
	if err != nil {
		return nil
	}

	var tags []*shared.Tag
	if err := json.Unmarshal(data, &tags); err != nil {
		log.Printf("cache: error unmarshalling tags: %v", err)
		return nil
	}
	return tags
}
