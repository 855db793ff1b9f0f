package query

import (
	"strings"
	"sync"

	"pedia-cli/shared"
	"pedia-cli/types"
)

// Engine owns the fetched entry/category/tag collections and derives
// filtered, paginated views from them. Filtering itself is stateless
// (see Filter and Paginate), so any view can be recomputed at any time
// from (entries, state) alone.
type Engine struct {
	client types.ApiClient
	cache  *Cache

	mu         sync.Mutex
	generation uint64
	entries    []*shared.Entry
	categories []*shared.Category
	tags       []*shared.Tag
	detail     *shared.Entry
}

// NewEngine creates an engine over the given transport client. cache may
// be nil to disable the offline fallback.
func NewEngine(client types.ApiClient, cache *Cache) *Engine {
	return &Engine{client: client, cache: cache}
}

// beginLoad invalidates any in-flight entry fetch. The returned
// generation must match at commit time or the result is discarded: a
// stale response from a superseded load never overwrites newer state.
func (e *Engine) beginLoad() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.generation++
	return e.generation
}

func (e *Engine) commitEntries(gen uint64, scope types.Scope, entries []*shared.Entry) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if gen != e.generation {
		return false
	}

	e.entries = entries

	if e.cache != nil {
		e.cache.storeEntries(scope, entries)
	}

	return true
}

// LoadEntries fetches either the global entry set or the caller's
// authored set. Authorization for the "mine" scope is the server's
// concern; the request just carries the session credential.
func (e *Engine) LoadEntries(scope types.Scope) ([]*shared.Entry, *shared.ApiError) {
	gen := e.beginLoad()

	var entries []*shared.Entry
	var apiErr *shared.ApiError
	if scope.Mine {
		entries, apiErr = e.client.ListMyEntries()
	} else {
		entries, apiErr = e.client.ListEntries()
	}

	if apiErr != nil {
		return nil, apiErr
	}

	e.commitEntries(gen, scope, entries)
	return entries, nil
}

// LoadTaxonomy fetches categories and tags. Independent of LoadEntries:
// the two may run concurrently and populate disjoint state.
func (e *Engine) LoadTaxonomy() ([]*shared.Category, []*shared.Tag, *shared.ApiError) {
	type result struct {
		categories []*shared.Category
		tags       []*shared.Tag
		apiErr     *shared.ApiError
	}

	resCh := make(chan result, 2)

	go func() {
		categories, apiErr := e.client.ListCategories()
		resCh <- result{categories: categories, apiErr: apiErr}
	}()
	go func() {
		tags, apiErr := e.client.ListTags()
		resCh <- result{tags: tags, apiErr: apiErr}
	}()

	var categories []*shared.Category
	var tags []*shared.Tag
	for i := 0; i < 2; i++ {
		res := <-resCh
		if res.apiErr != nil {
			return nil, nil, res.apiErr
		}
		if res.categories != nil {
			categories = res.categories
		}
		if res.tags != nil {
			tags = res.tags
		}
	}

	e.mu.Lock()
	e.categories = categories
	e.tags = tags
	e.mu.Unlock()

	if e.cache != nil {
		e.cache.storeTaxonomy(categories, tags)
	}

	return categories, tags, nil
}

// LoadAll issues LoadEntries and LoadTaxonomy concurrently, the way
// listing views fetch on mount. The first failure wins.
func (e *Engine) LoadAll(scope types.Scope) *shared.ApiError {
	errCh := make(chan *shared.ApiError, 2)

	go func() {
		_, apiErr := e.LoadEntries(scope)
		errCh <- apiErr
	}()
	go func() {
		_, _, apiErr := e.LoadTaxonomy()
		errCh <- apiErr
	}()

	for i := 0; i < 2; i++ {
		if apiErr := <-errCh; apiErr != nil {
			return apiErr
		}
	}

	return nil
}

// CachedEntries returns the last persisted fetch for the scope, for
// callers that prefer a stale result over an empty state after a
// transport failure.
func (e *Engine) CachedEntries(scope types.Scope) []*shared.Entry {
	if e.cache == nil {
		return nil
	}
	return e.cache.Entries(scope)
}

func (e *Engine) Entries() []*shared.Entry {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.entries
}

func (e *Engine) Categories() []*shared.Category {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.categories
}

func (e *Engine) Tags() []*shared.Tag {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tags
}

// GetEntry fetches a single entry with its comments (newest first).
func (e *Engine) GetEntry(entryId int) (*shared.Entry, *shared.ApiError) {
	entry, apiErr := e.client.GetEntry(entryId)
	if apiErr != nil {
		return nil, apiErr
	}

	e.mu.Lock()
	e.detail = entry
	e.mu.Unlock()

	return entry, nil
}

// Like records a like for an entry. The in-memory counts are updated only
// after the server confirms, with no speculative update before the call
// resolves. The caller must already hold an authenticated session.
func (e *Engine) Like(entryId int) *shared.ApiError {
	apiErr := e.client.LikeEntry(entryId)
	if apiErr != nil {
		return apiErr
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	for _, entry := range e.entries {
		if entry.Id == entryId && !entry.UserLiked {
			entry.LikeCount++
			entry.UserLiked = true
		}
	}
	if e.detail != nil && e.detail.Id == entryId && !e.detail.UserLiked {
		e.detail.LikeCount++
		e.detail.UserLiked = true
	}

	return nil
}

// AddComment posts a comment. Content that is empty after trimming is
// rejected locally, before any network call. On success the new comment
// is prepended to the entry's in-memory comment sequence.
func (e *Engine) AddComment(entryId int, content string) (*shared.Comment, *shared.ApiError) {
	if strings.TrimSpace(content) == "" {
		return nil, &shared.ApiError{
			Type: shared.ApiErrorTypeValidation,
			Msg:  "comment content is required",
		}
	}

	comment, apiErr := e.client.CreateComment(entryId, shared.CreateCommentRequest{Content: content})
	if apiErr != nil {
		return nil, apiErr
	}

	e.mu.Lock()
	if e.detail != nil && e.detail.Id == entryId {
		e.detail.Comments = append([]*shared.Comment{comment}, e.detail.Comments...)
	}
	e.mu.Unlock()

	return comment, nil
}

// CreateEntry submits a new entry. The owned collections are not patched
// incrementally; the next load re-fetches them.
func (e *Engine) CreateEntry(req shared.CreateEntryRequest) (*shared.Entry, *shared.ApiError) {
	return e.client.CreateEntry(req)
}

func (e *Engine) UpdateEntry(entryId int, req shared.UpdateEntryRequest) (*shared.Entry, *shared.ApiError) {
	entry, apiErr := e.client.UpdateEntry(entryId, req)
	if apiErr != nil {
		return nil, apiErr
	}

	e.mu.Lock()
	if e.detail != nil && e.detail.Id == entryId {
		e.detail = entry
	}
	e.mu.Unlock()

	return entry, nil
}

func (e *Engine) DeleteEntry(entryId int) *shared.ApiError {
	apiErr := e.client.DeleteEntry(entryId)
	if apiErr != nil {
		return apiErr
	}

	e.mu.Lock()
	if e.detail != nil && e.detail.Id == entryId {
		e.detail = nil
	}
	entries := e.entries[:0]
	for _, entry := range e.entries {
		if entry.Id != entryId {
			entries = append(entries, entry)
		}
	}
	e.entries = entries
	e.mu.Unlock()

	return nil
}

// RelatedEntries fetches entries sharing the source entry's category,
// excluding the source itself and capped at limit. An entry without a
// category has no related entries.
func (e *Engine) RelatedEntries(entry *shared.Entry, limit int) ([]*shared.Entry, *shared.ApiError) {
	if limit <= 0 {
		limit = 5
	}

	if entry == nil || entry.Category == nil {
		return nil, nil
	}

	fetched, apiErr := e.client.ListEntriesByCategory(entry.Category.Id, limit)
	if apiErr != nil {
		return nil, apiErr
	}

	related := make([]*shared.Entry, 0, len(fetched))
	for _, other := range fetched {
		if other.Id == entry.Id {
			continue
		}
		related = append(related, other)
		if len(related) == limit {
			break
		}
	}

	return related, nil
}
