package types

// Scope selects which entry collection to load.
type Scope struct {
	Mine bool
}

// FilterState is owned by the caller and passed by value into query
// operations. A zero CategoryId or TagId means "no filter".
type FilterState struct {
	SearchText string
	CategoryId int
	TagId      int
	Page       int
}

// IsEmpty reports whether the state filters nothing out.
func (s FilterState) IsEmpty() bool {
	return s.SearchText == "" && s.CategoryId == 0 && s.TagId == 0
}
