package types

import "pedia-cli/shared"

type ApiClient interface {
	SignIn(req shared.SignInRequest) (*shared.SessionResponse, *shared.ApiError)
	Register(req shared.RegisterRequest) *shared.ApiError
	SignOut() *shared.ApiError
	GetCurrentUser() (*shared.User, *shared.ApiError)

	ListEntries() ([]*shared.Entry, *shared.ApiError)
	ListMyEntries() ([]*shared.Entry, *shared.ApiError)
	ListEntriesByCategory(categoryId, limit int) ([]*shared.Entry, *shared.ApiError)
	GetEntry(entryId int) (*shared.Entry, *shared.ApiError)
	CreateEntry(req shared.CreateEntryRequest) (*shared.Entry, *shared.ApiError)
	UpdateEntry(entryId int, req shared.UpdateEntryRequest) (*shared.Entry, *shared.ApiError)
	DeleteEntry(entryId int) *shared.ApiError

	LikeEntry(entryId int) *shared.ApiError
	ListComments(entryId int) ([]*shared.Comment, *shared.ApiError)
	CreateComment(entryId int, req shared.CreateCommentRequest) (*shared.Comment, *shared.ApiError)

	ListCategories() ([]*shared.Category, *shared.ApiError)
	ListTags() ([]*shared.Tag, *shared.ApiError)
}
