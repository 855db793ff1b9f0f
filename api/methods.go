package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"pedia-cli/shared"
)

func (a *Api) SignIn(req shared.SignInRequest) (*shared.SessionResponse, *shared.ApiError) {
	serverUrl := getApiHost() + "/api/auth/login/"

	reqBytes, err := json.Marshal(req)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error marshalling request: %v", err)}
	}

	resp, err := unauthenticatedClient.Post(serverUrl, "application/json", bytes.NewBuffer(reqBytes))
	if err != nil {
		return nil, transportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, HandleApiError(resp, errorBody)
	}

	var session shared.SessionResponse
	err = json.NewDecoder(resp.Body).Decode(&session)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return &session, nil
}

func (a *Api) Register(req shared.RegisterRequest) *shared.ApiError {
	serverUrl := getApiHost() + "/api/auth/register/"

	reqBytes, err := json.Marshal(req)
	if err != nil {
		return &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error marshalling request: %v", err)}
	}

	resp, err := unauthenticatedClient.Post(serverUrl, "application/json", bytes.NewBuffer(reqBytes))
	if err != nil {
		return transportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return HandleApiError(resp, errorBody)
	}

	return nil
}

func (a *Api) SignOut() *shared.ApiError {
	serverUrl := getApiHost() + "/api/auth/logout/"

	resp, err := authenticatedClient.Post(serverUrl, "application/json", nil)
	if err != nil {
		return transportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return HandleApiError(resp, errorBody)
	}

	return nil
}

func (a *Api) GetCurrentUser() (*shared.User, *shared.ApiError) {
	serverUrl := getApiHost() + "/api/auth/user/"

	resp, err := authenticatedClient.Get(serverUrl)
	if err != nil {
		return nil, transportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, HandleApiError(resp, errorBody)
	}

	var user shared.User
	err = json.NewDecoder(resp.Body).Decode(&user)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return &user, nil
}

func (a *Api) ListEntries() ([]*shared.Entry, *shared.ApiError) {
	return a.getEntries(getApiHost() + "/api/entries/")
}

func (a *Api) ListMyEntries() ([]*shared.Entry, *shared.ApiError) {
	return a.getEntries(getApiHost() + "/api/my-entries/")
}

func (a *Api) ListEntriesByCategory(categoryId, limit int) ([]*shared.Entry, *shared.ApiError) {
	return a.getEntries(fmt.Sprintf("%s/api/entries/?category=%d&limit=%d", getApiHost(), categoryId, limit))
}

func (a *Api) getEntries(serverUrl string) ([]*shared.Entry, *shared.ApiError) {
	resp, err := authenticatedClient.Get(serverUrl)
	if err != nil {
		return nil, transportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, HandleApiError(resp, errorBody)
	}

	var entries []*shared.Entry
	err = json.NewDecoder(resp.Body).Decode(&entries)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return entries, nil
}

func (a *Api) GetEntry(entryId int) (*shared.Entry, *shared.ApiError) {
	serverUrl := fmt.Sprintf("%s/api/entries/%d/", getApiHost(), entryId)

	resp, err := authenticatedClient.Get(serverUrl)
	if err != nil {
		return nil, transportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, HandleApiError(resp, errorBody)
	}

	var entry shared.Entry
	err = json.NewDecoder(resp.Body).Decode(&entry)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return &entry, nil
}

func (a *Api) CreateEntry(req shared.CreateEntryRequest) (*shared.Entry, *shared.ApiError) {
	serverUrl := getApiHost() + "/api/entries/"

	reqBytes, err := json.Marshal(req)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error marshalling request: %v", err)}
	}

	resp, err := authenticatedClient.Post(serverUrl, "application/json", bytes.NewBuffer(reqBytes))
	if err != nil {
		return nil, transportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, HandleApiError(resp, errorBody)
	}

	var entry shared.Entry
	err = json.NewDecoder(resp.Body).Decode(&entry)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return &entry, nil
}

func (a *Api) UpdateEntry(entryId int, req shared.UpdateEntryRequest) (*shared.Entry, *shared.ApiError) {
	serverUrl := fmt.Sprintf("%s/api/entries/%d/", getApiHost(), entryId)

	reqBytes, err := json.Marshal(req)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error marshalling request: %v", err)}
	}

	request, err := http.NewRequest(http.MethodPut, serverUrl, bytes.NewBuffer(reqBytes))
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error creating request: %v", err)}
	}
	request.Header.Set("Content-Type", "application/json")

	resp, err := authenticatedClient.Do(request)
	if err != nil {
		return nil, transportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, HandleApiError(resp, errorBody)
	}

	var entry shared.Entry
	err = json.NewDecoder(resp.Body).Decode(&entry)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return &entry, nil
}

func (a *Api) DeleteEntry(entryId int) *shared.ApiError {
	serverUrl := fmt.Sprintf("%s/api/entries/%d/", getApiHost(), entryId)

	request, err := http.NewRequest(http.MethodDelete, serverUrl, nil)
	if err != nil {
		return &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error creating request: %v", err)}
	}

	resp, err := authenticatedClient.Do(request)
	if err != nil {
		return transportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return HandleApiError(resp, errorBody)
	}

	return nil
}

func (a *Api) LikeEntry(entryId int) *shared.ApiError {
	serverUrl := fmt.Sprintf("%s/api/entries/%d/like/", getApiHost(), entryId)

	resp, err := authenticatedClient.Post(serverUrl, "application/json", nil)
	if err != nil {
		return transportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return HandleApiError(resp, errorBody)
	}

	return nil
}

func (a *Api) ListComments(entryId int) ([]*shared.Comment, *shared.ApiError) {
	serverUrl := fmt.Sprintf("%s/api/entries/%d/comments/", getApiHost(), entryId)

	resp, err := authenticatedClient.Get(serverUrl)
	if err != nil {
		return nil, transportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, HandleApiError(resp, errorBody)
	}

	var comments []*shared.Comment
	err = json.NewDecoder(resp.Body).Decode(&comments)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return comments, nil
}

func (a *Api) CreateComment(entryId int, req shared.CreateCommentRequest) (*shared.Comment, *shared.ApiError) {
	serverUrl := fmt.Sprintf("%s/api/entries/%d/comments/", getApiHost(), entryId)

	reqBytes, err := json.Marshal(req)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error marshalling request: %v", err)}
	}

	resp, err := authenticatedClient.Post(serverUrl, "application/json", bytes.NewBuffer(reqBytes))
	if err != nil {
		return nil, transportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, HandleApiError(resp, errorBody)
	}

	var comment shared.Comment
	err = json.NewDecoder(resp.Body).Decode(&comment)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return &comment, nil
}

func (a *Api) ListCategories() ([]*shared.Category, *shared.ApiError) {
	serverUrl := getApiHost() + "/api/categories/"

	resp, err := authenticatedClient.Get(serverUrl)
	if err != nil {
		return nil, transportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, HandleApiError(resp, errorBody)
	}

	var categories []*shared.Category
	err = json.NewDecoder(resp.Body).Decode(&categories)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return categories, nil
}

func (a *Api) ListTags() ([]*shared.Tag, *shared.ApiError) {
	serverUrl := getApiHost() + "/api/tags/"

	resp, err := authenticatedClient.Get(serverUrl)
	if err != nil {
		return nil, transportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, HandleApiError(resp, errorBody)
	}

	var tags []*shared.Tag
	err = json.NewDecoder(resp.Body).Decode(&tags)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return tags, nil
}
