package shared

type SignInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionResponse is the payload of a successful login.
type SessionResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

type CreateEntryRequest struct {
	Title      string      `json:"title"`
	Summary    string      `json:"summary,omitempty"`
	Content    string      `json:"content"`
	CategoryId int         `json:"category,omitempty"`
	TagIds     []int       `json:"tags"`
	Status     EntryStatus `json:"status"`
}

type UpdateEntryRequest = CreateEntryRequest

type CreateCommentRequest struct {
	Content string `json:"content"`
}
