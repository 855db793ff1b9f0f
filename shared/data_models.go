package shared

import "time"

type EntryStatus string

const (
	EntryStatusDraft     EntryStatus = "draft"
	EntryStatusPublished EntryStatus = "published"
)

type User struct {
	Id       int       `json:"id"`
	Username string    `json:"username"`
	JoinedAt time.Time `json:"joined_at"`
}

type Category struct {
	Id          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	EntryCount  int    `json:"entry_count"`
}

type Tag struct {
	Id         int    `json:"id"`
	Name       string `json:"name"`
	EntryCount int    `json:"entry_count"`
}

type Entry struct {
	Id        int         `json:"id"`
	Title     string      `json:"title"`
	Summary   string      `json:"summary,omitempty"`
	Content   string      `json:"content"`
	Author    *User       `json:"author,omitempty"`
	Category  *Category   `json:"category,omitempty"`
	Tags      []*Tag      `json:"tags"`
	Status    EntryStatus `json:"status"`
	ViewCount int         `json:"view_count"`
	LikeCount int         `json:"like_count"`
	UserLiked bool        `json:"user_liked"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`

	// Populated on the detail endpoint only.
	Comments []*Comment `json:"comments,omitempty"`
}

func (e *Entry) HasTag(tagId int) bool {
	for _, tag := range e.Tags {
		if tag.Id == tagId {
			return true
		}
	}
	return false
}

type Comment struct {
	Id        int       `json:"id"`
	EntryId   int       `json:"entry"`
	Author    *User     `json:"author,omitempty"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
