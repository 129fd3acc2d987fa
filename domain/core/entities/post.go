package entities

import (
	"strings"
	"time"
)

// Post is a piece of content written by a user.
// AuthorID is a weak reference and is not checked against the user collection.
type Post struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"authorId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// PostPage is one slice of the post feed.
// NextCursor is nil when the page is empty.
type PostPage struct {
	Items      []Post  `json:"items"`
	NextCursor *string `json:"nextCursor"`
}

// ComparePosts orders posts for the feed. It is a strict total order over
// distinct (CreatedAt, ID) pairs and is suitable for slices.SortFunc.
func ComparePosts(a, b Post) int {
	if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
		return c
	}
	return strings.Compare(b.ID, a.ID)
}
