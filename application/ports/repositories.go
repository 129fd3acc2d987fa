package ports

import (
	"postboard/domain/core/entities"
)

// UserRepository defines the interface for user persistence.
// This is a port in hexagonal architecture - the application doesn't know about the implementation.
// Lookups report a miss with false rather than an error.
type UserRepository interface {
	// CreateUser stores a new user with a fresh ID and creation time
	CreateUser(username, passwordHash string) entities.User

	// FindUserByUsername matches usernames case-insensitively, first match in insertion order
	FindUserByUsername(username string) (entities.User, bool)

	// GetUserByID retrieves a user by exact ID
	GetUserByID(id string) (entities.User, bool)
}

// PostRepository defines the interface for post persistence
type PostRepository interface {
	// CreatePost stores a new post with a fresh ID and creation time
	CreatePost(authorID, title, content string) entities.Post

	// GetPostByID retrieves a post by exact ID
	GetPostByID(id string) (entities.Post, bool)

	// ListPosts returns up to limit posts after cursor, newest first.
	// A malformed or stale cursor restarts from the first page.
	ListPosts(limit int, cursor string) entities.PostPage
}

// LikeRepository tracks which users like which posts
type LikeRepository interface {
	// LikePost records the like; liking twice is a no-op
	LikePost(userID, postID string)

	// UnlikePost removes the like; removing an absent like is a no-op
	UnlikePost(userID, postID string)

	// HasUserLiked reports whether userID currently likes postID
	HasUserLiked(userID, postID string) bool

	// CountLikes returns the number of users currently liking postID
	CountLikes(postID string) int
}

// TokenIssuer issues signed access tokens for authenticated users
type TokenIssuer interface {
	GenerateToken(userID, username string) (string, error)
}

// PasswordHasher hashes and verifies passwords
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

// Metrics receives business events for observability
type Metrics interface {
	UserRegistered()
	PostCreated()
	LikeChanged(action string)
	PostPageServed()
}
