// Package memory holds the in-process stores for users, posts and likes.
// Every collection is owned by exactly one store and guarded by that store's lock.
package memory

import (
	"strings"
	"sync"

	"postboard/domain/core/entities"
	"postboard/domain/core/valueobjects"
	"postboard/pkg/utils"

	"go.uber.org/zap"
)

// EntityStore holds the append-only user and post collections
type EntityStore struct {
	mu    sync.RWMutex
	users []entities.User
	posts []entities.Post

	clock  utils.Clock
	newID  valueobjects.IDGenerator
	logger *zap.Logger
}

// Option configures an EntityStore
type Option func(*EntityStore)

// WithClock sets the clock used to stamp CreatedAt
func WithClock(clock utils.Clock) Option {
	return func(s *EntityStore) {
		s.clock = clock
	}
}

// WithIDGenerator sets the function used to mint entity IDs
func WithIDGenerator(gen valueobjects.IDGenerator) Option {
	return func(s *EntityStore) {
		s.newID = gen
	}
}

// WithLogger sets the store logger
func WithLogger(logger *zap.Logger) Option {
	return func(s *EntityStore) {
		s.logger = logger
	}
}

// NewEntityStore creates an empty store
func NewEntityStore(opts ...Option) *EntityStore {
	s := &EntityStore{
		clock:  utils.NewRealClock(),
		newID:  valueobjects.NewEntityID,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateUser appends a new user. Username uniqueness is the caller's concern.
func (s *EntityStore) CreateUser(username, passwordHash string) entities.User {
	user := entities.User{
		ID:           s.newID(),
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    s.clock.NowUTC(),
	}

	s.mu.Lock()
	s.users = append(s.users, user)
	s.mu.Unlock()

	s.logger.Debug("user created", zap.String("userID", user.ID), zap.String("username", username))
	return user
}

// FindUserByUsername returns the first user whose name matches case-insensitively
func (s *EntityStore) FindUserByUsername(username string) (entities.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Username, username) {
			return u, true
		}
	}
	return entities.User{}, false
}

// GetUserByID returns the user with the given ID
func (s *EntityStore) GetUserByID(id string) (entities.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return entities.User{}, false
}

// CreatePost appends a new post. The author is not checked.
func (s *EntityStore) CreatePost(authorID, title, content string) entities.Post {
	post := entities.Post{
		ID:        s.newID(),
		AuthorID:  authorID,
		Title:     title,
		Content:   content,
		CreatedAt: s.clock.NowUTC(),
	}

	s.mu.Lock()
	s.posts = append(s.posts, post)
	s.mu.Unlock()

	s.logger.Debug("post created", zap.String("postID", post.ID), zap.String("authorID", authorID))
	return post
}

// GetPostByID returns the post with the given ID
func (s *EntityStore) GetPostByID(id string) (entities.Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.posts {
		if p.ID == id {
			return p, true
		}
	}
	return entities.Post{}, false
}

// ListPosts pages through a snapshot of the post collection
func (s *EntityStore) ListPosts(limit int, cursor string) entities.PostPage {
	return PaginatePosts(s.snapshotPosts(), limit, cursor)
}

// snapshotPosts copies the post collection under the read lock
func (s *EntityStore) snapshotPosts() []entities.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]entities.Post, len(s.posts))
	copy(snapshot, s.posts)
	return snapshot
}
