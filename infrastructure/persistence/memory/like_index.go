package memory

import (
	"sync"

	"go.uber.org/zap"
)

// LikeIndex is the set of (user, post) like facts, keyed by post then user
// so that counting a post's likes does not scan other posts.
type LikeIndex struct {
	mu     sync.RWMutex
	byPost map[string]map[string]struct{}
	logger *zap.Logger
}

// NewLikeIndex creates an empty like index
func NewLikeIndex(logger *zap.Logger) *LikeIndex {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LikeIndex{
		byPost: make(map[string]map[string]struct{}),
		logger: logger,
	}
}

// LikePost records that userID likes postID
func (l *LikeIndex) LikePost(userID, postID string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	users, ok := l.byPost[postID]
	if !ok {
		users = make(map[string]struct{})
		l.byPost[postID] = users
	}
	users[userID] = struct{}{}

	l.logger.Debug("post liked", zap.String("userID", userID), zap.String("postID", postID))
}

// UnlikePost removes the like of userID on postID if present
func (l *LikeIndex) UnlikePost(userID, postID string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	users, ok := l.byPost[postID]
	if !ok {
		return
	}
	delete(users, userID)
	if len(users) == 0 {
		delete(l.byPost, postID)
	}

	l.logger.Debug("post unliked", zap.String("userID", userID), zap.String("postID", postID))
}

// HasUserLiked reports whether userID currently likes postID
func (l *LikeIndex) HasUserLiked(userID, postID string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	_, ok := l.byPost[postID][userID]
	return ok
}

// CountLikes returns the number of users liking postID
func (l *LikeIndex) CountLikes(postID string) int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.byPost[postID])
}
