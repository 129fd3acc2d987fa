package memory

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLikeIndex(t *testing.T) {
	t.Run("like then unlike is a no-op", func(t *testing.T) {
		idx := NewLikeIndex(nil)
		idx.LikePost("other", "p1")
		before := idx.CountLikes("p1")

		idx.LikePost("u1", "p1")
		idx.UnlikePost("u1", "p1")

		assert.False(t, idx.HasUserLiked("u1", "p1"))
		assert.Equal(t, before, idx.CountLikes("p1"))
		assert.True(t, idx.HasUserLiked("other", "p1"))
	})

	t.Run("liking twice counts once", func(t *testing.T) {
		idx := NewLikeIndex(nil)
		before := idx.CountLikes("p1")

		idx.LikePost("u1", "p1")
		idx.LikePost("u1", "p1")

		assert.True(t, idx.HasUserLiked("u1", "p1"))
		assert.Equal(t, before+1, idx.CountLikes("p1"))
	})

	t.Run("unliking an absent like is a no-op", func(t *testing.T) {
		idx := NewLikeIndex(nil)
		idx.UnlikePost("u1", "p1")
		idx.LikePost("u2", "p1")
		idx.UnlikePost("u1", "p1")

		assert.Equal(t, 1, idx.CountLikes("p1"))
		assert.False(t, idx.HasUserLiked("u1", "p1"))
	})

	t.Run("counts are per post", func(t *testing.T) {
		idx := NewLikeIndex(nil)
		idx.LikePost("u1", "p1")
		idx.LikePost("u2", "p1")
		idx.LikePost("u1", "p2")

		assert.Equal(t, 2, idx.CountLikes("p1"))
		assert.Equal(t, 1, idx.CountLikes("p2"))
		assert.Equal(t, 0, idx.CountLikes("p3"))
		assert.False(t, idx.HasUserLiked("u2", "p2"))
	})

	t.Run("ids containing separators do not collide", func(t *testing.T) {
		idx := NewLikeIndex(nil)
		idx.LikePost("a:b", "c")

		assert.False(t, idx.HasUserLiked("a", "b:c"))
		assert.Equal(t, 0, idx.CountLikes("b:c"))
		assert.Equal(t, 1, idx.CountLikes("c"))
	})
}

func TestLikeIndexConcurrentAccess(t *testing.T) {
	idx := NewLikeIndex(nil)
	const users = 50

	var wg sync.WaitGroup
	for i := 0; i < users; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			user := fmt.Sprintf("u%d", i)
			idx.LikePost(user, "p1")
			idx.LikePost(user, "p1")
			idx.LikePost(user, "p2")
			idx.UnlikePost(user, "p2")
			idx.HasUserLiked(user, "p1")
			idx.CountLikes("p1")
		}(i)
	}
	wg.Wait()

	assert.Equal(t, users, idx.CountLikes("p1"))
	assert.Equal(t, 0, idx.CountLikes("p2"))
}
