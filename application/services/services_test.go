package services

import (
	"context"
	stderrors "errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"postboard/application/ports/mocks"
	"postboard/application/queries"
	"postboard/infrastructure/persistence/memory"
	"postboard/pkg/errors"
	"postboard/pkg/utils"
)

type fixture struct {
	store   *memory.EntityStore
	likes   *memory.LikeIndex
	hasher  *mocks.MockPasswordHasher
	tokens  *mocks.MockTokenIssuer
	metrics *mocks.MockMetrics
	auth    *AuthService
	posts   *PostService
}

func newFixture() *fixture {
	clock := utils.NewStubClock(time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC))
	store := memory.NewEntityStore(memory.WithClock(clock))
	likes := memory.NewLikeIndex(nil)
	f := &fixture{
		store:   store,
		likes:   likes,
		hasher:  new(mocks.MockPasswordHasher),
		tokens:  new(mocks.MockTokenIssuer),
		metrics: new(mocks.MockMetrics),
	}
	logger := zap.NewNop()
	f.auth = NewAuthService(store, f.hasher, f.tokens, f.metrics, logger)
	f.posts = NewPostService(store, queries.NewPostViewAssembler(store, likes), f.metrics, logger)
	return f
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("creates user with hashed password", func(t *testing.T) {
		f := newFixture()
		f.hasher.On("Hash", "hunter2").Return("hashed", nil)
		f.metrics.On("UserRegistered").Return()

		user, err := f.auth.Register(ctx, "  alice ", "hunter2")

		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "hashed", user.PasswordHash)
		stored, ok := f.store.GetUserByID(user.ID)
		require.True(t, ok)
		assert.Equal(t, user, stored)
		f.hasher.AssertExpectations(t)
		f.metrics.AssertExpectations(t)
	})

	t.Run("missing fields", func(t *testing.T) {
		f := newFixture()

		for _, tc := range []struct{ username, password string }{
			{"", "pw"},
			{"   ", "pw"},
			{"alice", ""},
		} {
			_, err := f.auth.Register(ctx, tc.username, tc.password)
			assert.True(t, errors.IsValidation(err))
			assert.Equal(t, "username and password are required", errors.GetAppError(err).Message)
		}
		f.hasher.AssertNotCalled(t, "Hash", mock.Anything)
	})

	t.Run("overlong password", func(t *testing.T) {
		f := newFixture()
		_, err := f.auth.Register(ctx, "alice", strings.Repeat("x", 73))
		assert.True(t, errors.IsValidation(err))
	})

	t.Run("duplicate ignoring case", func(t *testing.T) {
		f := newFixture()
		f.store.CreateUser("Alice", "h")

		_, err := f.auth.Register(ctx, "ALICE", "pw")

		assert.True(t, errors.IsConflict(err))
		assert.Equal(t, "username already exists", errors.GetAppError(err).Message)
	})

	t.Run("concurrent duplicates keep one account", func(t *testing.T) {
		f := newFixture()
		f.hasher.On("Hash", "pw").Return("hashed", nil)
		f.metrics.On("UserRegistered").Return()

		const n = 50
		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			winners   []string
			conflicts int
		)
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				user, err := f.auth.Register(ctx, "carol", "pw")
				mu.Lock()
				defer mu.Unlock()
				if err == nil {
					winners = append(winners, user.ID)
					return
				}
				if errors.IsConflict(err) {
					conflicts++
				}
			}()
		}
		wg.Wait()

		require.Len(t, winners, 1)
		assert.Equal(t, n-1, conflicts)
		found, ok := f.store.FindUserByUsername("CAROL")
		require.True(t, ok)
		assert.Equal(t, winners[0], found.ID)
		f.metrics.AssertNumberOfCalls(t, "UserRegistered", 1)
	})

	t.Run("hash failure is internal", func(t *testing.T) {
		f := newFixture()
		f.hasher.On("Hash", "pw").Return("", stderrors.New("boom"))

		_, err := f.auth.Register(ctx, "alice", "pw")

		assert.True(t, errors.IsType(err, errors.ErrorTypeInternal))
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("issues token", func(t *testing.T) {
		f := newFixture()
		user := f.store.CreateUser("alice", "hashed")
		f.hasher.On("Compare", "hashed", "pw").Return(true)
		f.tokens.On("GenerateToken", user.ID, "alice").Return("signed", nil)

		token, err := f.auth.Login(ctx, "Alice", "pw")

		require.NoError(t, err)
		assert.Equal(t, "signed", token)
		f.tokens.AssertExpectations(t)
	})

	t.Run("padded username matches trimmed account", func(t *testing.T) {
		f := newFixture()
		f.hasher.On("Hash", "pw").Return("hashed", nil)
		f.hasher.On("Compare", "hashed", "pw").Return(true)
		f.metrics.On("UserRegistered").Return()

		user, err := f.auth.Register(ctx, " bob\t", "pw")
		require.NoError(t, err)
		require.Equal(t, "bob", user.Username)
		f.tokens.On("GenerateToken", user.ID, "bob").Return("signed", nil)

		token, err := f.auth.Login(ctx, "  bob  ", "pw")

		require.NoError(t, err)
		assert.Equal(t, "signed", token)
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newFixture()
		_, err := f.auth.Login(ctx, "nobody", "pw")
		assert.True(t, errors.IsUnauthorized(err))
		assert.Equal(t, "invalid credentials", errors.GetAppError(err).Message)
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newFixture()
		f.store.CreateUser("alice", "hashed")
		f.hasher.On("Compare", "hashed", "bad").Return(false)

		_, err := f.auth.Login(ctx, "alice", "bad")

		assert.True(t, errors.IsUnauthorized(err))
		f.tokens.AssertNotCalled(t, "GenerateToken", mock.Anything, mock.Anything)
	})

	t.Run("missing fields", func(t *testing.T) {
		f := newFixture()
		_, err := f.auth.Login(ctx, "alice", "")
		assert.True(t, errors.IsValidation(err))
	})
}

func TestPostService_CreatePost(t *testing.T) {
	ctx := context.Background()

	t.Run("trims and composes view", func(t *testing.T) {
		f := newFixture()
		author := f.store.CreateUser("alice", "h")
		f.metrics.On("PostCreated").Return()

		view, err := f.posts.CreatePost(ctx, author.ID, "  Hello ", "\tworld\n")

		require.NoError(t, err)
		assert.Equal(t, "Hello", view.Title)
		assert.Equal(t, "world", view.Content)
		require.NotNil(t, view.Author)
		assert.Equal(t, "alice", view.Author.Username)
		assert.Zero(t, view.LikesCount)
		assert.False(t, view.LikedByViewer)

		stored, ok := f.store.GetPostByID(view.ID)
		require.True(t, ok)
		assert.Equal(t, author.ID, stored.AuthorID)
		f.metrics.AssertExpectations(t)
	})

	t.Run("blank title", func(t *testing.T) {
		f := newFixture()
		_, err := f.posts.CreatePost(ctx, "u1", "  ", "body")
		require.True(t, errors.IsValidation(err))
		assert.Equal(t, "title is required", errors.GetAppError(err).Message)
	})

	t.Run("blank content", func(t *testing.T) {
		f := newFixture()
		_, err := f.posts.CreatePost(ctx, "u1", "title", "")
		require.True(t, errors.IsValidation(err))
		assert.Equal(t, "content is required", errors.GetAppError(err).Message)
	})

	t.Run("dangling author", func(t *testing.T) {
		f := newFixture()
		f.metrics.On("PostCreated").Return()

		view, err := f.posts.CreatePost(ctx, "ghost", "t", "c")

		require.NoError(t, err)
		assert.Nil(t, view.Author)
	})
}
