package di

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postboard/application/commands"
	"postboard/application/queries"
	"postboard/infrastructure/config"
)

func testConfig() *config.Config {
	cfg := config.Defaults()
	cfg.JWTSecret = "test-secret"
	cfg.BcryptCost = 4
	cfg.LogLevel = "error"
	return cfg
}

func TestInitializeContainer(t *testing.T) {
	c, err := InitializeContainer(testConfig())
	require.NoError(t, err)

	ctx := context.Background()

	user, err := c.AuthService.Register(ctx, "alice", "hunter2")
	require.NoError(t, err)

	token, err := c.AuthService.Login(ctx, "alice", "hunter2")
	require.NoError(t, err)
	claims, err := c.JWT.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.Subject)

	view, err := c.PostService.CreatePost(ctx, user.ID, "hello", "world")
	require.NoError(t, err)

	require.NoError(t, c.CommandBus.Send(ctx, commands.LikePostCommand{UserID: user.ID, PostID: view.ID}))

	result, err := c.QueryBus.Ask(ctx, queries.ListPostsQuery{ViewerID: user.ID, Limit: 10})
	require.NoError(t, err)
	feed := result.(queries.PostFeed)
	require.Len(t, feed.Items, 1)
	assert.Equal(t, 1, feed.Items[0].LikesCount)
	assert.True(t, feed.Items[0].LikedByViewer)
	assert.WithinDuration(t, time.Now(), feed.Items[0].CreatedAt, time.Minute)
}

func TestProvideLoggerRejectsBadLevel(t *testing.T) {
	cfg := testConfig()
	cfg.LogLevel = "loud"
	_, err := ProvideLogger(cfg)
	assert.Error(t, err)
}
