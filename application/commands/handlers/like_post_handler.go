package handlers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"postboard/application/commands"
	"postboard/application/commands/bus"
	"postboard/application/ports"
)

// LikePostHandler applies like and unlike commands to the like index.
// Post IDs are not checked against the post collection.
type LikePostHandler struct {
	likes   ports.LikeRepository
	metrics ports.Metrics
	logger  *zap.Logger
}

// NewLikePostHandler creates a new handler instance
func NewLikePostHandler(likes ports.LikeRepository, metrics ports.Metrics, logger *zap.Logger) *LikePostHandler {
	return &LikePostHandler{
		likes:   likes,
		metrics: metrics,
		logger:  logger,
	}
}

// Handle executes a LikePostCommand or UnlikePostCommand
func (h *LikePostHandler) Handle(ctx context.Context, cmd bus.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var action string
	switch c := cmd.(type) {
	case commands.LikePostCommand:
		h.likes.LikePost(c.UserID, c.PostID)
		action = commands.ActionLike
		h.logger.Debug("Post liked", zap.String("userID", c.UserID), zap.String("postID", c.PostID))
	case commands.UnlikePostCommand:
		h.likes.UnlikePost(c.UserID, c.PostID)
		action = commands.ActionUnlike
		h.logger.Debug("Post unliked", zap.String("userID", c.UserID), zap.String("postID", c.PostID))
	default:
		return fmt.Errorf("%w: %T", bus.ErrUnexpectedType, cmd)
	}

	h.metrics.LikeChanged(action)
	return nil
}

// Register wires the handler into the bus for both like commands
func (h *LikePostHandler) Register(b *bus.CommandBus) error {
	if err := b.Register(commands.LikePostCommand{}, h); err != nil {
		return err
	}
	return b.Register(commands.UnlikePostCommand{}, h)
}
