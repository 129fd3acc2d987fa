package handlers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"postboard/application/ports"
	"postboard/application/queries"
	"postboard/application/queries/bus"
	"postboard/pkg/errors"
)

// PostQueryHandler answers feed and single-post queries
type PostQueryHandler struct {
	posts     ports.PostRepository
	assembler *queries.PostViewAssembler
	metrics   ports.Metrics
	logger    *zap.Logger
}

// NewPostQueryHandler creates a new post query handler
func NewPostQueryHandler(
	posts ports.PostRepository,
	assembler *queries.PostViewAssembler,
	metrics ports.Metrics,
	logger *zap.Logger,
) *PostQueryHandler {
	return &PostQueryHandler{
		posts:     posts,
		assembler: assembler,
		metrics:   metrics,
		logger:    logger,
	}
}

// Handle executes a ListPostsQuery or GetPostQuery
func (h *PostQueryHandler) Handle(ctx context.Context, query bus.Query) (interface{}, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch q := query.(type) {
	case queries.ListPostsQuery:
		return h.listPosts(q), nil
	case queries.GetPostQuery:
		return h.getPost(q)
	default:
		return nil, fmt.Errorf("%w: %T", bus.ErrUnexpectedType, query)
	}
}

func (h *PostQueryHandler) listPosts(q queries.ListPostsQuery) queries.PostFeed {
	page := h.posts.ListPosts(q.Limit, q.Cursor)
	h.metrics.PostPageServed()

	h.logger.Debug("Post page served",
		zap.Int("limit", q.Limit),
		zap.Int("items", len(page.Items)),
		zap.Bool("hasCursor", q.Cursor != ""),
	)

	return h.assembler.Feed(page, q.ViewerID)
}

func (h *PostQueryHandler) getPost(q queries.GetPostQuery) (queries.PostView, error) {
	post, ok := h.posts.GetPostByID(q.PostID)
	if !ok {
		return queries.PostView{}, errors.NewNotFoundError("post")
	}
	return h.assembler.View(post, q.ViewerID), nil
}

// Register wires the handler into the bus for both post queries
func (h *PostQueryHandler) Register(b *bus.QueryBus) error {
	if err := b.Register(queries.ListPostsQuery{}, h); err != nil {
		return err
	}
	return b.Register(queries.GetPostQuery{}, h)
}
