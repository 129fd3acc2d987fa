package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"postboard/application/ports"
	"postboard/application/queries"
	"postboard/pkg/errors"
)

// PostService creates posts and returns them composed for the author
type PostService struct {
	posts     ports.PostRepository
	assembler *queries.PostViewAssembler
	metrics   ports.Metrics
	logger    *zap.Logger
}

// NewPostService creates a new post service
func NewPostService(
	posts ports.PostRepository,
	assembler *queries.PostViewAssembler,
	metrics ports.Metrics,
	logger *zap.Logger,
) *PostService {
	return &PostService{
		posts:     posts,
		assembler: assembler,
		metrics:   metrics,
		logger:    logger,
	}
}

// CreatePost stores a post with trimmed title and content
func (s *PostService) CreatePost(ctx context.Context, authorID, title, content string) (queries.PostView, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)

	if title == "" {
		return queries.PostView{}, errors.NewValidationError("title is required")
	}
	if content == "" {
		return queries.PostView{}, errors.NewValidationError("content is required")
	}
	if authorID == "" {
		return queries.PostView{}, errors.NewUnauthorizedError("")
	}
	if err := ctx.Err(); err != nil {
		return queries.PostView{}, err
	}

	post := s.posts.CreatePost(authorID, title, content)

	s.metrics.PostCreated()
	s.logger.Debug("Post created", zap.String("postID", post.ID), zap.String("authorID", authorID))

	return s.assembler.View(post, authorID), nil
}
