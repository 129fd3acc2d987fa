package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"postboard/application/commands"
	"postboard/application/commands/bus"
	"postboard/application/queries"
	querybus "postboard/application/queries/bus"
	"postboard/application/services"
	"postboard/domain/core/valueobjects"
	"postboard/pkg/auth"
	"postboard/pkg/common"
	"postboard/pkg/errors"
)

// PostHandler handles post-related HTTP requests
type PostHandler struct {
	postService     *services.PostService
	commandBus      *bus.CommandBus
	queryBus        *querybus.QueryBus
	errHandler      *errors.ErrorHandler
	defaultPageSize int
	maxPageSize     int
	logger          *zap.Logger
}

// PageSizes bounds the feed limit parameter
type PageSizes struct {
	Default int
	Max     int
}

// NewPostHandler creates a new post handler
func NewPostHandler(
	postService *services.PostService,
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	errHandler *errors.ErrorHandler,
	sizes PageSizes,
	logger *zap.Logger,
) *PostHandler {
	return &PostHandler{
		postService:     postService,
		commandBus:      commandBus,
		queryBus:        queryBus,
		errHandler:      errHandler,
		defaultPageSize: sizes.Default,
		maxPageSize:     sizes.Max,
		logger:          logger,
	}
}

// CreatePostRequest represents the request body for creating a post
type CreatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// CreatePost handles POST /api/posts
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	var req CreatePostRequest
	if err := common.ParseJSONBody(w, r, &req); err != nil {
		h.errHandler.Handle(w, r, errors.NewValidationError(err.Error()))
		return
	}

	view, err := h.postService.CreatePost(r.Context(), user.UserID, req.Title, req.Content)
	if err != nil {
		h.errHandler.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, view)
}

// ListPosts handles GET /api/posts
func (h *PostHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	page := common.ExtractPageParams(r, h.defaultPageSize, h.maxPageSize)
	result, err := h.queryBus.Ask(r.Context(), queries.ListPostsQuery{
		ViewerID: user.UserID,
		Limit:    page.Limit,
		Cursor:   page.Cursor,
	})
	if err != nil {
		h.errHandler.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// GetPost handles GET /api/posts/{postID}
func (h *PostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	postID, err := valueobjects.ParseEntityID(chi.URLParam(r, "postID"))
	if err != nil {
		h.errHandler.Handle(w, r, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.queryBus.Ask(r.Context(), queries.GetPostQuery{
		ViewerID: user.UserID,
		PostID:   postID,
	})
	if err != nil {
		h.errHandler.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// LikePost handles POST /api/posts/{postID}/like
func (h *PostHandler) LikePost(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	cmd := commands.LikePostCommand{UserID: user.UserID, PostID: chi.URLParam(r, "postID")}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.errHandler.Handle(w, r, err)
		return
	}

	common.RespondNoContent(w)
}

// UnlikePost handles DELETE /api/posts/{postID}/like
func (h *PostHandler) UnlikePost(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	cmd := commands.UnlikePostCommand{UserID: user.UserID, PostID: chi.URLParam(r, "postID")}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.errHandler.Handle(w, r, err)
		return
	}

	common.RespondNoContent(w)
}

func (h *PostHandler) currentUser(w http.ResponseWriter, r *http.Request) (*auth.UserContext, bool) {
	user, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		h.errHandler.HandleStatus(w, r, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}
	return user, true
}
