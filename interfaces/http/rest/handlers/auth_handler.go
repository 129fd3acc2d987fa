package handlers

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"postboard/application/services"
	"postboard/pkg/common"
	"postboard/pkg/errors"
)

// AuthHandler handles registration and login
type AuthHandler struct {
	authService *services.AuthService
	errHandler  *errors.ErrorHandler
	logger      *zap.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, errHandler *errors.ErrorHandler, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		errHandler:  errHandler,
		logger:      logger,
	}
}

// CredentialsRequest is the body of register and login requests
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterResponse is the public view of a new account
type RegisterResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

// LoginResponse carries the access token
type LoginResponse struct {
	Token string `json:"token"`
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := common.ParseJSONBody(w, r, &req); err != nil {
		h.errHandler.Handle(w, r, errors.NewValidationError(err.Error()))
		return
	}

	user, err := h.authService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		h.errHandler.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, RegisterResponse{
		ID:        user.ID,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	})
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := common.ParseJSONBody(w, r, &req); err != nil {
		h.errHandler.Handle(w, r, errors.NewValidationError(err.Error()))
		return
	}

	token, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.errHandler.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, LoginResponse{Token: token})
}
