package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"postboard/application/ports"
	"postboard/domain/core/entities"
	"postboard/pkg/errors"
)

// bcrypt ignores input past 72 bytes
const maxPasswordBytes = 72

// AuthService registers users and exchanges credentials for access tokens.
// Register and Login return records to the caller, so they are plain service
// methods rather than bus commands.
type AuthService struct {
	users   ports.UserRepository
	hasher  ports.PasswordHasher
	tokens  ports.TokenIssuer
	metrics ports.Metrics
	logger  *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(
	users ports.UserRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenIssuer,
	metrics ports.Metrics,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		users:   users,
		hasher:  hasher,
		tokens:  tokens,
		metrics: metrics,
		logger:  logger,
	}
}

// Register creates an account. Usernames are unique ignoring case.
func (s *AuthService) Register(ctx context.Context, username, password string) (entities.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return entities.User{}, errors.NewValidationError("username and password are required")
	}
	if len(password) > maxPasswordBytes {
		return entities.User{}, errors.NewValidationError("password must be at most 72 bytes")
	}
	if err := ctx.Err(); err != nil {
		return entities.User{}, err
	}

	if _, exists := s.users.FindUserByUsername(username); exists {
		return entities.User{}, errors.NewConflictError("username already exists")
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return entities.User{}, errors.Wrap(err, "register")
	}

	// The lookup and the insert are not atomic, so two concurrent registrations
	// of the same name can both insert. The store is append-only: the later
	// record stays but is shadowed, since lookups return the first match.
	user := s.users.CreateUser(username, hash)
	if first, _ := s.users.FindUserByUsername(username); first.ID != user.ID {
		s.logger.Warn("Concurrent registration for username",
			zap.String("username", username),
			zap.String("keptID", first.ID),
			zap.String("shadowedID", user.ID),
		)
		return entities.User{}, errors.NewConflictError("username already exists")
	}

	s.metrics.UserRegistered()
	s.logger.Info("User registered", zap.String("userID", user.ID), zap.String("username", user.Username))

	return user, nil
}

// Login verifies credentials and issues a token
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", errors.NewValidationError("username and password are required")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	user, ok := s.users.FindUserByUsername(username)
	if !ok || !s.hasher.Compare(user.PasswordHash, password) {
		s.logger.Debug("Login rejected", zap.String("username", username))
		return "", errors.NewUnauthorizedError("invalid credentials")
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Username)
	if err != nil {
		return "", errors.Wrap(err, "issue token")
	}

	return token, nil
}
