package di

import (
	"go.uber.org/zap"

	"postboard/application/commands/bus"
	querybus "postboard/application/queries/bus"
	"postboard/application/services"
	"postboard/infrastructure/config"
	"postboard/infrastructure/persistence/memory"
	"postboard/pkg/auth"
	"postboard/pkg/errors"
	"postboard/pkg/observability"
)

// Container holds all application dependencies
type Container struct {
	Config       *config.Config
	Logger       *zap.Logger
	Store        *memory.EntityStore
	Likes        *memory.LikeIndex
	Metrics      *observability.Collector
	JWT          *auth.JWTService
	RateLimiter  *auth.IPRateLimiter
	ErrorHandler *errors.ErrorHandler
	AuthService  *services.AuthService
	PostService  *services.PostService
	CommandBus   *bus.CommandBus
	QueryBus     *querybus.QueryBus
}
