//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"postboard/application/ports"
	"postboard/application/services"
	"postboard/infrastructure/config"
	"postboard/infrastructure/persistence/memory"
	"postboard/pkg/auth"
	"postboard/pkg/observability"
)

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideClock,
	ProvideEntityStore,
	ProvideLikeIndex,
	ProvideMetrics,
	ProvideJWTService,
	ProvidePasswordHasher,
	ProvideRateLimiter,
	ProvideErrorHandler,
	ProvidePostViewAssembler,
	ProvideCommandBus,
	ProvideQueryBus,
	services.NewAuthService,
	services.NewPostService,
	wire.Bind(new(ports.UserRepository), new(*memory.EntityStore)),
	wire.Bind(new(ports.PostRepository), new(*memory.EntityStore)),
	wire.Bind(new(ports.LikeRepository), new(*memory.LikeIndex)),
	wire.Bind(new(ports.Metrics), new(*observability.Collector)),
	wire.Bind(new(ports.TokenIssuer), new(*auth.JWTService)),
	wire.Bind(new(ports.PasswordHasher), new(*auth.BcryptHasher)),
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container
func InitializeContainer(cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil // Wire will replace this
}
