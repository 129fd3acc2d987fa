package di

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"postboard/application/commands/bus"
	commands_handlers "postboard/application/commands/handlers"
	"postboard/application/ports"
	"postboard/application/queries"
	querybus "postboard/application/queries/bus"
	queries_handlers "postboard/application/queries/handlers"
	"postboard/infrastructure/config"
	"postboard/infrastructure/persistence/memory"
	"postboard/pkg/auth"
	"postboard/pkg/errors"
	"postboard/pkg/observability"
	"postboard/pkg/utils"
)

// Queries slower than this are logged at warn level
const slowQueryThreshold = 100 * time.Millisecond

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	var zcfg zap.Config
	if cfg.IsProduction() {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}

	if cfg.LogLevel != "" {
		level, err := zapcore.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		zcfg.Level = zap.NewAtomicLevelAt(level)
	}

	return zcfg.Build()
}

// ProvideClock returns the wall clock
func ProvideClock() utils.Clock {
	return utils.NewRealClock()
}

// ProvideEntityStore creates the in-memory user and post store
func ProvideEntityStore(clock utils.Clock, logger *zap.Logger) *memory.EntityStore {
	return memory.NewEntityStore(
		memory.WithClock(clock),
		memory.WithLogger(logger.Named("store")),
	)
}

// ProvideLikeIndex creates the in-memory like index
func ProvideLikeIndex(logger *zap.Logger) *memory.LikeIndex {
	return memory.NewLikeIndex(logger.Named("likes"))
}

// ProvideMetrics creates the prometheus collector
func ProvideMetrics() *observability.Collector {
	return observability.NewCollector("postboard")
}

// ProvideJWTService creates the token service
func ProvideJWTService(cfg *config.Config, clock utils.Clock) (*auth.JWTService, error) {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:  cfg.JWTSecret,
		Issuer:     cfg.JWTIssuer,
		ExpiryTime: cfg.JWTTTL,
	}, clock)
}

// ProvidePasswordHasher creates the bcrypt hasher
func ProvidePasswordHasher(cfg *config.Config) *auth.BcryptHasher {
	return auth.NewBcryptHasher(cfg.BcryptCost)
}

// ProvideRateLimiter creates the per-IP rate limiter
func ProvideRateLimiter(cfg *config.Config, clock utils.Clock) *auth.IPRateLimiter {
	return auth.NewIPRateLimiter(cfg.RateLimitPerMinute, clock)
}

// ProvideErrorHandler creates the HTTP error handler
func ProvideErrorHandler(cfg *config.Config, logger *zap.Logger) *errors.ErrorHandler {
	return errors.NewErrorHandler(logger, cfg.IsDevelopment())
}

// ProvidePostViewAssembler creates the post view assembler
func ProvidePostViewAssembler(users ports.UserRepository, likes ports.LikeRepository) *queries.PostViewAssembler {
	return queries.NewPostViewAssembler(users, likes)
}

// ProvideCommandBus creates and configures the command bus
func ProvideCommandBus(
	likes ports.LikeRepository,
	metrics ports.Metrics,
	logger *zap.Logger,
) (*bus.CommandBus, error) {
	commandBus := bus.NewCommandBus(bus.LoggingMiddleware(logger.Named("commands")))

	likeHandler := commands_handlers.NewLikePostHandler(likes, metrics, logger)
	if err := likeHandler.Register(commandBus); err != nil {
		return nil, err
	}

	return commandBus, nil
}

// ProvideQueryBus creates and configures the query bus
func ProvideQueryBus(
	posts ports.PostRepository,
	assembler *queries.PostViewAssembler,
	metrics ports.Metrics,
	logger *zap.Logger,
) (*querybus.QueryBus, error) {
	queryBus := querybus.NewQueryBus(
		querybus.NewLoggingMiddleware(logger.Named("queries"), slowQueryThreshold).Wrap,
	)

	postHandler := queries_handlers.NewPostQueryHandler(posts, assembler, metrics, logger)
	if err := postHandler.Register(queryBus); err != nil {
		return nil, err
	}

	return queryBus, nil
}
