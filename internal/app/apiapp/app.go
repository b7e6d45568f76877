package apiapp

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Legal-Mentors-Network/backend/internal/config"
	pgrepo "github.com/Legal-Mentors-Network/backend/internal/repo/postgres"
	redrepo "github.com/Legal-Mentors-Network/backend/internal/repo/redis"
	connsvc "github.com/Legal-Mentors-Network/backend/internal/services/connections"
	discoverysvc "github.com/Legal-Mentors-Network/backend/internal/services/discovery"
	likessvc "github.com/Legal-Mentors-Network/backend/internal/services/likes"
	matchessvc "github.com/Legal-Mentors-Network/backend/internal/services/matches"
	ratesvc "github.com/Legal-Mentors-Network/backend/internal/services/rate"
	swipesvc "github.com/Legal-Mentors-Network/backend/internal/services/swipes"
	userssvc "github.com/Legal-Mentors-Network/backend/internal/services/users"
)

type App struct {
	cfg        config.Config
	logger     *zap.Logger
	server     *http.Server
	postgres   *pgxpool.Pool
	redis      *goredis.Client
	httpRouter http.Handler
}

func New(ctx context.Context, cfg config.Config, log *zap.Logger) (*App, error) {
	if log == nil {
		return nil, fmt.Errorf("logger is nil")
	}

	r := chi.NewRouter()
	ApplyMiddlewares(r, log)

	var pool *pgxpool.Pool
	if p, err := pgrepo.NewPool(ctx, cfg.Postgres.DSN); err != nil {
		log.Warn("postgres init failed, continuing in degraded mode", zap.Error(err))
	} else {
		pool = p
	}

	userRepo := pgrepo.NewUserRepo(pool)
	swipeRepo := pgrepo.NewSwipeRepo(pool)
	matchRepo := pgrepo.NewMatchRepo(pool)
	connectionRepo := pgrepo.NewConnectionRepo(pool)

	userService := userssvc.NewService(userRepo)

	swipeDeps := swipesvc.Dependencies{
		SwipeStore: swipeRepo,
		MatchStore: matchRepo,
		Users:      userService,
	}
	var redisClient *goredis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redrepo.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		swipeDeps.RateLimiter = ratesvc.NewLimiter(
			redrepo.NewRateRepo(redisClient),
			cfg.Limits.SwipesPerMinute,
			cfg.Limits.SwipesPer10Seconds,
		)
	} else {
		log.Warn("redis addr is empty, swipe rate limiting disabled")
	}
	swipeService := swipesvc.NewService(swipeDeps)
	discoveryService := discoverysvc.NewService(discoverysvc.Dependencies{
		Users:  userService,
		Swipes: swipeRepo,
	}, discoverysvc.Config{
		MaxLimit: cfg.Discovery.MaxLimit,
	})
	likeService := likessvc.NewService(swipeRepo)
	matchesService := matchessvc.NewService(matchessvc.Dependencies{
		Matches: matchRepo,
		Users:   userService,
	})
	connectionService := connsvc.NewService(connsvc.Dependencies{
		Connections: connectionRepo,
		Users:       userService,
	})

	server := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      r,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	RegisterRoutes(r, Dependencies{
		SwipeService:      swipeService,
		DiscoveryService:  discoveryService,
		LikeService:       likeService,
		MatchService:      matchesService,
		ConnectionService: connectionService,
		Logger:            log,
		Config:            cfg,
	})

	return &App{
		cfg:        cfg,
		logger:     log,
		server:     server,
		postgres:   pool,
		redis:      redisClient,
		httpRouter: r,
	}, nil
}

func (a *App) Run() error {
	a.logger.Info("api server started", zap.String("addr", a.cfg.HTTP.Addr))
	err := a.server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (a *App) Shutdown(ctx context.Context) error {
	var shutdownErr error

	if err := a.server.Shutdown(ctx); err != nil {
		shutdownErr = err
	}
	if a.postgres != nil {
		a.postgres.Close()
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil && shutdownErr == nil {
			shutdownErr = err
		}
	}

	return shutdownErr
}

func (a *App) Handler() http.Handler {
	return a.httpRouter
}
