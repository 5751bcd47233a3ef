package bootstrap

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/rentaride/rentaride/config"
	"github.com/rentaride/rentaride/internal/adapters/memtoken"
	"github.com/rentaride/rentaride/internal/adapters/redistoken"
	"github.com/rentaride/rentaride/internal/adapters/restapi"
	"github.com/rentaride/rentaride/internal/adapters/tokenfile"
	"github.com/rentaride/rentaride/internal/ports"
	"github.com/rentaride/rentaride/internal/service"
)

// App bundles the wired client core for the CLI.
type App struct {
	Config    config.AppConfig
	Logger    *slog.Logger
	Session   *service.Manager
	Cars      *service.CarService
	Bookings  *service.BookingService
	Reviews   *service.ReviewService
	Users     *service.UserService
	Dashboard *service.DashboardService
}

// NewApp wires the token store, REST client, session manager, and page
// services. The returned cleanup releases any store connections.
func NewApp(cfg config.AppConfig, logger *slog.Logger) (*App, func(), error) {
	store, cleanup, err := newTokenStore(cfg.Session)
	if err != nil {
		return nil, nil, err
	}

	client := restapi.New(restapi.Options{
		BaseURL:    cfg.API.BaseURL,
		HTTPClient: &http.Client{Timeout: cfg.API.Timeout},
		Logger:     logger,
	})

	session := service.NewManager(service.ManagerOptions{
		Backend: client,
		Store:   store,
		Logger:  logger,
	})

	app := &App{
		Config:    cfg,
		Logger:    logger,
		Session:   session,
		Cars:      service.NewCarService(client, session),
		Bookings:  service.NewBookingService(client, session),
		Reviews:   service.NewReviewService(client, session),
		Users:     service.NewUserService(client, client, session),
		Dashboard: service.NewDashboardService(client, session),
	}
	return app, cleanup, nil
}

// newTokenStore builds the durable token slot selected by configuration.
func newTokenStore(cfg config.SessionConfig) (ports.TokenStore, func(), error) {
	noop := func() {}
	switch cfg.Store {
	case config.StoreFile:
		return tokenfile.New(cfg.TokenPath), noop, nil
	case config.StoreMemory:
		return memtoken.New(), noop, nil
	case config.StoreRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		cleanup := func() {
			_ = client.Close()
		}
		return redistoken.NewWithKey(client, cfg.Redis.Key), cleanup, nil
	default:
		return nil, nil, fmt.Errorf("unknown session store backend %q", cfg.Store)
	}
}
