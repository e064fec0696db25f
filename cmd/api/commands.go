package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	_ "github.com/lib/pq"
	"github.com/pressly/goose"
	"golang.org/x/sync/errgroup"

	"github.com/ChairulIkhsan23/niyyah-backend/internal/api"
	"github.com/ChairulIkhsan23/niyyah-backend/internal/fetcher"
	"github.com/ChairulIkhsan23/niyyah-backend/internal/islamic"
	"github.com/ChairulIkhsan23/niyyah-backend/internal/repository"
	"github.com/ChairulIkhsan23/niyyah-backend/internal/service"
	"github.com/ChairulIkhsan23/niyyah-backend/pkg/cleanup"
	"github.com/ChairulIkhsan23/niyyah-backend/pkg/config"
	jwtservice "github.com/ChairulIkhsan23/niyyah-backend/pkg/jwt_service"
)

const shutdownTimeout = time.Second * 15

type ServeCmd struct {
	Address string `help:"Listen address, overrides API_ADDRESS."`
}

func (c *ServeCmd) Run(app *appContext) error {
	cfg := app.cfg
	if cfg.Auth.JWTSecret == "" {
		return errors.New("JWT_SECRET is not set")
	}
	if c.Address != "" {
		cfg.APIAddress = c.Address
	}
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := repository.NewPool(ctx, cfg.Postgres)
	if err != nil {
		return err
	}
	adapters, err := newAdapters(ctx, cfg)
	if err != nil {
		return err
	}

	tokenService := service.NewTokenService(
		repository.NewTokensRepoWithConn(pool),
		jwtservice.New(cfg.Auth.JWTSecret),
		cfg.Auth.TokenTTL,
	)
	google := service.NewGoogleVerifier(
		fetcher.New("google", cfg.Auth.GoogleTokenInfoURL, fetcher.Options{
			Timeout:  cfg.Upstream.Timeout,
			Attempts: 1,
			Logger:   slog.Default(),
		}),
		cfg.Auth.GoogleClientID,
	)
	serv := api.New(&api.ServicesList{
		UserService:  service.NewUserService(repository.NewUsersRepoWithConn(pool), tokenService, google, cfg.DefaultTimezone),
		TokenService: tokenService,
		LedgerService: service.NewLedgerService(
			repository.NewDaysRepoWithConn(pool),
			repository.NewStreaksRepoWithConn(pool),
			adapters.Quran,
			cfg.DefaultTimezone,
		),
		BookmarksService: service.NewBookmarksService(repository.NewBookmarksRepoWithConn(pool), adapters.Quran),
		Quran:            adapters.Quran,
		Schedule:         adapters.Schedule,
		Prayers:          adapters.Prayers,
		Qibla:            adapters.Qibla,
		Debug:            cfg.Debug,
		AuthRateLimit:    cfg.AuthRateLimit,
		AuthRateBurst:    cfg.AuthRateBurst,
		DefaultTimezone:  cfg.DefaultTimezone,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("api server started", slog.String("address", cfg.APIAddress))
		return serv.Run(cfg.APIAddress)
	})
	if cfg.WarmupOnStart {
		g.Go(func() error {
			// a failed warmup only means a colder cache
			if err := adapters.Warmup(gctx); err != nil {
				slog.Warn("cache warmup failed", slog.String("error", err.Error()))
			}
			return nil
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down api server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return serv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

type MigrateCmd struct {
	Dir       string `help:"Migrations directory." type:"path" default:"./migrations"`
	Direction string `arg:"" optional:"" enum:"up,down,status" default:"up" help:"One of up, down or status."`
}

func (c *MigrateCmd) Run(app *appContext) error {
	db, err := sql.Open("postgres", app.cfg.Postgres.ConnString())
	if err != nil {
		return errors.New("opening database error: " + err.Error())
	}
	defer db.Close()
	if err = goose.SetDialect("postgres"); err != nil {
		return err
	}
	switch c.Direction {
	case "down":
		err = goose.Down(db, c.Dir)
	case "status":
		err = goose.Status(db, c.Dir)
	default:
		err = goose.Up(db, c.Dir)
	}
	if err != nil {
		return errors.New("migrating " + c.Direction + " error: " + err.Error())
	}
	slog.Info("migrations finished", slog.String("direction", c.Direction))
	return nil
}

type WarmupCmd struct {
	Timeout time.Duration `help:"Overall warmup deadline." default:"2m"`
}

func (c *WarmupCmd) Run(app *appContext) error {
	ctx, cancel := context.WithTimeout(context.Background(), c.Timeout)
	defer cancel()
	adapters, err := newAdapters(ctx, app.cfg)
	if err != nil {
		return err
	}
	return adapters.Warmup(ctx)
}

// newAdapters picks the cache backend from CACHE_DRIVER.
func newAdapters(ctx context.Context, cfg *config.Config) (*islamic.Adapters, error) {
	var cache fetcher.Cache
	switch cfg.Cache.Driver {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.RedisAddr,
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, errors.New("pinging redis error: " + err.Error())
		}
		cleanup.Register(&cleanup.Job{
			Name: "closing redis client",
			F:    client.Close,
		})
		cache = fetcher.NewRedisCache(client)
	case "memory", "":
		memCache, err := fetcher.NewMemoryCache(cfg.Cache.MemorySize)
		if err != nil {
			return nil, err
		}
		cache = memCache
	default:
		return nil, errors.New("unknown cache driver: " + cfg.Cache.Driver)
	}
	slog.Info("cache backend ready", slog.String("driver", cfg.Cache.Driver))
	return islamic.NewAdapters(cfg.Upstream, cfg.Cache, cache, slog.Default()), nil
}
