package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	cartapp "github.com/shopforge/storefront/internal/cart/app"
	carthttp "github.com/shopforge/storefront/internal/cart/http"
	cartpg "github.com/shopforge/storefront/internal/cart/infra/postgres"
	catalogapp "github.com/shopforge/storefront/internal/catalog/app"
	cataloghttp "github.com/shopforge/storefront/internal/catalog/http"
	catalogpg "github.com/shopforge/storefront/internal/catalog/infra/postgres"
	catalogredis "github.com/shopforge/storefront/internal/catalog/infra/redis"
	"github.com/shopforge/storefront/internal/httpapi"
	identityapp "github.com/shopforge/storefront/internal/identity/app"
	identityhttp "github.com/shopforge/storefront/internal/identity/http"
	identitypg "github.com/shopforge/storefront/internal/identity/infra/postgres"
	orderapp "github.com/shopforge/storefront/internal/order/app"
	orderhttp "github.com/shopforge/storefront/internal/order/http"
	orderpg "github.com/shopforge/storefront/internal/order/infra/postgres"
	wishlistapp "github.com/shopforge/storefront/internal/wishlist/app"
	wishlisthttp "github.com/shopforge/storefront/internal/wishlist/http"
	wishlistpg "github.com/shopforge/storefront/internal/wishlist/infra/postgres"
	"github.com/shopforge/storefront/pkg/config"
	"github.com/shopforge/storefront/pkg/logger"
	"github.com/shopforge/storefront/pkg/postgres"
	"github.com/shopforge/storefront/pkg/shutdown"
)

func main() {
	configPath := flag.String("config", os.Getenv("STOREFRONT_CONFIG"), "path to yaml config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.New(logger.Options{Service: "storefront-api"}).Error("load config", "error", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Service: "storefront-api",
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		File:    cfg.App.LogFile,
	})

	if cfg.App.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := postgres.Open(postgres.Config{
		Host:    cfg.Postgres.Host,
		Port:    cfg.Postgres.Port,
		User:    cfg.Postgres.User,
		Pass:    cfg.Postgres.Password,
		DB:      cfg.Postgres.Database,
		SSLMode: cfg.Postgres.SSLMode,
		MaxOpen: cfg.Postgres.MaxOpenConns,
		MaxIdle: cfg.Postgres.MaxIdleConns,
		MaxLife: cfg.Postgres.ConnMaxLifetime,
	})
	if err != nil {
		log.Error("connect postgres", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var productCache catalogapp.ProductCache
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
		})
		defer rdb.Close()
		productCache = catalogredis.NewProductCache(rdb, cfg.Redis.ProductTTL)
		log.Info("product cache enabled", "addr", cfg.Redis.Addr)
	}

	secret := []byte(cfg.Auth.JWTSecret)

	identitySvc := identityapp.NewService(identitypg.NewUserRepo(db), secret, cfg.Auth.TokenTTL, log)
	catalogSvc := catalogapp.NewService(catalogpg.NewProductRepo(db), productCache)
	cartSvc := cartapp.NewService(cartpg.NewCartRepo(db))
	wishlistSvc := wishlistapp.NewService(wishlistpg.NewWishlistRepo(db))
	orderSvc := orderapp.NewService(orderpg.NewOrderRepo(db), log)

	router := httpapi.NewRouter(httpapi.Handlers{
		Identity: identityhttp.NewHandler(identitySvc),
		Catalog:  cataloghttp.NewHandler(catalogSvc),
		Cart:     carthttp.NewHandler(cartSvc),
		Wishlist: wishlisthttp.NewHandler(wishlistSvc),
		Order:    orderhttp.NewHandler(orderSvc),
	}, db, secret, log)

	srv := &http.Server{
		Addr:         cfg.App.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info("http server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server", "error", err)
			cancel()
		}
	}()

	if err := shutdown.Drain(ctx, srv, 10*time.Second); err != nil {
		log.Error("graceful shutdown", "error", err)
	}

	wg.Wait()
	log.Info("bye")
}
