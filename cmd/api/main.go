package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mrokonuzzaman040/techpinik-sub000/api/controllers"
	"github.com/mrokonuzzaman040/techpinik-sub000/api/routes"
	"github.com/mrokonuzzaman040/techpinik-sub000/internal/cart"
	"github.com/mrokonuzzaman040/techpinik-sub000/internal/catalog"
	"github.com/mrokonuzzaman040/techpinik-sub000/internal/categories"
	"github.com/mrokonuzzaman040/techpinik-sub000/internal/districts"
	"github.com/mrokonuzzaman040/techpinik-sub000/internal/media"
	"github.com/mrokonuzzaman040/techpinik-sub000/internal/orders"
	"github.com/mrokonuzzaman040/techpinik-sub000/internal/sliders"
	"github.com/mrokonuzzaman040/techpinik-sub000/pkg/config"
	"github.com/mrokonuzzaman040/techpinik-sub000/pkg/db"
	"github.com/mrokonuzzaman040/techpinik-sub000/pkg/logger"
	"github.com/mrokonuzzaman040/techpinik-sub000/pkg/metrics"
	"github.com/mrokonuzzaman040/techpinik-sub000/pkg/migrate"
	"github.com/mrokonuzzaman040/techpinik-sub000/pkg/redis"
	"github.com/mrokonuzzaman040/techpinik-sub000/pkg/storage/gcs"
)

const shutdownTimeout = 15 * time.Second

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logg := logger.New(logger.Options{
		ServiceName: "techpinik-api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logg); err != nil {
		logg.Error(ctx, "server exited with error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logg *logger.Logger) error {
	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		return err
	}
	defer dbClient.Close()

	if err := migrate.MaybeRunDev(ctx, cfg, logg, dbClient); err != nil {
		return err
	}

	redisClient, err := redis.New(ctx, cfg.Redis, logg)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	svcs, readiness, err := buildServices(ctx, cfg, logg, dbClient, redisClient)
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(registry)

	handler := routes.New(svcs, routes.Options{
		Logger:      logg,
		Metrics:     httpMetrics,
		Registry:    registry,
		CORSOrigins: cfg.App.CORSOrigins,
		Readiness:   readiness,
	})

	server := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		ctx := logg.WithField(ctx, "addr", server.Addr)
		logg.Info(ctx, "http server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		logg.Info(ctx, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logg.Info(ctx, "http server stopped")
	return nil
}

func buildServices(ctx context.Context, cfg *config.Config, logg *logger.Logger, dbClient *db.Client, redisClient *redis.Client) (routes.Services, map[string]controllers.Pinger, error) {
	var svcs routes.Services

	productRepo := catalog.NewRepository(dbClient.DB())
	categoryRepo := categories.NewRepository(dbClient.DB())
	districtRepo := districts.NewRepository(dbClient.DB())
	sliderRepo := sliders.NewRepository(dbClient.DB())
	orderRepo := orders.NewRepository(dbClient.DB())

	var err error
	if svcs.Catalog, err = catalog.NewService(productRepo, categoryRepo); err != nil {
		return svcs, nil, err
	}
	if svcs.Categories, err = categories.NewService(categoryRepo, productRepo); err != nil {
		return svcs, nil, err
	}
	if svcs.Districts, err = districts.NewService(districtRepo); err != nil {
		return svcs, nil, err
	}
	if svcs.Sliders, err = sliders.NewService(sliderRepo); err != nil {
		return svcs, nil, err
	}

	cartStore, err := cart.NewRedisStore(redisClient, cfg.Cart.TTL())
	if err != nil {
		return svcs, nil, err
	}
	if svcs.Cart, err = cart.NewService(cartStore, productRepo); err != nil {
		return svcs, nil, err
	}

	if svcs.Orders, err = orders.NewService(orderRepo, productRepo, districtRepo, dbClient, logg); err != nil {
		return svcs, nil, err
	}

	readiness := map[string]controllers.Pinger{
		"database": dbClient,
		"redis":    redisClient,
	}

	// Uploads stay disabled unless a bucket is configured.
	if cfg.Storage.BucketName != "" {
		storageClient, err := gcs.NewClient(ctx, cfg.Storage, logg)
		if err != nil {
			return svcs, nil, err
		}
		if svcs.Media, err = media.NewService(storageClient, cfg.Media); err != nil {
			return svcs, nil, err
		}
		readiness["storage"] = storageClient
	}

	return svcs, readiness, nil
}
