package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"tableside/internal/config"
	"tableside/internal/db"
	"tableside/internal/httpserver"
	"tableside/internal/kvstore"
	menurepo "tableside/internal/repository/menu"
	orderrepo "tableside/internal/repository/order"
	restaurantrepo "tableside/internal/repository/restaurant"
	sessionrepo "tableside/internal/repository/session"
	authsvc "tableside/internal/service/auth"
	menusvc "tableside/internal/service/menu"
	ordersvc "tableside/internal/service/order"
	paymentsvc "tableside/internal/service/payment"
	"tableside/internal/tips"
)

func main() {
	_ = godotenv.Load()

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	var state kvstore.Store
	if cfg.RedisAddr != "" {
		redisStore := kvstore.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err := redisStore.Ping(ctx); err != nil {
			logger.Fatalf("connect to redis: %v", err)
		}
		defer redisStore.Close()
		state = redisStore
		logger.Printf("state store: redis at %s", cfg.RedisAddr)
	} else {
		state = kvstore.NewMemory()
		logger.Printf("state store: in-memory")
	}

	restaurantRepo := restaurantrepo.NewPostgres(dbpool, logger)
	sessionRepo := sessionrepo.NewPostgres(dbpool)
	menuRepo := menurepo.NewPostgres(dbpool, logger)
	orderRepo := orderrepo.NewPostgres(dbpool, logger)

	tracker := tips.NewTracker(state)
	authService := authsvc.New(restaurantRepo, sessionRepo, cfg.SessionTTL)
	menuService := menusvc.New(menuRepo)
	orderService := ordersvc.New(orderRepo)
	paymentService := paymentsvc.New(tracker)

	srv := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		Auth:     authService,
		Menu:     menuService,
		Orders:   orderService,
		Payments: paymentService,
		Methods:  paymentsvc.NewMethods(state),
		State:    state,
	}, cfg.Origins())

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
