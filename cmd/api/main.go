package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bitefinder/internal/cart"
	"bitefinder/internal/checkout"
	"bitefinder/internal/config"
	"bitefinder/internal/db"
	"bitefinder/internal/events"
	"bitefinder/internal/httpserver"
	orderrepo "bitefinder/internal/repository/order"
	restaurantrepo "bitefinder/internal/repository/restaurant"
	tokenrepo "bitefinder/internal/repository/token"
	userrepo "bitefinder/internal/repository/user"
	identitysvc "bitefinder/internal/service/identity"
	ordersvc "bitefinder/internal/service/order"
	restaurantsvc "bitefinder/internal/service/restaurant"
)

// cartTTL bounds how long an abandoned Redis-backed cart survives.
const cartTTL = 24 * time.Hour

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	var cartStore cart.Store = cart.NewMemory()
	if cfg.RedisAddr != "" {
		client, err := db.ConnectRedis(ctx, cfg.RedisAddr)
		if err != nil {
			logger.Fatalf("connect to redis: %v", err)
		}
		defer client.Close()
		cartStore = cart.NewRedis(client, cartTTL)
		logger.Printf("carts stored in redis at %s", cfg.RedisAddr)
	}

	var publisher events.Publisher = events.Noop{}
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPub := events.NewKafka(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer kafkaPub.Close()
		publisher = kafkaPub
		logger.Printf("order events published to kafka topic %s", cfg.KafkaTopic)
	}

	userRepo := userrepo.NewPostgres(dbpool, logger)
	tokenRepo := tokenrepo.NewPostgres(dbpool)
	restaurantRepo := restaurantrepo.NewPostgres(dbpool, logger)
	orderRepo := orderrepo.NewPostgres(dbpool, logger)

	identityService := identitysvc.New(userRepo, tokenRepo)
	restaurantService := restaurantsvc.New(restaurantRepo)
	payments := checkout.NewProcessor(cfg.PaymentDelay, checkout.NewRandomDecider(cfg.PaymentSuccessRate))
	orderService := ordersvc.New(orderRepo, cartStore, payments, publisher, logger)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		IdentitySvc:   identityService,
		RestaurantSvc: restaurantService,
		CartStore:     cartStore,
		OrderSvc:      orderService,
		PublicBaseURL: cfg.PublicBaseURL,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

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
