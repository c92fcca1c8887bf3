package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/dev-star23/Audiophile/internal/config"
	"github.com/dev-star23/Audiophile/internal/db"
	"github.com/dev-star23/Audiophile/internal/httpserver"
	"github.com/dev-star23/Audiophile/internal/notify"
	"github.com/dev-star23/Audiophile/internal/repository/cartstore"
	productrepo "github.com/dev-star23/Audiophile/internal/repository/product"
	cartsvc "github.com/dev-star23/Audiophile/internal/service/cart"
	checkoutsvc "github.com/dev-star23/Audiophile/internal/service/checkout"
	recommendsvc "github.com/dev-star23/Audiophile/internal/service/recommend"
	"github.com/joho/godotenv"
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

	var storage cartstore.Storage
	if cfg.CartFile != "" {
		storage = cartstore.NewFile(cfg.CartFile)
	} else {
		storage = cartstore.NewMemory()
	}

	productRepo := productrepo.NewPostgres(dbpool, logger)
	cartStore := cartsvc.New(ctx, storage, logger)
	notifier := notify.NewSMTP(cfg.SMTP, logger)
	checkoutService := checkoutsvc.New(cartStore, notifier, logger)
	recommendService := recommendsvc.New(productRepo)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		ProductRepo:  productRepo,
		CartStore:    cartStore,
		CheckoutSvc:  checkoutService,
		RecommendSvc: recommendService,
		CORSOrigins:  cfg.CORSOrigins,
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
