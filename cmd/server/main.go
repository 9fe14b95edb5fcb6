package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"coachdesk/coach-organizer/internal/api"
	"coachdesk/coach-organizer/internal/config"
	"coachdesk/coach-organizer/internal/storage"
	"coachdesk/coach-organizer/internal/store"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
	log.Info("starting coach organizer")

	engine, err := storage.OpenSQLite(cfg.Storage.Path)
	if err != nil {
		log.Fatalf("could not open local storage: %v", err)
	}
	defer func() {
		if err := engine.Close(); err != nil {
			log.WithError(err).Error("closing local storage failed")
		}
	}()

	ctx := context.Background()

	catalog, err := store.NewCatalogStore(ctx, engine)
	if err != nil {
		log.Fatalf("exercise catalog: %v", err)
	}
	clients, err := store.NewClientStore(ctx, engine)
	if err != nil {
		log.Fatalf("client registry: %v", err)
	}
	calendar, err := store.NewCalendarStore(ctx, engine)
	if err != nil {
		log.Fatalf("calendar store: %v", err)
	}
	templates, err := store.NewTemplateStore(ctx, engine, calendar)
	if err != nil {
		log.Fatalf("template store: %v", err)
	}
	workouts, err := store.NewWorkoutStore(ctx, engine)
	if err != nil {
		log.Fatalf("workout store: %v", err)
	}
	history, err := store.NewHistoryStore(ctx, engine)
	if err != nil {
		log.Fatalf("history store: %v", err)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), api.RequestLogger(), api.CORSMiddleware())

	api.SetupRoutes(router, api.Stores{
		Catalog:   catalog,
		Clients:   clients,
		Templates: templates,
		Calendar:  calendar,
		Workouts:  workouts,
		History:   history,
	})

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Infof("listening on %s", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Info("server exiting")
}
