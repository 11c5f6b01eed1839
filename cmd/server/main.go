package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/liveaevi/skincare-api/internal/config"
	"github.com/liveaevi/skincare-api/internal/es"
	"github.com/liveaevi/skincare-api/internal/events"
	"github.com/liveaevi/skincare-api/internal/httpserver"
	"github.com/liveaevi/skincare-api/internal/logging"
	"github.com/liveaevi/skincare-api/internal/repo"
	"github.com/liveaevi/skincare-api/internal/service"
)

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(configuration.LOG_LEVEL)
	slog.SetDefault(logger)

	db, err := config.InitDB(configuration)
	if err != nil {
		log.Fatalf("database init error: %v", err)
	}
	if err := config.Seed(db); err != nil {
		log.Fatalf("seed error: %v", err)
	}

	jwtSecret := []byte(configuration.JWT_SECRET)

	var producer *events.Producer
	if configuration.KAFKA_ADDRESS != "" {
		producer = events.NewProducer([]string{configuration.KAFKA_ADDRESS}, configuration.KAFKA_TOPIC)
	}

	gormRepo := repo.New(db)

	var searchHTTP *httpserver.SearchHTTP
	if configuration.ES_URL != "" {
		esClient, err := es.NewClient(configuration)
		if err != nil {
			log.Fatalf("elasticsearch init error: %v", err)
		}
		searchHTTP = &httpserver.SearchHTTP{
			Svc: &service.SearchService{ES: esClient, Index: "products"},
		}
	}

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID(), middleware.CORS())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			l := logger.With("request_id", c.Response().Header().Get(echo.HeaderXRequestID))
			c.SetRequest(req.WithContext(logging.IntoContext(req.Context(), l)))
			return next(c)
		}
	})

	deps := httpserver.Deps{
		JWTSecret: jwtSecret,
		Auth: &httpserver.AuthHTTP{
			Svc: &service.AuthService{Repo: gormRepo, JWTSecret: jwtSecret, Producer: producer},
		},
		Catalog: &httpserver.CatalogHTTP{
			Svc: &service.CatalogService{Repo: gormRepo},
		},
		Engagement: &httpserver.EngagementHTTP{
			Svc: &service.EngagementService{Repo: gormRepo, Producer: producer},
		},
		Cart: &httpserver.CartHTTP{
			Svc: &service.CartService{Repo: gormRepo, Producer: producer},
		},
		Search: searchHTTP,
	}

	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         configuration.HTTP_ADDR,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	} else {
		log.Printf("db() error: %v", err)
	}

	if err := producer.Close(); err != nil {
		log.Printf("kafka close error: %v", err)
	}

	log.Println("shutdown complete")
}
