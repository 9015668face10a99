package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/hyeonbin/boardhub/internal/es"
	"github.com/hyeonbin/boardhub/internal/events"
	"github.com/hyeonbin/boardhub/internal/httpserver"
	"github.com/hyeonbin/boardhub/internal/metrics"
	appmw "github.com/hyeonbin/boardhub/internal/middleware"
	"github.com/hyeonbin/boardhub/internal/models"
	"github.com/hyeonbin/boardhub/internal/repo"
	"github.com/hyeonbin/boardhub/internal/service"
	"github.com/hyeonbin/boardhub/pkg/config"
	"github.com/hyeonbin/boardhub/pkg/db"
	"github.com/hyeonbin/boardhub/pkg/logging"
)

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	gormDB, err := db.Open(initCtx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}
	if err := gormDB.AutoMigrate(&models.User{}, &models.Board{}, &models.Article{}); err != nil {
		log.Fatalf("db migrate error: %v", err)
	}

	var producer events.Publisher = events.NopPublisher{}
	var kafkaProducer *events.KafkaProducer
	if len(cfg.KafkaBrokers) > 0 {
		kafkaProducer = events.NewKafkaProducer(cfg.KafkaBrokers)
		producer = kafkaProducer
	} else {
		logger.Warn("KAFKA_ADDRESS not set, domain events are disabled")
	}

	var searchSvc *service.SearchService
	if cfg.ESURL != "" {
		esClient, err := es.NewClient(cfg)
		if err != nil {
			log.Fatalf("elasticsearch init error: %v", err)
		}
		searchSvc = &service.SearchService{ES: esClient, Index: "posts"}
	} else {
		logger.Warn("ES_URL not set, search is disabled")
	}

	gormRepo := &repo.GormRepo{DB: gormDB}

	authSvc := &service.AuthService{
		Directory: gormRepo,
		JWTSecret: cfg.JWTSecret,
		TokenTTL:  cfg.TokenTTL,
	}
	boardSvc := &service.BoardService{Repo: gormRepo, Search: searchSvc}
	articleSvc := &service.ArticleService{Repo: gormRepo, Search: searchSvc}
	blogSvc := &service.BlogService{Repo: repo.NewBlogStore()}

	e := echo.New()
	e.HideBanner = true
	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(echomw.Recover(), echomw.RequestID())
	e.Use(appmw.RequestLogger(logger))
	e.Use(metrics.Middleware())
	e.GET("/metrics", metrics.Handler())

	httpserver.Register(e, &httpserver.Deps{
		Auth:           appmw.NewAuth(gormRepo, cfg.JWTSecret),
		AuthHandler:    &httpserver.AuthHTTP{Svc: authSvc, Producer: producer},
		BoardHandler:   &httpserver.BoardHTTP{Svc: boardSvc, Producer: producer},
		ArticleHandler: &httpserver.ArticleHTTP{Svc: articleSvc, Producer: producer},
		BlogHandler:    &httpserver.BlogHTTP{Svc: blogSvc},
		SearchHandler:  &httpserver.SearchHTTP{Svc: searchSvc},
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		logger.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if sqlDB, err := gormDB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Error("db close error", "error", err)
		}
	}

	if kafkaProducer != nil {
		if err := kafkaProducer.Close(); err != nil {
			logger.Error("kafka close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
