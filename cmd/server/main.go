package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/airhart/airport-api/config"
	"github.com/airhart/airport-api/internal/app"
	"github.com/airhart/airport-api/internal/cache"
	"github.com/airhart/airport-api/internal/handler"
	"github.com/airhart/airport-api/internal/model"
	"github.com/airhart/airport-api/internal/mq"

	amqp "github.com/rabbitmq/amqp091-go"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("connect postgres", zap.Error(err))
	}
	if err := db.AutoMigrate(
		&model.User{},
		&model.Airport{},
		&model.Route{},
		&model.AirplaneType{},
		&model.Airplane{},
		&model.Crew{},
		&model.Flight{},
		&model.Order{},
		&model.Ticket{},
	); err != nil {
		logger.Fatal("migrate schema", zap.Error(err))
	}

	redisCache, err := cache.NewRedisCache(cfg.CacheURL, cfg.FlightsCacheTTL)
	if err != nil {
		logger.Fatal("connect redis", zap.Error(err))
	}

	var mqConn *amqp.Connection
	if cfg.MQURL != "" {
		mqConn, err = mq.NewMQConn(cfg.MQURL)
		if err != nil {
			logger.Fatal("connect rabbitmq", zap.Error(err))
		}
		defer mqConn.Close()
	}

	application := app.New(cfg, db, redisCache, mqConn, logger)
	if err := application.Init(); err != nil {
		logger.Fatal("init app", zap.Error(err))
	}
	defer application.Close()

	router := handler.NewRouter(application)
	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server listening", zap.String("addr", cfg.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}
