package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/airhart/airport-api/config"
	"github.com/airhart/airport-api/internal/mq"
	"github.com/airhart/airport-api/internal/service/workflow"
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

	mqConn, err := mq.NewMQConn(cfg.MQURL)
	if err != nil {
		logger.Fatal("connect rabbitmq", zap.Error(err))
	}
	defer mqConn.Close()

	if err := mq.InitQueues(mqConn); err != nil {
		logger.Fatal("init queues", zap.Error(err))
	}

	notifications := workflow.NewNotificationWorkflow(logger)
	if err := notifications.Start(mqConn); err != nil {
		logger.Fatal("start notification workflow", zap.Error(err))
	}

	logger.Info("notifier running")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
}
