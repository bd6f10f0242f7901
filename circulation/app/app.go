package app

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/JoshikaMadhu/Student-Resource-Distribution-System/circulation/config"
	"github.com/JoshikaMadhu/Student-Resource-Distribution-System/circulation/internal/handler"
	"github.com/JoshikaMadhu/Student-Resource-Distribution-System/circulation/internal/repository"
	"github.com/JoshikaMadhu/Student-Resource-Distribution-System/circulation/internal/server"
	"github.com/JoshikaMadhu/Student-Resource-Distribution-System/circulation/internal/service"
	"github.com/JoshikaMadhu/Student-Resource-Distribution-System/circulation/migrations"
	"github.com/JoshikaMadhu/Student-Resource-Distribution-System/pkg/kafka"
	"github.com/JoshikaMadhu/Student-Resource-Distribution-System/pkg/logger"
	"github.com/JoshikaMadhu/Student-Resource-Distribution-System/pkg/postgres"
	"go.uber.org/zap"
)

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "circulation")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return fmt.Errorf("db init %v", err)
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return fmt.Errorf("repo init %v", err)
	}

	producer, err := kafka.NewProducer(cfg.Kafka)
	if err != nil {
		return fmt.Errorf("kafka producer %v", err)
	}

	svc := service.NewService(service.Repositories{
		Inventory:     repo,
		Circulation:   repo,
		Fines:         repo,
		Notifications: repo,
		Resources:     repo,
		Events:        repo,
	}, service.NewEnqueuer(producer), cfg.Circulation, log)

	consumer, err := kafka.NewConsumer(cfg.Kafka, kafka.CirculationConsumerGroup)
	if err != nil {
		return fmt.Errorf("kafka consumer %v", err)
	}
	consumeCtx, consumeCancel := context.WithCancel(context.Background())
	defer consumeCancel()
	go kafka.Consume(consumeCtx, consumer, handler.NewConsumer(svc.RecordEvent, log), log, kafka.CirculationTopic)

	h := handler.New(svc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.Error("srv.Stop", zap.Error(err))
	}
	consumeCancel()
	if err := consumer.Close(); err != nil {
		log.Error("consumer.Close", zap.Error(err))
	}
	if err := producer.Close(); err != nil {
		log.Error("producer.Close", zap.Error(err))
	}
	db.Close()
	log.Info("Graceful shutdown finished")
	return nil
}
