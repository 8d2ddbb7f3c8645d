package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	grpcgo "google.golang.org/grpc"

	"github.com/trainlcd/stationapi/internal/config"
	stationgrpc "github.com/trainlcd/stationapi/internal/delivery/grpc"
	"github.com/trainlcd/stationapi/internal/pb"
	"github.com/trainlcd/stationapi/internal/pkg/logger"
	"github.com/trainlcd/stationapi/internal/repository/postgres"
	"github.com/trainlcd/stationapi/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting StationApi", zap.String("server_addr", cfg.GetServerAddr()))

	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := db.Health(ctx); err != nil {
		cancel()
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}
	cancel()
	log.Info("PostgreSQL connected")

	stationRepo := postgres.NewStationRepository(db, log)
	lineRepo := postgres.NewLineRepository(db, log)
	companyRepo := postgres.NewCompanyRepository(db, log)
	trainTypeRepo := postgres.NewTrainTypeRepository(db, log)

	interactor := usecase.NewQueryInteractor(stationRepo, lineRepo, companyRepo, trainTypeRepo, log)

	handler := stationgrpc.NewStationApiHandler(interactor, log)

	server := grpcgo.NewServer(
		grpcgo.ChainUnaryInterceptor(
			stationgrpc.RecoveryInterceptor(log),
			stationgrpc.LoggingInterceptor(log),
		),
	)
	pb.RegisterStationApiServer(server, handler)

	lis, err := net.Listen("tcp", cfg.GetServerAddr())
	if err != nil {
		log.Fatal("Failed to bind listener", zap.Error(err), zap.String("addr", cfg.GetServerAddr()))
	}

	go func() {
		log.Info("gRPC server listening", zap.String("address", cfg.GetServerAddr()))
		if err := server.Serve(lis); err != nil {
			log.Fatal("gRPC server stopped unexpectedly", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down gRPC server gracefully...")
	server.GracefulStop()
	log.Info("Server stopped successfully")
}
