package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"perfume-designer/internal/client"
	"perfume-designer/internal/config"
	"perfume-designer/internal/repository"
	"perfume-designer/internal/server"
	"perfume-designer/internal/service"
	"perfume-designer/internal/session"
	"perfume-designer/internal/telemetry"
	"perfume-designer/internal/web"
	"syscall"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const serviceName = "perfume-designer"

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	log, err := telemetry.NewLogger(cfg.Log, cfg.Environment)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx := context.Background()

	meter, shutdownMeter, err := telemetry.SetupMeter(ctx, cfg.Telemetry, serviceName)
	if err != nil {
		log.Fatal("init metrics exporter", zap.Error(err))
	}
	metrics, err := telemetry.NewMetrics(meter)
	if err != nil {
		log.Fatal("init metrics", zap.Error(err))
	}

	db, err := client.InitDBClient(cfg.Database)
	if err != nil {
		log.Fatal("init database", zap.Error(err))
	}

	questionRepo := repository.NewQuestionRepository(db)
	pricingRepo := repository.NewPricingRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	if err := questionRepo.SeedDefaults(ctx); err != nil {
		log.Fatal("seed questions", zap.Error(err))
	}

	generationClient := client.NewGenerationClient(&cfg.Generation)

	orderService := service.NewOrderService(
		questionRepo,
		pricingRepo,
		orderRepo,
		generationClient,
		metrics,
		log,
	)
	adminService := service.NewAdminService(
		questionRepo,
		pricingRepo,
		orderRepo,
		cfg.UploadDir,
		log,
	)

	renderer, err := web.NewRenderer()
	if err != nil {
		log.Fatal("parse templates", zap.Error(err))
	}

	srv := server.NewServer(server.Deps{
		OrderService: orderService,
		AdminService: adminService,
		Verifier:     service.NewStaticCredentials(cfg.Admin),
		Sessions:     session.NewStore(cfg.Session, cfg.Environment.Name == "production"),
		Renderer:     renderer,
		Log:          log,
	})

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	log.Info("Starting HTTP server", zap.String("addr", serverAddr))
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Info("Signal received, starting graceful shutdown...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", zap.Error(err))
	}
	if err := shutdownMeter(shutdownCtx); err != nil {
		log.Error("metrics shutdown error", zap.Error(err))
	}
}
