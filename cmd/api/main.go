package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/hadir-hr/hadir-backend-go/internal/config"
	"github.com/hadir-hr/hadir-backend-go/internal/domain/notification"
	appHTTP "github.com/hadir-hr/hadir-backend-go/internal/handler/http"
	"github.com/hadir-hr/hadir-backend-go/internal/pkg/cron"
	"github.com/hadir-hr/hadir-backend-go/internal/pkg/database"
	"github.com/hadir-hr/hadir-backend-go/internal/pkg/jwt"
	"github.com/hadir-hr/hadir-backend-go/internal/pkg/telegram"
	"github.com/hadir-hr/hadir-backend-go/internal/repository/postgresql"
	checkinService "github.com/hadir-hr/hadir-backend-go/internal/service/checkin"
	"github.com/hadir-hr/hadir-backend-go/internal/service/engine"
	"github.com/hadir-hr/hadir-backend-go/internal/service/latebalance"
	notificationService "github.com/hadir-hr/hadir-backend-go/internal/service/notification"
	statisticsService "github.com/hadir-hr/hadir-backend-go/internal/service/statistics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel(cfg.App.LogLevel)})))

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		slog.Error("Error connecting to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	adjustmentRepo := postgresql.NewAdjustmentRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	policyRepo := postgresql.NewPolicyRepository(db)
	checkinRequestRepo := postgresql.NewCheckinRequestRepository(db)
	transactor := postgresql.NewTransactor(db)

	var sender notification.Sender = telegram.LogSender{}
	if cfg.Telegram.BotToken != "" {
		botSender, err := telegram.NewSender(cfg.Telegram.BotToken, cfg.Telegram.Debug)
		if err != nil {
			slog.Error("Failed to initialize telegram bot, notifications will only be logged", "error", err)
		} else {
			sender = botSender
		}
	}
	notificationSvc := notificationService.NewNotificationService(sender, notificationService.Config{
		WorkerCount: cfg.Notification.WorkerCount,
		QueueSize:   cfg.Notification.QueueSize,
		SendTimeout: cfg.Notification.SendTimeout,
	})

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	adjustmentEngine := engine.NewAdjustmentEngine(transactor, attendanceRepo, adjustmentRepo, employeeRepo, policyRepo, notificationSvc)
	reviewSvc := checkinService.NewReviewService(transactor, checkinRequestRepo, adjustmentEngine)
	statisticsSvc := statisticsService.NewStatisticsService(attendanceRepo, adjustmentRepo, employeeRepo, policyRepo)

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		appHTTP.NewHookHandler(adjustmentEngine),
		appHTTP.NewAttendanceHandler(adjustmentEngine),
		appHTTP.NewCheckinHandler(reviewSvc),
		appHTTP.NewStatisticsHandler(statisticsSvc),
	)

	scheduler := cron.NewScheduler()
	if cfg.Cron.Enabled {
		cron.RegisterLateBalanceReset(scheduler, latebalance.NewTracker(employeeRepo), cfg.Cron.BalanceResetTick)
		scheduler.Start()
	}

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("Server running", "addr", server.Addr, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown error", "error", err)
	}
	if cfg.Cron.Enabled {
		scheduler.Stop()
	}
	// after the server so in-flight requests can still queue messages
	notificationSvc.Stop()
}

func logLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
