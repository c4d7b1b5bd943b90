package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-booking/internal/db"
	"github.com/BruksfildServices01/barber-booking/internal/domain/session"
	"github.com/BruksfildServices01/barber-booking/internal/handlers"
	"github.com/BruksfildServices01/barber-booking/internal/infra/lock"
	infraRepo "github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/infra/sessionstore"
	"github.com/BruksfildServices01/barber-booking/internal/logger"
	"github.com/BruksfildServices01/barber-booking/internal/notification"
	"github.com/BruksfildServices01/barber-booking/internal/routes"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
	ucBooking "github.com/BruksfildServices01/barber-booking/internal/usecase/booking"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load config")
	}

	log := logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ======================================================
	// INFRA
	// ======================================================
	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to open database")
	}
	defer func() { _ = dbpkg.Close(db) }()

	repo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)
	defer auditDispatcher.Close()

	var (
		locker   lock.Locker   = lock.NewLocal()
		sessions session.Store = sessionstore.NewMemory(cfg.SessionTTL)
	)
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer func() { _ = rdb.Close() }()

		if err := rdb.Ping(ctx).Err(); err != nil {
			log.WithError(err).Fatal("failed to reach redis")
		}
		locker = lock.NewRedis(rdb, cfg.LockTTL, log)
		sessions = sessionstore.NewRedis(rdb, cfg.SessionTTL)
		log.WithField("addr", cfg.RedisAddr).Info("redis locks and sessions enabled")
	}

	notifier, closeNotifiers := buildNotifier(cfg, log)
	defer closeNotifiers()

	// ======================================================
	// USE CASES
	// ======================================================
	shop := ucBooking.Shop{
		Schedule: cfg.Schedule(),
		Catalog:  cfg.Catalog(),
		Location: timezone.Location(cfg.Timezone),
	}

	if err := ucBooking.NewSeedStaff(repo, cfg.Roster(), log).Execute(ctx); err != nil {
		log.WithError(err).Fatal("failed to seed staff")
	}

	availabilityUC := ucBooking.NewGetAvailability(repo, shop, cfg.StrictAvailabilityReads, log)
	createUC := ucBooking.NewCreateBooking(repo, shop, locker, notifier, auditDispatcher, log)
	manualUC := ucBooking.NewCreateManualBooking(repo, shop, notifier, auditDispatcher, log)
	deleteUC := ucBooking.NewDeleteBooking(repo, auditDispatcher)
	listDayUC := ucBooking.NewListDay(repo, shop)

	// ======================================================
	// HTTP
	// ======================================================
	authHandler, err := handlers.NewAuthHandler(cfg.AdminPassword, cfg.JWTSecret)
	if err != nil {
		log.WithError(err).Fatal("failed to prepare admin credentials")
	}

	gin.SetMode(cfg.GinMode)
	r := gin.New()

	routes.RegisterRoutes(r, routes.Handlers{
		Health:    handlers.NewHealthHandler(func(ctx context.Context) error { return dbpkg.Ping(ctx, db) }),
		Public:    handlers.NewPublicHandler(shop, repo, availabilityUC, createUC, log),
		Session:   handlers.NewSessionHandler(sessions, availabilityUC, createUC, log),
		Admin:     handlers.NewAdminHandler(listDayUC, manualUC, deleteUC, log),
		AuditLogs: handlers.NewAuditLogsHandler(auditLogger, shop, log),
		Auth:      authHandler,
	}, cfg.JWTSecret, log)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", cfg.Addr()).Info("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		log.WithError(err).Error("server failed")
	case <-ctx.Done():
		log.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
}

// buildNotifier wires every configured confirmation channel.
func buildNotifier(cfg *config.Config, log logrus.FieldLogger) (notification.Notifier, func()) {
	var (
		channels []notification.Notifier
		closers  []func() error
	)

	if len(cfg.KafkaBrokers) > 0 {
		k := notification.NewKafka(cfg.KafkaBrokers, cfg.KafkaTopic)
		channels = append(channels, k)
		closers = append(closers, k.Close)
		log.WithField("topic", cfg.KafkaTopic).Info("kafka confirmations enabled")
	}

	if cfg.TelegramBotToken != "" && cfg.TelegramChatID != 0 {
		tg, err := notification.NewTelegram(cfg.TelegramBotToken, cfg.TelegramChatID, log)
		if err != nil {
			log.WithError(err).Warn("telegram disabled")
		} else {
			channels = append(channels, tg)
			log.Info("telegram confirmations enabled")
		}
	}

	closeAll := func() {
		for _, c := range closers {
			if err := c(); err != nil {
				log.WithError(err).Warn("notifier close failed")
			}
		}
	}

	if len(channels) == 0 {
		return notification.NewNop(log), closeAll
	}
	return notification.NewMulti(log, channels...), closeAll
}
