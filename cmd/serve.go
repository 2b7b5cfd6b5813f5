package cmd

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookmychair/config"
	"bookmychair/cron"
	"bookmychair/database"
	"bookmychair/handlers"
	"bookmychair/routes"
	"bookmychair/services/analytics"
	"bookmychair/services/booking"
	"bookmychair/services/chair"
	"bookmychair/services/notification"
	"bookmychair/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runServer(); err != nil {
			logger.Fatal("server failed", zap.Error(err))
		}
	},
}

// newBroadcaster picks the fan-out backend. Relays are returned separately so
// the caller can run and close them.
func newBroadcaster(hub *notification.Hub, redisClient *redis.Client) (notification.Broadcaster, notification.Relay) {
	switch config.AppConfig.NotifierBackend {
	case "redis":
		if redisClient == nil {
			logger.Warn("NOTIFIER_BACKEND=redis without REDIS_ADDR; falling back to local")
			return hub, nil
		}
		relay := notification.NewRedisRelay(redisClient, config.AppConfig.NotifierChannel, hub, logger)
		return relay, relay
	case "amqp":
		relay := notification.NewAMQPRelay(config.AppConfig.AMQPURL, config.AppConfig.NotifierChannel, hub, logger)
		return relay, relay
	default:
		return hub, nil
	}
}

func runServer() error {
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	st, err := openStores(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close(context.Background()) }()

	redisClient, err := utils.InitCache(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = utils.CloseCache() }()

	hub := notification.NewHub(logger)
	broadcaster, relay := newBroadcaster(hub, redisClient)
	if relay != nil {
		go func() {
			if err := relay.Run(ctx); err != nil {
				logger.Error("notifier relay stopped", zap.Error(err))
			}
		}()
		defer func() { _ = relay.Close() }()
	}

	// services.
	chairService := &chair.DefaultChairService{
		Repo:     st.Chairs,
		Notifier: broadcaster,
		Logger:   logger,
	}
	if redisClient != nil {
		chairService.Cache = &chair.RedisListCache{
			Client: redisClient,
			TTL:    config.AppConfig.ChairCacheTTL,
			Logger: logger,
		}
	}
	bookingService := booking.NewBookingService(st.Bookings, booking.CancelPolicy{
		StrictCancel: config.AppConfig.BookingStrictCancel,
		RequireOwner: config.AppConfig.BookingCancelRequiresOwner,
	}, logger)
	analyticsService := &analytics.DefaultAnalyticsService{
		Repo:       st.Bookings,
		HourSource: config.AppConfig.AnalyticsPeakHourSource,
	}

	checks := map[string]utils.HealthCheck{}
	if !st.Memory {
		checks["mongo"] = func(ctx context.Context) error { return database.MongoClient.Ping(ctx, nil) }
	}
	if redisClient != nil {
		checks["redis"] = func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }
	}
	var monitor *utils.HealthMonitor
	if len(checks) > 0 {
		monitor = utils.NewHealthMonitor(checks)
		monitor.Start(ctx, time.Minute)
	}

	handlerBundle := handlers.NewHandlerBundle(
		handlers.NewBookingHandler(bookingService),
		handlers.NewChairHandler(chairService),
		handlers.NewAnalyticsHandler(analyticsService),
		handlers.NewEventsHandler(hub),
		handlers.HealthHandler(monitor),
	)
	router := routes.NewRouter(routes.RouterOptions{
		AllowedOrigins:    config.AppConfig.AllowedOrigins(),
		MaxRequestsPerMin: config.AppConfig.MaxRequestsPerMin,
		Logger:            logger,
	}, handlerBundle)

	if url := config.AppConfig.KeepAliveURL; url != "" {
		keepAlive := cron.NewKeepAlive(url, logger)
		if err := keepAlive.Start(config.AppConfig.KeepAliveSchedule); err != nil {
			return err
		}
		defer keepAlive.Stop()
	}

	port := config.AppConfig.AppPort
	if port == "" {
		port = "5001"
	}
	srv := &http.Server{
		Addr:        "0.0.0.0:" + port,
		Handler:     router,
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	serveErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-serveErr:
		return err
	}
	logger.Info("server is shutting down...")

	// Streaming clients hold their requests open; cancel them first.
	stop()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("server stopped gracefully")
	return nil
}
