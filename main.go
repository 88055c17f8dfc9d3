package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"bestdental/config"
	"bestdental/cron"
	"bestdental/database"
	"bestdental/database/repository"
	"bestdental/handlers"
	"bestdental/middleware"
	"bestdental/routes"
	"bestdental/services/booking"
	"bestdental/services/notification"
	"bestdental/services/ratelimit"
	"bestdental/services/site"
	"bestdental/utils"
	"bestdental/web"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	database.InitContent(cfg.ContentDir)

	// Rate limiter store.
	var store ratelimit.Store
	memStore := ratelimit.NewMemoryStore()
	store = memStore
	if cfg.RateLimitStore == "redis" {
		client, err := utils.GetRateLimitCacheClient()
		if err != nil {
			logger.Fatal("main: failed to connect rate limit store", zap.Error(err))
		}
		store = ratelimit.NewRedisStore(client, utils.RateLimitKeyPrefix)
		logger.Info("Booking rate limiter uses Redis", zap.String("addr", cfg.RedisAddr))
	}
	limiter := ratelimit.NewLimiter(store, cfg.BookingRateLimit, cfg.BookingRateWindow,
		ratelimit.WithLogger(logger))

	// Staff alerts.
	var notifiers []notification.Notifier
	if tw := notification.NewTwilioNotifier(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber, cfg.TwilioStaffNumber); tw != nil {
		notifiers = append(notifiers, tw)
	}
	if sg := notification.NewSendGridNotifier(cfg.SendGridAPIKey, cfg.SendGridFromEmail, cfg.SendGridFromName, cfg.SendGridStaffEmail); sg != nil {
		notifiers = append(notifiers, sg)
	}
	logger.Info("Staff alerts configured", zap.Int("channels", len(notifiers)))

	// Content and services.
	media, err := utils.MediaResolver()
	if err != nil {
		logger.Fatal("main: failed to initialize media resolver", zap.Error(err))
	}
	content, err := repository.NewJSONContentRepo(database.ContentFS, media)
	if err != nil {
		logger.Fatal("main: failed to load content", zap.Error(err))
	}
	siteService, err := site.NewSiteService(content, cfg.SiteURL)
	if err != nil {
		logger.Fatal("main: failed to build site service", zap.Error(err))
	}
	bookingService := booking.NewBookingService(limiter, notification.Combine(notifiers...),
		cfg.ClinicName, cfg.WhatsAppNumber, logger)

	var metrics *middleware.Metrics
	if cfg.MetricsEnabled {
		metrics = middleware.NewMetrics()
	}
	pageLimiter := middleware.NewPageRateLimiter(cfg.PageRatePerMin, cfg.PageRateBurst,
		"/static", "/health", "/metrics", "/api/book")
	pageLimiter.Metrics = metrics

	tmpl, err := web.Templates()
	if err != nil {
		logger.Fatal("main: failed to parse templates", zap.Error(err))
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))
	router.Use(metrics.Middleware())
	router.Use(pageLimiter.Middleware())
	router.SetHTMLTemplate(tmpl)

	handlerBundle := handlers.NewHandlerBundle(bookingService, siteService, metrics)
	routes.RegisterRoutes(router, handlerBundle, cfg.CORSAllowedOrigins)

	// Housekeeping.
	janitor, err := cron.NewJanitor(cfg.JanitorSchedule, utils.RateLimitCacheClient, logger, map[string]cron.Sweeper{
		"booking": memStore,
		"pages":   pageLimiter,
	})
	if err != nil {
		logger.Fatal("main: failed to schedule janitor", zap.Error(err))
	}
	janitor.Start()

	srv := &http.Server{
		Addr:    "0.0.0.0:" + cfg.AppPort,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), utils.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	if err := janitor.Stop(ctx); err != nil {
		logger.Sugar().Warnf("main: janitor did not stop in time: %v", err)
	}
	if utils.RateLimitCacheClient != nil {
		utils.RateLimitCacheClient.Close()
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
