package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flywise/config"
	"flywise/cron"
	"flywise/database"
	bookingRepo "flywise/database/repository/booking"
	"flywise/handlers"
	"flywise/routes"
	"flywise/services/dialogue"
	"flywise/services/flight"
	"flywise/services/intent"
	"flywise/services/nlu"
	"flywise/services/session"
	"flywise/services/ticketcache"
	"flywise/services/ticketdoc"
	"flywise/services/whatsapp"
	"flywise/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitTicketCache()

	// Reference data.
	cities, err := intent.LoadCities(config.AppConfig.CitiesFile)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to load city list: %v", err)
	}
	inventory, err := flight.LoadInventory(config.AppConfig.FlightsFile)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to load flight inventory: %v", err)
	}

	extractor := intent.NewExtractor(cities)

	// NLU oracle; without a key the gateway degrades to scripted fallbacks.
	var oracle nlu.Oracle
	if key := config.AppConfig.GeminiAPIKey; key != "" {
		client, err := nlu.NewGeminiClient(key)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize NLU oracle: %v", err)
		}
		oracle = client
	} else {
		logger.Warn("No Gemini API key configured, NLU gateway will use fallbacks")
	}
	gateway := nlu.NewGateway(oracle, time.Duration(config.AppConfig.NLUTimeoutSeconds)*time.Second)

	// Ticket cache backend.
	var tickets ticketcache.Cache
	ttl := time.Duration(config.AppConfig.TicketCacheTTLHours) * time.Hour
	if config.AppConfig.TicketCacheBackend == "file" {
		fileCache, err := ticketcache.NewFileCache(config.AppConfig.TicketCacheDir, ttl)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize ticket file cache: %v", err)
		}
		tickets = fileCache
	} else {
		tickets = ticketcache.NewRedisCache(utils.GetTicketCacheClient(), ttl)
	}

	archive := bookingRepo.NewMongoBookingRepo()
	ledger := flight.NewLedger(archive)

	// Messaging provider; the mock captures sends when no token is set.
	var client whatsapp.Client
	if config.AppConfig.WhatsAppToken != "" {
		client = whatsapp.NewCloudClient(
			config.AppConfig.WhatsAppPhoneID,
			config.AppConfig.WhatsAppToken,
			config.AppConfig.WhatsAppVerifyToken,
		)
	} else {
		logger.Warn("No WhatsApp token configured, using mock client")
		client = whatsapp.NewMockClient(config.AppConfig.WhatsAppVerifyToken)
	}

	sessions := session.NewStore(time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute)
	engine := dialogue.NewEngine(extractor, gateway, inventory, ledger, tickets,
		ticketdoc.NewRenderer(), client, config.AppConfig.MaxRetries)

	handlerBundle := &handlers.HandlerBundle{
		Sessions: sessions,
		Engine:   engine,
		Client:   client,
	}

	router := routes.SetupRouter(handlerBundle)

	cron.InitMaintenanceWorker(sessions, tickets)
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetTicketCacheClient()},
		database.MongoClient,
	)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Info("Server starting", zap.String("port", config.AppConfig.AppPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: forced shutdown: %v", err)
	}
	logger.Info("Server exited")
}
