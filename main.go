package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cleanhurghada/config"
	"cleanhurghada/handlers"
	"cleanhurghada/middleware"
	"cleanhurghada/routes"
	"cleanhurghada/services/chat"
	ai "cleanhurghada/services/intelligence"
	"cleanhurghada/services/payment"
	"cleanhurghada/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitRedis()
	utils.StartHealthMonitor(utils.GetSessionClient())

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// External capabilities.
	geminiClient, err := ai.NewGeminiClient(config.AppConfig.GeminiAPIKey)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize Gemini client: %v", err)
	}
	paymobClient := payment.NewClient(
		config.AppConfig.PaymobAPIKey,
		config.AppConfig.PaymobIntegrationID,
		config.AppConfig.PaymobIframeID,
		config.AppConfig.PaymobHMACSecret,
		logger,
	)

	// Services.
	sessionStore := chat.NewSessionStore(utils.GetSessionClient(), 30*time.Minute)
	chatService := &chat.DefaultChatService{
		Store:   sessionStore,
		AI:      geminiClient,
		Gateway: paymobClient,
		Logger:  logger,
	}

	chatHandler := handlers.NewChatHandler(chatService)
	bookingHandler := handlers.NewBookingHandler(chatService)
	ratingHandler := handlers.NewRatingHandler(chatService)
	paymentHandler := handlers.NewPaymentHandler(paymobClient, chatService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		StartSession: chatHandler.StartSession,
		SendMessage:  chatHandler.SendMessage,
		QuickAction:  chatHandler.QuickAction,
		SetLanguage:  chatHandler.SetLanguage,
		CloseWidget:  chatHandler.CloseWidget,
		ConfirmQuote: chatHandler.ConfirmQuote,
		Catalog:      chatHandler.Catalog,

		BookingDetails: bookingHandler.SubmitDetails,
		BookingBack:    bookingHandler.Back,
		BookingSummary: bookingHandler.Summary,
		BookingPay:     bookingHandler.Pay,
		BookingStatus:  bookingHandler.Status,

		SubmitRating: ratingHandler.Submit,

		PaymentCallback: paymentHandler.Callback,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
