package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"

	"alabraar/config"
	"alabraar/cron"
	"alabraar/database"
	achievementRepoPkg "alabraar/database/repository/achievement"
	availabilityRepoPkg "alabraar/database/repository/availability"
	bookingRepoPkg "alabraar/database/repository/booking"
	messageRepoPkg "alabraar/database/repository/message"
	userRepoPkg "alabraar/database/repository/user"
	"alabraar/handlers"
	"alabraar/middleware"
	"alabraar/routes"
	"alabraar/services/achievement"
	availabilitySvc "alabraar/services/availability"
	bookingSvc "alabraar/services/booking"
	messageSvc "alabraar/services/message"
	"alabraar/services/notification"
	"alabraar/services/user"
	"alabraar/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	availabilityRepo := availabilityRepoPkg.NewMongoAvailabilityRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	messageRepo := messageRepoPkg.NewMongoMessageRepo()
	achievementRepo := achievementRepoPkg.NewMongoAchievementRepo()

	// services.
	userService := &user.DefaultUserService{Repo: userRepo}
	handlers.SetUserService(userService)

	notificationService, err := notification.NewDefaultNotificationService(userRepo)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	availabilityService := &availabilitySvc.DefaultAvailabilityService{
		Repo:     availabilityRepo,
		Bookings: bookingRepo,
		Users:    userRepo,
	}

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})

	bookingService := &bookingSvc.DefaultBookingService{
		Repo:         bookingRepo,
		Users:        userRepo,
		Availability: availabilityService,
		Payments:     bookingSvc.NewStripePaymentHandler(logger),
		Notifier:     notificationService,
		AsynqClient:  asynqClient,
	}

	messageService := &messageSvc.DefaultMessageService{
		Repo:     messageRepo,
		Users:    userRepo,
		Notifier: notificationService,
	}

	achievementService := &achievement.DefaultAchievementService{Repo: achievementRepo}

	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService)
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	messageHandler := handlers.NewMessageHandler(messageService)
	achievementHandler := handlers.NewAchievementHandler(achievementService)
	adminHandler := handlers.NewAdminHandler(userService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		// User endpoints.
		RegisterUserHandler:     handlers.RegisterUserHandler,
		AuthenticateUserHandler: handlers.AuthenticateUserHandler,
		GetUserByIDHandler:      handlers.GetUserByIDHandler,
		UpdateUserHandler:       handlers.UpdateUserHandler,
		UpdateFCMTokenHandler:   handlers.UpdateFCMTokenHandler,
		RevokeUserTokenHandler:  handlers.RevokeUserTokenHandler,
		ListUstaadhsHandler:     handlers.ListUstaadhsHandler,

		// Availability endpoints.
		GetAvailabilityHandler: availabilityHandler.GetAvailabilityHandler,
		SetAvailabilityHandler: availabilityHandler.SetAvailabilityHandler,
		GetTimeSlotsHandler:    availabilityHandler.GetTimeSlotsHandler,
		GetBookedSlotsHandler:  availabilityHandler.GetBookedSlotsHandler,

		// Booking endpoints.
		CreateBookingHandler: bookingHandler.CreateBookingHandler,
		MyBookingsHandler:    bookingHandler.MyBookingsHandler,
		UpdateBookingHandler: bookingHandler.UpdateBookingHandler,
		CancelBookingHandler: bookingHandler.CancelBookingHandler,
		CompleteSlotHandler:  bookingHandler.CompleteSlotHandler,
		CancelSlotHandler:    bookingHandler.CancelSlotHandler,
		PaymentIntentHandler: bookingHandler.PaymentIntentHandler,
		SettlePaymentHandler: bookingHandler.SettlePaymentHandler,

		// Message endpoints.
		SendMessageHandler:     messageHandler.SendMessageHandler,
		GetConversationHandler: messageHandler.GetConversationHandler,
		MarkReadHandler:        messageHandler.MarkReadHandler,
		UnreadCountHandler:     messageHandler.UnreadCountHandler,

		// Achievement endpoints.
		MyAchievementsHandler:   achievementHandler.MyAchievementsHandler,
		AwardAchievementHandler: achievementHandler.AwardAchievementHandler,

		// Admin endpoints.
		ListUsersHandler:      adminHandler.ListUsersHandler,
		ApproveUstaadhHandler: adminHandler.ApproveUstaadhHandler,
		SetSuspensionHandler:  adminHandler.SetSuspensionHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background worker: lesson reminders + missed-slot sweep.
	cron.InitWorker(notificationService, bookingService)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()},
		database.MongoClient,
	)

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
