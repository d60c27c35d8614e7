// File: agendly/main.go
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

	"agendly/config"
	"agendly/cron"
	"agendly/database"
	appointmentRepo "agendly/database/repository/appointment"
	clientRepoPkg "agendly/database/repository/client"
	establishmentRepoPkg "agendly/database/repository/establishment"
	notificationRepoPkg "agendly/database/repository/notification"
	relationRepoPkg "agendly/database/repository/relation"
	userRepoPkg "agendly/database/repository/user"
	"agendly/handlers"
	"agendly/routes"
	"agendly/services/account"
	"agendly/services/appointment"
	"agendly/services/client"
	"agendly/services/establishment"
	"agendly/services/notification"
	"agendly/services/tasks"
	"agendly/utils"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()
	estRepo := establishmentRepoPkg.NewMongoEstablishmentRepo()
	cliRepo := clientRepoPkg.NewMongoClientRepo()
	relRepo := relationRepoPkg.NewMongoRelationRepo()
	notifRepo := notificationRepoPkg.NewMongoNotificationRepo()
	usrRepo := userRepoPkg.NewMongoUserRepo()

	// services.
	notificationService := &notification.DefaultNotificationService{
		Repo:       notifRepo,
		ClientRepo: cliRepo,
	}
	appointmentService := &appointment.DefaultAppointmentService{
		Repo:       apptRepo,
		EstRepo:    estRepo,
		ClientRepo: cliRepo,
		RelRepo:    relRepo,
		Reminders:  tasks.NewAsynqReminderScheduler(),
	}
	establishmentService := &establishment.DefaultEstablishmentService{
		Repo:       estRepo,
		ClientRepo: cliRepo,
		RelRepo:    relRepo,
		Notifier:   notificationService,
		Storage:    storageService,
	}
	clientService := &client.DefaultClientService{
		Repo:    cliRepo,
		RelRepo: relRepo,
		Storage: storageService,
	}
	accountService := &account.DefaultAccountService{
		Repo:       usrRepo,
		ClientRepo: cliRepo,
		EstRepo:    estRepo,
	}

	handlerBundle := &handlers.HandlerBundle{
		UserRepo:   usrRepo,
		AccountSvc: accountService,
		ApptSvc:    appointmentService,
		EstSvc:     establishmentService,
		ClientSvc:  clientService,
		NotifSvc:   notificationService,
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Background reminder worker and health monitor.
	cron.InitReminderWorker(notificationService)
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()},
		database.MongoClient,
	)

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
