package main

import (
	"context"
	"docportal-service/internal/app/config"
	"docportal-service/internal/app/delivery/http/controllers"
	"docportal-service/internal/app/delivery/http/middlewares"
	"docportal-service/internal/app/delivery/http/routers"
	"docportal-service/internal/app/drivers/database"
	"docportal-service/internal/app/drivers/logger"
	"docportal-service/internal/app/services/core/bookings"
	"docportal-service/internal/app/services/core/catalog"
	"docportal-service/internal/app/services/core/doctors"
	"docportal-service/internal/app/services/core/payments"
	"docportal-service/internal/app/services/core/roles"
	"docportal-service/internal/app/services/core/users"
	"docportal-service/internal/app/services/shared/payment_gateway"
	sharedredis "docportal-service/internal/app/services/shared/redis"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Sugar().Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	bootstrapTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Sugar().Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Sugar().Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Sugar().Fatalf("Failed to release resources: %v", err)
	}

	log.Info("Server exiting")
}

func bootstrapTheApp(bootstrap *config.Bootstrap) {
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Shared
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)
	paymentGateway := payment_gateway.NewStripeService(bootstrap.InternalConfig)

	// User
	userMongoRepository := users.NewUserMongoRepository(bootstrap.MongoDB, dbName)
	userUsecase := users.NewUserUsecase(userMongoRepository, redisRepository, bootstrap.InternalConfig)
	userController := controllers.NewUserController(bootstrap.Logger, userUsecase, bootstrap.InternalConfig)

	// Role authority
	roleAuthority := roles.NewRoleAuthority(bootstrap.Logger, userMongoRepository, redisRepository, bootstrap.InternalConfig)

	// Catalog
	serviceMongoRepository := catalog.NewServiceMongoRepository(bootstrap.MongoDB, dbName)
	catalogUsecase := catalog.NewCatalogUsecase(serviceMongoRepository)

	// Booking
	bookingMongoRepository := bookings.NewBookingMongoRepository(bootstrap.MongoDB, dbName)
	bookingUsecase := bookings.NewBookingUsecase(bookingMongoRepository, serviceMongoRepository, roleAuthority)
	bookingController := controllers.NewBookingController(bootstrap.Logger, bookingUsecase, bootstrap.InternalConfig)

	catalogController := controllers.NewCatalogController(bootstrap.Logger, catalogUsecase, bookingUsecase, bootstrap.InternalConfig)

	indexCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := bookingMongoRepository.EnsureIndexes(indexCtx); err != nil {
		bootstrap.Logger.Sugar().Fatalf("Failed to ensure booking indexes: %v", err)
	}

	// Doctor
	doctorMongoRepository := doctors.NewDoctorMongoRepository(bootstrap.MongoDB, dbName)
	doctorUsecase := doctors.NewDoctorUsecase(doctorMongoRepository)
	doctorController := controllers.NewDoctorController(bootstrap.Logger, doctorUsecase, bootstrap.InternalConfig)

	// Payment
	paymentMongoRepository := payments.NewPaymentMongoRepository(bootstrap.MongoDB, dbName)
	paymentUsecase := payments.NewPaymentUsecase(paymentMongoRepository, bookingMongoRepository, paymentGateway, bootstrap.InternalConfig)
	paymentController := controllers.NewPaymentController(bootstrap.Logger, paymentUsecase, bootstrap.InternalConfig)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, roleAuthority, bootstrap.InternalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		catalogController,
		userController,
		bookingController,
		doctorController,
		paymentController,
	)
}
