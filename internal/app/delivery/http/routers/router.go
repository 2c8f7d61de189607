package routers

import (
	"docportal-service/internal/app/config"
	"docportal-service/internal/app/delivery/http/controllers"
	"docportal-service/internal/app/delivery/http/middlewares"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	catalogController *controllers.CatalogController,
	userController *controllers.UserController,
	bookingController *controllers.BookingController,
	doctorController *controllers.DoctorController,
	paymentController *controllers.PaymentController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestID)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	attachCatalogRoutes(router, catalogController)
	attachUserRoutes(router, middlewares, userController)
	attachBookingRoutes(router, middlewares, bookingController)
	attachDoctorRoutes(router, middlewares, doctorController)
	attachPaymentRoutes(router, middlewares, paymentController)
}
