package routers

import (
	"docportal-service/internal/app/delivery/http/controllers"
	"docportal-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachBookingRoutes(router chi.Router, middlewares *middlewares.Middlewares, bookingController *controllers.BookingController) {
	router.With(middlewares.Authenticate).Get("/booking/{id}", bookingController.GetBookingByID)
	router.With(middlewares.Authenticate).Get("/booking", bookingController.GetBookingsByPatient)
	router.Post("/booking", bookingController.CreateBooking)
}
