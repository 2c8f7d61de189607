package routers

import (
	"docportal-service/internal/app/delivery/http/controllers"
	"docportal-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachPaymentRoutes(router chi.Router, middlewares *middlewares.Middlewares, paymentController *controllers.PaymentController) {
	router.With(middlewares.Authenticate).Post("/create-payment-intent", paymentController.CreatePaymentIntent)
	router.With(middlewares.Authenticate).Patch("/booking/{id}", paymentController.ReconcilePayment)
}
