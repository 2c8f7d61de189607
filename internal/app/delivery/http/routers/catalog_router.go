package routers

import (
	"docportal-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachCatalogRoutes(router chi.Router, catalogController *controllers.CatalogController) {
	router.Get("/services", catalogController.GetServices)
	router.Get("/available", catalogController.GetAvailability)
}
