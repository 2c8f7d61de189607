package routers

import (
	"docportal-service/internal/app/delivery/http/controllers"
	"docportal-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, middlewares *middlewares.Middlewares, doctorController *controllers.DoctorController) {
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Get("/doctors", doctorController.GetDoctors)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Post("/doctor", doctorController.CreateDoctor)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Delete("/doctor/{email}", doctorController.DeleteDoctor)
}
