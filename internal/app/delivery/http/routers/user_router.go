package routers

import (
	"docportal-service/internal/app/delivery/http/controllers"
	"docportal-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, middlewares *middlewares.Middlewares, userController *controllers.UserController) {
	router.With(middlewares.Authenticate).Get("/users", userController.GetAllUsers)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Put("/user/admin/{email}", userController.PromoteAdmin)
	// The admin probe stays public; a missing user is simply not an admin.
	router.Get("/admin/{email}", userController.CheckAdmin)
	router.Put("/user/{email}", userController.UpsertUser)
}
