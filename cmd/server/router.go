package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/taskward/taskward-api/internal/api"
	apiMiddleware "github.com/taskward/taskward-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Registration and login stay outside the authentication
// guard; everything else requires a valid access token.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	userHandler := api.NewUserHandler(app.userService, app.logger)
	taskHandler := api.NewTaskHandler(app.taskService, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService, app.config.Auth.SkipVerify)

	r.Route("/users", func(r chi.Router) {
		// Public endpoints
		r.Post("/create", userHandler.Create)
		r.Post("/login", userHandler.Login)

		// Protected endpoints
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Get("/", userHandler.List)
			r.Get("/email/{email}", userHandler.GetByEmail)
			r.Get("/{userId}", userHandler.GetByID)
			r.Put("/edit/{userId}", userHandler.Edit)
			r.Put("/password-change/{userId}", userHandler.ChangePassword)
			r.Delete("/delete/{userId}", userHandler.Delete)
		})
	})

	r.Route("/tasks", func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)
		r.Get("/", taskHandler.List)
		r.Get("/user/{userId}", taskHandler.ListByUser)
		r.Get("/{id}", taskHandler.GetByID)
		r.Post("/create", taskHandler.Create)
		r.Put("/edit/{id}", taskHandler.Edit)
		r.Put("/complete/{id}", taskHandler.Complete)
		r.Put("/archive/{id}", taskHandler.Archive)
		r.Delete("/delete/{id}", taskHandler.Delete)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
