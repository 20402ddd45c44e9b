package server

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"learnhub/internal/config"
	rtr "learnhub/internal/router"
)

func Routes(ro *rtr.Router) *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		middleware.Logger, // Log API Request Calls
	)

	router.Get("/", ro.IndexHandler)

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", ro.HealthHandler)
		r.Mount("/auth", ro.AuthRoutes())
		r.Mount("/users", ro.UserRoutes())
		r.Mount("/courses", ro.CourseRoutes())
		r.Mount("/modules", ro.ModuleRoutes())
		r.Mount("/enrollments", ro.EnrollmentRoutes())
		r.Mount("/progress", ro.ProgressRoutes())
		r.Mount("/upload", ro.UploadRoutes())
		r.Mount("/admin", ro.AdminRoutes())
	})

	return router
}

// Start blocks serving the API until the listener fails.
func Start(ro *rtr.Router, cfg *config.ServerConfig) error {
	router := Routes(ro)

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE"},
		AllowCredentials: true,
	})

	handler := c.Handler(router)
	log.Printf("Server is listening on port %v\n", cfg.Port)
	return http.ListenAndServe(fmt.Sprintf(":%v", cfg.Port), handler)
}
