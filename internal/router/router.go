package router

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/render"

	"learnhub/internal/auth"
	"learnhub/internal/config"
	"learnhub/internal/lmserrors"
	"learnhub/internal/repository"
	"learnhub/internal/seed"
)

// Router builds the per-resource route trees. Handlers hold no package
// state; everything they need is injected here.
type Router struct {
	repo   *repository.Repository
	tokens *auth.TokenService
	authn  *auth.Authenticator
	seeder *seed.Seeder
	cfg    *config.ServerConfig
}

func New(repo *repository.Repository, tokens *auth.TokenService, seeder *seed.Seeder, cfg *config.ServerConfig) *Router {
	return &Router{
		repo:   repo,
		tokens: tokens,
		authn:  auth.NewAuthenticator(tokens),
		seeder: seeder,
		cfg:    cfg,
	}
}

// GET: /api/health
func (ro *Router) HealthHandler(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, render.M{"status": "healthy", "message": "LMS API is running"})
}

// GET: /
func (ro *Router) IndexHandler(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, render.M{
		"message": "LMS API",
		"version": "1.0.0",
		"endpoints": render.M{
			"health":      "/api/health",
			"auth":        "/api/auth",
			"users":       "/api/users",
			"courses":     "/api/courses",
			"modules":     "/api/modules",
			"enrollments": "/api/enrollments",
			"progress":    "/api/progress",
			"upload":      "/api/upload",
		},
	})
}

func decodeBody(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func renderError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	render.Status(r, status)
	render.JSON(w, r, render.M{"error": msg})
}

func serverError(w http.ResponseWriter, r *http.Request, err error) {
	renderError(w, r, http.StatusInternalServerError, "Server error: "+err.Error())
}

// domainErrors are the failures callers caused, reported with a 400 and the
// error text as the body. Anything else is a server fault.
var domainErrors = []error{
	lmserrors.UserNotFoundError,
	lmserrors.EmailExistsError,
	lmserrors.WrongPasswordError,
	lmserrors.RoleConflictError,
	lmserrors.SpecializationNotFoundError,
	lmserrors.SpecializationCodeError,
	lmserrors.CourseNotFoundError,
	lmserrors.NotCourseOwnerError,
	lmserrors.ModuleNotFoundError,
	lmserrors.EnrollmentNotFoundError,
	lmserrors.AlreadyEnrolledError,
	lmserrors.ProgressNotFoundError,
	lmserrors.NoFieldsToUpdateError,
}

func domainError(w http.ResponseWriter, r *http.Request, err error) {
	for _, known := range domainErrors {
		if errors.Is(err, known) {
			renderError(w, r, http.StatusBadRequest, err.Error())
			return
		}
	}
	serverError(w, r, err)
}

func missingFieldsError(w http.ResponseWriter, r *http.Request, missing []string) {
	msg := "Missing required fields: "
	for i, field := range missing {
		if i > 0 {
			msg += ", "
		}
		msg += field
	}
	renderError(w, r, http.StatusBadRequest, msg)
}
