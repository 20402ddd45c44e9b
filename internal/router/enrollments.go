package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"learnhub/internal/auth"
	"learnhub/internal/models"
)

func (ro *Router) EnrollmentRoutes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(ro.authn.RequireAuth())

	router.With(auth.RequireRole(models.RoleStudent)).Post("/", ro.createEnrollmentHandler)
	router.Get("/", ro.listEnrollmentsHandler)
	router.With(auth.RequireRole(models.RoleStudent)).Put("/{enrollmentID}", ro.updateEnrollmentHandler)
	router.With(auth.RequireRole(models.RoleStudent)).Delete("/{enrollmentID}", ro.deleteEnrollmentHandler)

	return router
}

// POST: /
func (ro *Router) createEnrollmentHandler(w http.ResponseWriter, r *http.Request) {
	var req models.CreateEnrollmentRequest
	if err := decodeBody(r, &req); err != nil {
		renderError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if req.CourseID == "" {
		renderError(w, r, http.StatusBadRequest, "courseId required")
		return
	}

	claims, err := auth.ClaimsFromRequest(r)
	if err != nil {
		serverError(w, r, err)
		return
	}

	status := req.Status
	if status == "" {
		status = models.EnrollmentStatusActive
	}

	enrollment, err := ro.repo.CreateEnrollment(r.Context(), claims.UserID, req.CourseID, status)
	if err != nil {
		domainError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, render.M{"message": "Enrolled successfully", "enrollment": enrollment})
}

// GET: /?courseId=
//
// Students see their own enrollments; instructors see a course roster when
// they name the course. Anything else is malformed.
func (ro *Router) listEnrollmentsHandler(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.ClaimsFromRequest(r)
	if err != nil {
		serverError(w, r, err)
		return
	}

	courseID := r.URL.Query().Get("courseId")

	var enrollments []*models.Enrollment
	switch {
	case claims.Role == models.RoleStudent:
		enrollments, err = ro.repo.ListEnrollmentsByStudent(r.Context(), claims.UserID)
	case claims.Role == models.RoleInstructor && courseID != "":
		enrollments, err = ro.repo.ListEnrollmentsByCourse(r.Context(), courseID)
	default:
		renderError(w, r, http.StatusBadRequest, "Invalid request")
		return
	}
	if err != nil {
		serverError(w, r, err)
		return
	}
	render.JSON(w, r, render.M{"enrollments": enrollments})
}

// PUT: /{enrollmentID}
func (ro *Router) updateEnrollmentHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
	}
	if err := decodeBody(r, &req); err != nil {
		renderError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if req.Status == "" {
		renderError(w, r, http.StatusBadRequest, "status required")
		return
	}

	claims, err := auth.ClaimsFromRequest(r)
	if err != nil {
		serverError(w, r, err)
		return
	}

	enrollment, err := ro.repo.UpdateEnrollmentStatus(r.Context(), chi.URLParam(r, "enrollmentID"), claims.UserID, req.Status)
	if err != nil {
		domainError(w, r, err)
		return
	}
	render.JSON(w, r, render.M{"message": "Enrollment updated successfully", "enrollment": enrollment})
}

// DELETE: /{enrollmentID}
func (ro *Router) deleteEnrollmentHandler(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.ClaimsFromRequest(r)
	if err != nil {
		serverError(w, r, err)
		return
	}

	if err := ro.repo.DeleteEnrollment(r.Context(), chi.URLParam(r, "enrollmentID"), claims.UserID); err != nil {
		domainError(w, r, err)
		return
	}
	render.JSON(w, r, render.M{"message": "Unenrolled successfully"})
}
