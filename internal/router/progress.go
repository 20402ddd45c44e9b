package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"learnhub/internal/auth"
	"learnhub/internal/models"
)

func (ro *Router) ProgressRoutes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(ro.authn.RequireAuth(), auth.RequireRole(models.RoleStudent))

	router.Post("/", ro.recordProgressHandler)
	router.Get("/", ro.listProgressHandler)
	router.Post("/complete", ro.markCompleteHandler)
	router.Get("/stats", ro.progressStatsHandler)

	return router
}

// POST: /
func (ro *Router) recordProgressHandler(w http.ResponseWriter, r *http.Request) {
	var req models.RecordProgressRequest
	if err := decodeBody(r, &req); err != nil {
		renderError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if req.ModuleID == "" || req.CourseID == "" {
		renderError(w, r, http.StatusBadRequest, "moduleId and courseId required")
		return
	}

	claims, err := auth.ClaimsFromRequest(r)
	if err != nil {
		serverError(w, r, err)
		return
	}

	status := req.Status
	if status == "" {
		status = models.ProgressStatusInProgress
	}

	progress, err := ro.repo.RecordProgress(r.Context(), claims.UserID, req.ModuleID, req.CourseID, status)
	if err != nil {
		domainError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, render.M{"message": "Progress updated", "progress": progress})
}

// GET: /?courseId=
func (ro *Router) listProgressHandler(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.ClaimsFromRequest(r)
	if err != nil {
		serverError(w, r, err)
		return
	}

	courseID := r.URL.Query().Get("courseId")

	var records []*models.Progress
	if courseID != "" {
		records, err = ro.repo.ListProgressByCourse(r.Context(), claims.UserID, courseID)
	} else {
		records, err = ro.repo.ListProgressByStudent(r.Context(), claims.UserID)
	}
	if err != nil {
		serverError(w, r, err)
		return
	}
	render.JSON(w, r, render.M{"progress": records})
}

// POST: /complete
func (ro *Router) markCompleteHandler(w http.ResponseWriter, r *http.Request) {
	var req models.RecordProgressRequest
	if err := decodeBody(r, &req); err != nil {
		renderError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if req.ModuleID == "" || req.CourseID == "" {
		renderError(w, r, http.StatusBadRequest, "moduleId and courseId required")
		return
	}

	claims, err := auth.ClaimsFromRequest(r)
	if err != nil {
		serverError(w, r, err)
		return
	}

	progress, err := ro.repo.MarkComplete(r.Context(), claims.UserID, req.ModuleID, req.CourseID)
	if err != nil {
		domainError(w, r, err)
		return
	}
	render.JSON(w, r, render.M{"message": "Module marked as completed", "progress": progress})
}

// GET: /stats?courseId=
func (ro *Router) progressStatsHandler(w http.ResponseWriter, r *http.Request) {
	courseID := r.URL.Query().Get("courseId")
	if courseID == "" {
		renderError(w, r, http.StatusBadRequest, "courseId parameter required")
		return
	}

	claims, err := auth.ClaimsFromRequest(r)
	if err != nil {
		serverError(w, r, err)
		return
	}

	stats, err := ro.repo.CompletionStats(r.Context(), claims.UserID, courseID)
	if err != nil {
		serverError(w, r, err)
		return
	}
	render.JSON(w, r, render.M{"stats": stats})
}
