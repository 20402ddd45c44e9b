package router

import (
	"errors"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"learnhub/internal/auth"
	"learnhub/internal/lmserrors"
	"learnhub/internal/models"
	"learnhub/internal/validators"
)

// Module routes mirror the course nesting: collection operations live under
// /courses/{courseID}/modules, item operations address the module directly
// and disambiguate with a courseId parameter.
func (ro *Router) ModuleRoutes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(ro.authn.RequireAuth())

	router.Get("/courses/{courseID}/modules", ro.listModulesHandler)
	router.With(auth.RequireRole(models.RoleInstructor)).Post("/courses/{courseID}/modules", ro.createModuleHandler)
	router.Get("/{moduleID}", ro.getModuleHandler)
	router.With(auth.RequireRole(models.RoleInstructor)).Put("/{moduleID}", ro.updateModuleHandler)
	router.With(auth.RequireRole(models.RoleInstructor)).Delete("/{moduleID}", ro.deleteModuleHandler)

	return router
}

// GET: /courses/{courseID}/modules
func (ro *Router) listModulesHandler(w http.ResponseWriter, r *http.Request) {
	modules, err := ro.repo.ListModulesByCourse(r.Context(), chi.URLParam(r, "courseID"))
	if err != nil {
		serverError(w, r, err)
		return
	}
	render.JSON(w, r, render.M{"modules": modules})
}

// GET: /{moduleID}?courseId=
func (ro *Router) getModuleHandler(w http.ResponseWriter, r *http.Request) {
	courseID := r.URL.Query().Get("courseId")
	if courseID == "" {
		renderError(w, r, http.StatusBadRequest, "courseId parameter required")
		return
	}

	module, err := ro.repo.GetModule(r.Context(), chi.URLParam(r, "moduleID"), courseID)
	if err != nil {
		if errors.Is(err, lmserrors.ModuleNotFoundError) {
			renderError(w, r, http.StatusNotFound, err.Error())
			return
		}
		serverError(w, r, err)
		return
	}
	render.JSON(w, r, render.M{"module": module})
}

// POST: /courses/{courseID}/modules
func (ro *Router) createModuleHandler(w http.ResponseWriter, r *http.Request) {
	var req models.CreateModuleRequest
	if err := decodeBody(r, &req); err != nil {
		renderError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	missing := validators.MissingFields(map[string]string{
		"title":       req.Title,
		"description": req.Description,
	})
	if req.Order == nil {
		missing = append(missing, "order")
		sort.Strings(missing)
	}
	if len(missing) > 0 {
		missingFieldsError(w, r, missing)
		return
	}

	module, err := ro.repo.CreateModule(r.Context(), chi.URLParam(r, "courseID"), &req)
	if err != nil {
		domainError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, render.M{"message": "Module created successfully", "module": module})
}

// PUT: /{moduleID}
func (ro *Router) updateModuleHandler(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateModuleRequest
	if err := decodeBody(r, &req); err != nil {
		renderError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if req.CourseID == "" {
		renderError(w, r, http.StatusBadRequest, "courseId required in request body")
		return
	}
	if req.Title == nil && req.Description == nil && req.Order == nil && req.Materials == nil {
		renderError(w, r, http.StatusBadRequest, lmserrors.NoFieldsToUpdateError.Error())
		return
	}

	module, err := ro.repo.UpdateModule(r.Context(), chi.URLParam(r, "moduleID"), req.CourseID, &req)
	if err != nil {
		domainError(w, r, err)
		return
	}
	render.JSON(w, r, render.M{"message": "Module updated successfully", "module": module})
}

// DELETE: /{moduleID}?courseId=
func (ro *Router) deleteModuleHandler(w http.ResponseWriter, r *http.Request) {
	courseID := r.URL.Query().Get("courseId")
	if courseID == "" {
		renderError(w, r, http.StatusBadRequest, "courseId parameter required")
		return
	}

	if err := ro.repo.DeleteModule(r.Context(), chi.URLParam(r, "moduleID"), courseID); err != nil {
		domainError(w, r, err)
		return
	}
	render.JSON(w, r, render.M{"message": "Module deleted successfully"})
}
