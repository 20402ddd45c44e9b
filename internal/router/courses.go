package router

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"learnhub/internal/auth"
	"learnhub/internal/lmserrors"
	"learnhub/internal/models"
	"learnhub/internal/validators"
)

func (ro *Router) CourseRoutes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(ro.authn.RequireAuth())

	router.Get("/", ro.listCoursesHandler)
	router.Get("/{courseID}", ro.getCourseHandler)
	router.With(auth.RequireRole(models.RoleInstructor)).Post("/", ro.createCourseHandler)
	router.With(auth.RequireRole(models.RoleInstructor)).Put("/{courseID}", ro.updateCourseHandler)
	router.With(auth.RequireRole(models.RoleInstructor)).Delete("/{courseID}", ro.deleteCourseHandler)

	return router
}

// GET: /?instructorId=&category=
//
// The catalog each caller sees depends on their role: students get the
// courses of their specialization, instructors their own courses (unless
// they filter by another instructor), admins everything.
func (ro *Router) listCoursesHandler(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.ClaimsFromRequest(r)
	if err != nil {
		serverError(w, r, err)
		return
	}

	instructorID := r.URL.Query().Get("instructorId")
	category := r.URL.Query().Get("category")

	var filter models.CourseFilter
	switch {
	case claims.Role == models.RoleStudent:
		user, err := ro.repo.GetUserByID(r.Context(), claims.UserID)
		if err != nil {
			serverError(w, r, err)
			return
		}
		if user.SpecializationID != "" {
			filter = models.CourseFilter{SpecializationID: user.SpecializationID}
		} else {
			filter = models.CourseFilter{InstructorID: instructorID, Category: category}
		}
	case claims.Role == models.RoleInstructor:
		if instructorID == "" {
			instructorID = claims.UserID
		}
		filter = models.CourseFilter{InstructorID: instructorID, Category: category}
	default:
		filter = models.CourseFilter{InstructorID: instructorID, Category: category}
	}

	courses, err := ro.repo.ListCourses(r.Context(), filter)
	if err != nil {
		serverError(w, r, err)
		return
	}
	render.JSON(w, r, render.M{"courses": courses})
}

// GET: /{courseID}
func (ro *Router) getCourseHandler(w http.ResponseWriter, r *http.Request) {
	courseID := chi.URLParam(r, "courseID")

	course, err := ro.repo.GetCourse(r.Context(), courseID)
	if err != nil {
		if errors.Is(err, lmserrors.CourseNotFoundError) {
			renderError(w, r, http.StatusNotFound, err.Error())
			return
		}
		serverError(w, r, err)
		return
	}

	modules, err := ro.repo.ListModulesByCourse(r.Context(), courseID)
	if err != nil {
		serverError(w, r, err)
		return
	}
	course.Modules = modules

	render.JSON(w, r, render.M{"course": course})
}

// POST: /
func (ro *Router) createCourseHandler(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCourseRequest
	if err := decodeBody(r, &req); err != nil {
		renderError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	missing := validators.MissingFields(map[string]string{
		"title":       req.Title,
		"description": req.Description,
	})
	if len(missing) > 0 {
		missingFieldsError(w, r, missing)
		return
	}

	claims, err := auth.ClaimsFromRequest(r)
	if err != nil {
		serverError(w, r, err)
		return
	}
	req.InstructorIDs = []string{claims.UserID}

	course, err := ro.repo.CreateCourse(r.Context(), &req)
	if err != nil {
		domainError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, render.M{"message": "Course created successfully", "course": course})
}

// PUT: /{courseID}
func (ro *Router) updateCourseHandler(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateCourseRequest
	if err := decodeBody(r, &req); err != nil {
		renderError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	// Instructors may touch title, description and category; ownership and
	// specialization links are admin territory.
	req.SpecializationID = nil
	req.InstructorIDs = nil

	if req.Title == nil && req.Description == nil && req.Category == nil {
		renderError(w, r, http.StatusBadRequest, lmserrors.NoFieldsToUpdateError.Error())
		return
	}

	claims, err := auth.ClaimsFromRequest(r)
	if err != nil {
		serverError(w, r, err)
		return
	}

	course, err := ro.repo.UpdateCourse(r.Context(), chi.URLParam(r, "courseID"), claims.UserID, &req)
	if err != nil {
		domainError(w, r, err)
		return
	}
	render.JSON(w, r, render.M{"message": "Course updated successfully", "course": course})
}

// DELETE: /{courseID}
func (ro *Router) deleteCourseHandler(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.ClaimsFromRequest(r)
	if err != nil {
		serverError(w, r, err)
		return
	}

	if err := ro.repo.DeleteCourse(r.Context(), chi.URLParam(r, "courseID"), claims.UserID); err != nil {
		domainError(w, r, err)
		return
	}
	render.JSON(w, r, render.M{"message": "Course deleted successfully"})
}
