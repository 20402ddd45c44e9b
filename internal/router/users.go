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

func (ro *Router) UserRoutes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(ro.authn.RequireAuth())

	router.With(auth.RequireRole(models.RoleInstructor)).Get("/", ro.listUsersHandler)
	router.Get("/{userID}", ro.getUserHandler)
	router.Put("/{userID}", ro.updateUserHandler)
	router.With(auth.RequireRole(models.RoleInstructor)).Delete("/{userID}", ro.deleteUserHandler)

	return router
}

// GET: /?role=
func (ro *Router) listUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := ro.repo.ListUsers(r.Context(), r.URL.Query().Get("role"))
	if err != nil {
		serverError(w, r, err)
		return
	}
	render.JSON(w, r, render.M{"users": users})
}

// GET: /{userID}
//
// Students can only read their own profile; instructors can read anyone's.
func (ro *Router) getUserHandler(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	claims, err := auth.ClaimsFromRequest(r)
	if err != nil {
		serverError(w, r, err)
		return
	}
	if userID != claims.UserID && claims.Role != models.RoleInstructor {
		renderError(w, r, http.StatusForbidden, "Unauthorized")
		return
	}

	user, err := ro.repo.GetUserByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, lmserrors.UserNotFoundError) {
			renderError(w, r, http.StatusNotFound, err.Error())
			return
		}
		serverError(w, r, err)
		return
	}
	render.JSON(w, r, render.M{"user": user})
}

// PUT: /{userID}
func (ro *Router) updateUserHandler(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	claims, err := auth.ClaimsFromRequest(r)
	if err != nil {
		serverError(w, r, err)
		return
	}
	if userID != claims.UserID {
		renderError(w, r, http.StatusForbidden, "Unauthorized")
		return
	}

	var req models.UpdateUserRequest
	if err := decodeBody(r, &req); err != nil {
		renderError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	// Course assignments only change through the admin surface.
	req.CourseIDs = nil

	if req.Email != nil && !validators.ValidEmail(*req.Email) {
		renderError(w, r, http.StatusBadRequest, "Invalid email format")
		return
	}
	if req.Password != nil {
		if err := validators.ValidatePassword(*req.Password); err != nil {
			renderError(w, r, http.StatusBadRequest, err.Error())
			return
		}
	}
	if req.Name == nil && req.Email == nil && req.Password == nil {
		renderError(w, r, http.StatusBadRequest, lmserrors.NoFieldsToUpdateError.Error())
		return
	}

	user, err := ro.repo.UpdateUser(r.Context(), userID, &req)
	if err != nil {
		domainError(w, r, err)
		return
	}
	render.JSON(w, r, render.M{"message": "User updated successfully", "user": user})
}

// DELETE: /{userID}
func (ro *Router) deleteUserHandler(w http.ResponseWriter, r *http.Request) {
	if err := ro.repo.DeleteUser(r.Context(), chi.URLParam(r, "userID")); err != nil {
		domainError(w, r, err)
		return
	}
	render.JSON(w, r, render.M{"message": "User deleted successfully"})
}
