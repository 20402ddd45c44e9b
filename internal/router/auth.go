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

func (ro *Router) AuthRoutes() *chi.Mux {
	router := chi.NewRouter()

	router.Post("/register", ro.registerHandler)
	router.Post("/login", ro.loginHandler)
	router.With(ro.authn.RequireAuth()).Post("/change-password", ro.changePasswordHandler)

	return router
}

// POST: /register
//
// Self-service signup is intentionally off; accounts come from the admin
// surface or the seeder.
func (ro *Router) registerHandler(w http.ResponseWriter, r *http.Request) {
	renderError(w, r, http.StatusForbidden,
		"Registration is disabled. Please contact your administrator to create an account.")
}

// POST: /login
func (ro *Router) loginHandler(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeBody(r, &req); err != nil {
		renderError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	missing := validators.MissingFields(map[string]string{
		"email":    req.Email,
		"password": req.Password,
	})
	if len(missing) > 0 {
		missingFieldsError(w, r, missing)
		return
	}

	user, err := ro.repo.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, lmserrors.InvalidCredentialsError) {
			renderError(w, r, http.StatusUnauthorized, err.Error())
			return
		}
		serverError(w, r, err)
		return
	}

	token, err := ro.tokens.Issue(user.ID, user.Role)
	if err != nil {
		serverError(w, r, err)
		return
	}

	render.JSON(w, r, render.M{
		"message": "Login successful",
		"user":    user,
		"token":   token,
	})
}

// POST: /change-password
func (ro *Router) changePasswordHandler(w http.ResponseWriter, r *http.Request) {
	var req models.ChangePasswordRequest
	if err := decodeBody(r, &req); err != nil {
		renderError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	missing := validators.MissingFields(map[string]string{
		"oldPassword": req.OldPassword,
		"newPassword": req.NewPassword,
	})
	if len(missing) > 0 {
		missingFieldsError(w, r, missing)
		return
	}

	if err := validators.ValidatePassword(req.NewPassword); err != nil {
		renderError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	claims, err := auth.ClaimsFromRequest(r)
	if err != nil {
		serverError(w, r, err)
		return
	}

	if err := ro.repo.ChangePassword(r.Context(), claims.UserID, req.OldPassword, req.NewPassword); err != nil {
		domainError(w, r, err)
		return
	}

	render.JSON(w, r, render.M{"message": "Password changed successfully"})
}
