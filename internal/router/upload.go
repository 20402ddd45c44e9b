package router

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"learnhub/internal/auth"
	"learnhub/internal/models"
	"learnhub/internal/validators"
)

func (ro *Router) UploadRoutes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(ro.authn.RequireAuth(), auth.RequireRole(models.RoleInstructor))

	router.Post("/", ro.uploadHandler)

	return router
}

// multipartOverhead covers the boundary lines, part headers and text fields
// that accompany the file in a multipart body.
const multipartOverhead = 1 << 20

// POST: /
//
// Multipart upload of course material. The file lands in the bucket under
// {folderPath}/{filename}; validation happens before any bytes are written.
func (ro *Router) uploadHandler(w http.ResponseWriter, r *http.Request) {
	// Cap the request body itself so an oversized upload is cut off while
	// streaming in, instead of spooling to a temp file before rejection.
	r.Body = http.MaxBytesReader(w, r.Body, ro.cfg.MaxUploadSize+multipartOverhead)

	if err := r.ParseMultipartForm(ro.cfg.MaxUploadSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			renderError(w, r, http.StatusBadRequest,
				fmt.Sprintf("File too large. Maximum size: %dMB", ro.cfg.MaxUploadSize/(1024*1024)))
			return
		}
		renderError(w, r, http.StatusBadRequest, "No file provided")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		renderError(w, r, http.StatusBadRequest, "No file provided")
		return
	}
	defer file.Close()

	if header.Filename == "" {
		renderError(w, r, http.StatusBadRequest, "No file selected")
		return
	}

	if !validators.ValidFileExtension(header.Filename, ro.cfg.AllowedUploadExtensions) {
		renderError(w, r, http.StatusBadRequest,
			"File type not allowed. Allowed types: "+strings.Join(ro.cfg.AllowedUploadExtensions, ", "))
		return
	}

	if !validators.ValidFileSize(header.Size, ro.cfg.MaxUploadSize) {
		renderError(w, r, http.StatusBadRequest,
			fmt.Sprintf("File too large. Maximum size: %dMB", ro.cfg.MaxUploadSize/(1024*1024)))
		return
	}

	folderPath := r.FormValue("folderPath")
	contentType := header.Header.Get("Content-Type")

	url, err := ro.repo.Blobs().Upload(r.Context(), file, folderPath, header.Filename, contentType)
	if err != nil {
		serverError(w, r, err)
		return
	}

	// When the upload names a module, register the stored URL as one of its
	// materials.
	moduleID := r.FormValue("moduleId")
	courseID := r.FormValue("courseId")
	if moduleID != "" && courseID != "" {
		if _, err := ro.repo.AddMaterial(r.Context(), moduleID, courseID, url); err != nil {
			domainError(w, r, err)
			return
		}
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, render.M{"message": "File uploaded successfully", "url": url})
}
