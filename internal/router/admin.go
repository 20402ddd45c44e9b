package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"learnhub/internal/auth"
	"learnhub/internal/lmserrors"
	"learnhub/internal/models"
	"learnhub/internal/seed"
	"learnhub/internal/validators"
)

func (ro *Router) AdminRoutes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(ro.authn.RequireAuth(), auth.RequireRole(models.RoleAdmin))

	router.Post("/students", ro.addStudentHandler)
	router.Post("/instructors", ro.addInstructorHandler)

	router.Get("/specializations", ro.adminListSpecializationsHandler)
	router.Post("/specializations", ro.createSpecializationHandler)
	router.Put("/specializations/{specializationID}", ro.updateSpecializationHandler)
	router.Delete("/specializations/{specializationID}", ro.deleteSpecializationHandler)
	router.Get("/specializations/{specializationID}/courses", ro.coursesBySpecializationHandler)

	router.Get("/users", ro.adminListUsersHandler)
	router.Put("/users/{userID}/password", ro.adminChangePasswordHandler)

	router.Post("/courses", ro.adminCreateCourseHandler)
	router.Delete("/courses/{courseID}", ro.adminDeleteCourseHandler)
	router.Put("/courses/{courseID}/instructor", ro.addCourseInstructorHandler)

	router.Post("/seed-courses", ro.seedCoursesHandler)

	return router
}

// POST: /students
func (ro *Router) addStudentHandler(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := decodeBody(r, &req); err != nil {
		renderError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	missing := validators.MissingFields(map[string]string{
		"email":            req.Email,
		"password":         req.Password,
		"name":             req.Name,
		"specializationId": req.SpecializationID,
	})
	if len(missing) > 0 {
		missingFieldsError(w, r, missing)
		return
	}
	if !validators.ValidEmail(req.Email) {
		renderError(w, r, http.StatusBadRequest, "Invalid email format")
		return
	}
	if err := validators.ValidatePassword(req.Password); err != nil {
		renderError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := ro.repo.GetSpecialization(r.Context(), req.SpecializationID); err != nil {
		domainError(w, r, err)
		return
	}

	req.Role = models.RoleStudent
	req.CourseIDs = nil

	user, err := ro.repo.CreateUser(r.Context(), &req)
	if err != nil {
		domainError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, render.M{"message": "Student created successfully", "user": user})
}

// POST: /instructors
//
// Creating an instructor for an email that already belongs to one merges the
// requested courses into the existing account instead of failing.
func (ro *Router) addInstructorHandler(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := decodeBody(r, &req); err != nil {
		renderError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	missing := validators.MissingFields(map[string]string{
		"email":            req.Email,
		"password":         req.Password,
		"name":             req.Name,
		"specializationId": req.SpecializationID,
	})
	if len(missing) > 0 {
		missingFieldsError(w, r, missing)
		return
	}
	if !validators.ValidEmail(req.Email) {
		renderError(w, r, http.StatusBadRequest, "Invalid email format")
		return
	}
	if err := validators.ValidatePassword(req.Password); err != nil {
		renderError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if len(req.CourseIDs) == 0 {
		renderError(w, r, http.StatusBadRequest, "At least one course must be selected")
		return
	}

	if _, err := ro.repo.GetSpecialization(r.Context(), req.SpecializationID); err != nil {
		domainError(w, r, err)
		return
	}
	for _, courseID := range req.CourseIDs {
		course, err := ro.repo.GetCourse(r.Context(), courseID)
		if err != nil {
			renderError(w, r, http.StatusBadRequest, fmt.Sprintf("Course %s not found", courseID))
			return
		}
		if course.SpecializationID != req.SpecializationID {
			renderError(w, r, http.StatusBadRequest,
				fmt.Sprintf("Course %s does not belong to the selected specialization", courseID))
			return
		}
	}

	existing, err := ro.repo.GetUserByEmail(r.Context(), req.Email)
	if err == nil {
		if existing.Role != models.RoleInstructor {
			renderError(w, r, http.StatusBadRequest, lmserrors.RoleConflictError.Error())
			return
		}

		// LinkInstructor keeps both sides of the relation: the course's
		// instructorIds and the instructor's courseIds.
		for _, courseID := range req.CourseIDs {
			if _, err := ro.repo.LinkInstructor(r.Context(), courseID, existing.ID); err != nil {
				domainError(w, r, err)
				return
			}
		}

		updated, err := ro.repo.GetUserByID(r.Context(), existing.ID)
		if err != nil {
			serverError(w, r, err)
			return
		}
		render.JSON(w, r, render.M{
			"message": "Instructor updated successfully - courses added",
			"user":    updated,
		})
		return
	}

	req.Role = models.RoleInstructor
	user, err := ro.repo.CreateUser(r.Context(), &req)
	if err != nil {
		domainError(w, r, err)
		return
	}
	for _, courseID := range req.CourseIDs {
		if _, err := ro.repo.LinkInstructor(r.Context(), courseID, user.ID); err != nil {
			domainError(w, r, err)
			return
		}
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, render.M{"message": "Instructor created successfully", "user": user})
}

// GET: /specializations
func (ro *Router) adminListSpecializationsHandler(w http.ResponseWriter, r *http.Request) {
	specs, err := ro.repo.ListSpecializations(r.Context())
	if err != nil {
		serverError(w, r, err)
		return
	}
	render.JSON(w, r, render.M{"specializations": specs})
}

// POST: /specializations
func (ro *Router) createSpecializationHandler(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSpecializationRequest
	if err := decodeBody(r, &req); err != nil {
		renderError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	missing := validators.MissingFields(map[string]string{
		"name": req.Name,
		"code": req.Code,
	})
	if len(missing) > 0 {
		missingFieldsError(w, r, missing)
		return
	}

	spec, err := ro.repo.CreateSpecialization(r.Context(), &req)
	if err != nil {
		domainError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, render.M{"message": "Specialization created successfully", "specialization": spec})
}

// PUT: /specializations/{specializationID}
func (ro *Router) updateSpecializationHandler(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateSpecializationRequest
	if err := decodeBody(r, &req); err != nil {
		renderError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	spec, err := ro.repo.UpdateSpecialization(r.Context(), chi.URLParam(r, "specializationID"), &req)
	if err != nil {
		domainError(w, r, err)
		return
	}
	render.JSON(w, r, render.M{"message": "Specialization updated successfully", "specialization": spec})
}

// DELETE: /specializations/{specializationID}
func (ro *Router) deleteSpecializationHandler(w http.ResponseWriter, r *http.Request) {
	if err := ro.repo.DeleteSpecialization(r.Context(), chi.URLParam(r, "specializationID")); err != nil {
		domainError(w, r, err)
		return
	}
	render.JSON(w, r, render.M{"message": "Specialization deleted successfully"})
}

// GET: /specializations/{specializationID}/courses
//
// Courses written before specializations existed carry no specializationId.
// Before answering, any such course whose title matches the reference
// catalog is attached to its specialization.
func (ro *Router) coursesBySpecializationHandler(w http.ResponseWriter, r *http.Request) {
	specializationID := chi.URLParam(r, "specializationID")

	if _, err := ro.repo.GetSpecialization(r.Context(), specializationID); err != nil {
		if errors.Is(err, lmserrors.SpecializationNotFoundError) {
			renderError(w, r, http.StatusNotFound, err.Error())
			return
		}
		serverError(w, r, err)
		return
	}

	if err := ro.repairUnattachedCourses(r); err != nil {
		serverError(w, r, err)
		return
	}

	courses, err := ro.repo.ListCourses(r.Context(), models.CourseFilter{SpecializationID: specializationID})
	if err != nil {
		serverError(w, r, err)
		return
	}
	render.JSON(w, r, render.M{"courses": courses})
}

func (ro *Router) repairUnattachedCourses(r *http.Request) error {
	all, err := ro.repo.ListCourses(r.Context(), models.CourseFilter{})
	if err != nil {
		return err
	}

	var unattached []*models.Course
	for _, course := range all {
		if course.SpecializationID == "" {
			unattached = append(unattached, course)
		}
	}
	if len(unattached) == 0 {
		return nil
	}

	specs, err := ro.repo.ListSpecializations(r.Context())
	if err != nil {
		return err
	}
	codeToID := make(map[string]string, len(specs))
	for _, spec := range specs {
		codeToID[spec.Code] = spec.ID
	}

	titleToSpec := make(map[string]string)
	for code, seeds := range seed.CoursesBySpecialization {
		specID, ok := codeToID[code]
		if !ok {
			continue
		}
		for _, courseSeed := range seeds {
			titleToSpec[courseSeed.Title] = specID
		}
	}

	for _, course := range unattached {
		specID, ok := titleToSpec[course.Title]
		if !ok {
			continue
		}
		if _, err := ro.repo.AdminUpdateCourse(r.Context(), course.ID, &models.UpdateCourseRequest{
			SpecializationID: &specID,
		}); err != nil {
			return err
		}
	}
	return nil
}

// GET: /users?role=
//
// Users come back enriched with their specialization name and, for
// instructors, the titles of their courses. Lookups are batched so the
// response costs three reads regardless of user count.
func (ro *Router) adminListUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := ro.repo.ListUsers(r.Context(), r.URL.Query().Get("role"))
	if err != nil {
		serverError(w, r, err)
		return
	}

	specs, err := ro.repo.ListSpecializations(r.Context())
	if err != nil {
		serverError(w, r, err)
		return
	}
	specNames := make(map[string]string, len(specs))
	for _, spec := range specs {
		specNames[spec.ID] = spec.Name
	}

	courses, err := ro.repo.ListCourses(r.Context(), models.CourseFilter{})
	if err != nil {
		serverError(w, r, err)
		return
	}
	courseTitles := make(map[string]string, len(courses))
	for _, course := range courses {
		courseTitles[course.ID] = course.Title
	}

	for _, user := range users {
		if user.SpecializationID != "" {
			name, ok := specNames[user.SpecializationID]
			if !ok {
				name = "-"
			}
			user.SpecializationName = name
		}
		if user.Role == models.RoleInstructor && len(user.CourseIDs) > 0 {
			titles := make([]string, 0, len(user.CourseIDs))
			for _, courseID := range user.CourseIDs {
				if title, ok := courseTitles[courseID]; ok {
					titles = append(titles, title)
				}
			}
			user.CourseTitles = titles
		}
	}

	render.JSON(w, r, render.M{"users": users})
}

// PUT: /users/{userID}/password
func (ro *Router) adminChangePasswordHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Password string `json:"password"`
	}
	if err := decodeBody(r, &req); err != nil {
		renderError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if req.Password == "" {
		renderError(w, r, http.StatusBadRequest, "Password is required")
		return
	}
	if err := validators.ValidatePassword(req.Password); err != nil {
		renderError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := ro.repo.AdminChangePassword(r.Context(), chi.URLParam(r, "userID"), req.Password); err != nil {
		domainError(w, r, err)
		return
	}
	render.JSON(w, r, render.M{"message": "Password changed successfully"})
}

// POST: /courses
//
// The instructor is optional. Without one the course is assigned to an
// instructor of the same specialization, then any instructor, then an
// admin; with nobody available at all the request fails.
func (ro *Router) adminCreateCourseHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title            string `json:"title"`
		Description      string `json:"description"`
		SpecializationID string `json:"specializationId"`
		InstructorID     string `json:"instructorId"`
	}
	if err := decodeBody(r, &req); err != nil {
		renderError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	missing := validators.MissingFields(map[string]string{
		"title":            req.Title,
		"specializationId": req.SpecializationID,
	})
	if len(missing) > 0 {
		missingFieldsError(w, r, missing)
		return
	}

	if _, err := ro.repo.GetSpecialization(r.Context(), req.SpecializationID); err != nil {
		domainError(w, r, err)
		return
	}

	instructorID := req.InstructorID
	if instructorID == "" {
		owner, err := ro.fallbackCourseOwner(r, req.SpecializationID)
		if err != nil {
			serverError(w, r, err)
			return
		}
		if owner == "" {
			renderError(w, r, http.StatusBadRequest,
				"Cannot create course: No instructors or admins available in the system. Please create an instructor first.")
			return
		}
		instructorID = owner
	}

	course, err := ro.repo.CreateCourse(r.Context(), &models.CreateCourseRequest{
		Title:            req.Title,
		Description:      req.Description,
		Category:         models.DefaultCourseCategory,
		SpecializationID: req.SpecializationID,
		InstructorIDs:    []string{instructorID},
	})
	if err != nil {
		domainError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, render.M{"message": "Course created successfully", "course": course})
}

func (ro *Router) fallbackCourseOwner(r *http.Request, specializationID string) (string, error) {
	instructors, err := ro.repo.ListUsers(r.Context(), models.RoleInstructor)
	if err != nil {
		return "", err
	}
	for _, instructor := range instructors {
		if instructor.SpecializationID == specializationID {
			return instructor.ID, nil
		}
	}
	if len(instructors) > 0 {
		return instructors[0].ID, nil
	}

	admins, err := ro.repo.ListUsers(r.Context(), models.RoleAdmin)
	if err != nil {
		return "", err
	}
	if len(admins) > 0 {
		return admins[0].ID, nil
	}
	return "", nil
}

// DELETE: /courses/{courseID}
func (ro *Router) adminDeleteCourseHandler(w http.ResponseWriter, r *http.Request) {
	if err := ro.repo.AdminDeleteCourse(r.Context(), chi.URLParam(r, "courseID")); err != nil {
		domainError(w, r, err)
		return
	}
	render.JSON(w, r, render.M{"message": "Course deleted successfully"})
}

// PUT: /courses/{courseID}/instructor
func (ro *Router) addCourseInstructorHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		InstructorID string `json:"instructorId"`
	}
	if err := decodeBody(r, &req); err != nil {
		renderError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if req.InstructorID == "" {
		renderError(w, r, http.StatusBadRequest, "instructorId is required")
		return
	}

	courseID := chi.URLParam(r, "courseID")
	if _, err := ro.repo.GetCourse(r.Context(), courseID); err != nil {
		if errors.Is(err, lmserrors.CourseNotFoundError) {
			renderError(w, r, http.StatusNotFound, err.Error())
			return
		}
		serverError(w, r, err)
		return
	}

	course, err := ro.repo.LinkInstructor(r.Context(), courseID, req.InstructorID)
	if err != nil {
		domainError(w, r, err)
		return
	}
	render.JSON(w, r, render.M{"message": "Instructor added to course successfully", "course": course})
}

// POST: /seed-courses
func (ro *Router) seedCoursesHandler(w http.ResponseWriter, r *http.Request) {
	stats := ro.seeder.Run(r.Context())

	var errs interface{}
	if len(stats.Errors) > 0 {
		errs = stats.Errors
	}

	render.JSON(w, r, render.M{
		"message": fmt.Sprintf("Seeding completed. Created %d courses, %d instructors, and %d modules.",
			stats.CoursesCreated, stats.InstructorsCreated, stats.ModulesCreated),
		"created_count":             stats.CoursesCreated,
		"instructors_created_count": stats.InstructorsCreated,
		"modules_created_count":     stats.ModulesCreated,
		"specializations_created":   stats.SpecializationsCreated,
		"errors":                    errs,
	})
}
