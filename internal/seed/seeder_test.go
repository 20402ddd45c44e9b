package seed

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnhub/internal/config"
	"learnhub/internal/lmserrors"
	"learnhub/internal/models"
)

// fakeStore is an in-memory stand-in for the repository, implementing every
// narrow interface the seeder depends on.
type fakeStore struct {
	users   map[string]*models.User // by ID
	specs   map[string]*models.Specialization
	courses map[string]*models.Course
	modules map[string][]*models.Module // by course ID

	bucketExists bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:   make(map[string]*models.User),
		specs:   make(map[string]*models.Specialization),
		courses: make(map[string]*models.Course),
		modules: make(map[string][]*models.Module),
	}
}

func (f *fakeStore) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, lmserrors.UserNotFoundError
}

func (f *fakeStore) CreateUser(_ context.Context, req *models.CreateUserRequest) (*models.User, error) {
	if _, err := f.GetUserByEmail(context.Background(), req.Email); err == nil {
		return nil, lmserrors.EmailExistsError
	}
	user := &models.User{
		ID:               uuid.New().String(),
		Email:            req.Email,
		Role:             req.Role,
		Name:             req.Name,
		SpecializationID: req.SpecializationID,
		CourseIDs:        req.CourseIDs,
	}
	f.users[user.ID] = user
	return user, nil
}

func (f *fakeStore) GetSpecializationByCode(_ context.Context, code string) (*models.Specialization, error) {
	for _, spec := range f.specs {
		if spec.Code == code {
			return spec, nil
		}
	}
	return nil, lmserrors.SpecializationNotFoundError
}

func (f *fakeStore) CreateSpecialization(_ context.Context, req *models.CreateSpecializationRequest) (*models.Specialization, error) {
	spec := &models.Specialization{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
	}
	f.specs[spec.ID] = spec
	return spec, nil
}

func (f *fakeStore) ListCourses(_ context.Context, filter models.CourseFilter) ([]*models.Course, error) {
	var out []*models.Course
	for _, course := range f.courses {
		if filter.SpecializationID != "" && course.SpecializationID != filter.SpecializationID {
			continue
		}
		out = append(out, course)
	}
	return out, nil
}

func (f *fakeStore) CreateCourse(_ context.Context, req *models.CreateCourseRequest) (*models.Course, error) {
	course := &models.Course{
		ID:               uuid.New().String(),
		Title:            req.Title,
		Description:      req.Description,
		Category:         req.Category,
		SpecializationID: req.SpecializationID,
		InstructorIDs:    append([]string(nil), req.InstructorIDs...),
	}
	course.Normalize()
	f.courses[course.ID] = course
	return course, nil
}

func (f *fakeStore) AdminUpdateCourse(_ context.Context, id string, req *models.UpdateCourseRequest) (*models.Course, error) {
	course, ok := f.courses[id]
	if !ok {
		return nil, lmserrors.CourseNotFoundError
	}
	if req.SpecializationID != nil {
		course.SpecializationID = *req.SpecializationID
	}
	return course, nil
}

func (f *fakeStore) LinkInstructor(_ context.Context, courseID, instructorID string) (*models.Course, error) {
	course, ok := f.courses[courseID]
	if !ok {
		return nil, lmserrors.CourseNotFoundError
	}
	instructor, ok := f.users[instructorID]
	if !ok {
		return nil, lmserrors.UserNotFoundError
	}

	course.AddInstructor(instructorID)
	if !instructor.HasCourse(courseID) {
		instructor.CourseIDs = append(instructor.CourseIDs, courseID)
	}
	return course, nil
}

func (f *fakeStore) CreateModule(_ context.Context, courseID string, req *models.CreateModuleRequest) (*models.Module, error) {
	module := &models.Module{
		ID:          uuid.New().String(),
		CourseID:    courseID,
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Order != nil {
		module.Order = *req.Order
	}
	f.modules[courseID] = append(f.modules[courseID], module)
	return module, nil
}

func (f *fakeStore) EnsureBucket(_ context.Context) (bool, error) {
	created := !f.bucketExists
	f.bucketExists = true
	return created, nil
}

func newTestSeeder(store *fakeStore) (*Seeder, *config.ServerConfig) {
	cfg := config.DefaultConfig()
	return &Seeder{
		cfg:     cfg,
		users:   store,
		specs:   store,
		courses: store,
		modules: store,
		buckets: store,
	}, cfg
}

func catalogSize() (courses, modules int) {
	for _, seeds := range CoursesBySpecialization {
		courses += len(seeds)
		modules += len(seeds) * len(SampleModules)
	}
	return courses, modules
}

func TestRunProvisionsEmptyStore(t *testing.T) {
	store := newFakeStore()
	seeder, cfg := newTestSeeder(store)

	stats := seeder.Run(context.Background())
	require.Empty(t, stats.Errors)

	wantCourses, wantModules := catalogSize()
	assert.True(t, stats.BucketCreated)
	assert.True(t, stats.AdminCreated)
	assert.Equal(t, len(Specializations), stats.SpecializationsCreated)
	assert.Equal(t, wantCourses, stats.InstructorsCreated)
	assert.Equal(t, wantCourses, stats.CoursesCreated)
	assert.Equal(t, wantModules, stats.ModulesCreated)

	admin, err := store.GetUserByEmail(context.Background(), cfg.AdminEmail)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, admin.Role)
}

func TestRunIsIdempotent(t *testing.T) {
	store := newFakeStore()
	seeder, _ := newTestSeeder(store)

	first := seeder.Run(context.Background())
	require.Empty(t, first.Errors)

	second := seeder.Run(context.Background())
	require.Empty(t, second.Errors)

	assert.False(t, second.BucketCreated)
	assert.False(t, second.AdminCreated)
	assert.Zero(t, second.SpecializationsCreated)
	assert.Zero(t, second.InstructorsCreated)
	assert.Zero(t, second.CoursesCreated)
	assert.Zero(t, second.ModulesCreated)
}

func TestRunLinksCoursesAndInstructorsBothWays(t *testing.T) {
	store := newFakeStore()
	seeder, _ := newTestSeeder(store)

	stats := seeder.Run(context.Background())
	require.Empty(t, stats.Errors)

	for _, course := range store.courses {
		require.NotEmpty(t, course.InstructorIDs, "course %q has no instructors", course.Title)
		assert.Equal(t, course.InstructorIDs[0], course.InstructorID)

		for _, instructorID := range course.InstructorIDs {
			instructor, ok := store.users[instructorID]
			require.True(t, ok)
			assert.True(t, instructor.HasCourse(course.ID),
				"instructor %s missing course %q", instructor.Email, course.Title)
		}
	}
}

func TestRunRepairsHalfLinkedCourse(t *testing.T) {
	store := newFakeStore()
	seeder, _ := newTestSeeder(store)

	require.Empty(t, seeder.Run(context.Background()).Errors)

	// Simulate a crash that wrote the course side of the link but not the
	// instructor side.
	var broken *models.Course
	for _, course := range store.courses {
		broken = course
		break
	}
	require.NotNil(t, broken)
	instructor := store.users[broken.InstructorIDs[0]]
	instructor.CourseIDs = nil

	require.Empty(t, seeder.Run(context.Background()).Errors)
	assert.True(t, instructor.HasCourse(broken.ID))
}

func TestRunAttachesOrphanedCatalogCourse(t *testing.T) {
	store := newFakeStore()
	seeder, _ := newTestSeeder(store)

	// A pre-existing course with a catalog title but no specialization link.
	orphan := &models.Course{
		ID:    uuid.New().String(),
		Title: CoursesBySpecialization["MSC-DA"][0].Title,
	}
	store.courses[orphan.ID] = orphan

	stats := seeder.Run(context.Background())
	require.Empty(t, stats.Errors)

	spec, err := store.GetSpecializationByCode(context.Background(), "MSC-DA")
	require.NoError(t, err)
	assert.Equal(t, spec.ID, orphan.SpecializationID)

	// The repaired course counts as existing, so no duplicate is created.
	wantCourses, _ := catalogSize()
	assert.Equal(t, wantCourses-1, stats.CoursesCreated)
}

func TestStatsSummary(t *testing.T) {
	stats := Stats{
		AdminCreated:           true,
		SpecializationsCreated: 8,
		InstructorsCreated:     32,
		CoursesCreated:         32,
		ModulesCreated:         128,
	}
	assert.Equal(t,
		"admin created=true, specializations=8, instructors=32, courses=32, modules=128, errors=0",
		stats.Summary())
}
