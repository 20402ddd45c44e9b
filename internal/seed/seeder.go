package seed

import (
	"context"
	"fmt"

	"github.com/golang/glog"

	"learnhub/internal/config"
	"learnhub/internal/models"
	"learnhub/internal/repository"
)

// The seeder talks to the data layer through narrow interfaces so tests can
// swap in fakes. *repository.Repository satisfies all of them.

type userStore interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error)
}

type specializationStore interface {
	GetSpecializationByCode(ctx context.Context, code string) (*models.Specialization, error)
	CreateSpecialization(ctx context.Context, req *models.CreateSpecializationRequest) (*models.Specialization, error)
}

type courseStore interface {
	ListCourses(ctx context.Context, filter models.CourseFilter) ([]*models.Course, error)
	CreateCourse(ctx context.Context, req *models.CreateCourseRequest) (*models.Course, error)
	AdminUpdateCourse(ctx context.Context, id string, req *models.UpdateCourseRequest) (*models.Course, error)
	LinkInstructor(ctx context.Context, courseID, instructorID string) (*models.Course, error)
}

type moduleStore interface {
	CreateModule(ctx context.Context, courseID string, req *models.CreateModuleRequest) (*models.Module, error)
}

type bucketStore interface {
	EnsureBucket(ctx context.Context) (bool, error)
}

// Stats reports what a seeding run actually created. A fully converged store
// yields the zero value (plus any accumulated errors).
type Stats struct {
	BucketCreated          bool
	AdminCreated           bool
	SpecializationsCreated int
	InstructorsCreated     int
	CoursesCreated         int
	ModulesCreated         int
	Errors                 []string
}

// Seeder provisions the reference catalog on startup. Every step is
// idempotent: existing records are matched by natural key (admin by email,
// specializations by code, instructors by email, courses by title within a
// specialization) and left alone, so running it on every boot is safe.
type Seeder struct {
	cfg     *config.ServerConfig
	users   userStore
	specs   specializationStore
	courses courseStore
	modules moduleStore
	buckets bucketStore
}

func New(repo *repository.Repository, cfg *config.ServerConfig) *Seeder {
	return &Seeder{
		cfg:     cfg,
		users:   repo,
		specs:   repo,
		courses: repo,
		modules: repo,
		buckets: repo.Blobs(),
	}
}

// Run executes all seeding steps in order. Individual failures are recorded
// in Stats.Errors and the remaining steps still run; a half-seeded store is
// repaired on the next start.
func (s *Seeder) Run(ctx context.Context) Stats {
	var stats Stats

	s.ensureBucket(ctx, &stats)
	s.ensureAdmin(ctx, &stats)
	specIDs := s.ensureSpecializations(ctx, &stats)
	s.repairCourseSpecializations(ctx, specIDs, &stats)
	s.ensureCoursesAndInstructors(ctx, specIDs, &stats)

	return stats
}

func (s *Seeder) ensureBucket(ctx context.Context, stats *Stats) {
	if s.buckets == nil {
		return
	}
	created, err := s.buckets.EnsureBucket(ctx)
	if err != nil {
		stats.fail("ensure bucket: %v", err)
		return
	}
	stats.BucketCreated = created
	if created {
		glog.Infof("seed: created storage bucket %q", s.cfg.StorageBucket)
	}
}

func (s *Seeder) ensureAdmin(ctx context.Context, stats *Stats) {
	if _, err := s.users.GetUserByEmail(ctx, s.cfg.AdminEmail); err == nil {
		return
	}

	_, err := s.users.CreateUser(ctx, &models.CreateUserRequest{
		Email:    s.cfg.AdminEmail,
		Password: s.cfg.AdminPassword,
		Role:     models.RoleAdmin,
		Name:     s.cfg.AdminName,
	})
	if err != nil {
		stats.fail("create admin %s: %v", s.cfg.AdminEmail, err)
		return
	}
	stats.AdminCreated = true
	glog.Infof("seed: created admin account %s", s.cfg.AdminEmail)
}

// ensureSpecializations returns a code-to-ID map covering the whole catalog,
// creating whatever is missing.
func (s *Seeder) ensureSpecializations(ctx context.Context, stats *Stats) map[string]string {
	ids := make(map[string]string, len(Specializations))

	for _, spec := range Specializations {
		existing, err := s.specs.GetSpecializationByCode(ctx, spec.Code)
		if err == nil {
			ids[spec.Code] = existing.ID
			continue
		}

		created, err := s.specs.CreateSpecialization(ctx, &models.CreateSpecializationRequest{
			Name:        spec.Name,
			Code:        spec.Code,
			Description: spec.Description,
		})
		if err != nil {
			stats.fail("create specialization %s: %v", spec.Code, err)
			continue
		}
		ids[spec.Code] = created.ID
		stats.SpecializationsCreated++
		glog.Infof("seed: created specialization %s (%s)", spec.Code, spec.Name)
	}

	return ids
}

// repairCourseSpecializations backfills courses that predate the
// specialization link. A course with no specializationId whose title matches
// a catalog entry is attached to that entry's specialization.
func (s *Seeder) repairCourseSpecializations(ctx context.Context, specIDs map[string]string, stats *Stats) {
	courses, err := s.courses.ListCourses(ctx, models.CourseFilter{})
	if err != nil {
		stats.fail("list courses for repair: %v", err)
		return
	}

	titleToSpec := make(map[string]string)
	for code, seeds := range CoursesBySpecialization {
		id, ok := specIDs[code]
		if !ok {
			continue
		}
		for _, seed := range seeds {
			titleToSpec[seed.Title] = id
		}
	}

	for _, course := range courses {
		if course.SpecializationID != "" {
			continue
		}
		specID, ok := titleToSpec[course.Title]
		if !ok {
			continue
		}
		if _, err := s.courses.AdminUpdateCourse(ctx, course.ID, &models.UpdateCourseRequest{
			SpecializationID: &specID,
		}); err != nil {
			stats.fail("attach course %q to specialization: %v", course.Title, err)
			continue
		}
		glog.Infof("seed: attached course %q to its specialization", course.Title)
	}
}

func (s *Seeder) ensureCoursesAndInstructors(ctx context.Context, specIDs map[string]string, stats *Stats) {
	for _, spec := range Specializations {
		specID, ok := specIDs[spec.Code]
		if !ok {
			continue
		}

		existing, err := s.courses.ListCourses(ctx, models.CourseFilter{SpecializationID: specID})
		if err != nil {
			stats.fail("list courses for %s: %v", spec.Code, err)
			continue
		}
		byTitle := make(map[string]*models.Course, len(existing))
		for _, course := range existing {
			byTitle[course.Title] = course
		}

		for _, seed := range CoursesBySpecialization[spec.Code] {
			instructorID, err := s.ensureInstructor(ctx, seed, specID, stats)
			if err != nil {
				continue
			}

			course, found := byTitle[seed.Title]
			if !found {
				course, err = s.courses.CreateCourse(ctx, &models.CreateCourseRequest{
					Title:            seed.Title,
					Description:      seed.Description,
					SpecializationID: specID,
					InstructorIDs:    []string{instructorID},
				})
				if err != nil {
					stats.fail("create course %q: %v", seed.Title, err)
					continue
				}
				stats.CoursesCreated++
				glog.Infof("seed: created course %q in %s", seed.Title, spec.Code)
				s.createSampleModules(ctx, course.ID, stats)
			}

			// LinkInstructor also repairs half-written state from a
			// previous run that crashed between the two sides of the
			// course/instructor link.
			if _, err := s.courses.LinkInstructor(ctx, course.ID, instructorID); err != nil {
				stats.fail("link instructor %s to course %q: %v", seed.InstructorEmail, seed.Title, err)
			}
		}
	}
}

func (s *Seeder) ensureInstructor(ctx context.Context, seed CourseSeed, specID string, stats *Stats) (string, error) {
	if existing, err := s.users.GetUserByEmail(ctx, seed.InstructorEmail); err == nil {
		return existing.ID, nil
	}

	created, err := s.users.CreateUser(ctx, &models.CreateUserRequest{
		Email:            seed.InstructorEmail,
		Password:         DefaultInstructorPassword,
		Role:             models.RoleInstructor,
		Name:             seed.InstructorName,
		SpecializationID: specID,
		CourseIDs:        []string{},
	})
	if err != nil {
		stats.fail("create instructor %s: %v", seed.InstructorEmail, err)
		return "", err
	}
	stats.InstructorsCreated++
	glog.Infof("seed: created instructor account %s", seed.InstructorEmail)
	return created.ID, nil
}

// createSampleModules is only called for courses this run just created, so
// it never duplicates modules on an existing course.
func (s *Seeder) createSampleModules(ctx context.Context, courseID string, stats *Stats) {
	for _, mod := range SampleModules {
		order := mod.Order
		_, err := s.modules.CreateModule(ctx, courseID, &models.CreateModuleRequest{
			Title:       mod.Title,
			Description: mod.Description,
			Order:       &order,
		})
		if err != nil {
			stats.fail("create module %q for course %s: %v", mod.Title, courseID, err)
			continue
		}
		stats.ModulesCreated++
	}
}

func (st *Stats) fail(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	st.Errors = append(st.Errors, msg)
	glog.Warningf("seed: %s", msg)
}

// Summary renders the run for the startup log.
func (st Stats) Summary() string {
	return fmt.Sprintf(
		"admin created=%t, specializations=%d, instructors=%d, courses=%d, modules=%d, errors=%d",
		st.AdminCreated, st.SpecializationsCreated, st.InstructorsCreated,
		st.CoursesCreated, st.ModulesCreated, len(st.Errors),
	)
}
