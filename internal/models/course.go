package models

const FirestoreCoursesCollection = "lms-courses"

// DefaultCourseCategory is assigned when a course is created without one.
const DefaultCourseCategory = "General"

// Course is owned jointly by the instructors in InstructorIDs. The singular
// InstructorID field exists for clients written against the old single-owner
// schema: it is a read-time projection of InstructorIDs[0], never stored on
// its own.
type Course struct {
	ID               string    `json:"courseId" mapstructure:"courseId"`
	Title            string    `json:"title" mapstructure:"title"`
	Description      string    `json:"description" mapstructure:"description"`
	Category         string    `json:"category" mapstructure:"category"`
	SpecializationID string    `json:"specializationId,omitempty" mapstructure:"specializationId"`
	InstructorIDs    []string  `json:"instructorIds" mapstructure:"instructorIds"`
	InstructorID     string    `json:"instructorId,omitempty" mapstructure:"instructorId"`
	CreatedAt        string    `json:"createdAt" mapstructure:"createdAt"`
	UpdatedAt        string    `json:"updatedAt" mapstructure:"updatedAt"`
	Modules          []*Module `json:"modules,omitempty" mapstructure:"-"`
}

// Normalize reconciles the two ownership representations after a document
// load. Documents written before the plural field existed carry only
// instructorId; those are folded into InstructorIDs. The singular field is
// then re-derived so InstructorID == InstructorIDs[0] always holds.
func (c *Course) Normalize() {
	if len(c.InstructorIDs) == 0 && c.InstructorID != "" {
		c.InstructorIDs = []string{c.InstructorID}
	}
	if len(c.InstructorIDs) > 0 {
		c.InstructorID = c.InstructorIDs[0]
	} else {
		c.InstructorID = ""
	}
}

// HasInstructor reports whether the given user owns this course, matching
// either the plural set or the legacy singular field.
func (c *Course) HasInstructor(userID string) bool {
	if userID == "" {
		return false
	}
	if c.InstructorID == userID {
		return true
	}
	for _, id := range c.InstructorIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// AddInstructor appends the user to the ownership set if absent and refreshes
// the singular projection.
func (c *Course) AddInstructor(userID string) {
	if !c.HasInstructor(userID) {
		c.InstructorIDs = append(c.InstructorIDs, userID)
	}
	c.Normalize()
}

// CreateCourseRequest is the parameter struct for CreateCourse.
type CreateCourseRequest struct {
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Category         string   `json:"category"`
	SpecializationID string   `json:"specializationId"`
	InstructorIDs    []string `json:"instructorIds"`
}

// UpdateCourseRequest is the parameter struct for UpdateCourse and
// AdminUpdateCourse. Nil fields are left unchanged.
type UpdateCourseRequest struct {
	Title            *string  `json:"title"`
	Description      *string  `json:"description"`
	Category         *string  `json:"category"`
	SpecializationID *string  `json:"specializationId"`
	InstructorIDs    []string `json:"instructorIds"`
}

// CourseFilter narrows ListCourses. Instructor and category may be combined;
// the specialization filter is exclusive.
type CourseFilter struct {
	InstructorID     string
	SpecializationID string
	Category         string
}
