package models

const FirestoreModulesCollection = "lms-modules"

// Module is one unit of course content. Modules are addressed by the
// (moduleId, courseId) pair; Order defines the display and completion
// sequence within the course and is not guaranteed unique.
type Module struct {
	ID          string   `json:"moduleId" mapstructure:"moduleId"`
	CourseID    string   `json:"courseId" mapstructure:"courseId"`
	Title       string   `json:"title" mapstructure:"title"`
	Description string   `json:"description" mapstructure:"description"`
	Order       int      `json:"order" mapstructure:"order"`
	Materials   []string `json:"materials" mapstructure:"materials"`
	CreatedAt   string   `json:"createdAt" mapstructure:"createdAt"`
	UpdatedAt   string   `json:"updatedAt,omitempty" mapstructure:"updatedAt"`
}

// CreateModuleRequest is the parameter struct for CreateModule.
type CreateModuleRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Order       *int     `json:"order"`
	Materials   []string `json:"materials"`
}

// UpdateModuleRequest is the parameter struct for UpdateModule. Nil fields
// are left unchanged.
type UpdateModuleRequest struct {
	CourseID    string   `json:"courseId"`
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Order       *int     `json:"order"`
	Materials   []string `json:"materials"`
}
