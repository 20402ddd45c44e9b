package models

const FirestoreSpecializationsCollection = "lms-specializations"

// Specialization is a named program of study grouping courses.
type Specialization struct {
	ID          string `json:"specializationId" mapstructure:"specializationId"`
	Name        string `json:"name" mapstructure:"name"`
	Code        string `json:"code" mapstructure:"code"`
	Description string `json:"description" mapstructure:"description"`
	CreatedAt   string `json:"createdAt" mapstructure:"createdAt"`
	UpdatedAt   string `json:"updatedAt,omitempty" mapstructure:"updatedAt"`
}

// CreateSpecializationRequest is the parameter struct for CreateSpecialization.
type CreateSpecializationRequest struct {
	Name        string `json:"name"`
	Code        string `json:"code"`
	Description string `json:"description"`
}

// UpdateSpecializationRequest is the parameter struct for UpdateSpecialization.
type UpdateSpecializationRequest struct {
	Name        *string `json:"name"`
	Code        *string `json:"code"`
	Description *string `json:"description"`
}
