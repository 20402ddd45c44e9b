package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"learnhub/internal/lmserrors"
	"learnhub/internal/models"
)

// CreateSpecialization creates a specialization after checking code
// uniqueness via a read-then-write check.
func (r *Repository) CreateSpecialization(ctx context.Context, req *models.CreateSpecializationRequest) (*models.Specialization, error) {
	if _, err := r.GetSpecializationByCode(ctx, req.Code); err == nil {
		return nil, lmserrors.SpecializationCodeError
	}

	spec := &models.Specialization{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
		CreatedAt:   nowTimestamp(),
	}

	_, err := r.specializations().Doc(spec.ID).Set(ctx, map[string]interface{}{
		"specializationId": spec.ID,
		"name":             spec.Name,
		"code":             spec.Code,
		"description":      spec.Description,
		"createdAt":        spec.CreatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating specialization: %w", err)
	}
	return spec, nil
}

func (r *Repository) GetSpecialization(ctx context.Context, id string) (*models.Specialization, error) {
	doc, err := r.specializations().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, lmserrors.SpecializationNotFoundError
		}
		return nil, fmt.Errorf("error getting specialization: %w", err)
	}
	return docToSpecialization(doc)
}

func (r *Repository) GetSpecializationByCode(ctx context.Context, code string) (*models.Specialization, error) {
	iter := r.specializations().Where("code", "==", code).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, lmserrors.SpecializationNotFoundError
	}
	if err != nil {
		return nil, fmt.Errorf("error querying specialization by code: %w", err)
	}
	return docToSpecialization(doc)
}

func (r *Repository) ListSpecializations(ctx context.Context) ([]*models.Specialization, error) {
	iter := r.specializations().Documents(ctx)
	defer iter.Stop()

	specs := []*models.Specialization{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error listing specializations: %w", err)
		}
		spec, err := docToSpecialization(doc)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// UpdateSpecialization applies the supplied fields and refreshes updatedAt.
func (r *Repository) UpdateSpecialization(ctx context.Context, id string, req *models.UpdateSpecializationRequest) (*models.Specialization, error) {
	var updates []firestore.Update
	if req.Name != nil {
		updates = append(updates, firestore.Update{Path: "name", Value: *req.Name})
	}
	if req.Code != nil {
		updates = append(updates, firestore.Update{Path: "code", Value: *req.Code})
	}
	if req.Description != nil {
		updates = append(updates, firestore.Update{Path: "description", Value: *req.Description})
	}
	if len(updates) == 0 {
		return nil, lmserrors.NoFieldsToUpdateError
	}
	updates = append(updates, firestore.Update{Path: "updatedAt", Value: nowTimestamp()})

	if _, err := r.specializations().Doc(id).Update(ctx, updates); err != nil {
		if isNotFound(err) {
			return nil, lmserrors.SpecializationNotFoundError
		}
		return nil, fmt.Errorf("error updating specialization: %w", err)
	}
	return r.GetSpecialization(ctx, id)
}

func (r *Repository) DeleteSpecialization(ctx context.Context, id string) error {
	if _, err := r.specializations().Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("error deleting specialization: %w", err)
	}
	return nil
}

func docToSpecialization(doc *firestore.DocumentSnapshot) (*models.Specialization, error) {
	var s models.Specialization
	if err := decodeDoc(doc, &s); err != nil {
		return nil, err
	}
	s.ID = doc.Ref.ID
	return &s, nil
}
