package repository

import (
	"context"
	"fmt"
	"sort"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"learnhub/internal/lmserrors"
	"learnhub/internal/models"
)

// CreateModule creates a content module within the course.
func (r *Repository) CreateModule(ctx context.Context, courseID string, req *models.CreateModuleRequest) (*models.Module, error) {
	order := 0
	if req.Order != nil {
		order = *req.Order
	}

	module := &models.Module{
		ID:          uuid.New().String(),
		CourseID:    courseID,
		Title:       req.Title,
		Description: req.Description,
		Order:       order,
		Materials:   req.Materials,
		CreatedAt:   nowTimestamp(),
	}
	if module.Materials == nil {
		module.Materials = []string{}
	}

	_, err := r.modules().Doc(module.ID).Set(ctx, map[string]interface{}{
		"moduleId":    module.ID,
		"courseId":    module.CourseID,
		"title":       module.Title,
		"description": module.Description,
		"order":       module.Order,
		"materials":   module.Materials,
		"createdAt":   module.CreatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating module: %w", err)
	}
	return module, nil
}

// GetModule fetches a module by its composite (moduleId, courseId) key. A
// module stored under a different course is reported as not found.
func (r *Repository) GetModule(ctx context.Context, moduleID, courseID string) (*models.Module, error) {
	doc, err := r.modules().Doc(moduleID).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, lmserrors.ModuleNotFoundError
		}
		return nil, fmt.Errorf("error getting module: %w", err)
	}
	module, err := docToModule(doc)
	if err != nil {
		return nil, err
	}
	if module.CourseID != courseID {
		return nil, lmserrors.ModuleNotFoundError
	}
	return module, nil
}

// ListModulesByCourse returns the course's modules sorted by display order.
func (r *Repository) ListModulesByCourse(ctx context.Context, courseID string) ([]*models.Module, error) {
	iter := r.modules().Where("courseId", "==", courseID).Documents(ctx)
	defer iter.Stop()

	modules := []*models.Module{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error listing modules: %w", err)
		}
		module, err := docToModule(doc)
		if err != nil {
			return nil, err
		}
		modules = append(modules, module)
	}

	sort.SliceStable(modules, func(i, j int) bool {
		return modules[i].Order < modules[j].Order
	})
	return modules, nil
}

// UpdateModule applies the supplied fields and refreshes updatedAt.
func (r *Repository) UpdateModule(ctx context.Context, moduleID, courseID string, req *models.UpdateModuleRequest) (*models.Module, error) {
	if _, err := r.GetModule(ctx, moduleID, courseID); err != nil {
		return nil, err
	}

	var updates []firestore.Update
	if req.Title != nil {
		updates = append(updates, firestore.Update{Path: "title", Value: *req.Title})
	}
	if req.Description != nil {
		updates = append(updates, firestore.Update{Path: "description", Value: *req.Description})
	}
	if req.Order != nil {
		updates = append(updates, firestore.Update{Path: "order", Value: *req.Order})
	}
	if req.Materials != nil {
		updates = append(updates, firestore.Update{Path: "materials", Value: req.Materials})
	}
	if len(updates) == 0 {
		return nil, lmserrors.NoFieldsToUpdateError
	}
	updates = append(updates, firestore.Update{Path: "updatedAt", Value: nowTimestamp()})

	if _, err := r.modules().Doc(moduleID).Update(ctx, updates); err != nil {
		return nil, fmt.Errorf("error updating module: %w", err)
	}
	return r.GetModule(ctx, moduleID, courseID)
}

func (r *Repository) DeleteModule(ctx context.Context, moduleID, courseID string) error {
	if _, err := r.GetModule(ctx, moduleID, courseID); err != nil {
		return err
	}
	if _, err := r.modules().Doc(moduleID).Delete(ctx); err != nil {
		return fmt.Errorf("error deleting module: %w", err)
	}
	return nil
}

// AddMaterial appends a blob URL to the module's materials if absent.
func (r *Repository) AddMaterial(ctx context.Context, moduleID, courseID, materialURL string) (*models.Module, error) {
	module, err := r.GetModule(ctx, moduleID, courseID)
	if err != nil {
		return nil, err
	}

	for _, m := range module.Materials {
		if m == materialURL {
			return module, nil
		}
	}
	materials := append(module.Materials, materialURL)
	return r.UpdateModule(ctx, moduleID, courseID, &models.UpdateModuleRequest{Materials: materials})
}

func docToModule(doc *firestore.DocumentSnapshot) (*models.Module, error) {
	var m models.Module
	if err := decodeDoc(doc, &m); err != nil {
		return nil, err
	}
	m.ID = doc.Ref.ID
	return &m, nil
}
