package repository

import (
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/mitchellh/mapstructure"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"learnhub/internal/config"
	"learnhub/internal/firebase"
	"learnhub/internal/models"
)

// Repository provides the entity stores backed by Firestore and the blob
// store backed by Cloud Storage. Uniqueness and dedup checks are
// read-then-write: the backing store offers per-document atomicity only, so
// two concurrent creates for the same natural key can both pass the
// existence check. Sequential creates are guaranteed to conflict.
type Repository struct {
	cfg       *config.ServerConfig
	firestore *firestore.Client
	storage   *storageLayer
}

func New(app *firebase.App, cfg *config.ServerConfig) *Repository {
	return &Repository{
		cfg:       cfg,
		firestore: app.Firestore,
		storage:   &storageLayer{client: app.Storage, cfg: cfg},
	}
}

// Blobs returns the blob store for uploaded course materials.
func (r *Repository) Blobs() *BlobStore {
	return (*BlobStore)(r.storage)
}

func (r *Repository) users() *firestore.CollectionRef {
	return r.firestore.Collection(models.FirestoreUsersCollection)
}

func (r *Repository) specializations() *firestore.CollectionRef {
	return r.firestore.Collection(models.FirestoreSpecializationsCollection)
}

func (r *Repository) courses() *firestore.CollectionRef {
	return r.firestore.Collection(models.FirestoreCoursesCollection)
}

func (r *Repository) modules() *firestore.CollectionRef {
	return r.firestore.Collection(models.FirestoreModulesCollection)
}

func (r *Repository) enrollments() *firestore.CollectionRef {
	return r.firestore.Collection(models.FirestoreEnrollmentsCollection)
}

func (r *Repository) progress() *firestore.CollectionRef {
	return r.firestore.Collection(models.FirestoreProgressCollection)
}

// Helpers

func decodeDoc(doc *firestore.DocumentSnapshot, out interface{}) error {
	if err := mapstructure.Decode(doc.Data(), out); err != nil {
		return fmt.Errorf("error destructuring document %s: %w", doc.Ref.ID, err)
	}
	return nil
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

func nowTimestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
