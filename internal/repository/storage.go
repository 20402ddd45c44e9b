package repository

import (
	"context"
	"errors"
	"fmt"
	"io"

	"cloud.google.com/go/storage"

	"learnhub/internal/config"
)

type storageLayer struct {
	client *storage.Client
	cfg    *config.ServerConfig
}

// BlobStore holds uploaded course materials in a Cloud Storage bucket,
// keyed as {folderPath}/{filename}.
type BlobStore storageLayer

func (b *BlobStore) bucket() *storage.BucketHandle {
	return b.client.Bucket(b.cfg.StorageBucket)
}

// Upload writes the file to the bucket and returns its public URL.
func (b *BlobStore) Upload(ctx context.Context, file io.Reader, folderPath, filename, contentType string) (string, error) {
	key := filename
	if folderPath != "" {
		key = folderPath + "/" + filename
	}

	w := b.bucket().Object(key).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := io.Copy(w, file); err != nil {
		w.Close()
		return "", fmt.Errorf("error uploading file: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("error uploading file: %w", err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", b.cfg.StorageBucket, key), nil
}

// Delete removes the object under the given key.
func (b *BlobStore) Delete(ctx context.Context, key string) error {
	if err := b.bucket().Object(key).Delete(ctx); err != nil {
		return fmt.Errorf("error deleting file: %w", err)
	}
	return nil
}

// EnsureBucket creates the materials bucket if it does not exist yet. An
// already-existing bucket is success, not an error.
func (b *BlobStore) EnsureBucket(ctx context.Context) (created bool, err error) {
	_, err = b.bucket().Attrs(ctx)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, storage.ErrBucketNotExist) {
		return false, fmt.Errorf("error checking bucket: %w", err)
	}

	if err := b.bucket().Create(ctx, b.cfg.ProjectID, nil); err != nil {
		return false, fmt.Errorf("error creating bucket: %w", err)
	}
	return true, nil
}
