package firebase

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/storage"
	firebaseSDK "firebase.google.com/go"
	"google.golang.org/api/option"

	"learnhub/internal/config"
)

// App bundles the GCP clients the repository layer depends on. It is
// constructed once in main and injected, never held as a package global.
type App struct {
	Firestore *firestore.Client
	Storage   *storage.Client
}

func NewApp(ctx context.Context, cfg *config.ServerConfig) (*App, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	fbApp, err := firebaseSDK.NewApp(ctx, &firebaseSDK.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase app error: %w", err)
	}

	firestoreClient, err := fbApp.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("firestore client error: %w", err)
	}

	storageClient, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("storage client error: %w", err)
	}

	return &App{Firestore: firestoreClient, Storage: storageClient}, nil
}

func (a *App) Close() error {
	if err := a.Firestore.Close(); err != nil {
		return err
	}
	return a.Storage.Close()
}
