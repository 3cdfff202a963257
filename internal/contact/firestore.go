package contact

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

type FirestoreConfig struct {
	ProjectID       string
	CredentialsPath string
	Collection      string
}

// FirestoreStore writes each message as a document with a server-assigned
// createdAt.
type FirestoreStore struct {
	client     *firestore.Client
	collection string
	log        *zap.Logger
}

func NewFirestoreStore(ctx context.Context, cfg FirestoreConfig, log *zap.Logger) (*FirestoreStore, error) {
	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("init firebase app for project %s: %w", cfg.ProjectID, err)
	}
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("get firestore client: %w", err)
	}

	collection := cfg.Collection
	if collection == "" {
		collection = "messages"
	}
	log.Info("firestore contact store ready",
		zap.String("project_id", cfg.ProjectID),
		zap.String("collection", collection))
	return &FirestoreStore{client: client, collection: collection, log: log.Named("firestore")}, nil
}

func (s *FirestoreStore) Save(ctx context.Context, f Form) (string, error) {
	ref, _, err := s.client.Collection(s.collection).Add(ctx, map[string]any{
		"name":      f.Name,
		"email":     f.Email,
		"subject":   f.Subject,
		"message":   f.Message,
		"createdAt": firestore.ServerTimestamp,
	})
	if err != nil {
		return "", fmt.Errorf("add document to %s: %w", s.collection, err)
	}
	return ref.ID, nil
}

func (s *FirestoreStore) Close() error {
	return s.client.Close()
}
