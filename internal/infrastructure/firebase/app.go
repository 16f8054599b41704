package firebase

import (
	"context"
	"fmt"
	"os"

	"cloud.google.com/go/firestore"
	fbapp "firebase.google.com/go/v4"
	"google.golang.org/api/option"

	"teamsynchub/pkg/config"
	"teamsynchub/pkg/logger"
)

// CredentialOption picks the service account from the inline JSON first,
// then from a file. It returns nil when neither is set so the default
// application credentials apply.
func CredentialOption(cfg *config.Config) (option.ClientOption, error) {
	if cfg.FirebaseCredentialJSON != "" {
		logger.Info("Using Firebase service account from environment variable")
		return option.WithCredentialsJSON([]byte(cfg.FirebaseCredentialJSON)), nil
	}
	if cfg.FirebaseCredentialPath != "" {
		if _, err := os.Stat(cfg.FirebaseCredentialPath); err != nil {
			return nil, fmt.Errorf("service account file %s: %w", cfg.FirebaseCredentialPath, err)
		}
		logger.Info("Using Firebase service account from file: %s", cfg.FirebaseCredentialPath)
		return option.WithCredentialsFile(cfg.FirebaseCredentialPath), nil
	}
	logger.Info("Using application default credentials")
	return nil, nil
}

// NewFirestoreClient initialises the Firebase app and returns its Firestore
// client. The caller closes it.
func NewFirestoreClient(ctx context.Context, cfg *config.Config) (*firestore.Client, error) {
	var opts []option.ClientOption
	opt, err := CredentialOption(cfg)
	if err != nil {
		return nil, err
	}
	if opt != nil {
		opts = append(opts, opt)
	}

	app, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opts...)
	if err != nil {
		return nil, fmt.Errorf("initialize firebase: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("create firestore client: %w", err)
	}
	return client, nil
}
