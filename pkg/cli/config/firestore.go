package config

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/PranavU-Coder/bitsatards-bot/pkg/repository"
)

type Firestore struct {
	projectID  string
	databaseID string
}

func (x *Firestore) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "firestore-project-id",
			Usage:       "Firestore project ID",
			Destination: &x.projectID,
			Category:    "Firestore",
			Sources:     cli.EnvVars("BITSAT_FIRESTORE_PROJECT_ID"),
		},
		&cli.StringFlag{
			Name:        "firestore-database-id",
			Usage:       "Firestore database ID",
			Destination: &x.databaseID,
			Category:    "Firestore",
			Sources:     cli.EnvVars("BITSAT_FIRESTORE_DATABASE_ID"),
			Value:       "(default)",
		},
	}
}

func (x Firestore) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("project_id", x.projectID),
		slog.String("database_id", x.databaseID),
	)
}

func (x *Firestore) Configure(ctx context.Context) (*repository.Firestore, error) {
	return repository.NewFirestore(ctx, x.projectID, x.databaseID)
}

// IsConfigured returns true when a project ID was given; otherwise the
// serve command falls back to the in-memory record store.
func (x *Firestore) IsConfigured() bool {
	return x.projectID != ""
}
