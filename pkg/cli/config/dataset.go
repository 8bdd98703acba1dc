package config

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/PranavU-Coder/bitsatards-bot/pkg/service/branch"
	"github.com/PranavU-Coder/bitsatards-bot/pkg/service/dataset"
)

type Dataset struct {
	dataDir   string
	aliasFile string
}

func (x *Dataset) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "data-dir",
			Usage:       "Directory holding analysis_data/ and predict/ CSV files",
			Category:    "Dataset",
			Destination: &x.dataDir,
			Sources:     cli.EnvVars("BITSAT_DATA_DIR"),
			Value:       "data",
		},
		&cli.StringFlag{
			Name:        "branch-alias-file",
			Usage:       "Branch alias file (one 'full name:alias' per line)",
			Category:    "Dataset",
			Destination: &x.aliasFile,
			Sources:     cli.EnvVars("BITSAT_BRANCH_ALIAS_FILE"),
		},
	}
}

func (x Dataset) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("data_dir", x.dataDir),
		slog.String("alias_file", x.aliasFile),
	)
}

// Configure loads the data snapshot and builds the branch resolver over
// it. Missing files degrade to reduced coverage, never a startup failure.
func (x *Dataset) Configure(ctx context.Context) (*dataset.Store, *branch.Resolver, error) {
	store, err := dataset.Load(ctx, dataset.DefaultConfig(x.dataDir))
	if err != nil {
		return nil, nil, err
	}

	aliasFile := x.aliasFile
	if aliasFile == "" {
		aliasFile = filepath.Join(x.dataDir, "branch_names.txt")
	}
	resolver := branch.NewResolver(ctx, aliasFile, store.Cutoffs.Branches())

	return store, resolver, nil
}
