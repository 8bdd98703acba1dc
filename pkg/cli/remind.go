package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	cli_lib "github.com/urfave/cli/v3"

	"github.com/PranavU-Coder/bitsatards-bot/pkg/cli/config"
	"github.com/PranavU-Coder/bitsatards-bot/pkg/usecase"
	"github.com/PranavU-Coder/bitsatards-bot/pkg/utils/logging"
)

// cmdRemind runs one reminder sweep and exits, for driving the daily
// trigger from an external scheduler instead of the serve process.
func cmdRemind() *cli_lib.Command {
	var (
		firestoreCfg config.Firestore
		slackCfg     config.Slack
		dryRun       bool
	)

	flags := joinFlags(
		[]cli_lib.Flag{
			&cli_lib.BoolFlag{
				Name:        "dry-run",
				Usage:       "Compute due reminders without delivering them",
				Destination: &dryRun,
			},
		},
		firestoreCfg.Flags(),
		slackCfg.Flags(),
	)

	return &cli_lib.Command{
		Name:  "remind",
		Usage: "Run one daily reminder sweep and exit",
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli_lib.Command) error {
			if !firestoreCfg.IsConfigured() {
				return goerr.New("firestore is required for the reminder sweep")
			}
			fs, err := firestoreCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer func() {
				if err := fs.Close(); err != nil {
					logging.From(ctx).Warn("failed to close firestore", logging.ErrAttr(err))
				}
			}()

			ucOptions := []usecase.Option{
				usecase.WithExamRepository(fs),
			}
			if !dryRun {
				slackSvc, err := slackCfg.ConfigureOptional()
				if err != nil {
					return err
				}
				if slackSvc == nil {
					return goerr.New("slack token is required unless --dry-run is set")
				}
				ucOptions = append(ucOptions, usecase.WithNotifier(slackSvc))
			}

			uc := usecase.New(ucOptions...)
			return uc.RunDailyReminders(ctx)
		},
	}
}
