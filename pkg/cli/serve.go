package cli

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	cli_lib "github.com/urfave/cli/v3"

	"github.com/PranavU-Coder/bitsatards-bot/pkg/cli/config"
	server "github.com/PranavU-Coder/bitsatards-bot/pkg/controller/http"
	"github.com/PranavU-Coder/bitsatards-bot/pkg/domain/interfaces"
	"github.com/PranavU-Coder/bitsatards-bot/pkg/repository"
	"github.com/PranavU-Coder/bitsatards-bot/pkg/service/render"
	"github.com/PranavU-Coder/bitsatards-bot/pkg/usecase"
	"github.com/PranavU-Coder/bitsatards-bot/pkg/utils/logging"
)

func cmdServe() *cli_lib.Command {
	var (
		addr         string
		datasetCfg   config.Dataset
		firestoreCfg config.Firestore
		storageCfg   config.Storage
		slackCfg     config.Slack
		reminderCfg  config.Reminder
	)

	flags := joinFlags(
		[]cli_lib.Flag{
			&cli_lib.StringFlag{
				Name:        "addr",
				Aliases:     []string{"a"},
				Sources:     cli_lib.EnvVars("BITSAT_ADDR"),
				Usage:       "Listen address",
				Value:       "127.0.0.1:8080",
				Destination: &addr,
			},
		},
		datasetCfg.Flags(),
		firestoreCfg.Flags(),
		storageCfg.Flags(),
		slackCfg.Flags(),
		reminderCfg.Flags(),
	)

	return &cli_lib.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Run server with the daily reminder scheduler",
		Flags:   flags,
		Action: func(ctx context.Context, cmd *cli_lib.Command) error {
			logging.Default().Info("starting server",
				"addr", addr,
				"dataset", datasetCfg,
				"firestore", firestoreCfg,
				"storage", storageCfg,
				"slack", slackCfg,
				"reminder", reminderCfg,
			)

			store, resolver, err := datasetCfg.Configure(ctx)
			if err != nil {
				return err
			}

			var repo interfaces.ExamRepository
			if firestoreCfg.IsConfigured() {
				fs, err := firestoreCfg.Configure(ctx)
				if err != nil {
					return err
				}
				defer func() {
					if err := fs.Close(); err != nil {
						logging.From(ctx).Warn("failed to close firestore", logging.ErrAttr(err))
					}
				}()
				repo = fs
			} else {
				logging.From(ctx).Warn("firestore not configured, exam records are in-memory only")
				repo = repository.NewMemory()
			}

			ucOptions := []usecase.Option{
				usecase.WithExamRepository(repo),
				usecase.WithRenderer(render.New(store, resolver)),
			}

			if storageCfg.IsConfigured() {
				storageClient, err := storageCfg.Configure(ctx)
				if err != nil {
					return err
				}
				defer storageClient.Close(ctx)
				ucOptions = append(ucOptions, usecase.WithStorageClient(storageClient))
			} else {
				logging.From(ctx).Warn("storage not configured, artifact URLs are not externally reachable")
			}

			slackSvc, err := slackCfg.ConfigureOptional()
			if err != nil {
				return err
			}
			if slackSvc != nil {
				ucOptions = append(ucOptions, usecase.WithNotifier(slackSvc))
			} else {
				logging.From(ctx).Warn("slack not configured, reminders will not be delivered")
			}

			uc := usecase.New(ucOptions...)

			loc, err := reminderCfg.Location()
			if err != nil {
				return err
			}
			scheduler := cron.New(cron.WithLocation(loc))
			if _, err := scheduler.AddFunc(reminderCfg.Schedule(), func() {
				if err := uc.RunDailyReminders(ctx); err != nil {
					logging.From(ctx).Error("daily reminder sweep failed", logging.ErrAttr(err))
				}
			}); err != nil {
				return err
			}
			scheduler.Start()
			defer scheduler.Stop()

			httpServer := http.Server{
				Addr:              addr,
				Handler:           server.New(uc),
				ReadTimeout:       30 * time.Second,
				ReadHeaderTimeout: 10 * time.Second,
				BaseContext: func(l net.Listener) context.Context {
					return ctx
				},
			}

			errCh := make(chan error, 1)
			go func() {
				defer close(errCh)
				if err := httpServer.ListenAndServe(); err != nil {
					errCh <- err
				}
			}()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-errCh:
				return err
			case <-sigCh:
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				return httpServer.Shutdown(ctx)
			}
		},
	}
}
