package config_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/urfave/cli/v3"

	"github.com/PranavU-Coder/bitsatards-bot/pkg/cli/config"
)

func TestReminderDefaults(t *testing.T) {
	var cfg config.Reminder
	cmd := &cli.Command{
		Flags: cfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			return nil
		},
	}
	gt.NoError(t, cmd.Run(context.Background(), []string{"test"}))

	gt.V(t, cfg.Schedule()).Equal("0 9 * * *")
	loc, err := cfg.Location()
	gt.NoError(t, err)
	gt.V(t, loc.String()).Equal("Asia/Kolkata")
}

func TestReminderBadTimezone(t *testing.T) {
	var cfg config.Reminder
	cmd := &cli.Command{
		Flags: cfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			return nil
		},
	}
	gt.NoError(t, cmd.Run(context.Background(), []string{"test", "--reminder-timezone", "Mars/Olympus"}))

	_, err := cfg.Location()
	gt.Error(t, err)
}
