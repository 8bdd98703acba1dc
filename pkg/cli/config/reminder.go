package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

type Reminder struct {
	schedule string
	timezone string
}

func (x *Reminder) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "reminder-schedule",
			Usage:       "Cron expression for the daily reminder sweep",
			Category:    "Reminder",
			Destination: &x.schedule,
			Sources:     cli.EnvVars("BITSAT_REMINDER_SCHEDULE"),
			Value:       "0 9 * * *",
		},
		&cli.StringFlag{
			Name:        "reminder-timezone",
			Usage:       "IANA timezone the schedule runs in",
			Category:    "Reminder",
			Destination: &x.timezone,
			Sources:     cli.EnvVars("BITSAT_REMINDER_TIMEZONE"),
			Value:       "Asia/Kolkata",
		},
	}
}

func (x Reminder) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("schedule", x.schedule),
		slog.String("timezone", x.timezone),
	)
}

func (x *Reminder) Schedule() string {
	return x.schedule
}

func (x *Reminder) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(x.timezone)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid reminder timezone", goerr.V("timezone", x.timezone))
	}
	return loc, nil
}
