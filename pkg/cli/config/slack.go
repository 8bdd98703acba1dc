package config

import (
	"log/slog"

	"github.com/urfave/cli/v3"

	slack_svc "github.com/PranavU-Coder/bitsatards-bot/pkg/service/slack"
)

type Slack struct {
	oauthToken string
}

func (x *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-oauth-token",
			Usage:       "Slack Bot OAuth token",
			Category:    "Slack",
			Destination: &x.oauthToken,
			Sources:     cli.EnvVars("BITSAT_SLACK_OAUTH_TOKEN"),
		},
	}
}

func (x Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("token_set", x.oauthToken != ""),
	)
}

// ConfigureOptional returns nil without error when no token was given;
// reminder delivery is then disabled rather than fatal.
func (x *Slack) ConfigureOptional() (*slack_svc.Service, error) {
	if x.oauthToken == "" {
		return nil, nil
	}
	return slack_svc.NewWithToken(x.oauthToken), nil
}

func (x *Slack) IsConfigured() bool {
	return x.oauthToken != ""
}
