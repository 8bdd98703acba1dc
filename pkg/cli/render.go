package cli

import (
	"context"
	"os"

	"github.com/m-mizutani/goerr/v2"
	cli_lib "github.com/urfave/cli/v3"

	"github.com/PranavU-Coder/bitsatards-bot/pkg/cli/config"
	"github.com/PranavU-Coder/bitsatards-bot/pkg/domain/types"
	"github.com/PranavU-Coder/bitsatards-bot/pkg/service/render"
	"github.com/PranavU-Coder/bitsatards-bot/pkg/utils/logging"
)

// cmdRender renders one chart or table to a local file, for inspecting
// output without a storage bucket or a running server.
func cmdRender() *cli_lib.Command {
	var (
		datasetCfg config.Dataset
		op         string
		campus     string
		branchName string
		year       int
		scenario   string
		limit      int
		output     string
	)

	flags := joinFlags(
		[]cli_lib.Flag{
			&cli_lib.StringFlag{
				Name:        "op",
				Usage:       "What to render [campus|branch|table|prediction]",
				Required:    true,
				Destination: &op,
			},
			&cli_lib.StringFlag{
				Name:        "campus",
				Usage:       "Campus name",
				Destination: &campus,
			},
			&cli_lib.StringFlag{
				Name:        "branch",
				Usage:       "Branch name or alias (for op=branch)",
				Destination: &branchName,
			},
			&cli_lib.IntFlag{
				Name:        "year",
				Usage:       "Cutoff year (for op=table)",
				Destination: &year,
			},
			&cli_lib.StringFlag{
				Name:        "scenario",
				Usage:       "Prediction scenario (for op=prediction)",
				Destination: &scenario,
			},
			&cli_lib.IntFlag{
				Name:        "limit",
				Usage:       "Max table rows (0 uses the default)",
				Destination: &limit,
			},
			&cli_lib.StringFlag{
				Name:        "output",
				Aliases:     []string{"out"},
				Usage:       "Output PNG path (default: derived from the render key)",
				Destination: &output,
			},
		},
		datasetCfg.Flags(),
	)

	return &cli_lib.Command{
		Name:  "render",
		Usage: "Render a chart or table to a local PNG file",
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli_lib.Command) error {
			store, resolver, err := datasetCfg.Configure(ctx)
			if err != nil {
				return err
			}
			renderer := render.New(store, resolver)

			artifact, err := renderArtifact(ctx, renderer, op, campus, branchName, scenario, year, limit)
			if err != nil {
				return err
			}

			path := output
			if path == "" {
				path = artifact.Filename
			}
			if err := os.WriteFile(path, artifact.Data, 0600); err != nil {
				return goerr.Wrap(err, "failed to write output", goerr.V("path", path))
			}

			logging.From(ctx).Info("rendered", "path", path, "bytes", len(artifact.Data))
			return nil
		},
	}
}

func renderArtifact(ctx context.Context, renderer *render.Renderer, op, campus, branchName, scenarioInput string, year, limit int) (*render.Artifact, error) {
	switch op {
	case "campus":
		return renderer.CampusTrend(ctx, campus)

	case "branch":
		canonical, ok := renderer.NormalizeBranch(branchName)
		if !ok {
			return nil, goerr.New("unrecognized branch", goerr.V("branch", branchName))
		}
		return renderer.BranchTrend(ctx, campus, canonical)

	case "table":
		return renderer.YearTable(ctx, year, campus, limit)

	case "prediction":
		scenario, ok := types.ParseScenario(scenarioInput)
		if !ok {
			return nil, goerr.New("unknown scenario", goerr.V("scenario", scenarioInput))
		}
		return renderer.PredictionTable(ctx, scenario, campus, limit)

	default:
		return nil, goerr.New("unknown op, expected campus|branch|table|prediction", goerr.V("op", op))
	}
}
