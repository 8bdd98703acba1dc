package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/PranavU-Coder/bitsatards-bot/pkg/domain/model/errs"
	"github.com/PranavU-Coder/bitsatards-bot/pkg/domain/types"
	"github.com/PranavU-Coder/bitsatards-bot/pkg/service/render"
)

// Disclaimer accompanies every cutoff analytics response. Scores from
// sessions graded out of 400 are rescaled so years stay comparable.
const Disclaimer = "Note: cutoffs before 2022 are standardized to a 390-mark scale, so treat the figures as guidance rather than exact scores."

// RenderResult is a published artifact: the hosted URL plus whether it was
// served from the URL cache without touching the render pipeline.
type RenderResult struct {
	Key    string
	URL    string
	Cached bool
}

// ChartByCampus publishes the cutoff trend chart for one campus.
func (x *UseCases) ChartByCampus(ctx context.Context, campus string) (*RenderResult, error) {
	if _, ok := types.NormalizeCampus(campus); !ok {
		return nil, goerr.New("unknown campus",
			goerr.V("campus", campus), goerr.T(errs.TagValidation))
	}
	return x.publish(ctx, render.CampusTrendKey(campus), func(ctx context.Context) (*render.Artifact, error) {
		return x.renderer.CampusTrend(ctx, campus)
	})
}

// ChartByBranch publishes the single-branch trend chart. The branch input
// is free text and is resolved through the alias table first.
func (x *UseCases) ChartByBranch(ctx context.Context, campus, branchInput string) (*RenderResult, error) {
	if _, ok := types.NormalizeCampus(campus); !ok {
		return nil, goerr.New("unknown campus",
			goerr.V("campus", campus), goerr.T(errs.TagValidation))
	}
	canonical, ok := x.renderer.NormalizeBranch(branchInput)
	if !ok {
		return nil, goerr.Wrap(errs.ErrBranchNotFound, "unrecognized branch",
			goerr.V("branch", branchInput))
	}
	return x.publish(ctx, render.BranchTrendKey(campus, canonical), func(ctx context.Context) (*render.Artifact, error) {
		return x.renderer.BranchTrend(ctx, campus, canonical)
	})
}

// CutoffTable publishes the rendered cutoff table for one year.
func (x *UseCases) CutoffTable(ctx context.Context, year int, campusFilter string, limit int) (*RenderResult, error) {
	if limit <= 0 {
		limit = render.DefaultTableLimit
	}
	return x.publish(ctx, render.YearTableKey(year, campusFilter, limit), func(ctx context.Context) (*render.Artifact, error) {
		return x.renderer.YearTable(ctx, year, campusFilter, limit)
	})
}

// PredictionTable publishes the rendered prediction table for one
// scenario. The scenario input is free text.
func (x *UseCases) PredictionTable(ctx context.Context, scenarioInput, campusFilter string, limit int) (*RenderResult, error) {
	scenario, ok := types.ParseScenario(scenarioInput)
	if !ok {
		return nil, goerr.New("unknown scenario",
			goerr.V("scenario", scenarioInput), goerr.T(errs.TagValidation))
	}
	if limit <= 0 {
		limit = render.DefaultTableLimit
	}
	return x.publish(ctx, render.PredictionKey(scenario, campusFilter, limit), func(ctx context.Context) (*render.Artifact, error) {
		return x.renderer.PredictionTable(ctx, scenario, campusFilter, limit)
	})
}

// publish serves the URL cache first and otherwise renders and uploads the
// artifact, storing its URL only after the upload succeeded. A failed
// upload leaves the URL cache untouched; the rendered bytes stay in the
// render cache, so a retry skips the computation. At most one
// render-and-upload runs per key at a time.
func (x *UseCases) publish(ctx context.Context, key string, renderFn func(context.Context) (*render.Artifact, error)) (*RenderResult, error) {
	if url, ok := x.urlCache.Lookup(key); ok {
		return &RenderResult{Key: key, URL: url, Cached: true}, nil
	}

	v, err, _ := x.publishGroup.Do(key, func() (any, error) {
		if url, ok := x.urlCache.Lookup(key); ok {
			return &RenderResult{Key: key, URL: url, Cached: true}, nil
		}

		if err := x.renderSem.Acquire(ctx, 1); err != nil {
			return nil, goerr.Wrap(err, "render slot unavailable")
		}
		artifact, err := renderFn(ctx)
		x.renderSem.Release(1)
		if err != nil {
			return nil, err
		}

		url, err := x.upload(ctx, artifact)
		if err != nil {
			return nil, err
		}

		x.urlCache.Store(key, url)
		return &RenderResult{Key: key, URL: url}, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*RenderResult), nil
}

func (x *UseCases) upload(ctx context.Context, artifact *render.Artifact) (string, error) {
	object := x.objectPrefix + artifact.Filename

	w := x.storage.PutObject(ctx, object)
	if _, err := w.Write(artifact.Data); err != nil {
		_ = w.Close()
		return "", goerr.Wrap(err, "failed to write artifact",
			goerr.V("object", object), goerr.T(errs.TagExternal))
	}
	if err := w.Close(); err != nil {
		return "", goerr.Wrap(err, "failed to finish artifact upload",
			goerr.V("object", object), goerr.T(errs.TagExternal))
	}

	return x.storage.URL(object), nil
}
