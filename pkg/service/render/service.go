package render

import (
	"context"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/PranavU-Coder/bitsatards-bot/pkg/domain/model/errs"
	"github.com/PranavU-Coder/bitsatards-bot/pkg/domain/types"
	"github.com/PranavU-Coder/bitsatards-bot/pkg/service/branch"
	"github.com/PranavU-Coder/bitsatards-bot/pkg/service/dataset"
)

// Per-operation cache capacities.
const (
	campusCacheSize     = 32
	branchCacheSize     = 64
	yearTableCacheSize  = 32
	predictionCacheSize = 32
)

// DefaultTableLimit caps table rows when the caller gives no limit.
const DefaultTableLimit = 25

// Artifact is one rendered image plus its identity: Key is the normalized
// cache key shared with the URL cache, Filename a suggested upload name.
type Artifact struct {
	Key      string
	Filename string
	Data     []byte
}

// Renderer owns the per-operation render caches over the immutable data
// snapshot. All methods are safe for concurrent use.
type Renderer struct {
	data     *dataset.Store
	resolver *branch.Resolver

	campusCache     *Cache
	branchCache     *Cache
	yearTableCache  *Cache
	predictionCache *Cache
}

func New(data *dataset.Store, resolver *branch.Resolver) *Renderer {
	return &Renderer{
		data:            data,
		resolver:        resolver,
		campusCache:     NewCache(campusCacheSize),
		branchCache:     NewCache(branchCacheSize),
		yearTableCache:  NewCache(yearTableCacheSize),
		predictionCache: NewCache(predictionCacheSize),
	}
}

// NormalizeBranch resolves free-text branch input to its canonical name.
func (x *Renderer) NormalizeBranch(input string) (string, bool) {
	return x.resolver.Normalize(input)
}

// cacheKey builds the normalized request key. Equal request tuples must
// collide and unequal ones must not, so every part is lowercased and
// trimmed before joining.
func cacheKey(op types.RenderOp, parts ...string) string {
	norm := make([]string, 0, len(parts)+1)
	norm = append(norm, op.String())
	for _, p := range parts {
		norm = append(norm, strings.ToLower(strings.TrimSpace(p)))
	}
	return strings.Join(norm, "|")
}

// keyFilename derives a deterministic PNG name from a cache key, so a key
// always maps to the same uploaded object.
func keyFilename(key string) string {
	s := strings.NewReplacer("|", "_", " ", "-", "/", "-", ".", "", "&", "and").Replace(key)
	return s + ".png"
}

func CampusTrendKey(campus string) string {
	return cacheKey(types.RenderOpCampusTrend, campus)
}

func BranchTrendKey(campus, canonicalBranch string) string {
	return cacheKey(types.RenderOpBranchTrend, campus, canonicalBranch)
}

func YearTableKey(year int, campusFilter string, limit int) string {
	return cacheKey(types.RenderOpYearTable, strconv.Itoa(year), campusFilter, strconv.Itoa(limit))
}

func PredictionKey(scenario types.Scenario, campusFilter string, limit int) string {
	return cacheKey(types.RenderOpPrediction, scenario.String(), campusFilter, strconv.Itoa(limit))
}

// CampusTrend renders the multi-series cutoff trend chart for one campus,
// one line per branch.
func (x *Renderer) CampusTrend(ctx context.Context, campus string) (*Artifact, error) {
	key := CampusTrendKey(campus)
	data, err := x.campusCache.GetOrRender(ctx, key, func(ctx context.Context) ([]byte, error) {
		filtered := x.data.Cutoffs.FilterCampus(campus)
		if filtered.Empty() {
			return nil, goerr.Wrap(errs.ErrNoRenderData, "no cutoff data for campus",
				goerr.V("campus", campus))
		}
		return renderCampusTrend(campusTitle(campus), filtered)
	})
	if err != nil {
		return nil, err
	}
	return &Artifact{Key: key, Filename: keyFilename(key), Data: data}, nil
}

// BranchTrend renders the single-series trend for one (campus, branch)
// pair with annotated minimum and maximum marks. The branch input must
// already be canonical; use NormalizeBranch first.
func (x *Renderer) BranchTrend(ctx context.Context, campus, canonicalBranch string) (*Artifact, error) {
	key := BranchTrendKey(campus, canonicalBranch)
	data, err := x.branchCache.GetOrRender(ctx, key, func(ctx context.Context) ([]byte, error) {
		filtered := x.data.Cutoffs.FilterCampus(campus).FilterBranch(canonicalBranch)
		if filtered.Empty() {
			return nil, goerr.Wrap(errs.ErrNoRenderData, "no cutoff data for branch",
				goerr.V("campus", campus), goerr.V("branch", canonicalBranch))
		}
		return renderBranchTrend(campusTitle(campus), canonicalBranch, filtered)
	})
	if err != nil {
		return nil, err
	}
	return &Artifact{Key: key, Filename: keyFilename(key), Data: data}, nil
}

// YearTable renders the cutoff table for one year, optionally filtered to
// a campus, sorted by marks descending and truncated to limit rows.
func (x *Renderer) YearTable(ctx context.Context, year int, campusFilter string, limit int) (*Artifact, error) {
	if limit <= 0 {
		limit = DefaultTableLimit
	}
	key := YearTableKey(year, campusFilter, limit)
	data, err := x.yearTableCache.GetOrRender(ctx, key, func(ctx context.Context) ([]byte, error) {
		target := x.data.Cutoffs.FilterYear(year)
		if campusFilter != "" {
			target = target.FilterCampus(campusFilter)
		}
		if target.Empty() {
			return nil, goerr.Wrap(errs.ErrNoRenderData, "no cutoff data for year",
				goerr.V("year", year), goerr.V("campus", campusFilter))
		}

		rows := target.SortByMarksDesc().Truncate(limit).Rows()
		return renderTable([]string{"Campus", "Course", "Marks", "Year"}, rows)
	})
	if err != nil {
		return nil, err
	}
	return &Artifact{Key: key, Filename: keyFilename(key), Data: data}, nil
}

// PredictionTable renders one scenario's predicted cutoffs, optionally
// filtered to a campus, sorted by marks descending and truncated to limit
// rows. Headers come from the prediction table's own column names.
func (x *Renderer) PredictionTable(ctx context.Context, scenario types.Scenario, campusFilter string, limit int) (*Artifact, error) {
	if limit <= 0 {
		limit = DefaultTableLimit
	}
	key := PredictionKey(scenario, campusFilter, limit)
	data, err := x.predictionCache.GetOrRender(ctx, key, func(ctx context.Context) ([]byte, error) {
		pred := x.data.Prediction(scenario)
		if pred == nil {
			return nil, goerr.Wrap(errs.ErrNoRenderData, "prediction scenario unavailable",
				goerr.V("scenario", scenario))
		}

		target := pred.Table
		if campusFilter != "" {
			target = target.FilterCampus(campusFilter)
		}
		if target.Empty() {
			return nil, goerr.Wrap(errs.ErrNoRenderData, "no prediction data",
				goerr.V("scenario", scenario), goerr.V("campus", campusFilter))
		}

		headers := make([]string, len(pred.Columns))
		for i, col := range pred.Columns {
			headers[i] = titleCase(col)
		}
		rows := target.SortByMarksDesc().Truncate(limit).Rows()
		return renderTable(headers, rows)
	})
	if err != nil {
		return nil, err
	}
	return &Artifact{Key: key, Filename: keyFilename(key), Data: data}, nil
}

// Stats exposes per-operation cache state for logging and tests.
func (x *Renderer) Stats() map[types.RenderOp]int {
	return map[types.RenderOp]int{
		types.RenderOpCampusTrend: x.campusCache.Len(),
		types.RenderOpBranchTrend: x.branchCache.Len(),
		types.RenderOpYearTable:   x.yearTableCache.Len(),
		types.RenderOpPrediction:  x.predictionCache.Len(),
	}
}

func (x *Renderer) cacheFor(op types.RenderOp) *Cache {
	switch op {
	case types.RenderOpCampusTrend:
		return x.campusCache
	case types.RenderOpBranchTrend:
		return x.branchCache
	case types.RenderOpYearTable:
		return x.yearTableCache
	case types.RenderOpPrediction:
		return x.predictionCache
	}
	return nil
}

// ComputeCount reports how many times an operation's render routine has
// actually run, as opposed to being served from cache.
func (x *Renderer) ComputeCount(op types.RenderOp) int64 {
	if c := x.cacheFor(op); c != nil {
		return c.Computes()
	}
	return 0
}

func campusTitle(input string) string {
	if campus, ok := types.NormalizeCampus(input); ok {
		return campus.String()
	}
	return titleCase(input)
}

func titleCase(s string) string {
	words := strings.Fields(strings.TrimSpace(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
