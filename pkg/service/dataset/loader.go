package dataset

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"

	"github.com/PranavU-Coder/bitsatards-bot/pkg/domain/model/cutoff"
	"github.com/PranavU-Coder/bitsatards-bot/pkg/domain/model/errs"
	"github.com/PranavU-Coder/bitsatards-bot/pkg/domain/types"
	"github.com/PranavU-Coder/bitsatards-bot/pkg/utils/logging"
)

// Store holds the immutable data snapshot assembled at startup: the
// concatenated cutoff table and the per-scenario prediction tables.
type Store struct {
	Cutoffs     cutoff.Table
	Predictions map[types.Scenario]*cutoff.Prediction
}

// Prediction returns a scenario's table, or nil if its source file was
// absent at startup.
func (s *Store) Prediction(scenario types.Scenario) *cutoff.Prediction {
	return s.Predictions[scenario]
}

type Config struct {
	CutoffGlob      string
	PredictionFiles map[types.Scenario]string
}

func DefaultConfig(dataDir string) Config {
	return Config{
		CutoffGlob: filepath.Join(dataDir, "analysis_data", "*.csv"),
		PredictionFiles: map[types.Scenario]string{
			types.ScenarioWorst:      filepath.Join(dataDir, "predict", "worst_case.csv"),
			types.ScenarioMostLikely: filepath.Join(dataDir, "predict", "most_likely_case.csv"),
			types.ScenarioBest:       filepath.Join(dataDir, "predict", "best_case.csv"),
		},
	}
}

// Load reads all configured sources. Missing or unreadable sources degrade
// to reduced coverage with a warning; Load itself fails only on internal
// errors, never on absent files.
func Load(ctx context.Context, cfg Config) (*Store, error) {
	store := &Store{
		Predictions: make(map[types.Scenario]*cutoff.Prediction),
	}

	table, err := loadCutoffs(ctx, cfg.CutoffGlob)
	if err != nil {
		return nil, err
	}
	store.Cutoffs = table

	for scenario, path := range cfg.PredictionFiles {
		pred, err := loadPrediction(path, scenario)
		if err != nil {
			logging.From(ctx).Warn("skipping prediction scenario",
				"scenario", scenario, "path", path, logging.ErrAttr(err))
			continue
		}
		store.Predictions[scenario] = pred
	}

	logging.From(ctx).Info("dataset loaded",
		"cutoff_rows", len(store.Cutoffs),
		"scenarios", len(store.Predictions))
	return store, nil
}

// loadCutoffs reads and concatenates every file matching the glob. Files
// are parsed in parallel; row order across files is irrelevant since all
// queries group, filter and sort explicitly.
func loadCutoffs(ctx context.Context, glob string) (cutoff.Table, error) {
	files, err := filepath.Glob(glob)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid cutoff glob", goerr.V("glob", glob))
	}
	if len(files) == 0 {
		logging.From(ctx).Warn("no cutoff data files found", "glob", glob)
		return cutoff.Table{}, nil
	}

	var mu sync.Mutex
	var table cutoff.Table

	eg, ctx := errgroup.WithContext(ctx)
	for _, file := range files {
		eg.Go(func() error {
			rows, err := parseCutoffFile(ctx, file)
			if err != nil {
				logging.From(ctx).Warn("skipping unreadable cutoff file",
					"path", file, logging.ErrAttr(err))
				return nil
			}
			mu.Lock()
			table = append(table, rows...)
			mu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return table, nil
}

func parseCutoffFile(ctx context.Context, path string) (cutoff.Table, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open cutoff file", goerr.T(errs.TagConfig))
	}
	defer func() { _ = f.Close() }()

	header, records, err := readCSV(f)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse cutoff file", goerr.V("path", path))
	}

	cols, err := columnIndex(header, "campus", "branch", "marks", "year")
	if err != nil {
		return nil, goerr.Wrap(err, "unexpected cutoff file header", goerr.V("path", path))
	}

	var table cutoff.Table
	for _, rec := range records {
		row, err := recordFromCells(rec, cols)
		if err != nil {
			logging.From(ctx).Debug("skipping malformed cutoff row",
				"path", path, logging.ErrAttr(err))
			continue
		}
		table = append(table, row)
	}
	return table, nil
}

func loadPrediction(path string, scenario types.Scenario) (*cutoff.Prediction, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open prediction file", goerr.T(errs.TagConfig))
	}
	defer func() { _ = f.Close() }()

	header, records, err := readCSV(f)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse prediction file")
	}

	cols, err := columnIndex(header, "campus", "branch", "marks", "year")
	if err != nil {
		return nil, goerr.Wrap(err, "unexpected prediction file header")
	}

	var table cutoff.Table
	for _, rec := range records {
		row, err := recordFromCells(rec, cols)
		if err != nil {
			continue
		}
		table = append(table, row)
	}

	return &cutoff.Prediction{
		Scenario: scenario,
		Columns:  header,
		Table:    table,
	}, nil
}

func readCSV(r io.Reader) (header []string, records [][]string, err error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	all, err := reader.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(all) == 0 {
		return nil, nil, goerr.New("empty file")
	}
	return all[0], all[1:], nil
}

func columnIndex(header []string, names ...string) (map[string]int, error) {
	index := make(map[string]int, len(names))
	for i, col := range header {
		index[strings.ToLower(strings.TrimSpace(col))] = i
	}
	for _, name := range names {
		if _, ok := index[name]; !ok {
			return nil, goerr.New("missing column", goerr.V("column", name))
		}
	}
	return index, nil
}

func recordFromCells(cells []string, cols map[string]int) (cutoff.Record, error) {
	get := func(name string) string {
		i := cols[name]
		if i >= len(cells) {
			return ""
		}
		return strings.TrimSpace(cells[i])
	}

	campus, ok := types.NormalizeCampus(get("campus"))
	if !ok {
		return cutoff.Record{}, goerr.New("unknown campus", goerr.V("campus", get("campus")))
	}

	marks, err := strconv.Atoi(get("marks"))
	if err != nil {
		return cutoff.Record{}, goerr.Wrap(err, "non-numeric marks")
	}
	year, err := strconv.Atoi(get("year"))
	if err != nil {
		return cutoff.Record{}, goerr.Wrap(err, "non-numeric year")
	}

	branch := get("branch")
	if branch == "" {
		return cutoff.Record{}, goerr.New("empty branch")
	}

	return cutoff.Record{
		Campus: campus,
		Branch: branch,
		Marks:  marks,
		Year:   year,
	}, nil
}
