package dataset_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/PranavU-Coder/bitsatards-bot/pkg/domain/types"
	"github.com/PranavU-Coder/bitsatards-bot/pkg/service/dataset"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	gt.NoError(t, os.MkdirAll(filepath.Dir(path), 0700))
	gt.NoError(t, os.WriteFile(path, []byte(content), 0600))
}

func TestLoadConcatenatesFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "analysis_data", "cutoff_2023.csv"),
		"campus,branch,marks,year\nPilani,B.E. Computer Science,331,2023\nGoa,B.E. Computer Science,295,2023\n")
	writeFile(t, filepath.Join(dir, "analysis_data", "cutoff_2024.csv"),
		"campus,branch,marks,year\nPilani,B.E. Computer Science,327,2024\n")

	store, err := dataset.Load(context.Background(), dataset.DefaultConfig(dir))
	gt.NoError(t, err)
	gt.Number(t, len(store.Cutoffs)).Equal(3)

	pilani := store.Cutoffs.FilterCampus("pilani")
	gt.Number(t, len(pilani)).Equal(2)
}

func TestLoadNormalizesCampusCase(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "analysis_data", "cutoffs.csv"),
		"campus,branch,marks,year\npilani,B.E. Mechanical,260,2024\nGOA,B.E. Mechanical,240,2024\n")

	store, err := dataset.Load(context.Background(), dataset.DefaultConfig(dir))
	gt.NoError(t, err)
	gt.Number(t, len(store.Cutoffs)).Equal(2)
	gt.NoError(t, store.Cutoffs[0].Campus.Validate())
	gt.NoError(t, store.Cutoffs[1].Campus.Validate())
}

func TestLoadSkipsMalformedRows(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "analysis_data", "cutoffs.csv"),
		"campus,branch,marks,year\n"+
			"Pilani,B.E. Computer Science,331,2023\n"+
			"Atlantis,B.E. Computer Science,300,2023\n"+
			"Pilani,B.E. Computer Science,not-a-number,2023\n"+
			"Pilani,,200,2023\n")

	store, err := dataset.Load(context.Background(), dataset.DefaultConfig(dir))
	gt.NoError(t, err)
	gt.Number(t, len(store.Cutoffs)).Equal(1)
}

func TestLoadMissingSourcesDegrade(t *testing.T) {
	dir := t.TempDir()

	// no files at all: empty table, no scenarios, no error
	store, err := dataset.Load(context.Background(), dataset.DefaultConfig(dir))
	gt.NoError(t, err)
	gt.True(t, store.Cutoffs.Empty())
	gt.Number(t, len(store.Predictions)).Equal(0)
	gt.Nil(t, store.Prediction(types.ScenarioWorst))
}

func TestLoadPredictions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "predict", "most_likely_case.csv"),
		"campus,branch,marks,year\nPilani,B.E. Computer Science,335,2026\nHyderabad,B.E. Computer Science,310,2026\n")

	store, err := dataset.Load(context.Background(), dataset.DefaultConfig(dir))
	gt.NoError(t, err)

	pred := store.Prediction(types.ScenarioMostLikely)
	gt.NotNil(t, pred)
	gt.Number(t, len(pred.Table)).Equal(2)
	gt.A(t, pred.Columns).Length(4)

	// the other scenarios' files are absent: unavailable, not fatal
	gt.Nil(t, store.Prediction(types.ScenarioWorst))
	gt.Nil(t, store.Prediction(types.ScenarioBest))
}
