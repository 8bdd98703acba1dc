package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/PranavU-Coder/bitsatards-bot/pkg/adapter/storage"
	server "github.com/PranavU-Coder/bitsatards-bot/pkg/controller/http"
	"github.com/PranavU-Coder/bitsatards-bot/pkg/domain/model/cutoff"
	"github.com/PranavU-Coder/bitsatards-bot/pkg/domain/types"
	"github.com/PranavU-Coder/bitsatards-bot/pkg/service/branch"
	"github.com/PranavU-Coder/bitsatards-bot/pkg/service/dataset"
	"github.com/PranavU-Coder/bitsatards-bot/pkg/service/render"
	"github.com/PranavU-Coder/bitsatards-bot/pkg/usecase"
	"github.com/PranavU-Coder/bitsatards-bot/pkg/utils/clock"
)

func newTestServer() *server.Server {
	table := cutoff.Table{
		{Campus: types.CampusPilani, Branch: "B.E. Computer Science", Marks: 331, Year: 2023},
		{Campus: types.CampusPilani, Branch: "B.E. Computer Science", Marks: 327, Year: 2024},
	}
	store := &dataset.Store{Cutoffs: table}
	resolver := branch.NewResolverFromMap(map[string]string{
		"cse": "B.E. Computer Science",
	}, table.Branches())

	uc := usecase.New(
		usecase.WithRenderer(render.New(store, resolver)),
		usecase.WithStorageClient(storage.NewMock()),
	)
	return server.New(uc)
}

func doRequest(t *testing.T, s *server.Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	now := time.Date(2026, time.January, 1, 9, 0, 0, 0, time.UTC)
	ctx := clock.With(context.Background(), func() time.Time { return now })

	req := httptest.NewRequest(method, path, strings.NewReader(body)).WithContext(ctx)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	s := newTestServer()
	rec := doRequest(t, s, http.MethodGet, "/health", "")
	gt.Number(t, rec.Code).Equal(http.StatusOK)
}

func TestExamLifecycle(t *testing.T) {
	s := newTestServer()

	rec := doRequest(t, s, http.MethodPost, "/api/exam",
		`{"user_id":123,"username":"testuser","channel_id":456,"date":"15-04-2026"}`)
	gt.Number(t, rec.Code).Equal(http.StatusOK)
	gt.S(t, rec.Body.String()).Contains("exam date set for **15 April 2026**")

	rec = doRequest(t, s, http.MethodGet, "/api/exam/123/countdown", "")
	gt.Number(t, rec.Code).Equal(http.StatusOK)
	gt.S(t, rec.Body.String()).Contains("104 days")

	rec = doRequest(t, s, http.MethodDelete, "/api/exam/123", "")
	gt.Number(t, rec.Code).Equal(http.StatusOK)
	gt.S(t, rec.Body.String()).Contains("record cleared")
}

func TestExamBadDate(t *testing.T) {
	s := newTestServer()

	rec := doRequest(t, s, http.MethodPost, "/api/exam",
		`{"user_id":123,"username":"testuser","channel_id":456,"date":"2026-04-15"}`)
	gt.Number(t, rec.Code).Equal(http.StatusBadRequest)
}

func TestCampusChart(t *testing.T) {
	s := newTestServer()

	rec := doRequest(t, s, http.MethodGet, "/api/charts/campus/Pilani", "")
	gt.Number(t, rec.Code).Equal(http.StatusOK)

	var resp struct {
		URL        string `json:"url"`
		Cached     bool   `json:"cached"`
		Disclaimer string `json:"disclaimer"`
	}
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	gt.S(t, resp.URL).Contains("pilani")
	gt.False(t, resp.Cached)
	gt.S(t, resp.Disclaimer).Contains("standardized")

	// second request is served from the URL cache
	rec = doRequest(t, s, http.MethodGet, "/api/charts/campus/Pilani", "")
	gt.Number(t, rec.Code).Equal(http.StatusOK)
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	gt.True(t, resp.Cached)
}

func TestCampusChartNoData(t *testing.T) {
	s := newTestServer()

	rec := doRequest(t, s, http.MethodGet, "/api/charts/campus/Hyderabad", "")
	gt.Number(t, rec.Code).Equal(http.StatusNotFound)
}

func TestCampusChartUnknownCampus(t *testing.T) {
	s := newTestServer()

	rec := doRequest(t, s, http.MethodGet, "/api/charts/campus/Atlantis", "")
	gt.Number(t, rec.Code).Equal(http.StatusBadRequest)
}

func TestBranchChartWithAlias(t *testing.T) {
	s := newTestServer()

	rec := doRequest(t, s, http.MethodGet, "/api/charts/branch/Pilani/cse", "")
	gt.Number(t, rec.Code).Equal(http.StatusOK)
}

func TestCutoffTableEndpoint(t *testing.T) {
	s := newTestServer()

	rec := doRequest(t, s, http.MethodGet, "/api/cutoffs/2024?campus=pilani", "")
	gt.Number(t, rec.Code).Equal(http.StatusOK)

	rec = doRequest(t, s, http.MethodGet, "/api/cutoffs/1999", "")
	gt.Number(t, rec.Code).Equal(http.StatusNotFound)

	rec = doRequest(t, s, http.MethodGet, "/api/cutoffs/not-a-year", "")
	gt.Number(t, rec.Code).Equal(http.StatusBadRequest)
}

func TestPredictionEndpointUnavailable(t *testing.T) {
	s := newTestServer()

	// no prediction files were loaded in this fixture
	rec := doRequest(t, s, http.MethodGet, "/api/predictions/best", "")
	gt.Number(t, rec.Code).Equal(http.StatusNotFound)

	rec = doRequest(t, s, http.MethodGet, "/api/predictions/apocalypse", "")
	gt.Number(t, rec.Code).Equal(http.StatusBadRequest)
}
