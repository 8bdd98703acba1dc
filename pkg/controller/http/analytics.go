package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/PranavU-Coder/bitsatards-bot/pkg/domain/model/errs"
	"github.com/PranavU-Coder/bitsatards-bot/pkg/usecase"
)

type renderResponse struct {
	URL        string `json:"url"`
	Cached     bool   `json:"cached"`
	Disclaimer string `json:"disclaimer"`
}

func respondRender(w http.ResponseWriter, result *usecase.RenderResult) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(renderResponse{
		URL:        result.URL,
		Cached:     result.Cached,
		Disclaimer: usecase.Disclaimer,
	})
}

// queryLimit reads the optional row limit. Zero means the default.
func queryLimit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, goerr.Wrap(err, "invalid limit",
			goerr.V("limit", raw), goerr.T(errs.TagValidation))
	}
	return limit, nil
}

func campusChartHandler(uc UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := uc.ChartByCampus(r.Context(), chi.URLParam(r, "campus"))
		if err != nil {
			handleError(w, r, err)
			return
		}
		respondRender(w, result)
	}
}

func branchChartHandler(uc UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := uc.ChartByBranch(r.Context(),
			chi.URLParam(r, "campus"), chi.URLParam(r, "branch"))
		if err != nil {
			handleError(w, r, err)
			return
		}
		respondRender(w, result)
	}
}

func cutoffTableHandler(uc UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year, err := strconv.Atoi(chi.URLParam(r, "year"))
		if err != nil {
			handleError(w, r, goerr.Wrap(err, "invalid year", goerr.T(errs.TagValidation)))
			return
		}
		limit, err := queryLimit(r)
		if err != nil {
			handleError(w, r, err)
			return
		}

		result, err := uc.CutoffTable(r.Context(), year, r.URL.Query().Get("campus"), limit)
		if err != nil {
			handleError(w, r, err)
			return
		}
		respondRender(w, result)
	}
}

func predictionTableHandler(uc UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := queryLimit(r)
		if err != nil {
			handleError(w, r, err)
			return
		}

		result, err := uc.PredictionTable(r.Context(),
			chi.URLParam(r, "scenario"), r.URL.Query().Get("campus"), limit)
		if err != nil {
			handleError(w, r, err)
			return
		}
		respondRender(w, result)
	}
}
