package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/PranavU-Coder/bitsatards-bot/pkg/domain/model/errs"
	"github.com/PranavU-Coder/bitsatards-bot/pkg/domain/types"
)

type examSetRequest struct {
	UserID    int64  `json:"user_id"`
	Username  string `json:"username"`
	ChannelID int64  `json:"channel_id"`
	Date      string `json:"date"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func respondMessage(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(messageResponse{Message: message})
}

func pathUserID(r *http.Request) (types.UserID, error) {
	raw := chi.URLParam(r, "userID")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return types.EmptyUserID, goerr.Wrap(err, "invalid user ID",
			goerr.V("user_id", raw), goerr.T(errs.TagValidation))
	}
	return types.UserID(id), nil
}

func examSetHandler(uc UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req examSetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			handleError(w, r, goerr.Wrap(err, "invalid request body", goerr.T(errs.TagValidation)))
			return
		}

		msg, err := uc.SetExamDate(r.Context(), types.UserID(req.UserID), req.Username, types.ChannelID(req.ChannelID), req.Date)
		if err != nil {
			handleError(w, r, err)
			return
		}
		respondMessage(w, msg)
	}
}

func examCountdownHandler(uc UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := pathUserID(r)
		if err != nil {
			handleError(w, r, err)
			return
		}

		msg, err := uc.Countdown(r.Context(), userID)
		if err != nil {
			handleError(w, r, err)
			return
		}
		respondMessage(w, msg)
	}
}

func examResetHandler(uc UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := pathUserID(r)
		if err != nil {
			handleError(w, r, err)
			return
		}

		msg, err := uc.ResetExam(r.Context(), userID)
		if err != nil {
			handleError(w, r, err)
			return
		}
		respondMessage(w, msg)
	}
}

func remindDispatchHandler(uc UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := uc.DispatchReminders(r.Context()); err != nil {
			handleError(w, r, err)
			return
		}
		respondMessage(w, "dispatched")
	}
}
