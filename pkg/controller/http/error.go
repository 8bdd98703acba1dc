package http

import (
	"net/http"

	"github.com/m-mizutani/goerr/v2"

	"github.com/PranavU-Coder/bitsatards-bot/pkg/domain/model/errs"
	"github.com/PranavU-Coder/bitsatards-bot/pkg/usecase"
)

// handleError maps the error taxonomy to HTTP status codes. The body
// carries the user-facing message, not the internal error chain.
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	logger := loggerFrom(r)
	message := usecase.UserFacingMessage(err)

	switch {
	case goerr.HasTag(err, errs.TagNotFound):
		logger.Warn("Not Found", "error", err)
		http.Error(w, message, http.StatusNotFound)

	case goerr.HasTag(err, errs.TagValidation):
		logger.Warn("Bad Request", "error", err)
		http.Error(w, message, http.StatusBadRequest)

	case goerr.HasTag(err, errs.TagExternal):
		logger.Error("External Service Error", "error", err)
		http.Error(w, message, http.StatusBadGateway)

	default:
		logger.Error("Internal Server Error", "error", err)
		http.Error(w, message, http.StatusInternalServerError)
	}
}
