package usecase

import (
	"errors"

	"github.com/m-mizutani/goerr/v2"

	"github.com/PranavU-Coder/bitsatards-bot/pkg/domain/model/errs"
)

// UserFacingMessage converts an operation error to the message shown to
// the user. Internal detail stays in the error for logging; the user gets
// the category.
func UserFacingMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, errs.ErrBranchNotFound):
		return "couldn't recognize that branch. try the full name (e.g. `B.E. Computer Science`) or a known alias (e.g. `cs`)."
	case goerr.HasTag(err, errs.TagNotFound):
		return "no data available for that query."
	case goerr.HasTag(err, errs.TagValidation):
		return err.Error()
	case goerr.HasTag(err, errs.TagExternal):
		return "upstream service is having a moment, please try again later."
	default:
		return "something went wrong, please try again."
	}
}
