package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/PranavU-Coder/bitsatards-bot/pkg/domain/model/errs"
	"github.com/PranavU-Coder/bitsatards-bot/pkg/domain/types"
)

// ExamDateLayout is the accepted input format for exam dates, DD-MM-YYYY.
const ExamDateLayout = "02-01-2006"

// SetExamDate parses the date input and records the user's exam.
func (x *UseCases) SetExamDate(ctx context.Context, userID types.UserID, username string, channelID types.ChannelID, dateInput string) (string, error) {
	if err := userID.Validate(); err != nil {
		return "", goerr.Wrap(err, "invalid user", goerr.T(errs.TagValidation))
	}

	examDate, err := time.Parse(ExamDateLayout, dateInput)
	if err != nil {
		return "", goerr.Wrap(err, "invalid date, expected DD-MM-YYYY",
			goerr.V("input", dateInput), goerr.T(errs.TagValidation))
	}

	return x.tracker.SetExamDate(ctx, userID, username, channelID, examDate)
}

// Countdown returns the countdown message for the user.
func (x *UseCases) Countdown(ctx context.Context, userID types.UserID) (string, error) {
	if err := userID.Validate(); err != nil {
		return "", goerr.Wrap(err, "invalid user", goerr.T(errs.TagValidation))
	}
	return x.tracker.GetCountdown(ctx, userID)
}

// ResetExam clears the user's exam record.
func (x *UseCases) ResetExam(ctx context.Context, userID types.UserID) (string, error) {
	if err := userID.Validate(); err != nil {
		return "", goerr.Wrap(err, "invalid user", goerr.T(errs.TagValidation))
	}
	return x.tracker.Reset(ctx, userID)
}
