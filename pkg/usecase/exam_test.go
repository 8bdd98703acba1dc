package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/PranavU-Coder/bitsatards-bot/pkg/domain/model/errs"
	"github.com/PranavU-Coder/bitsatards-bot/pkg/usecase"
	"github.com/PranavU-Coder/bitsatards-bot/pkg/utils/clock"
)

func ctxAt(y int, m time.Month, d int) context.Context {
	now := time.Date(y, m, d, 9, 0, 0, 0, time.UTC)
	return clock.With(context.Background(), func() time.Time { return now })
}

func TestSetExamDateParsesInput(t *testing.T) {
	ctx := ctxAt(2026, time.January, 1)
	uc := usecase.New()

	msg, err := uc.SetExamDate(ctx, 123, "testuser", 456, "15-04-2026")
	gt.NoError(t, err)
	gt.S(t, msg).Contains("exam date set for **15 April 2026**")
	gt.S(t, msg).Contains("**104 days** remaining")
}

func TestSetExamDateRejectsBadInput(t *testing.T) {
	ctx := ctxAt(2026, time.January, 1)
	uc := usecase.New()

	for _, input := range []string{"2026-04-15", "15/04/2026", "tomorrow", ""} {
		_, err := uc.SetExamDate(ctx, 123, "testuser", 456, input)
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, errs.TagValidation))
	}
}

func TestSetExamDateRejectsEmptyUser(t *testing.T) {
	ctx := ctxAt(2026, time.January, 1)
	uc := usecase.New()

	_, err := uc.SetExamDate(ctx, 0, "testuser", 456, "15-04-2026")
	gt.Error(t, err)
	gt.True(t, goerr.HasTag(err, errs.TagValidation))
}

func TestCountdownRoundTrip(t *testing.T) {
	ctx := ctxAt(2026, time.January, 1)
	uc := usecase.New()

	_, err := uc.SetExamDate(ctx, 123, "testuser", 456, "15-04-2026")
	gt.NoError(t, err)

	msg, err := uc.Countdown(ctx, 123)
	gt.NoError(t, err)
	gt.S(t, msg).Contains("exam date: 15 April 2026")

	msg, err = uc.ResetExam(ctx, 123)
	gt.NoError(t, err)
	gt.V(t, msg).Equal("record cleared")

	msg, err = uc.Countdown(ctx, 123)
	gt.NoError(t, err)
	gt.S(t, msg).Contains("no record for user found.")
}
