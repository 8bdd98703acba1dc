package tracker_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/PranavU-Coder/bitsatards-bot/pkg/repository"
	"github.com/PranavU-Coder/bitsatards-bot/pkg/service/tracker"
	"github.com/PranavU-Coder/bitsatards-bot/pkg/utils/clock"
)

func ctxAt(y int, m time.Month, d int) context.Context {
	now := time.Date(y, m, d, 10, 30, 0, 0, time.UTC)
	return clock.With(context.Background(), func() time.Time { return now })
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSetExamDateFuture(t *testing.T) {
	ctx := ctxAt(2026, time.January, 1)
	svc := tracker.New(repository.NewMemory())

	msg, err := svc.SetExamDate(ctx, 123, "testuser", 456, date(2026, time.April, 15))
	gt.NoError(t, err)
	gt.S(t, msg).Contains("exam date set for **15 April 2026**")
	gt.S(t, msg).Contains("**104 days** remaining")
}

func TestSetExamDateToday(t *testing.T) {
	ctx := ctxAt(2026, time.April, 15)
	svc := tracker.New(repository.NewMemory())

	msg, err := svc.SetExamDate(ctx, 123, "testuser", 456, date(2026, time.April, 15))
	gt.NoError(t, err)
	gt.S(t, msg).Contains("which is btw today, best of luck soldier!")
	gt.S(t, msg).NotContains("remaining")
}

func TestSetExamDatePast(t *testing.T) {
	ctx := ctxAt(2026, time.April, 15)
	svc := tracker.New(repository.NewMemory())

	msg, err := svc.SetExamDate(ctx, 123, "testuser", 456, date(2026, time.January, 1))
	gt.NoError(t, err)
	gt.S(t, msg).Contains("has already been passed")
}

func TestGetCountdownFuture(t *testing.T) {
	ctx := ctxAt(2026, time.January, 1)
	repo := repository.NewMemory()
	svc := tracker.New(repo)

	_, err := svc.SetExamDate(ctx, 123, "testuser", 456, date(2026, time.April, 15))
	gt.NoError(t, err)

	msg, err := svc.GetCountdown(ctx, 123)
	gt.NoError(t, err)
	gt.S(t, msg).Contains("exam date: 15 April 2026")
	gt.S(t, msg).Contains("**104 days**")
	gt.S(t, msg).Contains("14 weeks and 6 days")
}

func TestGetCountdownLessThanWeek(t *testing.T) {
	ctx := ctxAt(2026, time.April, 10)
	svc := tracker.New(repository.NewMemory())

	_, err := svc.SetExamDate(ctx, 123, "testuser", 456, date(2026, time.April, 15))
	gt.NoError(t, err)

	msg, err := svc.GetCountdown(ctx, 123)
	gt.NoError(t, err)
	gt.S(t, msg).Contains("**5 days**")
	// below one week there is no weeks breakdown
	gt.S(t, msg).NotContains("weeks and")
}

func TestGetCountdownToday(t *testing.T) {
	ctx := ctxAt(2026, time.April, 15)
	svc := tracker.New(repository.NewMemory())

	_, err := svc.SetExamDate(ctx, 123, "testuser", 456, date(2026, time.April, 15))
	gt.NoError(t, err)

	msg, err := svc.GetCountdown(ctx, 123)
	gt.NoError(t, err)
	gt.S(t, msg).Contains("**TODAY**")
	gt.S(t, msg).Contains("It all comes down to this.")
}

func TestGetCountdownPast(t *testing.T) {
	ctx := ctxAt(2026, time.April, 15)
	svc := tracker.New(repository.NewMemory())

	_, err := svc.SetExamDate(ctx, 123, "testuser", 456, date(2026, time.January, 1))
	gt.NoError(t, err)

	msg, err := svc.GetCountdown(ctx, 123)
	gt.NoError(t, err)
	gt.S(t, msg).Contains("Your exam is over")
	gt.S(t, msg).Contains("It's been 104 days since your exam")
	gt.S(t, msg).Contains("time -r command")
}

func TestGetCountdownNoRecord(t *testing.T) {
	ctx := ctxAt(2026, time.January, 1)
	svc := tracker.New(repository.NewMemory())

	msg, err := svc.GetCountdown(ctx, 999)
	gt.NoError(t, err)
	gt.S(t, msg).Contains("no record for user found.")
	gt.S(t, msg).Contains("!!time -s")
}

func TestReset(t *testing.T) {
	ctx := ctxAt(2026, time.January, 1)
	svc := tracker.New(repository.NewMemory())

	_, err := svc.SetExamDate(ctx, 123, "testuser", 456, date(2026, time.April, 15))
	gt.NoError(t, err)

	msg, err := svc.Reset(ctx, 123)
	gt.NoError(t, err)
	gt.V(t, msg).Equal("record cleared")

	// idempotent: resetting again reports nothing to reset, no error
	msg, err = svc.Reset(ctx, 123)
	gt.NoError(t, err)
	gt.V(t, msg).Equal("no exam has been set.")
}

func TestResetNoRecord(t *testing.T) {
	ctx := ctxAt(2026, time.January, 1)
	svc := tracker.New(repository.NewMemory())

	msg, err := svc.Reset(ctx, 777)
	gt.NoError(t, err)
	gt.V(t, msg).Equal("no exam has been set.")
}
