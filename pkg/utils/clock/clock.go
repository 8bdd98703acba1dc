package clock

import (
	"context"
	"time"
)

type ctxClockKey struct{}

type Clock func() time.Time

func Now(ctx context.Context) time.Time {
	clock, ok := ctx.Value(ctxClockKey{}).(Clock)
	if !ok {
		return time.Now()
	}
	return clock()
}

func With(ctx context.Context, clock Clock) context.Context {
	return context.WithValue(ctx, ctxClockKey{}, clock)
}

// Today returns the current date truncated to calendar-day granularity
// in the location of the injected clock's value.
func Today(ctx context.Context) time.Time {
	now := Now(ctx)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// DaysUntil counts whole calendar days from today until date. Negative if
// the date is in the past. Time-of-day and location are ignored: both
// sides are normalized to UTC midnights before subtracting, so a DST
// transition inside the interval cannot shift the count.
func DaysUntil(ctx context.Context, date time.Time) int {
	now := Now(ctx)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	target := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return int(target.Sub(today).Hours() / 24)
}
