package usecase

import (
	"context"

	"github.com/PranavU-Coder/bitsatards-bot/pkg/utils/logging"
)

// RunDailyReminders is the daily trigger body: it resets the suppression
// set, collects the due milestone notifications and delivers each one.
// Delivery failures are logged and skipped so one broken channel cannot
// starve the rest of the batch.
func (x *UseCases) RunDailyReminders(ctx context.Context) error {
	x.reminder.ResetDailyTracking()
	return x.DispatchReminders(ctx)
}

// DispatchReminders delivers whatever notifications are currently due
// without resetting daily tracking. Safe to call more than once per day;
// already-notified users are suppressed.
func (x *UseCases) DispatchReminders(ctx context.Context) error {
	notifications, err := x.reminder.UsersToRemind(ctx)
	if err != nil {
		return err
	}

	delivered := 0
	for _, n := range notifications {
		if x.notifier == nil {
			x.logAndContinue(ctx, "no notifier configured, dropping reminder", nil,
				"user_id", n.UserID)
			continue
		}
		if err := x.notifier.NotifyUser(ctx, n.ChannelID.String(), n.UserID.String(), n.Message); err != nil {
			x.logAndContinue(ctx, "failed to deliver reminder", err,
				"user_id", n.UserID, "channel_id", n.ChannelID)
			continue
		}
		delivered++
	}

	if len(notifications) > 0 {
		logging.From(ctx).Info("reminders dispatched",
			"due", len(notifications), "delivered", delivered)
	}
	return nil
}
