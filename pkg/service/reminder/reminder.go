package reminder

import (
	"context"
	"fmt"
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/PranavU-Coder/bitsatards-bot/pkg/domain/interfaces"
	"github.com/PranavU-Coder/bitsatards-bot/pkg/domain/types"
	"github.com/PranavU-Coder/bitsatards-bot/pkg/utils/clock"
)

// Notification is one reminder to dispatch: the target user, the channel
// their record points at, and the milestone message.
type Notification struct {
	UserID    types.UserID
	ChannelID types.ChannelID
	Message   string
}

// Service scans exam records once per day and decides who gets a milestone
// reminder. The suppression set guarantees at most one message per user
// per day; it lives in memory only, so a process restart may repeat a
// reminder, which is acceptable. The service does not know wall-clock day
// boundaries: an external daily trigger must call ResetDailyTracking
// exactly once per day before UsersToRemind.
type Service struct {
	repo interfaces.ExamRepository

	mu        sync.Mutex
	sentToday map[types.UserID]struct{}
}

func New(repo interfaces.ExamRepository) *Service {
	return &Service{
		repo:      repo,
		sentToday: make(map[types.UserID]struct{}),
	}
}

// ResetDailyTracking clears the suppression set at the day boundary.
func (x *Service) ResetDailyTracking() {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.sentToday = make(map[types.UserID]struct{})
}

// UsersToRemind scans all exam records and returns the notifications due
// today. Users already notified today are skipped; every returned user is
// marked notified before the call returns.
func (x *Service) UsersToRemind(ctx context.Context) ([]Notification, error) {
	records, err := x.repo.ListUserExams(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list exam records")
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	var out []Notification
	for _, record := range records {
		if _, sent := x.sentToday[record.UserID]; sent {
			continue
		}

		daysUntil := clock.DaysUntil(ctx, record.ExamDate)
		message := milestoneMessage(daysUntil, record.DateLabel())
		if message == "" {
			continue
		}

		out = append(out, Notification{
			UserID:    record.UserID,
			ChannelID: record.ChannelID,
			Message:   message,
		})
		x.sentToday[record.UserID] = struct{}{}
	}

	return out, nil
}

// milestoneMessage maps days-until-exam to the milestone wording. First
// match wins; the 1-day case outranks the generic 2-6 day bucket. Any
// other value produces no message.
func milestoneMessage(daysUntil int, dateLabel string) string {
	switch {
	case daysUntil == 30:
		return fmt.Sprintf("**30 Days Until BITSAT**\nExam: %s\nOne month to go", dateLabel)
	case daysUntil == 7:
		return fmt.Sprintf("**1 Week Until BITSAT!**\nExam: %s\nFinal week", dateLabel)
	case daysUntil == 1:
		return fmt.Sprintf("**Tomorrow is BITSAT!**\n%s\nGet good sleep for tomorrow", dateLabel)
	case daysUntil >= 2 && daysUntil <= 6:
		return fmt.Sprintf("**%d Days Until BITSAT**\n%s\nPlease close discord & study for your own sake", daysUntil, dateLabel)
	case daysUntil == 0:
		return fmt.Sprintf("**TODAY IS THE DAY!**\nBITSAT: %s\nGood luck Soldier", dateLabel)
	default:
		return ""
	}
}
