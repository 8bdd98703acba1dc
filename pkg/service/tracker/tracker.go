package tracker

import (
	"context"
	"fmt"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/PranavU-Coder/bitsatards-bot/pkg/domain/interfaces"
	"github.com/PranavU-Coder/bitsatards-bot/pkg/domain/model/errs"
	"github.com/PranavU-Coder/bitsatards-bot/pkg/domain/model/exam"
	"github.com/PranavU-Coder/bitsatards-bot/pkg/domain/types"
	"github.com/PranavU-Coder/bitsatards-bot/pkg/utils/clock"
)

// Service computes user-facing countdown and confirmation messages over
// the exam record store. All date arithmetic is at calendar-day
// granularity against the clock injected into ctx.
type Service struct {
	repo interfaces.ExamRepository
}

func New(repo interfaces.ExamRepository) *Service {
	return &Service{repo: repo}
}

// SetExamDate upserts the user's exam record and returns a confirmation
// message. A date in the past is informational, not an error.
func (x *Service) SetExamDate(ctx context.Context, userID types.UserID, username string, channelID types.ChannelID, examDate time.Time) (string, error) {
	record := exam.New(userID, username, channelID, examDate)
	if err := x.repo.PutUserExam(ctx, record); err != nil {
		return "", goerr.Wrap(err, "failed to store exam record", goerr.V("user_id", userID))
	}

	daysLeft := clock.DaysUntil(ctx, examDate)
	dateLabel := record.DateLabel()

	switch {
	case daysLeft > 0:
		return fmt.Sprintf("exam date set for **%s**\n**%d days** remaining", dateLabel, daysLeft), nil
	case daysLeft == 0:
		return fmt.Sprintf("exam date set for **%s**\nwhich is btw today, best of luck soldier!", dateLabel), nil
	default:
		return fmt.Sprintf("the date you set (%s) has already been passed mate, please focus on the future.", dateLabel), nil
	}
}

// GetCountdown returns the countdown message for the user, or an
// instructional message when no record exists.
func (x *Service) GetCountdown(ctx context.Context, userID types.UserID) (string, error) {
	record, err := x.repo.GetUserExam(ctx, userID)
	if err != nil {
		return "", goerr.Wrap(err, "failed to load exam record", goerr.V("user_id", userID))
	}
	if record == nil {
		return "no record for user found.\nuse `!!time -s DD-MM-YYYY` to set it.\nexample: `!!time -s 15-04-2026`", nil
	}

	daysLeft := clock.DaysUntil(ctx, record.ExamDate)
	dateLabel := record.DateLabel()

	switch {
	case daysLeft > 0:
		weeks := daysLeft / 7
		remainder := daysLeft % 7

		timeStr := fmt.Sprintf("**%d days**", daysLeft)
		if weeks > 0 {
			timeStr += fmt.Sprintf(" (%d weeks and %d days)", weeks, remainder)
		}
		return fmt.Sprintf("exam date: %s\ntime remaining: %s", dateLabel, timeStr), nil

	case daysLeft == 0:
		return fmt.Sprintf("**TODAY**\nBITSAT: %s\nIt all comes down to this.", dateLabel), nil

	default:
		daysSince := -daysLeft
		return fmt.Sprintf("Your exam is over\nBITSAT was on %s\nIt's been %d days since your exam\nHoping you did well soldier!\nIf you want to track for second session, please run the time -r command.", dateLabel, daysSince), nil
	}
}

// Reset deletes the user's record. Resetting an absent record is not an
// error; the message reports that nothing was set.
func (x *Service) Reset(ctx context.Context, userID types.UserID) (string, error) {
	deleted, err := x.repo.DeleteUserExam(ctx, userID)
	if err != nil {
		return "", goerr.Wrap(err, "failed to delete exam record", goerr.V("user_id", userID))
	}
	if deleted {
		return "record cleared", nil
	}
	return "no exam has been set.", nil
}

// Get returns the raw record for the user, errs.ErrExamNotFound when no
// record exists.
func (x *Service) Get(ctx context.Context, userID types.UserID) (*exam.UserExam, error) {
	record, err := x.repo.GetUserExam(ctx, userID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load exam record", goerr.V("user_id", userID))
	}
	if record == nil {
		return nil, goerr.Wrap(errs.ErrExamNotFound, "no exam record", goerr.V("user_id", userID))
	}
	return record, nil
}
