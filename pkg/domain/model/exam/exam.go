package exam

import (
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/PranavU-Coder/bitsatards-bot/pkg/domain/types"
)

// UserExam is one user's tracked exam date. At most one record exists per
// user; setting a new date replaces the old one.
type UserExam struct {
	UserID    types.UserID    `json:"user_id" firestore:"user_id"`
	Username  string          `json:"username" firestore:"username"`
	ChannelID types.ChannelID `json:"channel_id" firestore:"channel_id"`
	ExamDate  time.Time       `json:"exam_date" firestore:"exam_date"`
}

func New(userID types.UserID, username string, channelID types.ChannelID, examDate time.Time) *UserExam {
	return &UserExam{
		UserID:    userID,
		Username:  username,
		ChannelID: channelID,
		ExamDate:  examDate,
	}
}

func (x *UserExam) Validate() error {
	if err := x.UserID.Validate(); err != nil {
		return err
	}
	if x.ExamDate.IsZero() {
		return goerr.New("exam date is not set", goerr.V("user_id", x.UserID))
	}
	return nil
}

// DateLabel renders the exam date the way user-facing messages expect it,
// e.g. "15 April 2026".
func (x *UserExam) DateLabel() string {
	return x.ExamDate.Format("02 January 2006")
}
