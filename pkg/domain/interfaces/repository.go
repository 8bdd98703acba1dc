package interfaces

import (
	"context"

	"github.com/PranavU-Coder/bitsatards-bot/pkg/domain/model/exam"
	"github.com/PranavU-Coder/bitsatards-bot/pkg/domain/types"
)

// ExamRepository is the durable store of per-user exam records. PutUserExam
// is an upsert and must be atomic per user ID; GetUserExam returns the most
// recent committed value. GetUserExam returns nil (not an error) when no
// record exists, and DeleteUserExam reports whether a record was removed.
type ExamRepository interface {
	PutUserExam(ctx context.Context, record *exam.UserExam) error
	GetUserExam(ctx context.Context, userID types.UserID) (*exam.UserExam, error)
	DeleteUserExam(ctx context.Context, userID types.UserID) (bool, error)
	ListUserExams(ctx context.Context) ([]*exam.UserExam, error)
}
