package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/PranavU-Coder/bitsatards-bot/pkg/domain/interfaces"
	"github.com/PranavU-Coder/bitsatards-bot/pkg/domain/model/exam"
	"github.com/PranavU-Coder/bitsatards-bot/pkg/domain/types"
	"github.com/PranavU-Coder/bitsatards-bot/pkg/repository"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testExamRepository(t *testing.T, repo interfaces.ExamRepository) {
	ctx := context.Background()

	t.Run("PutAndGet", func(t *testing.T) {
		record := exam.New(1001, "soldier", 2001, date(2026, time.April, 15))
		gt.NoError(t, repo.PutUserExam(ctx, record))

		got, err := repo.GetUserExam(ctx, 1001)
		gt.NoError(t, err)
		gt.NotNil(t, got)
		gt.V(t, got.Username).Equal("soldier")
		gt.V(t, got.ChannelID).Equal(types.ChannelID(2001))
		gt.V(t, got.ExamDate).Equal(date(2026, time.April, 15))
	})

	t.Run("UpsertReplacesExisting", func(t *testing.T) {
		gt.NoError(t, repo.PutUserExam(ctx, exam.New(1002, "old", 2001, date(2026, time.April, 15))))
		gt.NoError(t, repo.PutUserExam(ctx, exam.New(1002, "new", 2002, date(2026, time.May, 20))))

		got, err := repo.GetUserExam(ctx, 1002)
		gt.NoError(t, err)
		gt.NotNil(t, got)
		gt.V(t, got.Username).Equal("new")
		gt.V(t, got.ChannelID).Equal(types.ChannelID(2002))
		gt.V(t, got.ExamDate).Equal(date(2026, time.May, 20))
	})

	t.Run("GetMissingReturnsNil", func(t *testing.T) {
		got, err := repo.GetUserExam(ctx, 999999)
		gt.NoError(t, err)
		gt.Nil(t, got)
	})

	t.Run("DeleteReportsPresence", func(t *testing.T) {
		gt.NoError(t, repo.PutUserExam(ctx, exam.New(1003, "gone", 2001, date(2026, time.April, 15))))

		deleted, err := repo.DeleteUserExam(ctx, 1003)
		gt.NoError(t, err)
		gt.True(t, deleted)

		// second delete is a no-op, not an error
		deleted, err = repo.DeleteUserExam(ctx, 1003)
		gt.NoError(t, err)
		gt.False(t, deleted)

		got, err := repo.GetUserExam(ctx, 1003)
		gt.NoError(t, err)
		gt.Nil(t, got)
	})

	t.Run("ListAll", func(t *testing.T) {
		gt.NoError(t, repo.PutUserExam(ctx, exam.New(1004, "a", 2001, date(2026, time.April, 15))))
		gt.NoError(t, repo.PutUserExam(ctx, exam.New(1005, "b", 2002, date(2026, time.April, 16))))

		all, err := repo.ListUserExams(ctx)
		gt.NoError(t, err)
		gt.Number(t, len(all)).GreaterOrEqual(2)
	})

	t.Run("RejectInvalidRecord", func(t *testing.T) {
		err := repo.PutUserExam(ctx, exam.New(0, "nobody", 2001, date(2026, time.April, 15)))
		gt.Error(t, err)
	})
}

func TestMemoryRepository(t *testing.T) {
	testExamRepository(t, repository.NewMemory())
}

func TestMemoryCopySemantics(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemory()

	record := exam.New(42, "mutant", 99, date(2026, time.April, 15))
	gt.NoError(t, repo.PutUserExam(ctx, record))

	// mutating the caller's record must not leak into the store
	record.Username = "changed"
	got, err := repo.GetUserExam(ctx, 42)
	gt.NoError(t, err)
	gt.V(t, got.Username).Equal("mutant")
}

func TestMemoryCallCounts(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemory()

	_, err := repo.GetUserExam(ctx, 1)
	gt.NoError(t, err)
	_, err = repo.GetUserExam(ctx, 1)
	gt.NoError(t, err)

	gt.Number(t, repo.GetCallCount("GetUserExam")).Equal(2)
	gt.Number(t, repo.GetCallCount("PutUserExam")).Equal(0)
}
