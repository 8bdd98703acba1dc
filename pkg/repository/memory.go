package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/PranavU-Coder/bitsatards-bot/pkg/domain/interfaces"
	"github.com/PranavU-Coder/bitsatards-bot/pkg/domain/model/exam"
	"github.com/PranavU-Coder/bitsatards-bot/pkg/domain/types"
)

// Memory is the in-memory ExamRepository, used by tests and local
// development. A single mutex serializes all mutations, which also gives
// the per-user upsert/delete atomicity the store contract requires.
type Memory struct {
	mu    sync.RWMutex
	exams map[types.UserID]*exam.UserExam

	callMu     sync.RWMutex
	callCounts map[string]int
}

var _ interfaces.ExamRepository = &Memory{}

func NewMemory() *Memory {
	return &Memory{
		exams:      make(map[types.UserID]*exam.UserExam),
		callCounts: make(map[string]int),
	}
}

func (r *Memory) incrementCallCount(method string) {
	r.callMu.Lock()
	defer r.callMu.Unlock()
	r.callCounts[method]++
}

// GetCallCount returns how many times a repository method has been called.
func (r *Memory) GetCallCount(method string) int {
	r.callMu.RLock()
	defer r.callMu.RUnlock()
	return r.callCounts[method]
}

func (r *Memory) PutUserExam(ctx context.Context, record *exam.UserExam) error {
	r.incrementCallCount("PutUserExam")
	if err := record.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *record
	r.exams[record.UserID] = &copied
	return nil
}

func (r *Memory) GetUserExam(ctx context.Context, userID types.UserID) (*exam.UserExam, error) {
	r.incrementCallCount("GetUserExam")
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.exams[userID]
	if !ok {
		return nil, nil
	}
	copied := *record
	return &copied, nil
}

func (r *Memory) DeleteUserExam(ctx context.Context, userID types.UserID) (bool, error) {
	r.incrementCallCount("DeleteUserExam")
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.exams[userID]; !ok {
		return false, nil
	}
	delete(r.exams, userID)
	return true, nil
}

func (r *Memory) ListUserExams(ctx context.Context) ([]*exam.UserExam, error) {
	r.incrementCallCount("ListUserExams")
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*exam.UserExam, 0, len(r.exams))
	for _, record := range r.exams {
		copied := *record
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out, nil
}
