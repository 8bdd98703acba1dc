package http

import (
	"context"

	"github.com/PranavU-Coder/bitsatards-bot/pkg/domain/types"
	"github.com/PranavU-Coder/bitsatards-bot/pkg/usecase"
)

// UseCase is the slice of the use case set the HTTP surface needs.
type UseCase interface {
	SetExamDate(ctx context.Context, userID types.UserID, username string, channelID types.ChannelID, dateInput string) (string, error)
	Countdown(ctx context.Context, userID types.UserID) (string, error)
	ResetExam(ctx context.Context, userID types.UserID) (string, error)

	ChartByCampus(ctx context.Context, campus string) (*usecase.RenderResult, error)
	ChartByBranch(ctx context.Context, campus, branchInput string) (*usecase.RenderResult, error)
	CutoffTable(ctx context.Context, year int, campusFilter string, limit int) (*usecase.RenderResult, error)
	PredictionTable(ctx context.Context, scenarioInput, campusFilter string, limit int) (*usecase.RenderResult, error)

	DispatchReminders(ctx context.Context) error
}

var _ UseCase = &usecase.UseCases{}
