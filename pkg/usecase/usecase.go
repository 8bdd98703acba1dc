package usecase

import (
	"context"
	"runtime"

	"golang.org/x/sync/semaphore"
	"golang.org/x/sync/singleflight"

	"github.com/PranavU-Coder/bitsatards-bot/pkg/adapter/storage"
	"github.com/PranavU-Coder/bitsatards-bot/pkg/domain/interfaces"
	"github.com/PranavU-Coder/bitsatards-bot/pkg/repository"
	"github.com/PranavU-Coder/bitsatards-bot/pkg/service/branch"
	"github.com/PranavU-Coder/bitsatards-bot/pkg/service/dataset"
	"github.com/PranavU-Coder/bitsatards-bot/pkg/service/reminder"
	"github.com/PranavU-Coder/bitsatards-bot/pkg/service/render"
	"github.com/PranavU-Coder/bitsatards-bot/pkg/service/tracker"
	"github.com/PranavU-Coder/bitsatards-bot/pkg/utils/logging"
)

// Notifier delivers a reminder to a user, preferring the channel their
// record points at.
type Notifier interface {
	NotifyUser(ctx context.Context, channelID, userID, message string) error
}

// UseCases wires the services together behind the operations the
// controllers expose.
type UseCases struct {
	repo     interfaces.ExamRepository
	storage  interfaces.StorageClient
	notifier Notifier

	renderer *render.Renderer
	urlCache *render.URLCache
	tracker  *tracker.Service
	reminder *reminder.Service

	objectPrefix string

	publishGroup singleflight.Group
	renderSem    *semaphore.Weighted
}

type Option func(*UseCases)

func WithExamRepository(repo interfaces.ExamRepository) Option {
	return func(x *UseCases) { x.repo = repo }
}

func WithStorageClient(client interfaces.StorageClient) Option {
	return func(x *UseCases) { x.storage = client }
}

func WithNotifier(notifier Notifier) Option {
	return func(x *UseCases) { x.notifier = notifier }
}

func WithRenderer(renderer *render.Renderer) Option {
	return func(x *UseCases) { x.renderer = renderer }
}

// WithObjectPrefix sets the object name prefix for uploaded artifacts.
func WithObjectPrefix(prefix string) Option {
	return func(x *UseCases) { x.objectPrefix = prefix }
}

// WithRenderConcurrency caps concurrent render computations. Rendering is
// CPU-bound; the default cap is the CPU count.
func WithRenderConcurrency(n int64) Option {
	return func(x *UseCases) { x.renderSem = semaphore.NewWeighted(n) }
}

// New builds the use case set. Defaults are in-memory collaborators so
// tests and local runs need no external services.
func New(opts ...Option) *UseCases {
	uc := &UseCases{
		repo:         repository.NewMemory(),
		storage:      storage.NewMemoryClient(),
		urlCache:     render.NewURLCache(),
		objectPrefix: "charts/",
		renderSem:    semaphore.NewWeighted(int64(runtime.NumCPU())),
	}
	for _, opt := range opts {
		opt(uc)
	}

	if uc.renderer == nil {
		uc.renderer = render.New(
			&dataset.Store{},
			branch.NewResolverFromMap(nil, nil),
		)
	}
	uc.tracker = tracker.New(uc.repo)
	uc.reminder = reminder.New(uc.repo)

	return uc
}

// URLCacheLen reports how many artifact URLs have been published.
func (x *UseCases) URLCacheLen() int {
	return x.urlCache.Len()
}

func (x *UseCases) logAndContinue(ctx context.Context, msg string, err error, attrs ...any) {
	attrs = append(attrs, logging.ErrAttr(err))
	logging.From(ctx).Warn(msg, attrs...)
}
