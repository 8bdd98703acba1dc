package storage

import (
	"context"
	"io"
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/PranavU-Coder/bitsatards-bot/pkg/domain/interfaces"
	"github.com/PranavU-Coder/bitsatards-bot/pkg/domain/model/errs"
)

// Mock wraps MemoryClient with upload-failure injection for testing the
// caller's behavior when the artifact host is unavailable.
type Mock struct {
	*MemoryClient

	mu         sync.Mutex
	failUpload bool
	putCalls   int
}

var _ interfaces.StorageClient = &Mock{}

func NewMock() *Mock {
	return &Mock{MemoryClient: NewMemoryClient()}
}

func (m *Mock) FailUploads(fail bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failUpload = fail
}

func (m *Mock) PutCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.putCalls
}

func (m *Mock) PutObject(ctx context.Context, object string) io.WriteCloser {
	m.mu.Lock()
	m.putCalls++
	fail := m.failUpload
	m.mu.Unlock()

	if fail {
		return &failingWriter{}
	}
	return m.MemoryClient.PutObject(ctx, object)
}

type failingWriter struct{}

func (w *failingWriter) Write(p []byte) (int, error) {
	return len(p), nil
}

func (w *failingWriter) Close() error {
	return goerr.New("upload refused", goerr.T(errs.TagExternal))
}
