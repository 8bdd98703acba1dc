package storage_test

import (
	"context"
	"io"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/PranavU-Coder/bitsatards-bot/pkg/adapter/storage"
)

func TestMemoryClientRoundTrip(t *testing.T) {
	ctx := context.Background()
	client := storage.NewMemoryClient()

	w := client.PutObject(ctx, "charts/pilani.png")
	_, err := w.Write([]byte("png-bytes"))
	gt.NoError(t, err)
	gt.NoError(t, w.Close())

	r, err := client.GetObject(ctx, "charts/pilani.png")
	gt.NoError(t, err)
	data, err := io.ReadAll(r)
	gt.NoError(t, err)
	gt.V(t, string(data)).Equal("png-bytes")
	gt.V(t, client.URL("charts/pilani.png")).Equal("memory://charts/pilani.png")
}

func TestMemoryClientMissingObject(t *testing.T) {
	ctx := context.Background()
	client := storage.NewMemoryClient()

	_, err := client.GetObject(ctx, "nope")
	gt.Error(t, err)
}

func TestMemoryClientUncommittedWrite(t *testing.T) {
	ctx := context.Background()
	client := storage.NewMemoryClient()

	w := client.PutObject(ctx, "charts/partial.png")
	_, err := w.Write([]byte("half"))
	gt.NoError(t, err)

	// object must not be visible before Close confirms the upload
	_, err = client.GetObject(ctx, "charts/partial.png")
	gt.Error(t, err)
}

func TestMockFailUploads(t *testing.T) {
	ctx := context.Background()
	mock := storage.NewMock()
	mock.FailUploads(true)

	w := mock.PutObject(ctx, "charts/doomed.png")
	_, err := w.Write([]byte("data"))
	gt.NoError(t, err)
	gt.Error(t, w.Close())

	_, err = mock.GetObject(ctx, "charts/doomed.png")
	gt.Error(t, err)
	gt.Number(t, mock.PutCalls()).Equal(1)
}
