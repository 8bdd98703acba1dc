package storage

import (
	"context"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/option"

	"github.com/PranavU-Coder/bitsatards-bot/pkg/domain/interfaces"
	"github.com/PranavU-Coder/bitsatards-bot/pkg/domain/model/errs"
	"github.com/PranavU-Coder/bitsatards-bot/pkg/utils/safe"
)

// Client hosts rendered artifacts on Google Cloud Storage. Objects are
// expected to be publicly readable; URL returns the canonical public URL.
type Client struct {
	client *storage.Client
	bucket string
	prefix string
}

var _ interfaces.StorageClient = &Client{}

func New(ctx context.Context, bucket, prefix string, opts ...option.ClientOption) (*Client, error) {
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create storage client", goerr.T(errs.TagExternal))
	}

	return &Client{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}, nil
}

func (x *Client) PutObject(ctx context.Context, object string) io.WriteCloser {
	return x.client.Bucket(x.bucket).Object(x.prefix + object).NewWriter(ctx)
}

func (x *Client) GetObject(ctx context.Context, object string) (io.ReadCloser, error) {
	rc, err := x.client.Bucket(x.bucket).Object(x.prefix + object).NewReader(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create reader",
			goerr.V("bucket", x.bucket),
			goerr.V("object", x.prefix+object),
			goerr.T(errs.TagExternal),
		)
	}

	return rc, nil
}

func (x *Client) URL(object string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s%s", x.bucket, x.prefix, object)
}

func (x *Client) Close(ctx context.Context) {
	safe.Close(ctx, x.client)
}
