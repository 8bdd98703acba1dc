package interfaces

import (
	"context"
	"io"

	"github.com/slack-go/slack"
)

// StorageClient is the artifact host. PutObject returns a writer whose
// Close confirms the upload; URL returns the durable external URL of an
// uploaded object.
type StorageClient interface {
	PutObject(ctx context.Context, object string) io.WriteCloser
	GetObject(ctx context.Context, object string) (io.ReadCloser, error)
	URL(object string) string
	Close(ctx context.Context)
}

// SlackClient is the subset of the Slack SDK the delivery service needs.
type SlackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
	OpenConversationContext(ctx context.Context, params *slack.OpenConversationParameters) (*slack.Channel, bool, bool, error)
}
