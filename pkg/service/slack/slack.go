package slack

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"

	"github.com/PranavU-Coder/bitsatards-bot/pkg/domain/interfaces"
	"github.com/PranavU-Coder/bitsatards-bot/pkg/domain/model/errs"
	"github.com/PranavU-Coder/bitsatards-bot/pkg/utils/logging"
)

// Service delivers notifications and render results to Slack. Channel
// delivery is preferred; when the channel refuses the message (revoked
// access, archived channel) the service falls back to a direct message to
// the user.
type Service struct {
	client interfaces.SlackClient
}

func New(client interfaces.SlackClient) *Service {
	return &Service{client: client}
}

func NewWithToken(token string) *Service {
	return &Service{client: slack.New(token)}
}

// PostMessage sends text to a channel.
func (x *Service) PostMessage(ctx context.Context, channelID, message string) error {
	_, _, err := x.client.PostMessageContext(ctx, channelID,
		slack.MsgOptionText(message, false))
	if err != nil {
		return goerr.Wrap(err, "failed to post message",
			goerr.V("channel_id", channelID),
			goerr.T(errs.TagExternal))
	}
	return nil
}

// PostImageURL sends a message with a hosted image attached as a block.
func (x *Service) PostImageURL(ctx context.Context, channelID, message, imageURL, altText string) error {
	blocks := []slack.Block{
		slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, message, false, false),
			nil, nil,
		),
		slack.NewImageBlock(imageURL, altText, "", nil),
	}

	_, _, err := x.client.PostMessageContext(ctx, channelID,
		slack.MsgOptionBlocks(blocks...))
	if err != nil {
		return goerr.Wrap(err, "failed to post image message",
			goerr.V("channel_id", channelID),
			goerr.V("image_url", imageURL),
			goerr.T(errs.TagExternal))
	}
	return nil
}

// NotifyUser posts to the channel and falls back to a DM when the channel
// delivery is refused. Both failing is an error; the fallback succeeding
// is not.
func (x *Service) NotifyUser(ctx context.Context, channelID, userID, message string) error {
	chErr := x.PostMessage(ctx, channelID, message)
	if chErr == nil {
		return nil
	}
	logging.From(ctx).Warn("channel delivery failed, falling back to DM",
		"channel_id", channelID, "user_id", userID, logging.ErrAttr(chErr))

	channel, _, _, err := x.client.OpenConversationContext(ctx, &slack.OpenConversationParameters{
		Users: []string{userID},
	})
	if err != nil {
		return goerr.Wrap(err, "failed to open DM conversation",
			goerr.V("user_id", userID),
			goerr.T(errs.TagExternal))
	}

	return x.PostMessage(ctx, channel.ID, message)
}
