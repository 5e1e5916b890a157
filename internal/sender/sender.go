// Package sender renders report documents into Slack Block Kit and delivers
// them over the Slack Web API.
package sender

import (
	"context"
	"fmt"
	"log/slog"

	slackgo "github.com/slack-go/slack"

	"github.com/harborbot/harborbot/internal/imaging"
	"github.com/harborbot/harborbot/internal/playbook"
	"github.com/harborbot/harborbot/internal/report"
)

const (
	// MaxTextLength is Slack's cap for message and section text.
	MaxTextLength = 3000
	// MaxHeaderLength is Slack's cap for header block text.
	MaxHeaderLength = 150

	emptyMessagePlaceholder = "empty-message"
	actionTriggerPlaybook   = "trigger_playbook"
)

// Sender delivers reports to Slack. One Sender is built at startup and
// reused; it holds no per-dispatch state.
type Sender struct {
	api      API
	encoder  *playbook.Encoder
	expander *imaging.Expander
}

// New returns a Sender posting through api, encoding callback tokens with
// encoder, and pairing image files with expander.
func New(api API, encoder *playbook.Encoder, expander *imaging.Expander) *Sender {
	return &Sender{api: api, encoder: encoder, expander: expander}
}

// Verify confirms the configured token against Slack. Called once at
// startup; a failure means the system is not ready to dispatch.
func (s *Sender) Verify(ctx context.Context) error {
	if err := s.api.AuthTest(ctx); err != nil {
		return fmt.Errorf("slack auth test: %w", err)
	}
	return nil
}

// Send composes and delivers one report.
//
// A submission failure is logged with the full message context and absorbed:
// Send returns nil so the caller's workflow continues regardless of delivery
// success. Errors that indicate a defective report — an unregistered
// callback reference, a failed file upload — are returned instead, before
// anything is submitted.
func (s *Sender) Send(ctx context.Context, r *report.Report) error {
	msg, err := s.compose(ctx, r)
	if err != nil {
		return err
	}

	req := PostMessageRequest{
		Channel:     r.Channel,
		Text:        msg.text,
		Blocks:      msg.blocks,
		AsBot:       true,
		AllowUnfurl: r.AllowUnfurl,
	}
	// An empty attachment list behaves like an absent one: plain submission.
	if len(msg.attachments) > 0 {
		req.Attachments = []slackgo.Attachment{
			{Blocks: slackgo.Blocks{BlockSet: msg.attachments}},
		}
	}

	slog.Debug("slack: sending report",
		"channel", r.Channel,
		"title", r.Title,
		"blocks", len(msg.blocks),
		"attachment_blocks", len(msg.attachments))

	if err := s.api.PostMessage(ctx, req); err != nil {
		slog.Error("slack: send failed",
			"channel", r.Channel,
			"text", msg.text,
			"blocks", msg.blocks,
			"attachment_blocks", msg.attachments,
			"err", err)
	}
	return nil
}
