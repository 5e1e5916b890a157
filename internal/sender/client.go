package sender

import (
	"context"
	"fmt"

	slackgo "github.com/slack-go/slack"
)

// WebAPI adapts a slack-go client to the API interface. One WebAPI is
// created at process start and reused for the process lifetime; the
// underlying client is safe for concurrent use.
type WebAPI struct {
	client *slackgo.Client
}

// NewWebAPI returns a WebAPI authenticated with the given bot token.
func NewWebAPI(token string) *WebAPI {
	return &WebAPI{client: slackgo.New(token)}
}

func (w *WebAPI) AuthTest(ctx context.Context) error {
	_, err := w.client.AuthTestContext(ctx)
	return err
}

func (w *WebAPI) PostMessage(ctx context.Context, req PostMessageRequest) error {
	_, _, err := w.client.PostMessageContext(ctx, req.Channel, msgOptions(req)...)
	return err
}

// msgOptions assembles the chat.postMessage options for one request.
// Slack defaults unfurl_links to false and unfurl_media to true, so the
// link flag must be sent explicitly on both branches.
func msgOptions(req PostMessageRequest) []slackgo.MsgOption {
	opts := []slackgo.MsgOption{
		slackgo.MsgOptionText(req.Text, false),
		slackgo.MsgOptionBlocks(req.Blocks...),
		slackgo.MsgOptionAsUser(!req.AsBot),
	}
	if len(req.Attachments) > 0 {
		opts = append(opts, slackgo.MsgOptionAttachments(req.Attachments...))
	}
	if req.AllowUnfurl {
		opts = append(opts, slackgo.MsgOptionEnableLinkUnfurl())
	} else {
		opts = append(opts, slackgo.MsgOptionDisableLinkUnfurl(), slackgo.MsgOptionDisableMediaUnfurl())
	}
	return opts
}

// UploadFile uploads via the two-step external upload flow and resolves the
// resulting file to its permalink.
func (w *WebAPI) UploadFile(ctx context.Context, req UploadFileRequest) (string, error) {
	summary, err := w.client.UploadFileV2Context(ctx, slackgo.UploadFileV2Parameters{
		File:     req.Path,
		FileSize: req.Size,
		Filename: req.Filename,
		Title:    req.Title,
		Channel:  req.Channel,
	})
	if err != nil {
		return "", fmt.Errorf("upload file: %w", err)
	}

	file, _, _, err := w.client.GetFileInfoContext(ctx, summary.ID, 0, 0)
	if err != nil {
		return "", fmt.Errorf("resolve uploaded file %s: %w", summary.ID, err)
	}
	return file.Permalink, nil
}
