package sender

import (
	"context"

	slackgo "github.com/slack-go/slack"
)

// API is the subset of the Slack Web API the sender needs. *WebAPI
// implements it over slack-go; tests substitute fakes.
type API interface {
	AuthTest(ctx context.Context) error
	PostMessage(ctx context.Context, req PostMessageRequest) error
	UploadFile(ctx context.Context, req UploadFileRequest) (permalink string, err error)
}

// PostMessageRequest carries the chat.postMessage fields the sender sets.
type PostMessageRequest struct {
	Channel     string
	Text        string
	Blocks      []slackgo.Block
	Attachments []slackgo.Attachment
	AsBot       bool
	AllowUnfurl bool
}

// UploadFileRequest carries the file-upload fields the sender sets.
// Path points at a local file holding the content to upload.
type UploadFileRequest struct {
	Path     string
	Size     int
	Filename string
	Title    string
	Channel  string
}
