package sender

import (
	"context"
	"fmt"
	"os"

	"github.com/harborbot/harborbot/internal/report"
)

// publishFile uploads a file block's content and returns a durable permalink
// for inline reference. The content goes through a temp file scoped to this
// call; it is removed on every exit path.
//
// Upload failures propagate: a referenced-but-missing file would produce a
// broken report, so composition must abort instead.
func (s *Sender) publishFile(ctx context.Context, channel string, b report.FileBlock) (string, error) {
	f, err := os.CreateTemp("", "harborbot-upload-*")
	if err != nil {
		return "", fmt.Errorf("create temp upload file: %w", err)
	}
	defer os.Remove(f.Name())
	defer f.Close()

	if _, err := f.Write(b.Contents); err != nil {
		return "", fmt.Errorf("write temp upload file: %w", err)
	}

	permalink, err := s.api.UploadFile(ctx, UploadFileRequest{
		Path:     f.Name(),
		Size:     len(b.Contents),
		Filename: b.Filename,
		Title:    b.Filename,
		Channel:  channel,
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", b.Filename, err)
	}
	return permalink, nil
}
