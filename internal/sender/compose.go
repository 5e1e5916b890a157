package sender

import (
	"context"
	"strings"

	slackgo "github.com/slack-go/slack"

	"github.com/harborbot/harborbot/internal/report"
	"github.com/harborbot/harborbot/internal/shared/stringutils"
)

// composed is one report rendered and ready to submit.
type composed struct {
	text        string
	blocks      []slackgo.Block
	attachments []slackgo.Block
}

// compose renders a report into its final text line and element sequences.
//
// File blocks never translate: they are partitioned out, expanded with any
// raster counterparts, uploaded, and referenced from the text line instead.
// Element order follows input block order exactly.
func (s *Sender) compose(ctx context.Context, r *report.Report) (composed, error) {
	var files []report.FileBlock
	var others []report.Block
	for _, b := range r.Blocks {
		if fb, ok := b.(report.FileBlock); ok {
			files = append(files, fb)
		} else {
			others = append(others, b)
		}
	}
	files = s.expander.Expand(files)

	text, err := s.prepareText(ctx, r, files)
	if err != nil {
		return composed{}, err
	}

	var blocks []slackgo.Block
	if r.Title != "" && !r.HideTitle {
		header, err := s.translate(report.HeaderBlock{Text: r.Title})
		if err != nil {
			return composed{}, err
		}
		blocks = append(blocks, header...)
	}
	for _, b := range others {
		out, err := s.translate(b)
		if err != nil {
			return composed{}, err
		}
		blocks = append(blocks, out...)
	}

	var attachments []slackgo.Block
	for _, b := range r.AttachmentBlocks {
		out, err := s.translate(b)
		if err != nil {
			return composed{}, err
		}
		attachments = append(attachments, out...)
	}

	return composed{text: text, blocks: blocks, attachments: attachments}, nil
}

// prepareText builds the message text line: mention markers, title, then one
// reference line per uploaded file. Uploading happens here because Slack
// only reliably shares a file when its permalink appears in the text.
func (s *Sender) prepareText(ctx context.Context, r *report.Report, files []report.FileBlock) (string, error) {
	text := r.Title

	if len(r.Mentions) > 0 {
		marks := make([]string, 0, len(r.Mentions))
		for _, id := range r.Mentions {
			marks = append(marks, "<@"+id+">")
		}
		text = strings.Join(marks, " ") + " " + text
	}

	if len(files) > 0 {
		refs := make([]string, 0, len(files))
		for _, fb := range files {
			permalink, err := s.publishFile(ctx, r.Channel, fb)
			if err != nil {
				return "", err
			}
			refs = append(refs, "* <"+permalink+" | "+fb.Filename+">")
		}
		text = text + "\n" + strings.Join(refs, "\n")
	}

	if text == "" {
		// Slack rejects messages with blank text.
		return emptyMessagePlaceholder, nil
	}
	return stringutils.Truncate(text, MaxTextLength), nil
}
