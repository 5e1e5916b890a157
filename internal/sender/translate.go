package sender

import (
	"fmt"
	"log/slog"

	slackgo "github.com/slack-go/slack"

	"github.com/harborbot/harborbot/internal/report"
	"github.com/harborbot/harborbot/internal/shared/stringutils"
)

// translate maps one report block to its Slack Block Kit rendering.
//
// The mapping is total over the block variant set: variants this sender
// cannot render degrade to an empty slice with a diagnostic log so the rest
// of the report still goes out. The only returned errors are callback
// encoding failures, which indicate a defective report rather than a
// rendering gap.
//
// File blocks must be intercepted and published before translation; one
// reaching this function is a bug in the composer, not a recoverable case.
func (s *Sender) translate(block report.Block) ([]slackgo.Block, error) {
	switch b := block.(type) {
	case report.MarkdownBlock:
		if b.Text == "" {
			return nil, nil
		}
		text := slackgo.NewTextBlockObject(slackgo.MarkdownType, stringutils.Truncate(b.Text, MaxTextLength), false, false)
		return []slackgo.Block{slackgo.NewSectionBlock(text, nil, nil)}, nil

	case report.DividerBlock:
		return []slackgo.Block{slackgo.NewDividerBlock()}, nil

	case report.HeaderBlock:
		text := slackgo.NewTextBlockObject(slackgo.PlainTextType, stringutils.Truncate(b.Text, MaxHeaderLength), false, false)
		return []slackgo.Block{slackgo.NewHeaderBlock(text)}, nil

	case report.ListBlock:
		return s.translate(b.ToMarkdown())

	case report.TableBlock:
		return s.translate(b.ToMarkdown())

	case report.CallbackBlock:
		return s.actionBlock(b)

	case report.FileBlock:
		panic("sender: translate called on a file block; files must be published first")

	default:
		slog.Error("slack: cannot translate block", "type", fmt.Sprintf("%T", block))
		return nil, nil
	}
}

// actionBlock renders one button per choice, in choice order. Button i gets
// action ID "trigger_playbook_<i>", so the backend's reported action ID maps
// back to the originating choice by index.
func (s *Sender) actionBlock(b report.CallbackBlock) ([]slackgo.Block, error) {
	if len(b.Choices) == 0 {
		return nil, nil
	}

	buttons := make([]slackgo.BlockElement, 0, len(b.Choices))
	for i, choice := range b.Choices {
		token, err := s.encoder.Encode(choice.Ref, b.Context)
		if err != nil {
			return nil, fmt.Errorf("encode callback for choice %q: %w", choice.Label, err)
		}
		label := slackgo.NewTextBlockObject(slackgo.PlainTextType, choice.Label, false, false)
		button := slackgo.NewButtonBlockElement(
			fmt.Sprintf("%s_%d", actionTriggerPlaybook, i),
			token,
			label,
		).WithStyle(slackgo.StylePrimary)
		buttons = append(buttons, button)
	}

	return []slackgo.Block{slackgo.NewActionBlock("", buttons...)}, nil
}
