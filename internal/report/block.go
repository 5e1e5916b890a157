// Package report defines the platform-neutral report document: a title plus
// ordered, typed content blocks that senders translate into a chat backend's
// wire format.
package report

import (
	"strings"

	"github.com/harborbot/harborbot/internal/playbook"
)

// Block is one typed unit of report content. The variant set is closed:
// exactly the block types in this package implement it, and senders
// type-switch over them exhaustively.
type Block interface {
	isBlock()
}

// MarkdownBlock is a free-form markdown paragraph.
type MarkdownBlock struct {
	Text string
}

// DividerBlock is a horizontal separator.
type DividerBlock struct{}

// HeaderBlock is a short title-style line.
type HeaderBlock struct {
	Text string
}

// FileBlock carries binary file content to be uploaded out-of-band and
// referenced from the message text. It never renders inline.
type FileBlock struct {
	Filename string
	Contents []byte
}

// ListBlock is a bulleted list. It renders through its markdown form.
type ListBlock struct {
	Items []string
}

// TableBlock is a head-and-rows table. It renders through its markdown form.
type TableBlock struct {
	Headers []string
	Rows    [][]string
}

// Choice is one labelled interactive option bound to a registered playbook.
type Choice struct {
	Label string
	Ref   playbook.Ref
}

// CallbackBlock renders a row of buttons, one per choice, each carrying an
// encoded callback token. Choice order is significant: buttons are emitted
// left-to-right in slice order.
type CallbackBlock struct {
	Choices []Choice
	Context map[string]any
}

func (MarkdownBlock) isBlock() {}
func (DividerBlock) isBlock()  {}
func (HeaderBlock) isBlock()   {}
func (FileBlock) isBlock()     {}
func (ListBlock) isBlock()     {}
func (TableBlock) isBlock()    {}
func (CallbackBlock) isBlock() {}

// ToMarkdown renders the list as one markdown bullet per item.
func (b ListBlock) ToMarkdown() MarkdownBlock {
	lines := make([]string, 0, len(b.Items))
	for _, item := range b.Items {
		lines = append(lines, "* "+item)
	}
	return MarkdownBlock{Text: strings.Join(lines, "\n")}
}

// ToMarkdown renders the table as pipe-separated rows, header first.
func (b TableBlock) ToMarkdown() MarkdownBlock {
	lines := make([]string, 0, len(b.Rows)+1)
	if len(b.Headers) > 0 {
		lines = append(lines, strings.Join(b.Headers, " | "))
	}
	for _, row := range b.Rows {
		lines = append(lines, strings.Join(row, " | "))
	}
	return MarkdownBlock{Text: strings.Join(lines, "\n")}
}
