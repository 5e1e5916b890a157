// Package reportfile parses YAML report definitions into report documents.
//
// A report file describes one report: title, delivery channel, blocks, and
// optionally a cron schedule the daemon uses to dispatch it repeatedly.
package reportfile

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/harborbot/harborbot/internal/playbook"
	"github.com/harborbot/harborbot/internal/report"
)

// Definition is the parsed form of one report file.
type Definition struct {
	Report report.Report

	// Schedule is the file's cron expression, empty for one-off reports.
	Schedule string
}

type fileSpec struct {
	Title       string      `yaml:"title"`
	HideTitle   bool        `yaml:"hideTitle"`
	Channel     string      `yaml:"channel"`
	Mentions    []string    `yaml:"mentions"`
	AllowUnfurl bool        `yaml:"allowUnfurl"`
	Schedule    string      `yaml:"schedule"`
	Blocks      []blockSpec `yaml:"blocks"`
	Attachments []blockSpec `yaml:"attachments"`
}

type blockSpec struct {
	Type     string         `yaml:"type"`
	Text     string         `yaml:"text"`
	Filename string         `yaml:"filename"`
	Path     string         `yaml:"path"`
	Items    []string       `yaml:"items"`
	Headers  []string       `yaml:"headers"`
	Rows     [][]string     `yaml:"rows"`
	Context  map[string]any `yaml:"context"`
	Choices  []choiceSpec   `yaml:"choices"`
}

type choiceSpec struct {
	Label    string `yaml:"label"`
	Playbook string `yaml:"playbook"`
	Version  string `yaml:"version"`
}

// Parse reads the report file at path. File block paths resolve relative to
// the report file's directory. Callback choices must name playbooks already
// registered in reg; unknown names fail parsing rather than dispatch.
func Parse(path string, reg *playbook.Registry) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report file %s: %w", path, err)
	}

	var spec fileSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parse report file %s: %w", path, err)
	}

	baseDir := filepath.Dir(path)
	blocks, err := buildBlocks(spec.Blocks, baseDir, reg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	attachments, err := buildBlocks(spec.Attachments, baseDir, reg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &Definition{
		Report: report.Report{
			Title:            spec.Title,
			HideTitle:        spec.HideTitle,
			Blocks:           blocks,
			AttachmentBlocks: attachments,
			Channel:          spec.Channel,
			Mentions:         spec.Mentions,
			AllowUnfurl:      spec.AllowUnfurl,
		},
		Schedule: spec.Schedule,
	}, nil
}

func buildBlocks(specs []blockSpec, baseDir string, reg *playbook.Registry) ([]report.Block, error) {
	var blocks []report.Block
	for i, bs := range specs {
		b, err := buildBlock(bs, baseDir, reg)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}
		blocks = append(blocks, b)
	}
	return blocks, nil
}

func buildBlock(bs blockSpec, baseDir string, reg *playbook.Registry) (report.Block, error) {
	switch bs.Type {
	case "markdown":
		return report.MarkdownBlock{Text: bs.Text}, nil

	case "divider":
		return report.DividerBlock{}, nil

	case "header":
		return report.HeaderBlock{Text: bs.Text}, nil

	case "file":
		p := bs.Path
		if !filepath.IsAbs(p) {
			p = filepath.Join(baseDir, p)
		}
		contents, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read file block %s: %w", p, err)
		}
		name := bs.Filename
		if name == "" {
			name = filepath.Base(p)
		}
		return report.FileBlock{Filename: name, Contents: contents}, nil

	case "list":
		return report.ListBlock{Items: bs.Items}, nil

	case "table":
		return report.TableBlock{Headers: bs.Headers, Rows: bs.Rows}, nil

	case "callback":
		choices := make([]report.Choice, 0, len(bs.Choices))
		for _, cs := range bs.Choices {
			version := cs.Version
			if version == "" {
				version = "v1"
			}
			ref := playbook.NewRef(cs.Playbook, version)
			if reg == nil || !reg.IsRegistered(ref) {
				return nil, fmt.Errorf("choice %q: %w: %s@%s",
					cs.Label, playbook.ErrUnregisteredCallback, cs.Playbook, version)
			}
			choices = append(choices, report.Choice{Label: cs.Label, Ref: ref})
		}
		return report.CallbackBlock{Choices: choices, Context: bs.Context}, nil

	default:
		return nil, fmt.Errorf("unknown block type %q", bs.Type)
	}
}
