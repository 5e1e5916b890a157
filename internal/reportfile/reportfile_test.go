package reportfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/harborbot/harborbot/internal/playbook"
	"github.com/harborbot/harborbot/internal/report"
)

func writeReportFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "report.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParse_FullReport(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "trace.txt"), []byte("stack"), 0o600); err != nil {
		t.Fatal(err)
	}
	path := writeReportFile(t, dir, `
title: Build failed
channel: "#ci"
mentions: [U1, U2]
allowUnfurl: true
schedule: "0 9 * * *"
blocks:
  - type: header
    text: Failure summary
  - type: markdown
    text: the build broke
  - type: divider
  - type: file
    path: trace.txt
  - type: list
    items: [one, two]
  - type: table
    headers: [k, v]
    rows: [[a, "1"]]
attachments:
  - type: markdown
    text: context
`)

	def, err := Parse(path, playbook.NewRegistry())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r := def.Report
	if r.Title != "Build failed" || r.Channel != "#ci" || !r.AllowUnfurl {
		t.Errorf("unexpected report head: %+v", r)
	}
	if def.Schedule != "0 9 * * *" {
		t.Errorf("schedule = %q", def.Schedule)
	}
	if len(r.Mentions) != 2 {
		t.Errorf("mentions = %v", r.Mentions)
	}
	if len(r.Blocks) != 6 {
		t.Fatalf("expected 6 blocks, got %d", len(r.Blocks))
	}
	fb, ok := r.Blocks[3].(report.FileBlock)
	if !ok {
		t.Fatalf("expected file block, got %T", r.Blocks[3])
	}
	if fb.Filename != "trace.txt" || string(fb.Contents) != "stack" {
		t.Errorf("unexpected file block: %+v", fb)
	}
	if len(r.AttachmentBlocks) != 1 {
		t.Errorf("attachments = %d", len(r.AttachmentBlocks))
	}
}

func TestParse_CallbackChoicesResolve(t *testing.T) {
	reg := playbook.NewRegistry()
	reg.Register("restart_pod", "v1", func(_ context.Context, _ map[string]any) error { return nil })

	dir := t.TempDir()
	path := writeReportFile(t, dir, `
channel: "#ops"
blocks:
  - type: callback
    context: {pod: nginx-1}
    choices:
      - label: Restart
        playbook: restart_pod
`)

	def, err := Parse(path, reg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cb, ok := def.Report.Blocks[0].(report.CallbackBlock)
	if !ok {
		t.Fatalf("expected callback block, got %T", def.Report.Blocks[0])
	}
	if len(cb.Choices) != 1 || cb.Choices[0].Label != "Restart" {
		t.Errorf("choices = %+v", cb.Choices)
	}
	if !reg.IsRegistered(cb.Choices[0].Ref) {
		t.Error("parsed ref should resolve in the registry")
	}
	if cb.Context["pod"] != "nginx-1" {
		t.Errorf("context = %v", cb.Context)
	}
}

func TestParse_UnregisteredPlaybookFailsFast(t *testing.T) {
	dir := t.TempDir()
	path := writeReportFile(t, dir, `
channel: "#ops"
blocks:
  - type: callback
    choices:
      - label: Restart
        playbook: ghost
`)

	_, err := Parse(path, playbook.NewRegistry())
	if !errors.Is(err, playbook.ErrUnregisteredCallback) {
		t.Fatalf("expected ErrUnregisteredCallback, got %v", err)
	}
}

func TestParse_UnknownBlockType(t *testing.T) {
	dir := t.TempDir()
	path := writeReportFile(t, dir, `
blocks:
  - type: hologram
`)
	if _, err := Parse(path, playbook.NewRegistry()); err == nil {
		t.Fatal("expected error for unknown block type")
	}
}

func TestParse_MissingFileBlockPath(t *testing.T) {
	dir := t.TempDir()
	path := writeReportFile(t, dir, `
blocks:
  - type: file
    path: does-not-exist.bin
`)
	if _, err := Parse(path, playbook.NewRegistry()); err == nil {
		t.Fatal("expected error for missing file")
	}
}
