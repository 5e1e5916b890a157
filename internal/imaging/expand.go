// Package imaging pairs vector image files with raster renderings so chat
// backends that cannot preview SVG still display something useful.
package imaging

import (
	"log/slog"
	"strings"

	"github.com/harborbot/harborbot/internal/report"
)

// Rasterizer renders SVG bytes to PNG. The conversion itself lives outside
// this package; callers inject an implementation.
type Rasterizer interface {
	RenderPNG(svg []byte) ([]byte, error)
}

// Expander inserts a PNG counterpart after every SVG file block.
type Expander struct {
	rasterizer Rasterizer
}

// NewExpander returns an Expander. A nil rasterizer yields a pass-through
// expander that never pairs anything.
func NewExpander(r Rasterizer) *Expander {
	return &Expander{rasterizer: r}
}

// Expand returns the file blocks with a rendered .png sibling inserted
// directly after each .svg block. Order of the input blocks is preserved.
// A failed rendering leaves that SVG unpaired and is logged, never fatal.
func (e *Expander) Expand(blocks []report.FileBlock) []report.FileBlock {
	out := make([]report.FileBlock, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, b)
		if e.rasterizer == nil || !strings.HasSuffix(strings.ToLower(b.Filename), ".svg") {
			continue
		}
		png, err := e.rasterizer.RenderPNG(b.Contents)
		if err != nil {
			slog.Error("imaging: svg rendering failed", "filename", b.Filename, "err", err)
			continue
		}
		out = append(out, report.FileBlock{
			Filename: b.Filename[:len(b.Filename)-len(".svg")] + ".png",
			Contents: png,
		})
	}
	return out
}
