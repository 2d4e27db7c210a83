package render

import (
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"os"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// Tile is one labelled KPI value.
type Tile struct {
	Label string
	Value string
}

const (
	tileGap        = 16.0
	tileRadius     = 12.0
	tileLabelSize  = 16
	tileValueSize  = 34
	tileStripInset = 20.0
)

var (
	tileBgColor     = color.RGBA{R: 245, G: 247, B: 250, A: 255}
	tileFillColor   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	tileBorderColor = color.RGBA{R: 203, G: 213, B: 225, A: 255}
	tileLabelColor  = color.RGBA{R: 100, G: 116, B: 139, A: 255}
	tileValueColor  = color.RGBA{R: 30, G: 41, B: 59, A: 255}
)

// fontCandidates are tried in order; the built-in bitmap face is used when none loads.
var fontCandidates = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/TTF/DejaVuSans-Bold.ttf",
	"/System/Library/Fonts/Supplemental/Arial Bold.ttf",
}

// KPITiles draws a horizontal strip of KPI tiles.
func KPITiles(w io.Writer, tiles []Tile, opts Options) error {
	if len(tiles) == 0 {
		return ErrNoData
	}
	opts = opts.normalized()

	width := float64(opts.Width)
	height := float64(opts.Height) / 2.5
	n := float64(len(tiles))
	tileW := (width - 2*tileStripInset - (n-1)*tileGap) / n
	tileH := height - 2*tileStripInset

	dc := gg.NewContext(int(width), int(height))
	dc.SetColor(tileBgColor)
	dc.Clear()

	fontPath := findFont()
	for i, t := range tiles {
		x := tileStripInset + float64(i)*(tileW+tileGap)
		y := tileStripInset

		dc.SetColor(tileFillColor)
		dc.DrawRoundedRectangle(x, y, tileW, tileH, tileRadius)
		dc.Fill()
		dc.SetColor(tileBorderColor)
		dc.SetLineWidth(1)
		dc.DrawRoundedRectangle(x, y, tileW, tileH, tileRadius)
		dc.Stroke()

		setFace(dc, fontPath, tileLabelSize)
		dc.SetColor(tileLabelColor)
		dc.DrawStringAnchored(t.Label, x+tileW/2, y+tileH*0.3, 0.5, 0.5)

		setFace(dc, fontPath, tileValueSize)
		dc.SetColor(tileValueColor)
		dc.DrawStringAnchored(t.Value, x+tileW/2, y+tileH*0.65, 0.5, 0.5)
	}

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode kpi tiles: %w", err)
	}
	return nil
}

func findFont() string {
	for _, path := range fontCandidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func setFace(dc *gg.Context, path string, size float64) {
	if path == "" {
		dc.SetFontFace(basicfont.Face7x13)
		return
	}
	if err := dc.LoadFontFace(path, size); err != nil {
		slog.Warn("[Render] Failed to load font, using built-in face", "path", path, "error", err)
		dc.SetFontFace(basicfont.Face7x13)
	}
}
