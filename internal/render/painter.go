//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads binary cell data into a one-pixel-per-cell image and
// draws it scaled to the board's cell size, with grid lines on top.
type GridPainter struct {
	w, h  int
	img   *ebiten.Image
	pixel *ebiten.Image
	buf   []byte

	On, Off, Line color.Color
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{
		w:    w,
		h:    h,
		buf:  make([]byte, 4*w*h),
		On:   AliveColor,
		Off:  DeadColor,
		Line: LineColor,
	}
	gp.img = ebiten.NewImage(w, h)
	gp.pixel = ebiten.NewImage(1, 1)
	gp.pixel.Fill(color.White)
	return gp
}

// Blit draws cells with the board's top-left corner at (ox, oy) and each
// cell covering cellW x cellH pixels.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, ox, oy, cellW, cellH int) {
	if len(cells) != gp.w*gp.h || cellW <= 0 || cellH <= 0 {
		return
	}
	fillBinaryRGBA(gp.buf, cells, gp.On, gp.Off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(cellW), float64(cellH))
	op.GeoM.Translate(float64(ox), float64(oy))
	dst.DrawImage(gp.img, op)

	if cellW < 3 || cellH < 3 {
		return
	}
	boardW := gp.w * cellW
	boardH := gp.h * cellH
	for x := 0; x <= gp.w; x++ {
		gp.rect(dst, ox+x*cellW, oy, 1, boardH)
	}
	for y := 0; y <= gp.h; y++ {
		gp.rect(dst, ox, oy+y*cellH, boardW, 1)
	}
}

func (gp *GridPainter) rect(dst *ebiten.Image, x, y, w, h int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(gp.Line)
	dst.DrawImage(gp.pixel, op)
}
