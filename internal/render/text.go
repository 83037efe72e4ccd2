package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"lifeboard/internal/sim"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "
)

// TextRenderer writes frames as plain text, two characters per cell.
type TextRenderer struct {
	w io.Writer
}

// NewTextRenderer returns a renderer writing to w.
func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{w: w}
}

// Render writes the status line followed by the board and a trailing blank
// line. Write errors are sticky in the buffer and reported by Flush.
func (r *TextRenderer) Render(f sim.Frame) error {
	bw := bufio.NewWriter(r.w)
	fmt.Fprintf(bw, "%s | Gen: %d/%d | Living: %d\n",
		strings.ReplaceAll(f.Status, "\n", " - "), f.Generation, f.Epochs, f.Population)
	for y := 0; y < f.Size.H; y++ {
		for x := 0; x < f.Size.W; x++ {
			if f.Alive(x, y) {
				bw.WriteString(gridPosBlock)
			} else {
				bw.WriteString(gridPosEmpty)
			}
		}
		bw.WriteByte('\n')
	}
	bw.WriteByte('\n')
	return bw.Flush()
}
