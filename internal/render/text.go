package render

import (
	"bufio"
	"io"

	"rockfall/internal/core"
)

// Glyphs used by WriteText for each cell value; larger values print '?'.
var Glyphs = []byte{'.', '#', '@'}

// WriteText draws g as rows of glyphs between walls, top row first. With
// floor set a closing floor line is appended.
func WriteText(w io.Writer, g *core.ByteGrid, floor bool) error {
	bw := bufio.NewWriter(w)
	line := make([]byte, 0, g.W+3)
	for y := 0; y < g.H; y++ {
		line = append(line[:0], '|')
		for x := 0; x < g.W; x++ {
			c := g.At(x, y)
			if int(c) < len(Glyphs) {
				line = append(line, Glyphs[c])
			} else {
				line = append(line, '?')
			}
		}
		line = append(line, '|', '\n')
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	if floor {
		line = append(line[:0], '+')
		for x := 0; x < g.W; x++ {
			line = append(line, '-')
		}
		line = append(line, '+', '\n')
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}
