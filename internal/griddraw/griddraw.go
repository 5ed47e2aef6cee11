// Package griddraw renders a 2-D float64 grid copy to PGM (portable
// graymap) or ASCII-art, for visual inspection of blur/life demos run
// through cmd/zoidsweep. Not part of the library's public surface —
// the core executor never imports this package.
package griddraw

import (
	"fmt"
	"io"
)

// ramp is the 10-level ASCII shading ramp, darkest to lightest, used by
// WriteASCII.
const ramp = " .:-=+*#%@"

// WritePGM encodes a width x height row-major slice of float64
// intensities in [0,255] as a binary (P5) PGM image.
func WritePGM(w io.Writer, data []float64, width, height int) error {
	if len(data) != width*height {
		return fmt.Errorf("griddraw: data length %d != %d*%d", len(data), width, height)
	}
	if _, err := fmt.Fprintf(w, "P5\n%d %d\n255\n", width, height); err != nil {
		return err
	}
	buf := make([]byte, len(data))
	for i, v := range data {
		buf[i] = clampByte(v)
	}
	_, err := w.Write(buf)

	return err
}

// WriteASCII renders the same grid as a coarse ASCII-art ramp, one
// character per cell, for a quick terminal preview.
func WriteASCII(w io.Writer, data []float64, width, height int) error {
	if len(data) != width*height {
		return fmt.Errorf("griddraw: data length %d != %d*%d", len(data), width, height)
	}
	for y := 0; y < height; y++ {
		line := make([]byte, width)
		for x := 0; x < width; x++ {
			v := data[y*width+x]
			idx := int(v / 256 * float64(len(ramp)))
			if idx < 0 {
				idx = 0
			} else if idx >= len(ramp) {
				idx = len(ramp) - 1
			}
			line[x] = ramp[idx]
		}
		if _, err := fmt.Fprintf(w, "%s\n", line); err != nil {
			return err
		}
	}

	return nil
}

func clampByte(v float64) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}

	return byte(v)
}
