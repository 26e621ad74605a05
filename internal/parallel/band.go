// Package parallel provides row-band parallel filling infrastructure.
//
// A frame is split into horizontal bands of whole rows. Bands never overlap,
// so workers can write their rows of the shared pixel slice without locking.
//
//   - SplitRows computes the band layout for a frame height
//   - WorkerPool runs one closure per band and waits for all of them
package parallel

// MinBandRows is the smallest band SplitRows produces when a frame has
// enough rows. Smaller bands cost more in scheduling than they save.
const MinBandRows = 16

// Band is a half-open range of rows [Y0, Y1).
type Band struct {
	Y0, Y1 int
}

// Rows returns the number of rows in the band.
func (b Band) Rows() int {
	return b.Y1 - b.Y0
}

// SplitRows divides height rows into at most parts contiguous bands in
// top-down order. Bands are at least MinBandRows tall, except when the whole
// frame is shorter than that, and differ in height by at most one row.
// Returns nil if height <= 0.
func SplitRows(height, parts int) []Band {
	if height <= 0 {
		return nil
	}
	if parts < 1 {
		parts = 1
	}
	if maxParts := height / MinBandRows; parts > maxParts {
		parts = max(maxParts, 1)
	}

	bands := make([]Band, parts)
	base, extra := height/parts, height%parts
	y := 0
	for i := range bands {
		rows := base
		if i < extra {
			rows++
		}
		bands[i] = Band{Y0: y, Y1: y + rows}
		y += rows
	}
	return bands
}
