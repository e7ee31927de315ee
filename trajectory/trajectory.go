// Package trajectory holds the bounded history of pencil-tip positions
// traced by the epicycle chain.
package trajectory

import (
	"errors"
	"iter"

	"github.com/lynxnot/p5-fourier/geom"
)

// DefaultCapacity is the trace length used when none is configured.
// Shorter traces (256) work too; longer ones fade more slowly.
const DefaultCapacity = 512

// Buffer is a fixed-capacity FIFO history of traced points, newest first.
// Pushing onto a full buffer evicts the oldest point.
type Buffer struct {
	data []geom.Point
	head int // next write position
	size int
}

// NewBuffer returns a Buffer holding at most capacity points.
func NewBuffer(capacity int) (*Buffer, error) {
	if capacity <= 0 {
		return nil, errors.New("capacity must be greater than 0")
	}
	return &Buffer{data: make([]geom.Point, capacity)}, nil
}

// Push inserts p as the newest point.
func (b *Buffer) Push(p geom.Point) {
	b.data[b.head] = p
	b.head = (b.head + 1) % len(b.data)
	if b.size < len(b.data) {
		b.size++
	}
}

// Clear empties the buffer. Called whenever the traced waveform changes,
// so traces of two waveforms never mix.
func (b *Buffer) Clear() {
	b.head = 0
	b.size = 0
}

// Len returns the number of buffered points.
func (b *Buffer) Len() int {
	return b.size
}

// Cap returns the configured capacity.
func (b *Buffer) Cap() int {
	return len(b.data)
}

// Points returns a restartable newest-first sequence of the buffered
// points, used to draw the 2D traced path. The sequence reads the buffer
// in place; do not Push or Clear while ranging.
func (b *Buffer) Points() iter.Seq[geom.Point] {
	return func(yield func(geom.Point) bool) {
		for i := 0; i < b.size; i++ {
			idx := (b.head - 1 - i + len(b.data)) % len(b.data)
			if !yield(b.data[idx]) {
				return
			}
		}
	}
}

// Samples returns the 1D waveform view of the trace: the sample index
// (0 = newest) paired with the vertical coordinate of the point at that
// index. Plotting index against value reconstructs the time-domain
// waveform from the polar epicycle motion.
func (b *Buffer) Samples() iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		i := 0
		for p := range b.Points() {
			if !yield(i, p.Y) {
				return
			}
			i++
		}
	}
}
