package trajectory_test

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/lynxnot/p5-fourier/geom"
	"github.com/lynxnot/p5-fourier/trajectory"
)

func collect(buf *trajectory.Buffer) []geom.Point {
	var points []geom.Point
	for p := range buf.Points() {
		points = append(points, p)
	}
	return points
}

func TestNewBufferRejectsInvalidCapacity(t *testing.T) {
	_, err := trajectory.NewBuffer(0)
	assert.Error(t, err, "capacity must be greater than 0")

	_, err = trajectory.NewBuffer(-8)
	assert.Error(t, err, "capacity must be greater than 0")
}

func TestPushBoundedFIFO(t *testing.T) {
	buf, err := trajectory.NewBuffer(4)
	assert.NilError(t, err)

	for i := 1; i <= 6; i++ {
		buf.Push(geom.Point{X: float64(i)})
		assert.Assert(t, buf.Len() <= buf.Cap(), "length exceeded capacity after push %d", i)
	}

	// Oldest two points (1 and 2) evicted, newest first
	expected := []geom.Point{{X: 6}, {X: 5}, {X: 4}, {X: 3}}
	assert.DeepEqual(t, expected, collect(buf))
}

func TestPushBelowCapacity(t *testing.T) {
	buf, err := trajectory.NewBuffer(8)
	assert.NilError(t, err)

	buf.Push(geom.Point{X: 1, Y: 10})
	buf.Push(geom.Point{X: 2, Y: 20})

	assert.Equal(t, 2, buf.Len())
	assert.DeepEqual(t, []geom.Point{{X: 2, Y: 20}, {X: 1, Y: 10}}, collect(buf))
}

func TestClearEmptiesBuffer(t *testing.T) {
	buf, err := trajectory.NewBuffer(4)
	assert.NilError(t, err)

	for i := 0; i < 10; i++ {
		buf.Push(geom.Point{X: float64(i)})
	}
	buf.Clear()

	assert.Equal(t, 0, buf.Len())
	assert.Assert(t, collect(buf) == nil, "cleared buffer yielded points")
}

func TestPointsRestartable(t *testing.T) {
	buf, err := trajectory.NewBuffer(4)
	assert.NilError(t, err)

	buf.Push(geom.Point{X: 1})
	buf.Push(geom.Point{X: 2})

	first := collect(buf)
	second := collect(buf)
	assert.DeepEqual(t, first, second)
}

func TestPointsEarlyStop(t *testing.T) {
	buf, err := trajectory.NewBuffer(8)
	assert.NilError(t, err)

	for i := 0; i < 8; i++ {
		buf.Push(geom.Point{X: float64(i)})
	}

	count := 0
	for range buf.Points() {
		count++
		if count == 3 {
			break
		}
	}
	assert.Equal(t, 3, count)
}

func TestSamplesPairIndexWithVertical(t *testing.T) {
	buf, err := trajectory.NewBuffer(4)
	assert.NilError(t, err)

	buf.Push(geom.Point{X: 100, Y: 1.5})
	buf.Push(geom.Point{X: 200, Y: -2.5})

	var indices []int
	var values []float64
	for i, y := range buf.Samples() {
		indices = append(indices, i)
		values = append(values, y)
	}

	assert.DeepEqual(t, []int{0, 1}, indices)
	assert.DeepEqual(t, []float64{-2.5, 1.5}, values)
}
