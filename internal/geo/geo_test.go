package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	points := []Point{
		{0, 0}, {10, 10}, {40, 10}, {41, 10}, {3, 4}, {99.5, 0.25}, {-2, 7},
	}

	t.Run("symmetric", func(t *testing.T) {
		for _, a := range points {
			for _, b := range points {
				assert.Equal(t, Distance(a, b), Distance(b, a))
			}
		}
	})

	t.Run("zero to itself", func(t *testing.T) {
		for _, p := range points {
			assert.Zero(t, Distance(p, p))
		}
	})

	t.Run("pythagorean", func(t *testing.T) {
		assert.InDelta(t, 5.0, Distance(Point{0, 0}, Point{3, 4}), 1e-12)
	})
}

func TestWithin(t *testing.T) {
	user := Point{10, 10}

	assert.True(t, Within(user, Point{10, 10}, 30))
	assert.True(t, Within(user, Point{40, 10}, 30), "boundary is inclusive")
	assert.False(t, Within(user, Point{41, 10}, 30))
}
