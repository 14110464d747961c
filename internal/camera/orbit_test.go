package camera

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func distance(a, b [3]float32) float32 {
	dx, dy, dz := a[0]-b[0], a[1]-b[1], a[2]-b[2]
	return math32.Sqrt(dx*dx + dy*dy + dz*dz)
}

func elevation(pos, target [3]float32) float32 {
	return math32.Asin((pos[1] - target[1]) / distance(pos, target))
}

func TestOrbitKeepsPoseWithoutInput(t *testing.T) {
	pos := [3]float32{-8, 2, -3}
	got := Orbit(pos, [3]float32{}, 0, 0, 0)
	for i := range pos {
		assert.InDelta(t, pos[i], got[i], 1e-4)
	}
}

func TestOrbitYawKeepsDistanceAndHeight(t *testing.T) {
	pos := [3]float32{5, 1, 0}
	got := Orbit(pos, [3]float32{}, math32.Pi/2, 0, 0)
	assert.InDelta(t, distance(pos, [3]float32{}), distance(got, [3]float32{}), 1e-4)
	assert.InDelta(t, 1, got[1], 1e-4)
	assert.InDelta(t, 0, got[0], 1e-3)
}

func TestOrbitClampsDistance(t *testing.T) {
	target := [3]float32{1, 0, 1}
	tests := []struct {
		name string
		pos  [3]float32
		zoom float32
		want float32
	}{
		{"zoom in stops at minimum", [3]float32{3, 0, 1}, 9, MinDistance},
		{"zoom out stops at maximum", [3]float32{51, 0, 1}, -5, MaxDistance},
		{"one notch in", [3]float32{11, 0, 1}, 1, 9},
		{"pos on target", target, 0, MinDistance},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Orbit(tt.pos, target, 0, 0, tt.zoom)
			assert.InDelta(t, tt.want, distance(got, target), 1e-3)
		})
	}
}

func TestOrbitClampsElevation(t *testing.T) {
	target := [3]float32{}
	pos := [3]float32{10, 0, 0}
	tests := []struct {
		name  string
		pitch float32
		want  float32
	}{
		{"up to the limit", 5, MaxElevation},
		{"down to the limit", -5, -MaxElevation},
		{"within range", 0.5, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Orbit(pos, target, 0, tt.pitch, 0)
			assert.InDelta(t, tt.want, elevation(got, target), 1e-3)
			assert.InDelta(t, 10, distance(got, target), 1e-3)
		})
	}
}
