package camera

import "github.com/chewxy/math32"

const (
	ZoomStep     = 0.1 // fraction of the distance per wheel notch
	MinDistance  = 1.5
	MaxDistance  = 60
	MaxElevation = 1.5 // radians; keeps the camera off the poles
)

// Orbit moves pos around target by yaw/pitch radians and zooms by wheel notches, keeping the
// distance within [MinDistance, MaxDistance] and the elevation within ±MaxElevation.
// A pos equal to target is treated as MinDistance away along +X.
func Orbit(pos, target [3]float32, yaw, pitch, zoom float32) [3]float32 {
	dx, dy, dz := pos[0]-target[0], pos[1]-target[1], pos[2]-target[2]
	dist := math32.Sqrt(dx*dx + dy*dy + dz*dz)
	if dist == 0 {
		dist = MinDistance
	}
	azimuth := math32.Atan2(dz, dx) + yaw
	elevation := math32.Asin(dy/dist) + pitch
	elevation = math32.Max(-MaxElevation, math32.Min(MaxElevation, elevation))
	dist *= 1 - zoom*ZoomStep
	dist = math32.Max(MinDistance, math32.Min(MaxDistance, dist))

	horiz := dist * math32.Cos(elevation)
	return [3]float32{
		target[0] + horiz*math32.Cos(azimuth),
		target[1] + dist*math32.Sin(elevation),
		target[2] + horiz*math32.Sin(azimuth),
	}
}
