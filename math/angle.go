package math

import "github.com/chewxy/math32"

// Radians converts degrees to radians.
func Radians(deg float32) float32 {
	return deg * math32.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(rad float32) float32 {
	return rad * 180 / math32.Pi
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// WrapDegrees maps an angle into [-180, 180).
func WrapDegrees(deg float32) float32 {
	deg = math32.Mod(deg+180, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg -= 360
	}
	return deg - 180
}

// WrapRadians maps an angle into [-Pi, Pi).
func WrapRadians(rad float32) float32 {
	rad = math32.Mod(rad+math32.Pi, 2*math32.Pi)
	if rad < 0 {
		rad += 2 * math32.Pi
	}
	if rad >= 2*math32.Pi {
		rad -= 2 * math32.Pi
	}
	return rad - math32.Pi
}
