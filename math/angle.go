package math

import (
	m "math"

	ms "cargeo.dev/cargeo/settings"
)

// AtanDegrees returns atan(num/den) in degrees. A zero den is not guarded:
// the result follows IEEE rules (±90 or NaN).
func AtanDegrees(num, den float64) float64 {
	return m.Atan(num/den) * ms.TO_DEGREES
}

func Average(a, b float64) float64 {
	return 0.5 * (a + b)
}

// Finite reports whether val is neither NaN nor an infinity.
func Finite(val float64) bool {
	return !m.IsNaN(val) && !m.IsInf(val, 0)
}
