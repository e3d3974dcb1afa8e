package neonpulse

import "math"

func nan() float64 { return math.NaN() }

func abs(f float64) float64 { return math.Abs(f) }

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }
