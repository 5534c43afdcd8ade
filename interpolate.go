package piirto

// LineInterpolator returns a function interpolating linearly from value v0 at
// time t0 to value v1 at time t1, clamped to stay between the two values.
// When the times coincide the function is constant v1, so the newer value
// wins.
func LineInterpolator(t0, t1 float64, v0, v1 float32) func(time float64) float32 {
	if t0 == t1 {
		return func(float64) float32 { return v1 }
	}
	lo, hi := min(v0, v1), max(v0, v1)
	return func(time float64) float32 {
		value := v0 + float32((time-t0)/(t1-t0))*(v1-v0)
		return min(max(value, lo), hi)
	}
}
