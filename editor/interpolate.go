package editor

// interpolator returns the line through (t0,v0) and (t1,v1) as a function of
// time, for filling the samples a fast pointer movement skipped over. The
// result is clamped to the endpoint values: the query time may fall slightly
// outside [t0,t1] when sample instants align poorly, and the segment must
// never extrapolate. A zero-width segment evaluates to v1 everywhere.
func interpolator(t0, t1 float64, v0, v1 float32) func(time float64) float32 {
	lo, hi := min(v0, v1), max(v0, v1)
	return func(time float64) float32 {
		if t0 == t1 {
			return v1
		}
		gradient := float64(v1-v0) / (t1 - t0)
		value := float32(gradient*(time-t0)) + v0
		return min(max(value, lo), hi)
	}
}
