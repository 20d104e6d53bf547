package wavedraw

type (
	// Envelope is a time-varying amplitude multiplier applied on top of the
	// raw samples when a track is rendered. A nil Envelope means a constant
	// scale of 1.
	Envelope interface {
		ValueAt(time float64) float64
	}

	// EnvelopePoint is one control point of a PointEnvelope.
	EnvelopePoint struct {
		Time  float64
		Value float64
	}

	// PointEnvelope interpolates linearly between control points, holding the
	// first value before the first point and the last value after the last
	// point. Points must be sorted by time.
	PointEnvelope []EnvelopePoint
)

func (e PointEnvelope) ValueAt(time float64) float64 {
	if len(e) == 0 {
		return 1
	}
	if time <= e[0].Time {
		return e[0].Value
	}
	for i := 1; i < len(e); i++ {
		if time < e[i].Time {
			span := e[i].Time - e[i-1].Time
			if span <= 0 {
				return e[i].Value
			}
			frac := (time - e[i-1].Time) / span
			return e[i-1].Value + frac*(e[i].Value-e[i-1].Value)
		}
	}
	return e[len(e)-1].Value
}
