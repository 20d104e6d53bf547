package editor

// Smoothing replaces the samples under a brush with a mixture of the
// original samples and a triangular-kernel weighted average. The kernel
// radius sets how wide the averaging window is; the brush radius sets how
// many samples around the clicked one are touched. The mix is itself
// triangular: smoothingProportionMax of the averaged value at the brush
// center, falling off linearly to smoothingProportionMin at the brush edge.
const (
	smoothingKernelRadius  = 3
	smoothingBrushRadius   = 5
	smoothingProportionMax = 0.7
	smoothingProportionMin = 0.0
)

// smoothRegion computes the brush output from a sample region of width
// 1+2*(kernel+brush) centered on the clicked sample. Only region indices in
// [from, to) hold valid samples; indices outside it contribute nothing to
// the kernel sums, but the normalization constant stays the same, so the
// smoothing fades out near clip edges instead of biasing the amplitude.
func smoothRegion(region []float32, from, to int) []float32 {
	out := make([]float32, 1+2*smoothingBrushRadius)
	for j := -smoothingBrushRadius; j <= smoothingBrushRadius; j++ {
		var sum float32
		for i := -smoothingKernelRadius; i <= smoothingKernelRadius; i++ {
			idx := i + j + smoothingKernelRadius + smoothingBrushRadius
			if idx < from || idx >= to {
				continue
			}
			// A triangular kernel with radius R has total weight (R+1)^2
			// when the edge weight is 1 and the center weight is R+1.
			weight := float32(smoothingKernelRadius + 1 - abs(i))
			sum += weight * region[idx]
		}
		out[j+smoothingBrushRadius] = sum /
			((smoothingKernelRadius + 1) * (smoothingKernelRadius + 1))
	}
	for j := -smoothingBrushRadius; j <= smoothingBrushRadius; j++ {
		prop := float32(smoothingProportionMax -
			float64(abs(j))/smoothingBrushRadius*
				(smoothingProportionMax-smoothingProportionMin))
		orig := region[j+smoothingKernelRadius+smoothingBrushRadius]
		out[j+smoothingBrushRadius] = out[j+smoothingBrushRadius]*prop + orig*(1-prop)
	}
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
