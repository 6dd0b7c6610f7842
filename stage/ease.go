package stage

import "math"

// inOutSine eases x in [0, 1]
func inOutSine(x float64) float64 {
	return -(math.Cos(math.Pi*x) - 1) / 2
}

// yoyo maps elapsed time onto an eased 0→1→0 loop where each leg lasts leg seconds
func yoyo(elapsed, leg float64) float64 {
	if leg <= 0 || elapsed <= 0 {
		return 0
	}
	p := math.Mod(elapsed, 2*leg) / leg
	if p > 1 {
		p = 2 - p
	}
	return inOutSine(p)
}
