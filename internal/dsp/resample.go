// Package dsp implements the resampling math used by the pitch shifter.
package dsp

// Resample reads the input at factor times the normal rate using linear
// interpolation and returns the resulting samples. The output length is
// floor(len(samples) / factor): a factor above 1.0 consumes the input
// faster and raises the perceived pitch, a factor below 1.0 stretches it
// and lowers the pitch, and a factor of exactly 1.0 reproduces the input
// unchanged.
//
// Source positions past the end of the input read as silence, so the tail
// of a stretched output decays to zero instead of faulting. The function
// never fails; a non-positive factor or an empty input yields an empty
// output.
func Resample(samples []float32, factor float32) []float32 {
	if len(samples) == 0 || factor <= 0 {
		return nil
	}

	outLen := int(float32(len(samples)) / factor)
	out := make([]float32, outLen)

	for i := 0; i < outLen; i++ {
		pos := float32(i) * factor
		idx := int(pos)
		frac := pos - float32(idx)

		var s1, s2 float32
		if idx < len(samples) {
			s1 = samples[idx]
		}
		if idx+1 < len(samples) {
			s2 = samples[idx+1]
		}

		out[i] = s1 + frac*(s2-s1)
	}

	return out
}
