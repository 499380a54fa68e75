// Package pipeline connects the capture and playback callbacks through the
// shared frame buffer and the pitch control.
package pipeline

import (
	"github.com/karitora/pitchvox/internal/dsp"
	"github.com/karitora/pitchvox/internal/frame"
	"github.com/karitora/pitchvox/internal/pitch"
)

// Pipeline owns the callback bodies invoked by the audio driver. Capture
// and Playback run on the driver's own stream goroutines, asynchronously
// and independently of each other; all coordination happens through the
// frame buffer and the pitch control. When both are taken they are always
// taken in that order: frame first, then control.
type Pipeline struct {
	frame   *frame.Buffer
	control *pitch.Control

	// scratch is reused across Playback invocations. The output stream
	// invokes Playback serially, so no further synchronization is needed.
	scratch []float32
}

// New returns a pipeline exchanging samples through buf and reading the
// pitch factor from control.
func New(buf *frame.Buffer, control *pitch.Control) *Pipeline {
	return &Pipeline{
		frame:   buf,
		control: control,
		scratch: make([]float32, buf.Size()),
	}
}

// Capture stores a newly captured block in the frame buffer. It is the
// sole writer of the buffer; see frame.Buffer.Write for the truncation and
// partial-overwrite rules.
func (p *Pipeline) Capture(in []float32) {
	p.frame.Write(in)
}

// Playback fills out with the current frame content resampled at the
// current pitch factor. The frame is copied out under its lock and
// resampled after release, so neither lock is held across the resampling
// pass. Output positions beyond the resampled length are filled with
// silence. Playback never mutates the frame or the control.
func (p *Pipeline) Playback(out []float32) {
	p.frame.Snapshot(p.scratch)
	factor := p.control.Factor()

	shifted := dsp.Resample(p.scratch, factor)
	n := copy(out, shifted)
	for i := n; i < len(out); i++ {
		out[i] = 0
	}
}
