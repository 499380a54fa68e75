package control

import (
	"bytes"
	"strings"
	"testing"

	"github.com/karitora/pitchvox/internal/pitch"
)

func TestLoopSetsPresets(t *testing.T) {
	tests := []struct {
		input string
		want  float32
	}{
		{"1\nq\n", 0.7},
		{"2\nq\n", 1.3},
		{"0\nq\n", 1.0},
		{"1\n0\n2\nq\n", 1.3}, // last write wins
	}

	for _, tt := range tests {
		ctrl := pitch.NewControl()
		var out bytes.Buffer

		if err := Loop(strings.NewReader(tt.input), &out, ctrl); err != nil {
			t.Fatalf("input %q: Loop failed: %v", tt.input, err)
		}
		if f := ctrl.Factor(); f != tt.want {
			t.Errorf("input %q: expected factor %v, got %v", tt.input, tt.want, f)
		}
	}
}

func TestLoopUnknownCommandIsNoOp(t *testing.T) {
	ctrl := pitch.NewControl()
	var out bytes.Buffer

	if err := Loop(strings.NewReader("x\n3\nhello\nq\n"), &out, ctrl); err != nil {
		t.Fatalf("Loop failed: %v", err)
	}

	if f := ctrl.Factor(); f != 1.0 {
		t.Errorf("unknown commands changed the factor to %v", f)
	}
	if n := strings.Count(out.String(), "Unknown command"); n != 3 {
		t.Errorf("expected 3 unknown-command messages, got %d\noutput:\n%s", n, out.String())
	}
}

func TestLoopTrimsWhitespace(t *testing.T) {
	ctrl := pitch.NewControl()
	var out bytes.Buffer

	if err := Loop(strings.NewReader("  1  \nq\n"), &out, ctrl); err != nil {
		t.Fatalf("Loop failed: %v", err)
	}
	if f := ctrl.Factor(); f != 0.7 {
		t.Errorf("expected factor 0.7, got %v", f)
	}
}

func TestLoopEndsOnEOF(t *testing.T) {
	ctrl := pitch.NewControl()
	var out bytes.Buffer

	// Input ends without an explicit quit; the loop returns cleanly.
	if err := Loop(strings.NewReader("1\n"), &out, ctrl); err != nil {
		t.Fatalf("Loop failed: %v", err)
	}
	if f := ctrl.Factor(); f != 0.7 {
		t.Errorf("expected factor 0.7, got %v", f)
	}
}

func TestLoopQuitMessage(t *testing.T) {
	ctrl := pitch.NewControl()
	var out bytes.Buffer

	if err := Loop(strings.NewReader("q\n"), &out, ctrl); err != nil {
		t.Fatalf("Loop failed: %v", err)
	}
	if !strings.Contains(out.String(), "Exiting...") {
		t.Errorf("missing exit message, output:\n%s", out.String())
	}
}
