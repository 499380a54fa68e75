// Package control implements the interactive command loop that drives the
// pitch control.
package control

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/karitora/pitchvox/internal/pitch"
)

// Loop reads one command per line from r until "q" or end of input and
// applies the matching preset to ctrl. Unrecognized commands change
// nothing; the user just gets a hint. The returned error is the reader's,
// never a command's.
func Loop(r io.Reader, w io.Writer, ctrl *pitch.Control) error {
	fmt.Fprintln(w, "Enter:")
	fmt.Fprintln(w, "  1 = Low pitch")
	fmt.Fprintln(w, "  2 = High pitch")
	fmt.Fprintln(w, "  0 = Normal pitch")
	fmt.Fprintln(w, "  q = Quit")

	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprint(w, "> ")
		if !scanner.Scan() {
			break
		}

		var preset pitch.Preset
		switch strings.TrimSpace(scanner.Text()) {
		case "1":
			preset = pitch.Low
		case "2":
			preset = pitch.High
		case "0":
			preset = pitch.Normal
		case "q":
			fmt.Fprintln(w, "Exiting...")
			return nil
		default:
			fmt.Fprintln(w, "Unknown command. Use 1, 2, 0, or q.")
			continue
		}

		if err := ctrl.SetPreset(preset); err != nil {
			fmt.Fprintf(w, "Failed to set pitch: %v\n", err)
			continue
		}
		fmt.Fprintf(w, "Set to %s pitch\n", strings.ToUpper(preset.String()))
	}

	return scanner.Err()
}
