package instance

import (
	"bufio"
	"fmt"
	"os"

	"github.com/katalvlaran/axisep/separate"
)

// Write renders a solution file: the committed line count, then one
// record per line — the axis letter and the coordinate to one decimal
// place — in commit order. The format is byte-stable: identical
// solutions always produce identical files.
func Write(path string, lines []separate.Line) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%d\n", len(lines))
	for _, ln := range lines {
		fmt.Fprintf(w, "%s %.1f\n", ln.Axis, ln.Coord)
	}
	if err = w.Flush(); err != nil {
		f.Close()

		return err
	}

	return f.Close()
}
