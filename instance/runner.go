package instance

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/axisep/separate"
)

// MaxInstanceIndex is the highest instance-file index the runner probes.
const MaxInstanceIndex = 99

// InputName returns the canonical instance file name for an index,
// e.g. "instance07.txt".
func InputName(id int) string {
	return fmt.Sprintf("instance%02d.txt", id)
}

// SolutionName returns the canonical solution file name for an index,
// e.g. "greedy_solution07.txt".
func SolutionName(id int) string {
	return fmt.Sprintf("greedy_solution%02d.txt", id)
}

// Runner walks a directory of numbered instance files, runs the
// separation engine on each, and writes one solution file per success.
// Instances are independent: each gets fresh engine state, and a failed
// instance is logged and skipped without touching its neighbors.
type Runner struct {
	// InputDir holds instanceNN.txt files, NN = 01..MaxInstanceIndex.
	InputDir string
	// OutputDir receives greedy_solutionNN.txt files; created if absent.
	OutputDir string
	// Opts configures instance reading (capacity ceiling).
	Opts Options
	// Log receives per-instance progress; the standard logger when nil.
	Log *logrus.Logger
}

func (r *Runner) logger() *logrus.Logger {
	if r.Log != nil {
		return r.Log
	}

	return logrus.StandardLogger()
}

// Run processes every present instance and returns how many solution
// files were written. Missing indices are skipped silently (debug log
// only); malformed or inseparable instances are skipped with a warning.
// Only output-side failures (unwritable directory or file) abort the
// walk, since every later write would fail the same way.
func (r *Runner) Run() (int, error) {
	log := r.logger()
	if err := os.MkdirAll(r.OutputDir, 0o755); err != nil {
		return 0, fmt.Errorf("instance: create output dir: %w", err)
	}

	done := 0
	for id := 1; id <= MaxInstanceIndex; id++ {
		name := InputName(id)
		set, err := Read(filepath.Join(r.InputDir, name), r.Opts)
		if err != nil {
			if os.IsNotExist(err) {
				log.WithField("instance", name).Debug("no such instance")
				continue
			}
			log.WithField("instance", name).WithError(err).Warn("skipping unreadable instance")
			continue
		}

		lines, err := separate.Separate(set)
		if err != nil {
			log.WithField("instance", name).WithError(err).Warn("skipping inseparable instance")
			continue
		}

		out := filepath.Join(r.OutputDir, SolutionName(id))
		if err = Write(out, lines); err != nil {
			return done, fmt.Errorf("instance: write %s: %w", out, err)
		}
		log.WithFields(logrus.Fields{
			"instance": name,
			"points":   set.Len(),
			"lines":    len(lines),
		}).Info("instance separated")
		done++
	}

	return done, nil
}
