// Command axisep batch-processes directories of point instances: every
// input/instanceNN.txt becomes an output greedy_solutionNN.txt listing
// the axis-parallel lines that separate its points.
//
// Flags cover the common case; -config points at an optional YAML file
// whose values override the flag defaults:
//
//	input_dir: input
//	output_dir: output_greedy
//	max_points: 100
package main

import (
	"flag"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/axisep/instance"
)

type config struct {
	InputDir  string `yaml:"input_dir"`
	OutputDir string `yaml:"output_dir"`
	MaxPoints int    `yaml:"max_points"`
}

func main() {
	var (
		cfgPath = flag.String("config", "", "optional YAML config file")
		inDir   = flag.String("input", "input", "directory of instanceNN.txt files")
		outDir  = flag.String("output", "output_greedy", "directory for greedy_solutionNN.txt files")
		maxPts  = flag.Int("max-points", instance.DefaultMaxPoints, "per-instance point capacity")
		verbose = flag.Bool("v", false, "log skipped instance indices")
	)
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	cfg := config{InputDir: *inDir, OutputDir: *outDir, MaxPoints: *maxPts}
	if *cfgPath != "" {
		raw, err := os.ReadFile(*cfgPath)
		if err != nil {
			log.WithError(err).Fatal("read config")
		}
		if err = yaml.Unmarshal(raw, &cfg); err != nil {
			log.WithError(err).Fatalf("parse config %s", *cfgPath)
		}
		// Absent keys fall back to the flag values.
		if cfg.InputDir == "" {
			cfg.InputDir = *inDir
		}
		if cfg.OutputDir == "" {
			cfg.OutputDir = *outDir
		}
		if cfg.MaxPoints == 0 {
			cfg.MaxPoints = *maxPts
		}
	}

	r := &instance.Runner{
		InputDir:  cfg.InputDir,
		OutputDir: cfg.OutputDir,
		Opts:      instance.Options{MaxPoints: cfg.MaxPoints},
		Log:       log,
	}
	done, err := r.Run()
	if err != nil {
		log.WithError(err).Fatal("run aborted")
	}
	log.WithField("instances", done).Info("separation complete")
}
