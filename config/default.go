package config

import (
	"os"
	"path"

	"github.com/active-matter/simsub/logger"
)

// DefaultConfig returns configuration with simple defaults.
func DefaultConfig() Config {
	cwd, _ := os.Getwd()
	workDir := path.Join(cwd, "simsub-work-dir")

	outputDir := cwd
	if d := os.Getenv("DATA_DIRECTORY"); d != "" {
		outputDir = d
	}

	return Config{
		Scheduler: "slurm",
		Submit: Submit{
			WorkDir:   workDir,
			OutputDir: outputDir,
			MaxTries:  3,
		},
		Slurm: Slurm{
			Template: slurmTemplate,
			Time:     "24:00:00",
		},
		Params: Params{
			Density: 0.8,
			Vzero:   1e-2,
			Number:  1000,
			Cpus:    1,
		},
		Logger: logger.DefaultConfig(),
	}
}
