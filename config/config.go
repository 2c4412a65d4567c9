// Package config describes configuration for simsub.
package config

import (
	"fmt"
	"text/template"

	"github.com/active-matter/simsub/logger"
	"github.com/hashicorp/go-multierror"
)

// Config describes configuration for simsub.
type Config struct {
	// the active scheduler backend
	Scheduler string
	Submit    Submit
	Slurm     Slurm
	Params    Params
	Logger    logger.Config
}

// Submit describes configuration for job submission.
type Submit struct {
	// WorkDir is where submit scripts are written, one subdirectory
	// per run.
	WorkDir string
	// OutputDir is where job output files are written.
	OutputDir string
	// MaxTries bounds submit command retries.
	MaxTries int
}

// Slurm describes configuration for the SLURM backend.
type Slurm struct {
	// Template is the submit script template. See backend_templates.go
	// for the available fields.
	Template  string
	Partition string
	Time      string
}

// Params holds default simulation parameters. Each can be overridden
// by environment variables or flags.
type Params struct {
	// Density is the packing fraction of the system.
	Density float64
	// Vzero is the self-propulsion velocity.
	Vzero float64
	// Number is the number of particles.
	Number float64
	Cpus   int
	RamGb  float64
}

// Validate returns every configuration problem found, joined together.
func (c Config) Validate() error {
	var result *multierror.Error

	if c.Scheduler == "" {
		result = multierror.Append(result, fmt.Errorf("Scheduler is empty"))
	}
	if c.Submit.WorkDir == "" {
		result = multierror.Append(result, fmt.Errorf("Submit.WorkDir is empty"))
	}
	if c.Submit.OutputDir == "" {
		result = multierror.Append(result, fmt.Errorf("Submit.OutputDir is empty"))
	}
	if c.Submit.MaxTries < 1 {
		result = multierror.Append(result, fmt.Errorf("Submit.MaxTries must be at least 1"))
	}
	if _, err := template.New("submit").Parse(c.Slurm.Template); err != nil {
		result = multierror.Append(result, fmt.Errorf("Slurm.Template does not parse: %v", err))
	}
	if c.Params.Density <= 0 {
		result = multierror.Append(result, fmt.Errorf("Params.Density must be positive"))
	}
	if c.Params.Vzero <= 0 {
		result = multierror.Append(result, fmt.Errorf("Params.Vzero must be positive"))
	}
	if c.Params.Number <= 0 {
		result = multierror.Append(result, fmt.Errorf("Params.Number must be positive"))
	}

	return result.ErrorOrNil()
}
