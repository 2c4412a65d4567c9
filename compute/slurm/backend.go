// Package slurm submits runs to the SLURM workload manager.
package slurm

import (
	"regexp"
	"strings"

	"github.com/active-matter/simsub/compute"
	"github.com/active-matter/simsub/config"
	"github.com/active-matter/simsub/logger"
)

// NewBackend returns a new SLURM HPCBackend instance.
func NewBackend(conf config.Config, log *logger.Logger) *compute.HPCBackend {
	return &compute.HPCBackend{
		Name:        "slurm",
		SubmitCmd:   "sbatch",
		CancelCmd:   "scancel",
		Template:    conf.Slurm.Template,
		Conf:        conf,
		Log:         log,
		ExtractID:   extractID,
		ShouldRetry: shouldRetry,
	}
}

// extractID extracts the job id from the response returned by the
// `sbatch` command. Example response:
// Submitted batch job 2
func extractID(in string) string {
	re := regexp.MustCompile("(Submitted batch job )([0-9]+)\n$")
	return re.ReplaceAllString(in, "$2")
}

// shouldRetry reports whether an sbatch failure looks transient.
// A busy or briefly unreachable slurmctld is worth retrying; anything
// else (bad script, bad partition) is not.
func shouldRetry(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "Socket timed out") ||
		strings.Contains(msg, "Unable to contact slurm controller")
}
