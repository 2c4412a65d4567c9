// Package compute submits simulation runs to HPC schedulers.
package compute

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path"
	"path/filepath"
	"text/template"
	"time"

	"github.com/active-matter/simsub/config"
	"github.com/active-matter/simsub/logger"
	"github.com/active-matter/simsub/util"
)

// Run describes one job submission: a simulation command plus the
// resources and files attached to it.
type Run struct {
	ID   string
	Name string
	// OutputDir is created if missing; the scheduler writes the job
	// output to OutputFile inside it.
	OutputDir  string
	OutputFile string
	Command    string
	Cpus       int
	RamGb      float64
	Time       string
	Partition  string
}

// HPCBackend submits runs to an HPC scheduler such as SLURM, Grid
// Engine, etc., by rendering a submit file and handing it to the
// scheduler's submit command.
type HPCBackend struct {
	Name      string
	SubmitCmd string
	CancelCmd string
	Template  string
	Conf      config.Config
	Log       *logger.Logger
	// ExtractID pulls the scheduler job ID out of the submit command's
	// stdout.
	ExtractID func(string) string
	// ShouldRetry reports whether a submit error is transient.
	ShouldRetry func(err error) bool
}

// Submit submits a run via "sbatch", "qsub", etc. and returns the
// scheduler job ID.
func (b *HPCBackend) Submit(ctx context.Context, run *Run) (string, error) {
	submitPath, err := b.setupSubmitFile(run)
	if err != nil {
		return "", err
	}

	retrier := util.NewRetrier()
	retrier.MaxTries = b.Conf.Submit.MaxTries
	retrier.ShouldRetry = b.ShouldRetry
	retrier.Notify = func(err error, d time.Duration) {
		b.Log.Warn("submit failed, retrying", "error", err, "wait", d)
	}

	var stdout bytes.Buffer
	err = retrier.Retry(ctx, func() error {
		stdout.Reset()
		var stderr bytes.Buffer
		cmd := exec.CommandContext(ctx, b.SubmitCmd, submitPath)
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr

		if err := cmd.Run(); err != nil {
			return fmt.Errorf("%s: %v: %s", b.SubmitCmd, err, stderr.String())
		}
		return nil
	})
	if err != nil {
		b.Log.Error("error submitting run to "+b.Name, "error", err, "run", run.ID)
		return "", err
	}

	jobID := b.ExtractID(stdout.String())
	b.Log.Info("submitted run", "run", run.ID, b.Name+"_id", jobID)

	// The output file opens with the scheduler job ID, so a run can
	// always be traced back to its job.
	err = b.writeOutputHeader(run, jobID)
	if err != nil {
		return jobID, err
	}

	return jobID, nil
}

// Cancel cancels a job via "scancel", "qdel", etc.
func (b *HPCBackend) Cancel(ctx context.Context, jobID string) error {
	if jobID == "" {
		return fmt.Errorf("empty %s job id", b.Name)
	}
	cmd := exec.CommandContext(ctx, b.CancelCmd, jobID)
	return cmd.Run()
}

// setupSubmitFile builds the run's working directory and renders the
// submit file from the backend template.
func (b *HPCBackend) setupSubmitFile(run *Run) (string, error) {
	workdir := path.Join(b.Conf.Submit.WorkDir, run.ID)
	workdir, _ = filepath.Abs(workdir)

	submitName := fmt.Sprintf("%s.submit", b.Name)
	submitPath := path.Join(workdir, submitName)
	if err := util.EnsurePath(submitPath); err != nil {
		return "", err
	}
	if err := util.EnsureDir(run.OutputDir); err != nil {
		return "", err
	}

	f, err := os.Create(submitPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	submitTpl, err := template.New(submitName).Parse(b.Template)
	if err != nil {
		return "", err
	}

	err = submitTpl.Execute(f, map[string]interface{}{
		"Name":       run.Name,
		"RunID":      run.ID,
		"WorkDir":    workdir,
		"OutputDir":  run.OutputDir,
		"OutputFile": run.OutputFile,
		"Command":    run.Command,
		"Cpus":       run.Cpus,
		"RamGb":      run.RamGb,
		"Time":       run.Time,
		"Partition":  run.Partition,
	})
	if err != nil {
		return "", err
	}

	return submitPath, nil
}

func (b *HPCBackend) writeOutputHeader(run *Run, jobID string) error {
	p := path.Join(run.OutputDir, run.OutputFile)
	f, err := os.Create(p)
	if err != nil {
		return fmt.Errorf("creating output file: %v", err)
	}
	defer f.Close()

	_, err = fmt.Fprintf(f, "Job ID: %s\n\n", jobID)
	return err
}
