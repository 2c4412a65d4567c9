// Package submit contains the CLI command that submits a simulation
// run to the scheduler.
package submit

import (
	"context"
	"fmt"

	"github.com/active-matter/simsub/cmd/util"
	"github.com/active-matter/simsub/compute"
	"github.com/active-matter/simsub/compute/slurm"
	"github.com/active-matter/simsub/config"
	"github.com/active-matter/simsub/logger"
	"github.com/active-matter/simsub/naming"
	sutil "github.com/active-matter/simsub/util"
	"github.com/active-matter/simsub/version"
	"github.com/spf13/cobra"
)

// NewCommand returns the submit command.
func NewCommand() *cobra.Command {
	cmd, _ := newCommandHooks()
	return cmd
}

type hooks struct {
	Submit func(ctx context.Context, conf config.Config, run *compute.Run, log *logger.Logger) (string, error)
}

func newCommandHooks() (*cobra.Command, *hooks) {
	hooks := &hooks{
		Submit: Submit,
	}

	var (
		configFile string
		conf       config.Config
		flagConf   config.Config
		command    string
	)

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a simulation run to the workload manager.",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			var err error

			conf, err = util.MergeConfigFileWithFlags(configFile, flagConf)
			if err != nil {
				return fmt.Errorf("error processing config: %v", err)
			}

			return conf.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if command == "" {
				command = config.GetString("COMMAND", "")
			}
			if command == "" {
				return fmt.Errorf("no command was provided")
			}

			dryRun, err := config.GetBool("DRY_RUN", false)
			if err != nil {
				return err
			}

			log := logger.NewLogger("submit", conf.Logger)
			log.Info("version", version.LogFields()...)

			run, err := NewRun(conf, command)
			if err != nil {
				return err
			}

			if dryRun {
				log.Info("dry run, not submitting", "run", run.ID, "name", run.Name)
				fmt.Fprintln(cmd.OutOrStdout(), run.Name)
				return nil
			}

			jobID, err := hooks.Submit(cmd.Context(), conf, run, log)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), jobID)
			return nil
		},
	}

	cmd.SetGlobalNormalizationFunc(util.NormalizeFlags)
	f := cmd.Flags()
	f.AddFlagSet(util.SubmitFlags(&flagConf, &configFile))
	f.StringVar(&command, "command", command, "Simulation command to run")

	return cmd, hooks
}

// NewRun builds a Run from the configured parameters. File names are
// derived from the parameter set through the naming standards, so the
// run's output is self-describing.
func NewRun(conf config.Config, command string) (*compute.Run, error) {
	attrs := map[string]float64{
		"density": conf.Params.Density,
		"vzero":   conf.Params.Vzero,
		"number":  conf.Params.Number,
	}

	name, err := naming.Launch.Filename(attrs)
	if err != nil {
		return nil, err
	}
	outputFile, err := naming.Output.Filename(attrs)
	if err != nil {
		return nil, err
	}

	return &compute.Run{
		ID:         sutil.GenRunID(),
		Name:       name,
		OutputDir:  conf.Submit.OutputDir,
		OutputFile: outputFile,
		Command:    command,
		Cpus:       conf.Params.Cpus,
		RamGb:      conf.Params.RamGb,
		Time:       conf.Slurm.Time,
		Partition:  conf.Slurm.Partition,
	}, nil
}

// Submit submits a run to the configured scheduler backend and returns
// the scheduler job ID.
func Submit(ctx context.Context, conf config.Config, run *compute.Run, log *logger.Logger) (string, error) {
	var backend *compute.HPCBackend

	switch conf.Scheduler {
	case "slurm":
		backend = slurm.NewBackend(conf, log)
	default:
		return "", fmt.Errorf("unknown scheduler backend %q", conf.Scheduler)
	}

	return backend.Submit(ctx, run)
}
