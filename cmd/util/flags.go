package util

import (
	"strings"

	"github.com/active-matter/simsub/config"
	"github.com/spf13/pflag"
)

// SubmitFlags returns a new flag set for configuring a job submission.
func SubmitFlags(flagConf *config.Config, configFile *string) *pflag.FlagSet {
	f := pflag.NewFlagSet("", pflag.ContinueOnError)

	f.StringVarP(configFile, "config", "c", *configFile, "Config File")

	f.AddFlagSet(submitFlags(flagConf))
	f.AddFlagSet(paramFlags(flagConf))
	f.AddFlagSet(loggerFlags(flagConf))

	return f
}

func submitFlags(flagConf *config.Config) *pflag.FlagSet {
	f := pflag.NewFlagSet("", pflag.ContinueOnError)

	f.StringVar(&flagConf.Scheduler, "Scheduler", flagConf.Scheduler, "Name of scheduler backend to use.")
	f.StringVar(&flagConf.Submit.WorkDir, "Submit.WorkDir", flagConf.Submit.WorkDir, "Directory for submit scripts")
	f.StringVar(&flagConf.Submit.OutputDir, "Submit.OutputDir", flagConf.Submit.OutputDir, "Directory for job output files")
	f.IntVar(&flagConf.Submit.MaxTries, "Submit.MaxTries", flagConf.Submit.MaxTries, "Maximum submit command attempts")
	f.StringVar(&flagConf.Slurm.Partition, "Slurm.Partition", flagConf.Slurm.Partition, "SLURM partition")
	f.StringVar(&flagConf.Slurm.Time, "Slurm.Time", flagConf.Slurm.Time, "SLURM wall time limit")

	return f
}

func paramFlags(flagConf *config.Config) *pflag.FlagSet {
	f := pflag.NewFlagSet("", pflag.ContinueOnError)

	f.Float64Var(&flagConf.Params.Density, "Params.Density", flagConf.Params.Density, "Packing fraction")
	f.Float64Var(&flagConf.Params.Vzero, "Params.Vzero", flagConf.Params.Vzero, "Self-propulsion velocity")
	f.Float64Var(&flagConf.Params.Number, "Params.Number", flagConf.Params.Number, "Number of particles")
	f.IntVar(&flagConf.Params.Cpus, "Params.Cpus", flagConf.Params.Cpus, "Requested cpus")
	f.Float64Var(&flagConf.Params.RamGb, "Params.RamGb", flagConf.Params.RamGb, "Requested ram in GB")

	return f
}

func loggerFlags(flagConf *config.Config) *pflag.FlagSet {
	f := pflag.NewFlagSet("", pflag.ContinueOnError)

	f.StringVar(&flagConf.Logger.Level, "Logger.Level", flagConf.Logger.Level, "Level of logging")
	f.StringVar(&flagConf.Logger.Formatter, "Logger.Formatter", flagConf.Logger.Formatter, "Logging format, one of: json, text")
	f.StringVar(&flagConf.Logger.OutputFile, "Logger.OutputFile", flagConf.Logger.OutputFile, "File path to write logs to")

	return f
}

func normalize(name string) string {
	from := []string{"-", "_"}
	to := "."
	for _, sep := range from {
		name = strings.Replace(name, sep, to, -1)
	}
	return strings.ToLower(name)
}

// NormalizeFlags allows for flags to be case and separator insensitive.
// Use it by passing it to cobra.Command.SetGlobalNormalizationFunc
func NormalizeFlags(f *pflag.FlagSet, name string) pflag.NormalizedName {
	lookup := map[string]string{"help": "help", normalize(name): name}

	f.VisitAll(func(f *pflag.Flag) {
		lookup[normalize(f.Name)] = f.Name
	})

	return pflag.NormalizedName(lookup[normalize(name)])
}
