package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/active-matter/simsub/codec"
	"github.com/hashicorp/go-multierror"
)

// The launch workflow has historically been driven by environment
// variables. These getters return the variable parsed to the desired
// type, or the default when the variable is unset. A variable that is
// set but does not parse is an error; values are never evaluated as
// expressions.

// GetString returns a string environment variable, or the default.
func GetString(name, def string) string {
	if v, ok := os.LookupEnv(name); ok {
		return v
	}
	return def
}

// GetInt returns an integer environment variable, or the default.
func GetInt(name string, def int) (int, error) {
	v, ok := os.LookupEnv(name)
	if !ok {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("env %s=%q is not an integer", name, v)
	}
	return i, nil
}

// GetFloat returns a float environment variable, or the default. The
// value must be a plain numeric literal.
func GetFloat(name string, def float64) (float64, error) {
	v, ok := os.LookupEnv(name)
	if !ok {
		return def, nil
	}
	f, err := codec.ParseFloat(v)
	if err != nil {
		return def, fmt.Errorf("env %s=%q: %v", name, v, err)
	}
	return f, nil
}

// GetBool returns a boolean environment variable, or the default.
func GetBool(name string, def bool) (bool, error) {
	v, ok := os.LookupEnv(name)
	if !ok {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, fmt.Errorf("env %s=%q is not a boolean", name, v)
	}
	return b, nil
}

// FromEnv overlays environment variables onto the configuration.
func FromEnv(conf *Config) error {
	var result *multierror.Error
	var err error

	conf.Submit.WorkDir = GetString("WORK_DIRECTORY", conf.Submit.WorkDir)
	conf.Submit.OutputDir = GetString("DATA_DIRECTORY", conf.Submit.OutputDir)
	conf.Slurm.Partition = GetString("PARTITION", conf.Slurm.Partition)
	conf.Slurm.Time = GetString("WALL_TIME", conf.Slurm.Time)

	if conf.Params.Density, err = GetFloat("DENSITY", conf.Params.Density); err != nil {
		result = multierror.Append(result, err)
	}
	if conf.Params.Vzero, err = GetFloat("VZERO", conf.Params.Vzero); err != nil {
		result = multierror.Append(result, err)
	}
	if conf.Params.Number, err = GetFloat("NUMBER", conf.Params.Number); err != nil {
		result = multierror.Append(result, err)
	}
	if conf.Params.Cpus, err = GetInt("CPUS", conf.Params.Cpus); err != nil {
		result = multierror.Append(result, err)
	}
	if conf.Params.RamGb, err = GetFloat("RAM_GB", conf.Params.RamGb); err != nil {
		result = multierror.Append(result, err)
	}

	return result.ErrorOrNil()
}
