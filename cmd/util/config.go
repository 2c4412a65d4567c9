package util

import (
	"github.com/active-matter/simsub/config"
	"github.com/imdario/mergo"
)

// MergeConfigFileWithFlags is a util used by commands that use flags to
// set config values. These commands can also take in the path to a
// config file. This function layers the sources so that flag values
// override environment values, which override values in the provided
// config file.
func MergeConfigFileWithFlags(file string, flagConf config.Config) (config.Config, error) {
	// parse config file if it exists
	conf := config.DefaultConfig()
	err := config.ParseFile(file, &conf)
	if err != nil {
		return conf, err
	}

	// file vals <- env vals
	err = config.FromEnv(&conf)
	if err != nil {
		return conf, err
	}

	// env vals <- cli vals
	err = mergo.MergeWithOverwrite(&conf, flagConf)
	if err != nil {
		return conf, err
	}

	return conf, nil
}
