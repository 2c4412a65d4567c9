// Package cmd contains the simsub CLI commands.
package cmd

import (
	"github.com/active-matter/simsub/cmd/convert"
	"github.com/active-matter/simsub/cmd/submit"
	"github.com/active-matter/simsub/cmd/version"
	"github.com/spf13/cobra"
)

// RootCmd represents the root command
var RootCmd = &cobra.Command{
	Use:           "simsub",
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	RootCmd.AddCommand(convert.EncodeCmd)
	RootCmd.AddCommand(convert.DecodeCmd)
	RootCmd.AddCommand(submit.NewCommand())
	RootCmd.AddCommand(version.Cmd)
}
