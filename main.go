package main

import (
	"os"

	"github.com/active-matter/simsub/cmd"
	"github.com/active-matter/simsub/logger"
)

func main() {
	if err := cmd.RootCmd.Execute(); err != nil {
		logger.PrintSimpleError(err)
		os.Exit(1)
	}
}
