// Package convert contains the encode and decode CLI commands.
package convert

import (
	"fmt"

	"github.com/active-matter/simsub/codec"
	"github.com/active-matter/simsub/config"
	"github.com/active-matter/simsub/logger"
	"github.com/spf13/cobra"
)

// EncodeCmd represents the "encode" command. The value comes from the
// first argument, or from the VALUE environment variable when no
// argument is given, matching how the launch scripts drive it.
var EncodeCmd = &cobra.Command{
	Use:   "encode [value]",
	Short: "Encode a number as a letter code.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value := config.GetString("VALUE", "")
		if len(args) == 1 {
			value = args[0]
		}
		if value == "" {
			return fmt.Errorf("no value was provided")
		}

		code, err := codec.EncodeString(value)
		if err != nil {
			return err
		}
		logger.Debug("encoded value", "value", value, "code", code)
		fmt.Fprintln(cmd.OutOrStdout(), code)
		return nil
	},
}

// DecodeCmd represents the "decode" command.
var DecodeCmd = &cobra.Command{
	Use:   "decode [code]",
	Short: "Decode a letter code to scientific notation.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		code := config.GetString("CODE", "")
		if len(args) == 1 {
			code = args[0]
		}
		if code == "" {
			return fmt.Errorf("no code was provided")
		}

		value, err := codec.DecodeString(code)
		if err != nil {
			return err
		}
		logger.Debug("decoded code", "code", code, "value", value)
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	},
}
