package cli

import (
	"fmt"
	"github.com/spf13/cobra"
)

// RootCommand builds the command tree. Running it without a subcommand prints usage and reports an error, so
// the process exits non-zero.
func RootCommand() *cobra.Command {
	opts := &rootOpts{}

	rootCmd := &cobra.Command{
		Use:   "bsteg",
		Short: "Performs steganography operations on bitmap images",
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("a subcommand is required")
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "Path to a yaml configuration file")
	rootCmd.PersistentFlags().StringVar(&opts.stride, "stride", "", "Pixel row layout of input bitmaps. Options are auto, packed, aligned")

	rootCmd.AddCommand(checkCommand(opts), storeCommand(opts), retrieveCommand(opts), inspectCommand(), ServeAppCommand(opts))
	return rootCmd
}
