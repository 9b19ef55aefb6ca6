package main

import (
	"errors"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	flagVerbose bool
	logCloser   io.Closer = io.NopCloser(nil)
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "go-service",
		Short: "MaaEnd map-tracker agent service",
		Long: `MaaEnd map-tracker reads the view bearing from the FOV cone drawn
around the mini-map pointer.

Run "agent <identifier>" to serve MaaFramework custom recognitions, or
"detect [image]" to read the bearing of a single screenshot.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			closer, err := initLogger(flagVerbose)
			logCloser = closer
			if err != nil {
				log.Warn().Err(err).Msg("Logging to console only")
			}
			log.Info().Str("version", Version).Msg("MaaEnd Agent Service")
			return nil
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newAgentCmd(), newDetectCmd())

	err := rootCmd.Execute()
	logCloser.Close()
	if err != nil {
		if errors.Is(err, errNotFound) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func newAgentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "agent <identifier>",
		Short: "Start the MaaFramework agent server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAgent(args[0])
		},
	}
}
