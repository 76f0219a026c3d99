package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "modkit",
	Short: "Modkit is a local harness for legacy-protocol task plugins",
	Long:  `Modkit runs and inspects plugins that speak the legacy args-line/JSON task protocol, without a full orchestrator.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("registry", "plugins.yaml", "Path to the plugin registry file")
}
