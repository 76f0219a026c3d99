package main

import (
	"fmt"
	"os"

	"github.com/aretw0/modkit/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run <plugin> [key=value ...]",
	Short: "Execute a plugin the way the orchestrator would",
	Long: `Resolves the plugin (registry name or direct path), stages the argument
line in a temp file, runs the plugin, and reports its JSON response.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		line, _ := cmd.Flags().GetString("line")
		passthrough, _ := cmd.Flags().GetBool("passthrough")
		jsonMode, _ := cmd.Flags().GetBool("json")
		debug, _ := cmd.Flags().GetBool("debug")
		registryPath, _ := cmd.Flags().GetString("registry")

		opts := cli.RunOptions{
			Plugin:       args[0],
			Fields:       args[1:],
			Line:         line,
			Passthrough:  passthrough,
			JSON:         jsonMode,
			Debug:        debug,
			RegistryPath: registryPath,
		}
		if err := cli.ExecuteRun(opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("line", "", "Raw argument line (overrides key=value arguments)")
	runCmd.Flags().Bool("passthrough", false, "Use --inline delivery (plugin output passes through, no capture)")
	runCmd.Flags().Bool("json", false, "Print the raw JSON response instead of the styled verdict")
}
