package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/modkit"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of modkit",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("modkit version %s\n", strings.TrimSpace(modkit.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
