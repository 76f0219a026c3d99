package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/modkit/internal/cli"
	"github.com/spf13/cobra"
)

var lexCmd = &cobra.Command{
	Use:   "lex",
	Short: "Dump the token stream for an argument line",
	Run: func(cmd *cobra.Command, args []string) {
		line, _ := cmd.Flags().GetString("line")
		if err := cli.ExecuteLex(cli.LexOptions{Line: line}); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Validate an argument line against an allow-list",
	Long:  `Runs the validator and prints the resulting bindings and positionals. Include "+" in --allow to accept positionals.`,
	Run: func(cmd *cobra.Command, args []string) {
		line, _ := cmd.Flags().GetString("line")
		allow, _ := cmd.Flags().GetString("allow")

		var names []string
		for _, name := range strings.Split(allow, ",") {
			if name = strings.TrimSpace(name); name != "" {
				names = append(names, name)
			}
		}

		if err := cli.ExecuteParse(cli.ParseOptions{Line: line, Allow: names}); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(lexCmd)
	rootCmd.AddCommand(parseCmd)

	lexCmd.Flags().String("line", "", "Argument line to tokenize")
	parseCmd.Flags().String("line", "", "Argument line to validate")
	parseCmd.Flags().String("allow", "", "Comma-separated allow-list names")
}
