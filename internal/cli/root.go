package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tacogips/aiscaffold/internal/debug"
)

// Version information (set from build-time variables via main)
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Global flags
var (
	globalNoColor bool
	globalQuiet   bool
	globalDebug   bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "aiscaffold",
	Short: "AI-assisted project scaffolding tool",
	Long: `aiscaffold turns a free-text project description into generated files.

Use "aiscaffold scaffold <description>" to:
  1. Ask the configured text-generation provider for a path plan
  2. Interactively select which planned entries to keep
  3. Generate each selected file, one at a time

Descriptions can also come from reusable prompt templates containing
{{...}} placeholder tokens; see "aiscaffold prompt --help".`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Set debug mode
		debug.SetDebug(globalDebug)
		debug.SetNoColor(globalNoColor)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&globalNoColor, FlagNoColor, false, DescNoColor)
	rootCmd.PersistentFlags().BoolVarP(&globalQuiet, FlagQuiet, "q", false, DescQuiet)
	rootCmd.PersistentFlags().BoolVar(&globalDebug, FlagDebug, false, DescDebug)

	// Add subcommands
	rootCmd.AddCommand(scaffoldCmd)
	rootCmd.AddCommand(promptCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// printError prints an error message to stderr
func printError(err error) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
