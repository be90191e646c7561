package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tacogips/aiscaffold/internal/config"
	"github.com/tacogips/aiscaffold/internal/debug"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorGray   = "\033[90m"
)

// applyOutputConfig applies the configured output settings for any flag
// the user did not pass explicitly. Flags take precedence over the file.
func applyOutputConfig(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Root().PersistentFlags()
	if !flags.Changed(FlagQuiet) {
		globalQuiet = cfg.Output.Quiet
	}
	if !flags.Changed(FlagNoColor) {
		globalNoColor = !cfg.Output.Color
	}
	debug.SetNoColor(globalNoColor)
}

// Output formatting helpers

// printInfo prints an informational message
func printInfo(msg string) {
	if globalQuiet {
		return
	}
	fmt.Println(msg)
}

// printSuccess prints a success message
func printSuccess(msg string) {
	if globalQuiet {
		return
	}
	if globalNoColor {
		fmt.Printf("✓ %s\n", msg)
	} else {
		fmt.Printf("%s✓%s %s\n", colorGreen, colorReset, msg)
	}
}

// printWarning prints a warning message
func printWarning(msg string) {
	if globalQuiet {
		return
	}
	if globalNoColor {
		fmt.Printf("⚠ %s\n", msg)
	} else {
		fmt.Printf("%s⚠%s %s\n", colorYellow, colorReset, msg)
	}
}

// printErrorMsg prints an error message (different from printError which takes error type)
func printErrorMsg(msg string) {
	if globalNoColor {
		fmt.Fprintf(os.Stderr, "✗ %s\n", msg)
	} else {
		fmt.Fprintf(os.Stderr, "%s✗%s %s\n", colorRed, colorReset, msg)
	}
}

// printProgress prints a progress indicator
func printProgress(msg string) {
	if globalQuiet {
		return
	}
	if globalNoColor {
		fmt.Printf("→ %s\n", msg)
	} else {
		fmt.Printf("%s→%s %s\n", colorBlue, colorReset, msg)
	}
}

// printDim prints secondary detail text
func printDim(msg string) {
	if globalQuiet {
		return
	}
	if globalNoColor {
		fmt.Printf("  %s\n", msg)
	} else {
		fmt.Printf("  %s%s%s\n", colorGray, msg, colorReset)
	}
}
