package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/tacogips/aiscaffold/internal/config"
)

func newFlagCommand(t *testing.T) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	cmd.PersistentFlags().Bool(FlagNoColor, false, DescNoColor)
	cmd.PersistentFlags().BoolP(FlagQuiet, "q", false, DescQuiet)
	return cmd
}

// TestApplyOutputConfig tests config-driven output settings and flag precedence
func TestApplyOutputConfig(t *testing.T) {
	savedQuiet, savedNoColor := globalQuiet, globalNoColor
	defer func() {
		globalQuiet, globalNoColor = savedQuiet, savedNoColor
	}()

	t.Run("config drives unset flags", func(t *testing.T) {
		globalQuiet, globalNoColor = false, false

		cfg := config.DefaultConfig()
		cfg.Output.Quiet = true
		cfg.Output.Color = false

		applyOutputConfig(newFlagCommand(t), cfg)

		if !globalQuiet {
			t.Errorf("quiet = false, want true from config")
		}
		if !globalNoColor {
			t.Errorf("noColor = false, want true from config (color disabled)")
		}
	})

	t.Run("defaults keep color on and quiet off", func(t *testing.T) {
		globalQuiet, globalNoColor = true, true

		applyOutputConfig(newFlagCommand(t), config.DefaultConfig())

		if globalQuiet {
			t.Errorf("quiet = true, want false from default config")
		}
		if globalNoColor {
			t.Errorf("noColor = true, want false from default config")
		}
	})

	t.Run("explicit flags override config", func(t *testing.T) {
		globalQuiet, globalNoColor = false, true

		cmd := newFlagCommand(t)
		if err := cmd.PersistentFlags().Set(FlagQuiet, "false"); err != nil {
			t.Fatalf("set flag: %v", err)
		}
		if err := cmd.PersistentFlags().Set(FlagNoColor, "true"); err != nil {
			t.Fatalf("set flag: %v", err)
		}

		cfg := config.DefaultConfig()
		cfg.Output.Quiet = true
		cfg.Output.Color = true

		applyOutputConfig(cmd, cfg)

		if globalQuiet {
			t.Errorf("quiet = true, config overrode an explicit flag")
		}
		if !globalNoColor {
			t.Errorf("noColor = false, config overrode an explicit flag")
		}
	})
}
