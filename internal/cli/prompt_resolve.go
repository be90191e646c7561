package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tacogips/aiscaffold/internal/app"
	"github.com/tacogips/aiscaffold/internal/config"
	"github.com/tacogips/aiscaffold/internal/llm"
)

// promptCmd represents the prompt command
var promptCmd = &cobra.Command{
	Use:   "prompt <template-file>",
	Short: "Resolve a prompt template's placeholder tokens",
	Long: `Resolve the {{...}} placeholder tokens of a reusable prompt template.

Choice and radio tokens are answered interactively, AI-input tokens are
answered by the provider (falling back to their declared default), and
simple tokens are prompted by name. The resolved prompt is printed to
stdout or written to a file.

Supported token syntaxes:
  {{name}}                     simple value
  {{name:opt1,opt2|default}}   named choice
  {{opt1,opt2|default}}        anonymous choice
  {{radio|a,b,c|default}}      single pick
  {{ai|Describe the component|Button}}  provider-filled value

Examples:
  aiscaffold prompt web-app.prompt
  aiscaffold prompt web-app.prompt --output resolved.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runPrompt,
}

// Prompt command flags
var (
	promptOutput string
	promptConfig string
)

func init() {
	// Flags for prompt
	promptCmd.Flags().StringVarP(&promptOutput, FlagOutput, "o", "", "Write the resolved prompt to a file instead of stdout")
	promptCmd.Flags().StringVar(&promptConfig, FlagConfig, "", DescConfig)
}

func runPrompt(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read template file: %w", err)
	}

	// The provider is optional here: without an API key, AI-input tokens
	// fall back to their declared defaults.
	configPath := promptConfig
	if configPath == "" {
		configPath = config.DefaultConfigPath()
	}
	cfg, err := config.NewLoader().LoadOrDefault(configPath)
	if err != nil {
		return err
	}
	applyOutputConfig(cmd, cfg)
	manager := llm.NewManager(cfg)

	resolved, err := app.ResolveTemplate(cmd.Context(), string(data), NewTokenAsker(), manager.Client())
	if err != nil {
		printErrorMsg(fmt.Sprintf("Template resolution failed: %v", err))
		return err
	}

	if promptOutput != "" {
		if err := os.WriteFile(promptOutput, []byte(resolved), 0644); err != nil {
			return fmt.Errorf("failed to write resolved prompt: %w", err)
		}
		printSuccess(fmt.Sprintf("Resolved prompt written to %s", promptOutput))
		return nil
	}

	fmt.Println(resolved)
	return nil
}
