package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tacogips/aiscaffold/internal/app"
	"github.com/tacogips/aiscaffold/internal/config"
	"github.com/tacogips/aiscaffold/internal/generate"
	"github.com/tacogips/aiscaffold/internal/llm"
)

// scaffoldCmd represents the scaffold command
var scaffoldCmd = &cobra.Command{
	Use:   "scaffold [description]",
	Short: "Plan and generate project files from a description",
	Long: `Plan and generate project files from a free-text description.

The description is sent to the configured text-generation provider, which
answers with a path plan. After interactive selection, each chosen file is
generated one at a time. When selected files collide with existing ones
you are asked once whether to overwrite them; --overwrite skips the
question, and with --yes colliding files are left untouched.

A reusable prompt template (--template) may supply the description; its
{{...}} placeholder tokens are resolved interactively first.

Examples:
  aiscaffold scaffold "a REST API for a todo list in Go"
  aiscaffold scaffold --template web-app.prompt
  aiscaffold scaffold "static blog" --output ./blog --yes
  aiscaffold scaffold "cli tool" --overwrite`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScaffold,
}

// Scaffold command flags
var (
	scaffoldTemplate  string
	scaffoldOutput    string
	scaffoldOverwrite bool
	scaffoldYes       bool
	scaffoldModel     string
	scaffoldConfig    string
)

func init() {
	// Flags for scaffold
	scaffoldCmd.Flags().StringVarP(&scaffoldTemplate, FlagTemplate, "t", "", DescTemplate)
	scaffoldCmd.Flags().StringVarP(&scaffoldOutput, FlagOutput, "o", ".", DescOutput)
	scaffoldCmd.Flags().BoolVar(&scaffoldOverwrite, FlagOverwrite, false, DescOverwrite)
	scaffoldCmd.Flags().BoolVarP(&scaffoldYes, FlagYes, "y", false, DescYes)
	scaffoldCmd.Flags().StringVar(&scaffoldModel, FlagModel, "", DescModel)
	scaffoldCmd.Flags().StringVar(&scaffoldConfig, FlagConfig, "", DescConfig)
}

func runScaffold(cmd *cobra.Command, args []string) error {
	cfg, manager, err := loadProvider(scaffoldConfig, scaffoldModel)
	if err != nil {
		return err
	}
	applyOutputConfig(cmd, cfg)

	prompt, err := buildDescription(cmd, args, manager)
	if err != nil {
		return err
	}

	deps := app.ScaffoldDeps{
		Client:   manager.Client(),
		Selector: NewPathSelector(),
		Writer:   generate.NewFileWriter(),
		Progress: func(path string, index, total int) {
			printProgress(fmt.Sprintf("Generating %s (%d/%d)", path, index+1, total))
		},
	}
	if !scaffoldYes {
		deps.ConfirmOverwrite = confirmOverwrite
	}

	printProgress("Requesting path plan...")

	result, err := app.Scaffold(cmd.Context(), app.ScaffoldOptions{
		Prompt:          prompt,
		OutputDir:       scaffoldOutput,
		Overwrite:       scaffoldOverwrite,
		SelectAll:       scaffoldYes,
		WorkspaceDir:    scaffoldOutput,
		ExcludePatterns: cfg.Workspace.ExcludePatterns,
		ListLimit:       cfg.Workspace.ListLimit,
	}, deps)
	if err != nil {
		printErrorMsg(fmt.Sprintf("Scaffold failed: %v", err))
		return err
	}

	printScaffoldSummary(result)
	return nil
}

// loadProvider loads the configuration and builds the provider manager.
func loadProvider(configPath, modelOverride string) (*config.Config, *llm.Manager, error) {
	if configPath == "" {
		configPath = config.DefaultConfigPath()
	}

	loader := config.NewLoader()
	cfg, err := loader.LoadOrDefault(configPath)
	if err != nil {
		return nil, nil, err
	}
	if modelOverride != "" {
		cfg.Provider.Model = modelOverride
	}
	if err := loader.Validate(cfg); err != nil {
		return nil, nil, err
	}

	if config.ResolveAPIKey(cfg) == "" {
		return nil, nil, fmt.Errorf("no API key configured: set %s or run \"aiscaffold config init\"", cfg.Provider.APIKeyEnv)
	}

	return cfg, llm.NewManager(cfg), nil
}

// buildDescription combines the positional description and the resolved
// prompt template, when given.
func buildDescription(cmd *cobra.Command, args []string, manager *llm.Manager) (string, error) {
	var parts []string

	if scaffoldTemplate != "" {
		data, err := os.ReadFile(scaffoldTemplate)
		if err != nil {
			return "", fmt.Errorf("failed to read template file: %w", err)
		}
		resolved, err := app.ResolveTemplate(cmd.Context(), string(data), NewTokenAsker(), manager.Client())
		if err != nil {
			return "", err
		}
		parts = append(parts, resolved)
	}
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		parts = append(parts, args[0])
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("a description argument or --%s is required", FlagTemplate)
	}
	return strings.Join(parts, "\n\n"), nil
}

// printScaffoldSummary prints the outcome of a scaffold run.
func printScaffoldSummary(result *app.ScaffoldResult) {
	if result.Plan.Fallback {
		printWarning("Provider was unavailable; a fallback plan was used")
	}

	gen := result.Generation
	total := len(gen.Created) + len(gen.Overwritten) + len(gen.Skipped) + len(gen.Failed)
	if total == 0 && len(result.DirsCreated) == 0 {
		printInfo("Nothing selected, nothing generated.")
		return
	}

	printSuccess("Generation complete")
	printInfo("")
	printInfo("Summary:")
	if len(result.DirsCreated) > 0 {
		printInfo(fmt.Sprintf("  Directories: %d", len(result.DirsCreated)))
	}
	printInfo(fmt.Sprintf("  Created: %d files", len(gen.Created)))
	if len(gen.Overwritten) > 0 {
		printInfo(fmt.Sprintf("  Overwritten: %d files", len(gen.Overwritten)))
	}
	if len(gen.Skipped) > 0 {
		printInfo(fmt.Sprintf("  Skipped: %d files (already exist)", len(gen.Skipped)))
	}

	for _, path := range gen.Created {
		printDim(path)
	}

	if len(result.DirFailures) > 0 || len(gen.Failed) > 0 {
		printWarning(fmt.Sprintf("%d entries failed:", len(result.DirFailures)+len(gen.Failed)))
		for _, f := range result.DirFailures {
			printWarning(fmt.Sprintf("  - %s: %s", f.Path, f.Reason))
		}
		for _, f := range gen.Failed {
			printWarning(fmt.Sprintf("  - %s: %s", f.Path, f.Reason))
		}
	}
}
