package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tacogips/aiscaffold/internal/config"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage aiscaffold configuration",
}

// configInitCmd writes a default configuration file.
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Long: `Write a default configuration file.

The file holds provider settings (base URL, model, API key environment
variable) and workspace summary settings. Store the API key in the
environment variable named by provider.api_key_env rather than in the file.

Examples:
  aiscaffold config init
  aiscaffold config init --force`,
	RunE: runConfigInit,
}

// configPathCmd prints the configuration file location.
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(config.DefaultConfigPath())
		return nil
	},
}

// Config command flags
var configForce bool

func init() {
	configInitCmd.Flags().BoolVarP(&configForce, FlagForce, "f", false, DescForce)

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := config.DefaultConfigPath()
	if path == "" {
		return fmt.Errorf("cannot determine home directory for configuration")
	}

	if err := config.WriteDefault(path, configForce); err != nil {
		return err
	}

	printSuccess(fmt.Sprintf("Configuration written to %s", path))
	printInfo(fmt.Sprintf("Set your API key in the %s environment variable.", config.DefaultConfig().Provider.APIKeyEnv))
	return nil
}
