package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or change tomatolog configuration",
}

// configSetKeyCmd persists the extraction API key so it does not have to be
// passed through the environment every time.
var configSetKeyCmd = &cobra.Command{
	Use:   "set-key <api-key>",
	Short: "Store the extraction model API key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		viper.Set("llm.apiKey", args[0])

		path := viper.ConfigFileUsed()
		if path == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("resolve home directory: %w", err)
			}
			path = filepath.Join(home, configName+".yaml")
		}
		if err := viper.WriteConfigAs(path); err != nil {
			return fmt.Errorf("write config %s: %w", path, err)
		}
		fmt.Printf("API key saved to %s\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("data file:    %s\n", dataFileForDisplay())
		fmt.Printf("lock timeout: %ds\n", GlobalAppConfig.Data.LockTimeoutSeconds)
		fmt.Printf("llm base url: %s\n", GlobalAppConfig.LLM.BaseURL)
		fmt.Printf("llm model:    %s\n", GlobalAppConfig.LLM.ModelName)
		fmt.Printf("server port:  %d\n", GlobalAppConfig.Server.Port)
	},
}

func dataFileForDisplay() string {
	if GlobalAppConfig.Data.File != "" {
		return GlobalAppConfig.Data.File
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "~/.tomato_clock.json"
	}
	return filepath.Join(home, ".tomato_clock.json")
}

func init() {
	configCmd.AddCommand(configSetKeyCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}
