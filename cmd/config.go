package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"tomatolog/internal/config"
	"tomatolog/models"
	"tomatolog/types"
)

const (
	configName = ".tomatolog"
	envPrefix  = "TOMATOLOG"
)

// GlobalAppConfig holds the global application configuration instance.
var GlobalAppConfig types.AppConfig

// InitConfig reads in the config file and ENV variables if set.
func InitConfig() {
	// Load .env first if present; it is fine if it does not exist.
	_ = godotenv.Load()

	viper.SetEnvPrefix(envPrefix) // e.g. TOMATOLOG_LLM_APIKEY
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	config.SetDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(configName)
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine; everything has defaults.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Warning: could not read config file: %v\n", err)
		}
	}

	if err := viper.Unmarshal(&GlobalAppConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not parse configuration: %v\n", err)
		os.Exit(1)
	}
	if err := models.ValidateStruct(GlobalAppConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid configuration: %v\n", err)
		os.Exit(1)
	}
}
