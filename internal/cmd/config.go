package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prideconnect/prideconnect/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the client configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long: `Show the effective configuration after applying the config file,
the PRIDECONNECT_API_URL environment variable, and flags.

Examples:
  prideconnect config show`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		baseURL, err := cfg.BaseURL()
		if err != nil {
			return err
		}

		fmt.Printf("backend:  %s\n", baseURL)
		fmt.Printf("secure:   %t\n", cfg.Secure)
		if cfg.Log.Level != "" {
			fmt.Printf("log level: %s\n", cfg.Log.Level)
		}
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the configuration file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := flagConfig
		if path == "" {
			var err error
			path, err = config.DefaultPath()
			if err != nil {
				return err
			}
		}
		fmt.Println(path)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Long: `Write a default configuration file, keeping any existing values.

Examples:
  prideconnect config init
  prideconnect config init --api-url https://api.prideconnect.example.org`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := flagConfig
		if path == "" {
			var err error
			path, err = config.DefaultPath()
			if err != nil {
				return err
			}
		}

		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		if flagAPIURL != "" {
			cfg.APIBaseURL = flagAPIURL
		}

		if err := cfg.Save(path); err != nil {
			return err
		}

		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
