package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/systmms/credstore/cmd/credstore/commands"
	"github.com/systmms/credstore/internal/config"
	"github.com/systmms/credstore/internal/logging"
	"github.com/systmms/credstore/internal/secure"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	defer secure.Purge()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		secure.Purge()
		os.Exit(1)
	}
}

func run() error {
	var (
		configFile string
		noColor    bool
		debug      bool
	)

	cfg := &config.Config{}

	rootCmd := &cobra.Command{
		Use:   "credstore",
		Short: "Store and retrieve credentials in the platform secure vault",
		Long: `credstore keeps named secrets in the OS secure vault (macOS Keychain,
freedesktop Secret Service) under configurable protection policies:
accessibility classes, biometric gating, device binding, and access groups.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg.Path = configFile
			cfg.Logger = logging.New(debug, noColor)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file path (default: per-user config dir)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(
		commands.NewGetCommand(cfg),
		commands.NewSetCommand(cfg),
		commands.NewExistsCommand(cfg),
		commands.NewDeleteCommand(cfg),
		commands.NewListCommand(cfg),
		commands.NewDoctorCommand(cfg),
	)

	return rootCmd.Execute()
}
