package commands

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/systmms/credstore/internal/config"
	cserrors "github.com/systmms/credstore/internal/errors"
	"github.com/systmms/credstore/internal/vaults"
)

func NewDoctorCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check that the secure vault is usable",
		Long: `Validate the configuration and check that the platform secure vault is
available in the current environment.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Load(); err != nil {
				return err
			}
			cfg.Logger.Info("configuration valid")

			if !vaults.Available() {
				return cserrors.UserError{
					Message:    "No secure vault is available on " + runtime.GOOS,
					Suggestion: "On Linux, a Secret Service implementation (gnome-keyring, KWallet) needs a display session",
				}
			}
			cfg.Logger.Info("secure vault available (%s)", runtime.GOOS)

			if vaults.Headless() {
				cfg.Logger.Warn("headless environment detected: protected credentials cannot be unlocked interactively")
			} else {
				cfg.Logger.Info("interactive prompts available")
			}

			if cfg.Definition.AccessGroup != "" {
				cfg.Logger.Info("default access group: %s", cfg.Definition.AccessGroup)
			}
			return nil
		},
	}

	return cmd
}
