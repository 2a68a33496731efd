package commands

import (
	"github.com/spf13/cobra"

	"github.com/systmms/credstore/internal/config"
	cserrors "github.com/systmms/credstore/internal/errors"
	"github.com/systmms/credstore/internal/metrics"
	"github.com/systmms/credstore/internal/vaults"
	"github.com/systmms/credstore/pkg/credstore"
	"github.com/systmms/credstore/pkg/vault"
)

// policyFlags are the per-call protection options shared by the write
// commands.
type policyFlags struct {
	accessGroup     string
	accessibility   string
	biometry        string
	skipInteraction bool
}

func (pf *policyFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&pf.accessGroup, "access-group", "", "Access group to store or match the credential in")
	cmd.Flags().StringVar(&pf.accessibility, "accessibility", "", "Accessibility class (e.g. when_unlocked, after_first_unlock_this_device_only)")
	cmd.Flags().StringVar(&pf.biometry, "biometry", "", "User-verification constraint: any, current_set, or user_presence")
	cmd.Flags().BoolVar(&pf.skipInteraction, "no-prompt", false, "Never present a biometric or passcode prompt; protected items are skipped")
}

// options converts the flags into an ordered option list.
func (pf *policyFlags) options() ([]credstore.Option, error) {
	var opts []credstore.Option

	if pf.accessGroup != "" {
		opts = append(opts, credstore.AccessGroup(pf.accessGroup))
	}

	acc, err := config.ParseAccessibility(pf.accessibility)
	if err != nil {
		return nil, err
	}
	switch acc {
	case vault.AccessibleWhenUnlocked:
		opts = append(opts, credstore.WhenUnlocked())
	case vault.AccessibleWhenUnlockedThisDeviceOnly:
		opts = append(opts, credstore.WhenUnlockedThisDeviceOnly())
	case vault.AccessibleAfterFirstUnlock:
		opts = append(opts, credstore.AfterFirstUnlock())
	case vault.AccessibleAfterFirstUnlockThisDeviceOnly:
		opts = append(opts, credstore.AfterFirstUnlockThisDeviceOnly())
	case vault.AccessibleWhenPasscodeSetThisDeviceOnly:
		// No direct option; passcode-set backing is implied by biometry.
	}

	switch pf.biometry {
	case "":
	case "any":
		opts = append(opts, credstore.BiometryAny())
	case "current_set":
		opts = append(opts, credstore.BiometryCurrentSet())
	case "user_presence":
		opts = append(opts, credstore.UserPresence())
	default:
		return nil, cserrors.ConfigError{
			Field:      "biometry",
			Value:      pf.biometry,
			Message:    "unknown biometry constraint",
			Suggestion: "Use one of: any, current_set, user_presence",
		}
	}

	if pf.skipInteraction {
		opts = append(opts, credstore.SkipInteractiveAuth())
	}
	return opts, nil
}

// newStore loads the configuration and wires the platform backend into a
// credential store.
func newStore(cfg *config.Config) (*credstore.Store, error) {
	if err := cfg.Load(); err != nil {
		return nil, err
	}
	def := cfg.Definition

	backend := vaults.New()
	if def.Metrics {
		backend = metrics.Instrument(backend)
	}

	storeOpts := []credstore.StoreOption{
		credstore.WithRecoveryPolicy(def.RecoveryPolicy()),
	}
	if def.AccessGroup != "" {
		storeOpts = append(storeOpts, credstore.WithDefaultAccessGroup(def.AccessGroup))
	}
	if acc, err := def.AccessibilityClass(); err != nil {
		return nil, err
	} else if acc != vault.AccessibilityUnspecified {
		storeOpts = append(storeOpts, credstore.WithDefaultAccessibility(acc))
	}

	return credstore.New(backend, storeOpts...), nil
}
