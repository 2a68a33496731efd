package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/systmms/credstore/internal/config"
	cserrors "github.com/systmms/credstore/internal/errors"
	"github.com/systmms/credstore/pkg/vault"
)

func NewDeleteCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <service> <account>",
		Short: "Remove a credential",
		Long: `Remove a credential from the secure vault by identity. Removal carries
no policy filter: the item is deleted regardless of how it was protected.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := newStore(cfg)
			if err != nil {
				return err
			}

			if err := store.Delete(args[0], args[1]); err != nil {
				if errors.Is(err, vault.ErrNotFound) {
					return cserrors.UserError{
						Message:    fmt.Sprintf("No credential stored for %s/%s", args[0], args[1]),
						Suggestion: "Use 'credstore list' to see what is stored",
						Err:        err,
					}
				}
				return err
			}

			cfg.Logger.Info("deleted %s/%s", args[0], args[1])
			return nil
		},
	}

	return cmd
}
