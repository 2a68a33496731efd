package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/systmms/credstore/internal/config"
	cserrors "github.com/systmms/credstore/internal/errors"
	"github.com/systmms/credstore/internal/secure"
	"github.com/systmms/credstore/pkg/vault"
)

func NewGetCommand(cfg *config.Config) *cobra.Command {
	pf := &policyFlags{}

	cmd := &cobra.Command{
		Use:   "get <service> <account>",
		Short: "Retrieve a credential value",
		Long: `Retrieve a credential from the secure vault and print it to stdout.

Only the raw value is printed, making the command suitable for scripting:

  export DB_PASSWORD=$(credstore get db.example.com app)

Reading a protected credential may trigger a biometric or passcode prompt
unless --no-prompt is given, in which case protected items are skipped.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := newStore(cfg)
			if err != nil {
				return err
			}
			opts, err := pf.options()
			if err != nil {
				return err
			}

			value, err := store.Get(args[0], args[1], opts...)
			if errors.Is(err, vault.ErrNotFound) {
				return cserrors.UserError{
					Message:    fmt.Sprintf("No credential stored for %s/%s", args[0], args[1]),
					Suggestion: "Use 'credstore list' to see what is stored",
					Err:        err,
				}
			}
			if err != nil {
				return err
			}

			// Hold the payload in protected memory until the moment it is
			// written out.
			buf := secure.NewBufferFromString(value)
			locked, err := buf.Open()
			if err != nil {
				return err
			}
			defer locked.Destroy()

			fmt.Fprintln(cmd.OutOrStdout(), locked.String())
			return nil
		},
	}

	pf.register(cmd)
	return cmd
}
