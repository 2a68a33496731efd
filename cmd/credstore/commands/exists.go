package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/systmms/credstore/internal/config"
)

func NewExistsCommand(cfg *config.Config) *cobra.Command {
	pf := &policyFlags{}

	cmd := &cobra.Command{
		Use:   "exists <service> <account>",
		Short: "Check whether a credential is stored",
		Long: `Check whether a credential is stored without reading its value or
triggering a prompt. A protected credential the current session cannot read
still reports true. Exits non-zero when the credential is absent, so the
command composes in shell conditionals:

  credstore exists db.example.com app && echo present`,
		Args:          cobra.ExactArgs(2),
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := newStore(cfg)
			if err != nil {
				return err
			}
			opts, err := pf.options()
			if err != nil {
				return err
			}

			present, err := store.Exists(args[0], args[1], opts...)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), present)
			if !present {
				cmd.SilenceUsage = true
				cmd.SilenceErrors = true
				return fmt.Errorf("not found")
			}
			return nil
		},
	}

	pf.register(cmd)
	return cmd
}
