package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/systmms/credstore/internal/config"
)

func NewListCommand(cfg *config.Config) *cobra.Command {
	var (
		service string
		account string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored credential identities",
		Long: `List the (service, account) pairs currently stored, one per line as
service<TAB>account. Listing never prompts: credentials protected by a
biometric or passcode challenge are omitted, not failed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := newStore(cfg)
			if err != nil {
				return err
			}

			creds, err := store.Keys(service, account)
			if err != nil {
				return err
			}

			for _, c := range creds {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", c.Service, c.Account)
			}
			cfg.Logger.Debug("%d credential(s), status %s", len(creds), store.LastStatus())
			return nil
		},
	}

	cmd.Flags().StringVar(&service, "service", "", "Only list credentials for this service")
	cmd.Flags().StringVar(&account, "account", "", "Only list credentials for this account")
	return cmd
}
