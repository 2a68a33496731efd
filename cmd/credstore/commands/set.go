package commands

import (
	"bufio"
	"strings"

	"github.com/spf13/cobra"

	"github.com/systmms/credstore/internal/config"
	cserrors "github.com/systmms/credstore/internal/errors"
	"github.com/systmms/credstore/internal/logging"
)

func NewSetCommand(cfg *config.Config) *cobra.Command {
	pf := &policyFlags{}
	var value string

	cmd := &cobra.Command{
		Use:   "set <service> <account>",
		Short: "Store a credential value",
		Long: `Store a credential in the secure vault. The value is read from stdin
unless --value is given; piping avoids leaving the secret in shell history:

  pass show db | credstore set db.example.com app

Set is an upsert: an existing credential under the same identity is
replaced. Protection options only take effect when the item is created.`,
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

			if value == "" {
				reader := bufio.NewReader(cmd.InOrStdin())
				line, err := reader.ReadString('\n')
				if err != nil && line == "" {
					return cserrors.UserError{
						Message:    "No value provided",
						Suggestion: "Pipe the value on stdin or pass --value",
						Err:        err,
					}
				}
				value = strings.TrimRight(line, "\r\n")
			}
			if value == "" {
				return cserrors.UserError{
					Message:    "Refusing to store an empty value",
					Suggestion: "Pass a non-empty value on stdin or via --value",
				}
			}

			if err := store.Set(value, args[0], args[1], opts...); err != nil {
				return err
			}

			cfg.Logger.Info("stored %s/%s", args[0], args[1])
			cfg.Logger.Debug("value %s, status %s", logging.Secret(value), store.LastStatus())
			return nil
		},
	}

	pf.register(cmd)
	cmd.Flags().StringVar(&value, "value", "", "Credential value (prefer stdin to keep it out of shell history)")
	_ = cmd.Flags().MarkHidden("no-prompt") // writes never prompt

	return cmd
}
