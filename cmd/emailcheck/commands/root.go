package commands

import (
	"context"
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/emailaddr/pkg/environment"
)

// ErrInvalidAddresses is returned by check when at least one address fails
// validation. The results have already been written at that point.
var ErrInvalidAddresses = errors.New("invalid addresses found")

// sourceKey tags log records with where the candidates came from.
type sourceKey struct{}

// app holds what the root command prepares for its subcommands.
type app struct {
	settings Settings
	log      *slog.Logger
}

// NewRootCmd builds the emailcheck command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	var envFile string

	root := &cobra.Command{
		Use:           "emailcheck",
		Short:         "Validate email addresses against RFC 822 and RFC 1035",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(envFile)
			if err != nil {
				return err
			}
			log, err := s.newLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			a.settings, a.log = s, log
			cmd.SetContext(environment.WithContext(cmd.Context(), environment.Parse(s.Env)))
			return nil
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", "", "load settings from this .env file")

	root.AddCommand(checkCmd(a), grammarCmd())
	return root
}

// Execute runs the CLI with os.Args.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}
