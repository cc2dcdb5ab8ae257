package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/emailaddr/pkg/grammar"
)

func grammarCmd() *cobra.Command {
	var part string
	cmd := &cobra.Command{
		Use:   "grammar",
		Short: "Print the compiled address patterns",
		Long: `Print the anchored regular expressions of the general (RFC 822) and
strict (RFC 1035 domain) grammars. Patterns apply to the Latin-1 view of a
candidate, so \xNN escapes stand for raw bytes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, g := range []*grammar.Grammar{grammar.Lookup(false), grammar.Lookup(true)} {
				var pattern string
				switch part {
				case "address":
					pattern = g.AddressPattern()
				case "local-part":
					pattern = g.LocalPartPattern()
				case "domain":
					pattern = g.DomainPattern()
				default:
					return fmt.Errorf("invalid part %q: must be address, local-part or domain", part)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", g.Name(), pattern)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&part, "part", "address", "pattern to print: address, local-part or domain")
	return cmd
}
