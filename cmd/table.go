package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"morse_translator/codec"
)

func newTableCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Print the code table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, e := range codec.Table() {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%c %s\n", e.Symbol, e.Code); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
