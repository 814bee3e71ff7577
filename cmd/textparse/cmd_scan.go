package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dhamidi/textparse/chars"
	"github.com/spf13/cobra"
)

func newScanCmd() *cobra.Command {
	var kinds []string

	cmd := &cobra.Command{
		Use:   "scan [file]",
		Short: "Split text into word, number and punctuation tokens",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var data []byte
			var err error
			if len(args) == 1 {
				data, err = os.ReadFile(args[0])
				if err != nil {
					return fmt.Errorf("read input: %w", err)
				}
			} else {
				data, err = io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			}

			tokens, err := chars.Scan(string(data))
			if err != nil {
				return fmt.Errorf("scan: %w", err)
			}

			want := make(map[string]bool, len(kinds))
			for _, k := range kinds {
				want[k] = true
			}
			for _, tok := range tokens {
				if len(want) > 0 && !want[tok.Kind] {
					continue
				}
				fmt.Println(tok)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&kinds, "kind", nil, "only print tokens of these kinds (Word, Number, Punct)")

	return cmd
}
