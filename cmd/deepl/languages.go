package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/deepl-clients/deepl-go"
	"github.com/spf13/cobra"
)

func newLanguagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List supported source and target languages",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := deepl.NewFromEnv()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			source, err := c.SourceLanguages(ctx)
			if err != nil {
				return err
			}
			target, err := c.TargetLanguages(ctx)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TYPE\tCODE\tNAME")
			for _, l := range source {
				fmt.Fprintf(w, "source\t%s\t%s\n", l.Language, l.Name)
			}
			for _, l := range target {
				fmt.Fprintf(w, "target\t%s\t%s\n", l.Language, l.Name)
			}
			return w.Flush()
		},
	}
}
