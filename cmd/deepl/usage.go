package main

import (
	"fmt"

	"github.com/deepl-clients/deepl-go"
	"github.com/spf13/cobra"
)

func newUsageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "usage",
		Short: "Show character usage for the current billing period",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := deepl.NewFromEnv()
			if err != nil {
				return err
			}

			u, err := c.Usage(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Characters used:  %d\n", u.CharacterCount)
			fmt.Fprintf(cmd.OutOrStdout(), "Character limit:  %d\n", u.CharacterLimit)
			return nil
		},
	}
}
