package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	root := &cobra.Command{
		Use:   "deepl",
		Short: "Command-line client for the DeepL translation API",
		Long: `Command-line client for the DeepL translation API.

The account API key is read from DEEPL_API_KEY; set DEEPL_FREE_TIER=true
for free-plan accounts.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newTranslateCmd(),
		newLanguagesCmd(),
		newUsageCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
