package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/deepl-clients/deepl-go"
	"github.com/spf13/cobra"
)

func newTranslateCmd() *cobra.Command {
	var (
		sourceLang         string
		targetLang         string
		formality          string
		splitSentences     string
		preserveFormatting bool
	)

	cmd := &cobra.Command{
		Use:   "translate [text...]",
		Short: "Translate text into the target language",
		Long: `Translate the given texts, or standard input when no texts are given.
Translated lines are printed in input order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := buildOptions(cmd, formality, splitSentences, preserveFormatting)
			if err != nil {
				return err
			}

			texts := args
			if len(texts) == 0 {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				texts = []string{strings.TrimRight(string(data), "\n")}
			}

			c, err := deepl.NewFromEnv()
			if err != nil {
				return err
			}

			translations, err := c.Translate(cmd.Context(), deepl.TranslationRequest{
				SourceLang: sourceLang,
				TargetLang: targetLang,
				Texts:      texts,
			}, opts)
			if err != nil {
				return err
			}

			for _, t := range translations {
				fmt.Fprintln(cmd.OutOrStdout(), t.Text)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&sourceLang, "source", "s", "", "source language code (auto-detected when omitted)")
	cmd.Flags().StringVarP(&targetLang, "target", "t", "", "target language code")
	cmd.Flags().StringVar(&formality, "formality", "", "translation formality: default, more or less")
	cmd.Flags().StringVar(&splitSentences, "split-sentences", "", "sentence splitting: none, punctuation or all")
	cmd.Flags().BoolVar(&preserveFormatting, "preserve-formatting", false, "respect the original formatting")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

// buildOptions maps the flag strings onto TranslationOptions. Flags left
// at their defaults produce no request parameter.
func buildOptions(cmd *cobra.Command, formality, splitSentences string, preserveFormatting bool) (*deepl.TranslationOptions, error) {
	opts := &deepl.TranslationOptions{}

	switch formality {
	case "":
	case "default":
		opts.Formality = deepl.FormalityDefault
	case "more":
		opts.Formality = deepl.FormalityMore
	case "less":
		opts.Formality = deepl.FormalityLess
	default:
		return nil, fmt.Errorf("invalid --formality %q: want default, more or less", formality)
	}

	switch splitSentences {
	case "":
	case "none":
		opts.SplitSentences = deepl.SplitNone
	case "punctuation":
		opts.SplitSentences = deepl.SplitPunctuation
	case "all":
		opts.SplitSentences = deepl.SplitPunctuationAndNewlines
	default:
		return nil, fmt.Errorf("invalid --split-sentences %q: want none, punctuation or all", splitSentences)
	}

	if cmd.Flags().Changed("preserve-formatting") {
		opts.PreserveFormatting = deepl.Bool(preserveFormatting)
	}

	return opts, nil
}
