package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sevigo/review-desk/internal/config"
	"github.com/sevigo/review-desk/internal/core"
)

var languagesJSON bool

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "Lists the languages the reviewer accepts",
	RunE: func(cmd *cobra.Command, _ []string) error {
		profile, err := config.LoadProfile(".")
		if err != nil && profile == nil {
			return err
		}

		out := cmd.OutOrStdout()
		if languagesJSON {
			encoder := json.NewEncoder(out)
			encoder.SetIndent("", "  ")
			return encoder.Encode(core.SupportedLanguages)
		}

		w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "LANGUAGE\tDEFAULT")
		for _, lang := range core.SupportedLanguages {
			mark := ""
			if lang == profile.Language {
				mark = "*"
			}
			fmt.Fprintf(w, "%s\t%s\n", lang, mark)
		}
		return w.Flush()
	},
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	languagesCmd.Flags().BoolVar(&languagesJSON, "json", false, "Output languages as JSON")
	rootCmd.AddCommand(languagesCmd)
}
