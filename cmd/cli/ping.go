package main

import (
	"context"
	"encoding/json"
	"time"

	"github.com/spf13/cobra"

	"github.com/sevigo/review-desk/internal/wire"
)

var (
	pingJSON    bool
	pingTimeout time.Duration
)

type pingResult struct {
	URL       string `json:"url"`
	Reachable bool   `json:"reachable"`
	Error     string `json:"error,omitempty"`
}

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Checks that the reviewer service answers",
	RunE: func(cmd *cobra.Command, _ []string) error {
		appInstance, cleanup, err := wire.InitializeApp()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(cmd.Context(), pingTimeout)
		defer cancel()

		result := pingResult{URL: appInstance.Client.Endpoint(), Reachable: true}
		pingErr := appInstance.Ping(ctx)
		if pingErr != nil {
			result.Reachable = false
			result.Error = pingErr.Error()
		}

		out := cmd.OutOrStdout()
		if pingJSON {
			encoder := json.NewEncoder(out)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(result); err != nil {
				return err
			}
			return pingErr
		}

		if pingErr != nil {
			errorColor.Fprintf(out, "unreachable: %s\n", result.URL)
			return pingErr
		}
		successColor.Fprintf(out, "reachable: %s\n", result.URL)
		return nil
	},
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	pingCmd.Flags().BoolVar(&pingJSON, "json", false, "Output the result as JSON")
	pingCmd.Flags().DurationVar(&pingTimeout, "timeout", 10*time.Second, "Give up after this long")
	rootCmd.AddCommand(pingCmd)
}
