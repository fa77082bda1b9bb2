package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	reviewerURL string
	logLevel    string
)

var rootCmd = &cobra.Command{
	Use:   "review-cli",
	Short: "review-cli submits source files to the reviewer service.",
	Long: `A command-line host for the review desk. It sends code to the reviewer
service, prints the returned issue report and exports it as JSON.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&reviewerURL, "reviewer-url", "", "Reviewer service endpoint (RD_REVIEWER_URL)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (RD_LOG_LEVEL)")

	for key, flag := range map[string]string{
		"REVIEWER_URL": "reviewer-url",
		"LOG_LEVEL":    "log-level",
	} {
		if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			slog.Error("Error binding flag", "flag", flag, "error", err)
			os.Exit(1)
		}
	}
}

// initConfig reads in ENV variables if set.
func initConfig() {
	viper.SetEnvPrefix("RD")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}
