package main

import (
	"fmt"
	"os"

	"mipfam/models"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var cfg models.Config

var rootCmd = &cobra.Command{
	Use:   "mipfam",
	Short: "Annotate variants with the inheritance models they follow in a family",
	Long: "mipfam checks every variant of a family against the dominant, recessive,\n" +
		"compound heterozygous and X-linked patterns of inheritance, de novo included.",
	SilenceUsage: true,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	rootCmd.AddCommand(annotateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.Version = version
}

func main() {
	// Gather environment variables
	err := envconfig.Process("", &cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
