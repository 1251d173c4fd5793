package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/eringen/postgrid"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "postgrid",
	Short: "Paginated, tag-filterable grid of blog post cards",
	Long: `postgrid serves a grid of post cards built from a pre-generated post
index (posts.json or a pubengine database). Tag and page selections are kept
in the URL fragment so filtered views can be shared.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "postgrid.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

func loadConfig() (postgrid.SiteConfig, error) {
	return postgrid.LoadConfig(cfgFile)
}

func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
