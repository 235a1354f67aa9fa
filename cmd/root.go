package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	envFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "faqsite",
	Short: "Knightsbridge FAQ page and Signify extension download server",
	Long: `faqsite serves the Knightsbridge FAQ page with its single-open accordion,
the Signify browser extension download with fallbacks, and the extension's
install instructions. The same content is available over a JSON API, on the
command line and to AI agents via MCP.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", envFile, err)
		}
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".faqsite.yml", "config file path")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before the config")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// quietLogs discards package logs unless --verbose is set.
func quietLogs() {
	if !verbose {
		log.SetOutput(io.Discard)
	}
}
