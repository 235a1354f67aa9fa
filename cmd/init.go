package cmd

import (
	"github.com/spf13/cobra"

	"github.com/knightsbridge/faqsite/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize faqsite configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the FAQ server and writes the config file (.faqsite.yml by default).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
