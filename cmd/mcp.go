package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/knightsbridge/faqsite/internal/attempts"
	mcpserver "github.com/knightsbridge/faqsite/internal/mcp"
)

var mcpLedger bool

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing the FAQ, install instructions and extension download URL as tools.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		// Stdout carries the protocol.
		log.SetOutput(os.Stderr)

		var ledger *attempts.Store
		if mcpLedger {
			database, store, err := openLedger(cfg)
			if err != nil {
				return err
			}
			defer database.Close()
			ledger = store
		}

		mcpserver.Version = Version

		fmt.Fprintf(os.Stderr, "faqsite MCP server started on stdio (ledger=%t)\n", ledger != nil)

		srv := mcpserver.NewServer(cfg.Extension.Source(), ledger)
		return srv.Serve()
	},
}

func init() {
	mcpCmd.Flags().BoolVar(&mcpLedger, "ledger", false, "expose the download ledger via the download_stats tool")
	rootCmd.AddCommand(mcpCmd)
}
