package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/knightsbridge/faqsite/internal/extension"
	"github.com/knightsbridge/faqsite/internal/install"
	"github.com/knightsbridge/faqsite/internal/progress"
)

var (
	downloadOutput string
	downloadOpen   bool
	downloadRecord bool
)

var downloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Download the Signify extension archive",
	Long: `Fetches the Signify extension archive with the same strategies the web
server uses. A valid archive is written to --output; otherwise the direct
download URL is printed and, with --open, opened in a browser.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		quietLogs()

		var recorder extension.Recorder
		if downloadRecord {
			database, ledger, err := openLedger(cfg)
			if err != nil {
				return err
			}
			defer database.Close()
			recorder = ledger
		}

		output := downloadOutput
		if output == "" {
			output = cfg.Extension.Filename
		}

		orch := buildOrchestrator(cfg, recorder, progress.NewReporter("Downloading "+cfg.Extension.Filename))

		var (
			st       extension.Status
			writeErr error
			got      *extension.Delivery
		)
		orch.Run(cmd.Context(), "cli", &st, func(d *extension.Delivery) {
			got = d
			if d.Kind == extension.KindPayload {
				writeErr = writePayload(output, d.Payload)
			}
		})

		if got == nil {
			return fmt.Errorf("no download strategy succeeded, try %s", orch.Source().URL())
		}
		if writeErr != nil {
			return writeErr
		}

		if got.Kind == extension.KindPayload {
			fmt.Printf("Saved %s (%d bytes)\n", output, len(got.Payload))
			printNextSteps()
			return nil
		}

		fmt.Fprintln(os.Stderr, "The archive could not be fetched directly.")
		fmt.Printf("Download it from: %s\n", got.URL)
		if downloadOpen {
			if err := browser.OpenURL(got.URL); err != nil {
				fmt.Fprintf(os.Stderr, "Could not open browser: %v\n", err)
			}
		}
		return nil
	},
}

func writePayload(path string, payload []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func printNextSteps() {
	g := install.Instructions()
	fmt.Printf("\n%s\n", g.Title)
	for _, s := range g.Install {
		fmt.Printf("  %d. %s\n", s.Number, s.Text)
	}
}

func init() {
	downloadCmd.Flags().StringVarP(&downloadOutput, "output", "o", "", "where to save the archive (default: configured filename)")
	downloadCmd.Flags().BoolVar(&downloadOpen, "open", false, "open the direct URL in a browser when the archive cannot be fetched")
	downloadCmd.Flags().BoolVar(&downloadRecord, "record", false, "record the attempt in the download ledger")
	rootCmd.AddCommand(downloadCmd)
}
