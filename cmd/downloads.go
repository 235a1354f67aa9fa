package cmd

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/knightsbridge/faqsite/internal/attempts"
	"github.com/knightsbridge/faqsite/internal/extension"
)

var (
	downloadsStrategy string
	downloadsOutcome  string
	downloadsSince    time.Duration
	downloadsLimit    int
	downloadsSummary  bool
)

var downloadsCmd = &cobra.Command{
	Use:   "downloads",
	Short: "Show recorded extension download attempts",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		database, ledger, err := openLedger(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		if downloadsSummary {
			sum, err := ledger.Summarize(cmd.Context())
			if err != nil {
				return err
			}
			printSummary(sum)
			return nil
		}

		filter := attempts.QueryFilter{
			Strategy: downloadsStrategy,
			Outcome:  extension.Outcome(downloadsOutcome),
			Limit:    downloadsLimit,
		}
		if downloadsSince > 0 {
			since := time.Now().Add(-downloadsSince)
			filter.Since = &since
		}
		entries, err := ledger.Query(cmd.Context(), filter)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("No download attempts recorded.")
			return nil
		}
		for _, e := range entries {
			fmt.Printf("%s  %-6s %-9s %8d  %s\n",
				e.Timestamp.Local().Format(time.DateTime), e.Strategy, e.Outcome, e.Bytes, e.Detail)
		}
		return nil
	},
}

func printSummary(sum *attempts.Summary) {
	fmt.Printf("%d attempt(s)\n", sum.Total)
	names := make([]string, 0, len(sum.Counts))
	for name := range sum.Counts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		c := sum.Counts[name]
		fmt.Printf("  %-6s delivered=%d rejected=%d failed=%d\n", name,
			c[extension.OutcomeDelivered], c[extension.OutcomeRejected], c[extension.OutcomeFailed])
	}
}

func init() {
	downloadsCmd.Flags().StringVar(&downloadsStrategy, "strategy", "", "only show attempts of this strategy (fetch, link, frame)")
	downloadsCmd.Flags().StringVar(&downloadsOutcome, "outcome", "", "only show attempts with this outcome (delivered, rejected, failed)")
	downloadsCmd.Flags().DurationVar(&downloadsSince, "since", 0, "only show attempts newer than this")
	downloadsCmd.Flags().IntVar(&downloadsLimit, "limit", 20, "maximum number of attempts to show")
	downloadsCmd.Flags().BoolVar(&downloadsSummary, "summary", false, "print counts per strategy and outcome")
	rootCmd.AddCommand(downloadsCmd)
}
