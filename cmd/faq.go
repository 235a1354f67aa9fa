package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/knightsbridge/faqsite/internal/faq"
	"github.com/knightsbridge/faqsite/internal/install"
)

var faqJSON bool

var faqCmd = &cobra.Command{
	Use:   "faq [id]",
	Short: "Print the frequently asked questions",
	Long:  `Prints every FAQ entry in display order, or a single entry when an id is given.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entries := faq.Entries()
		if len(args) == 1 {
			e, ok := faq.Lookup(args[0])
			if !ok {
				return fmt.Errorf("no FAQ entry with id %q", args[0])
			}
			entries = []faq.Entry{e}
		}

		if faqJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(entries)
		}

		for i, e := range entries {
			if i > 0 {
				fmt.Println()
			}
			fmt.Printf("%s. %s\n   %s\n", e.ID, e.Question, e.Answer)
		}
		return nil
	},
}

var instructionsCmd = &cobra.Command{
	Use:   "instructions",
	Short: "Print the Signify extension install instructions",
	Run: func(cmd *cobra.Command, args []string) {
		g := install.Instructions()
		fmt.Println(g.Title)
		for _, s := range g.Install {
			fmt.Printf("  %d. %s\n", s.Number, s.Text)
		}
		fmt.Println("\nConfiguration:")
		for _, s := range g.Configuration {
			fmt.Printf("  %d. %s\n", s.Number, s.Text)
		}
	},
}

func init() {
	faqCmd.Flags().BoolVar(&faqJSON, "json", false, "print JSON instead of text")
	rootCmd.AddCommand(faqCmd)
	rootCmd.AddCommand(instructionsCmd)
}
