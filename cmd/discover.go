package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jansahayak/sahayak-cli/internal/catalog"
	"github.com/jansahayak/sahayak-cli/internal/discovery"
	"github.com/jansahayak/sahayak-cli/internal/model"
	"github.com/jansahayak/sahayak-cli/internal/profile"
)

var (
	discoverProfilePath string
	discoverJSON        bool
)

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Discover relevant schemes for a profile",
	Long:  "Filters the scheme catalog against a citizen profile and ranks the surviving schemes by relevance. No LLM calls are made.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		raw, err := loadProfileInput(discoverProfilePath)
		if err != nil {
			return err
		}

		cat, err := catalog.Load(cfg.Catalog.Path)
		if err != nil {
			return err
		}

		result := discovery.Discover(profile.Normalize(raw), cat.Schemes())

		if discoverJSON {
			return printJSON(result)
		}
		formatDiscovery(result)
		return nil
	},
}

func formatDiscovery(result model.DiscoveryResult) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TIER\tSCHEME\tSCORE\tCONFIDENCE")
	tiers := []struct {
		name    string
		matches []model.SchemeMatch
	}{
		{"high", result.HighlyRelevant},
		{"medium", result.ModeratelyRelevant},
		{"low", result.LowRelevance},
	}
	for _, tier := range tiers {
		for _, m := range tier.matches {
			fmt.Fprintf(w, "%s\t%s\t%.3f\t%s\n", tier.name, m.Name, m.RelevanceScore, m.ConfidenceLevel)
		}
	}
	w.Flush()
	fmt.Printf("\n%d scheme(s) found\n", result.TotalFound)
}

func init() {
	discoverCmd.Flags().StringVar(&discoverProfilePath, "profile", "-", "path to profile JSON (- for stdin)")
	discoverCmd.Flags().BoolVar(&discoverJSON, "json", false, "output JSON instead of a table")
	rootCmd.AddCommand(discoverCmd)
}
