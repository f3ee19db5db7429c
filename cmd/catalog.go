package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/jansahayak/sahayak-cli/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the scheme catalog",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List schemes in the catalog",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cat, err := catalog.Load(cfg.Catalog.Path)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tCRITERIA")
		for _, s := range cat.Schemes() {
			form := "structured"
			if s.Criteria.IsTextOnly() {
				form = "text"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.SchemeID, s.Name, s.Category, form)
		}
		w.Flush()
		fmt.Printf("\n%d scheme(s)\n", cat.Len())
		return nil
	},
}

var catalogShowCmd = &cobra.Command{
	Use:   "show <scheme-id>",
	Short: "Show one scheme record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.Load(cfg.Catalog.Path)
		if err != nil {
			return err
		}

		scheme := cat.Get(args[0])
		if scheme == nil {
			return eris.Errorf("catalog: unknown scheme %q", args[0])
		}
		return printJSON(scheme)
	},
}

func init() {
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogShowCmd)
	rootCmd.AddCommand(catalogCmd)
}
