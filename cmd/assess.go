package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/jansahayak/sahayak-cli/internal/catalog"
	"github.com/jansahayak/sahayak-cli/internal/eligibility"
	"github.com/jansahayak/sahayak-cli/internal/profile"
)

var assessProfilePath string

var assessCmd = &cobra.Command{
	Use:   "assess <scheme-id>",
	Short: "Assess eligibility for one scheme",
	Long:  "Evaluates every eligibility rule of the given scheme against a citizen profile and prints the full assessment, including the document gap.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := loadProfileInput(assessProfilePath)
		if err != nil {
			return err
		}

		cat, err := catalog.Load(cfg.Catalog.Path)
		if err != nil {
			return err
		}

		scheme := cat.Get(args[0])
		if scheme == nil {
			return eris.Errorf("assess: unknown scheme %q", args[0])
		}

		return printJSON(eligibility.Assess(profile.Normalize(raw), *scheme))
	},
}

func init() {
	assessCmd.Flags().StringVar(&assessProfilePath, "profile", "-", "path to profile JSON (- for stdin)")
	rootCmd.AddCommand(assessCmd)
}
