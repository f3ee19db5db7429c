package main

import (
	"github.com/spf13/cobra"

	"github.com/jansahayak/sahayak-cli/internal/model"
)

var runProfilePath string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full advisory pipeline for a profile",
	Long:  "Discovers relevant schemes, assesses the top candidates rule by rule, enriches the results with the configured LLM, and builds an action plan. The run is persisted with its decision log.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		raw, err := loadProfileInput(runProfilePath)
		if err != nil {
			return err
		}

		env, err := initEnv(ctx, "run")
		if err != nil {
			return err
		}
		defer env.Close()

		run, err := env.pipe.Run(ctx, raw)
		if err != nil {
			return err
		}
		return printJSON(run)
	},
}

// planCmd is a convenience view over run: it executes the same pipeline but
// prints only the resulting action plan.
var planProfilePath string

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Produce an action plan for a profile",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		raw, err := loadProfileInput(planProfilePath)
		if err != nil {
			return err
		}

		env, err := initEnv(ctx, "run")
		if err != nil {
			return err
		}
		defer env.Close()

		run, err := env.pipe.Run(ctx, raw)
		if err != nil {
			return err
		}

		plan := run.Result.Plan
		if plan == nil {
			plan = &model.ActionPlan{}
		}
		return printJSON(plan)
	},
}

func init() {
	runCmd.Flags().StringVar(&runProfilePath, "profile", "-", "path to profile JSON (- for stdin)")
	planCmd.Flags().StringVar(&planProfilePath, "profile", "-", "path to profile JSON (- for stdin)")
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(planCmd)
}
