package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/resistwatch/resistwatch/internal/recalc"
	"github.com/resistwatch/resistwatch/pkg/config"
	"github.com/resistwatch/resistwatch/pkg/scoring"
)

func newRecalcCmd() *cobra.Command {
	var (
		databaseURL string
		configPath  string
		all         bool
	)

	cmd := &cobra.Command{
		Use:   "recalc [politician-id]",
		Short: "Recalculate resistance scores",
		Long:  `Recomputes scores from verified actions, for one politician or for everyone.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !all && len(args) == 0 {
				return fmt.Errorf("pass a politician ID or --all")
			}
			if all && len(args) > 0 {
				return fmt.Errorf("--all does not take a politician ID")
			}

			engine, err := buildEngine(configPath)
			if err != nil {
				return err
			}

			db, err := openDB(databaseURL)
			if err != nil {
				return err
			}
			defer db.Close()

			svc := recalc.NewService(db, engine, nil)
			ctx := cmd.Context()

			if all {
				processed, err := svc.RecalculateAll(ctx)
				if err != nil {
					return err
				}
				fmt.Printf("recalculated %d politicians\n", processed)
				return nil
			}

			result, err := svc.Recalculate(ctx, args[0])
			if err != nil {
				return err
			}
			printResult(os.Stdout, args[0], result)
			return nil
		},
	}

	cmd.Flags().StringVar(&databaseURL, "database-url", "", "Postgres connection string (default: $DATABASE_URL)")
	cmd.Flags().StringVar(&configPath, "config", "resistwatch.yaml", "Path to config file")
	cmd.Flags().BoolVar(&all, "all", false, "Recalculate every politician")

	return cmd
}

func printResult(w io.Writer, politicianID string, r *scoring.Result) {
	fmt.Fprintf(w, "politician %s\n", politicianID)
	fmt.Fprintf(w, "Total: %d  Level: %s  Status: %s\n", r.TotalScore, r.ResistanceLevel, r.Status)
	fmt.Fprintf(w, "Integrity: %d  Infrastructure: %d  Performance/Impact: %d\n",
		r.StrategicIntegrity, r.InfrastructureUnderstanding, r.PerformanceVsImpact)
	if r.DaysOfSilence == scoring.DaysOfSilenceSentinel {
		fmt.Fprintln(w, "Days of silence: no verified activity")
	} else {
		fmt.Fprintf(w, "Days of silence: %d\n", r.DaysOfSilence)
	}
}

func buildEngine(configPath string) (*scoring.Engine, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	weights, err := cfg.EngineWeights()
	if err != nil {
		return nil, err
	}
	return scoring.NewEngine(weights), nil
}
