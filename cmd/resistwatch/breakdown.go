package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/resistwatch/resistwatch/internal/store"
	"github.com/resistwatch/resistwatch/pkg/scoring"
)

func newBreakdownCmd() *cobra.Command {
	var (
		databaseURL string
		outputFmt   string
	)

	cmd := &cobra.Command{
		Use:   "breakdown <politician-id>",
		Short: "Show a politician's full scoring breakdown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB(databaseURL)
			if err != nil {
				return err
			}
			defer db.Close()

			ctx := cmd.Context()
			svc := store.NewService(db)
			politicianID := args[0]

			p, err := svc.GetPolitician(ctx, politicianID)
			if err != nil {
				return err
			}
			sc, err := svc.GetScore(ctx, politicianID)
			if err != nil {
				return err
			}
			components, err := svc.Components(ctx, politicianID)
			if err != nil {
				return err
			}

			if outputFmt == "json" {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(map[string]any{
					"politician": p,
					"score":      sc,
					"components": components,
				})
			}

			renderBreakdown(os.Stdout, p, sc, components)
			return nil
		},
	}

	cmd.Flags().StringVar(&databaseURL, "database-url", "", "Postgres connection string (default: $DATABASE_URL)")
	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text or json")

	return cmd
}

func renderBreakdown(w io.Writer, p *store.Politician, sc *store.Score, components []store.Component) {
	fmt.Fprintf(w, "%s", p.Name)
	if p.Position != nil {
		fmt.Fprintf(w, " (%s)", *p.Position)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Total: %d  Level: %s  Status: %s\n", sc.TotalScore, sc.ResistanceLevel, sc.Status())
	fmt.Fprintf(w, "Integrity: %d  Infrastructure: %d  Performance/Impact: %d\n",
		sc.StrategicIntegrity, sc.InfrastructureUnderstanding, sc.PerformanceVsImpact)
	if sc.DaysOfSilence == scoring.DaysOfSilenceSentinel {
		fmt.Fprintln(w, "Days of silence: no verified activity")
	} else {
		fmt.Fprintf(w, "Days of silence: %d\n", sc.DaysOfSilence)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "\nCATEGORY\tSCORE\tWEIGHT")
	for i := range components {
		c := &components[i]
		fmt.Fprintf(tw, "%s\t%d\t%.2f\n", c.Category, c.Score, c.Weight)
	}
	tw.Flush()
}
