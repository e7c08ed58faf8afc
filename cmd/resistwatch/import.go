package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/resistwatch/resistwatch/internal/recalc"
	"github.com/resistwatch/resistwatch/internal/store"
	"github.com/resistwatch/resistwatch/pkg/scoring"
)

// importFile is the YAML seed format: politicians with their committees
// and actions. Actions marked verified are verified as the importing user
// and scored at the end of the run.
type importFile struct {
	Politicians []importPolitician `yaml:"politicians"`
}

type importPolitician struct {
	Name       string            `yaml:"name"`
	Party      *string           `yaml:"party"`
	State      *string           `yaml:"state"`
	Position   *string           `yaml:"position"`
	Committees []importCommittee `yaml:"committees"`
	Actions    []importAction    `yaml:"actions"`
}

type importCommittee struct {
	Name string  `yaml:"name"`
	Role *string `yaml:"role"`
}

type importAction struct {
	ActionType     string  `yaml:"action_type"`
	ActionDate     string  `yaml:"action_date"` // YYYY-MM-DD
	Description    string  `yaml:"description"`
	SourceURL      *string `yaml:"source_url"`
	Points         int     `yaml:"points"`
	Category       string  `yaml:"category"`
	SubCategory    *string `yaml:"sub_category"`
	ImpactLevel    *string `yaml:"impact_level"`
	RiskLevel      *string `yaml:"risk_level"`
	StrategicValue *string `yaml:"strategic_value"`
	HasFollowUp    bool    `yaml:"has_follow_up"`
	Verified       bool    `yaml:"verified"`
}

func newImportCmd() *cobra.Command {
	var (
		databaseURL string
		configPath  string
		verifier    string
	)

	cmd := &cobra.Command{
		Use:   "import <seed.yaml>",
		Short: "Import politicians, committees, and actions from YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read seed file: %w", err)
			}
			var seed importFile
			if err := yaml.Unmarshal(data, &seed); err != nil {
				return fmt.Errorf("parse seed file: %w", err)
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

			storeSvc := store.NewService(db)
			recalcSvc := recalc.NewService(db, engine, nil)

			return runImport(cmd.Context(), storeSvc, recalcSvc, &seed, verifier)
		},
	}

	cmd.Flags().StringVar(&databaseURL, "database-url", "", "Postgres connection string (default: $DATABASE_URL)")
	cmd.Flags().StringVar(&configPath, "config", "resistwatch.yaml", "Path to config file")
	cmd.Flags().StringVar(&verifier, "verifier", "import", "Verifier recorded on pre-verified actions")

	return cmd
}

func runImport(ctx context.Context, storeSvc *store.Service, recalcSvc *recalc.Service, seed *importFile, verifier string) error {
	created, verified := 0, 0

	for _, ip := range seed.Politicians {
		p, err := storeSvc.CreatePolitician(ctx, ip.Name, ip.Party, ip.State, ip.Position, nil)
		if err != nil {
			return fmt.Errorf("import %s: %w", ip.Name, err)
		}

		for _, ic := range ip.Committees {
			if _, err := storeSvc.AddCommittee(ctx, p.ID, ic.Name, ic.Role, nil); err != nil {
				return fmt.Errorf("import %s committee %s: %w", ip.Name, ic.Name, err)
			}
		}

		for _, ia := range ip.Actions {
			date, err := time.Parse("2006-01-02", ia.ActionDate)
			if err != nil {
				return fmt.Errorf("import %s: action date %q: %w", ip.Name, ia.ActionDate, err)
			}

			a, err := storeSvc.CreateAction(ctx, store.NewActionInput{
				PoliticianID:   p.ID,
				Type:           scoring.ActionType(ia.ActionType),
				Date:           date,
				Description:    ia.Description,
				SourceURL:      ia.SourceURL,
				Points:         ia.Points,
				Category:       scoring.Category(ia.Category),
				SubCategory:    ia.SubCategory,
				ImpactLevel:    ia.ImpactLevel,
				RiskLevel:      ia.RiskLevel,
				StrategicValue: ia.StrategicValue,
				HasFollowUp:    ia.HasFollowUp,
			})
			if err != nil {
				return fmt.Errorf("import %s: %w", ip.Name, err)
			}
			created++

			if ia.Verified {
				if _, err := storeSvc.MarkVerified(ctx, a.ID, verifier); err != nil {
					return fmt.Errorf("verify imported action %s: %w", a.ID, err)
				}
				verified++
			}
		}

		if _, err := recalcSvc.Recalculate(ctx, p.ID); err != nil {
			return fmt.Errorf("score %s after import: %w", ip.Name, err)
		}
	}

	fmt.Printf("imported %d politicians, %d actions (%d verified)\n",
		len(seed.Politicians), created, verified)
	return nil
}
