package cmd

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"github.com/tejaswik02/campusplace/internal/api"
	"github.com/tejaswik02/campusplace/internal/matcher"
	"github.com/tejaswik02/campusplace/internal/store"
	"github.com/tejaswik02/campusplace/pkg/models"
)

var opportunitiesCmd = &cobra.Command{
	Use:     "opportunities",
	Aliases: []string{"opps"},
	Short:   "Browse open opportunities",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := appFromCmd(cmd)
		if err != nil {
			return err
		}

		if _, err := a.RequireSession(store.TokenKey); err != nil {
			return fmt.Errorf("log in first with 'campusplace login': %w", err)
		}

		opps, err := a.API.ListOpportunities(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load opportunities: %w", err)
		}

		if len(opps) == 0 {
			fmt.Println("No open opportunities right now.")
			return nil
		}

		// Rank by how well each posting fits the draft preferences.
		draft := loadDraftForm(a).Data
		scores := make(map[string]float64, len(opps))
		for _, opp := range opps {
			scores[opp.ID] = matcher.Score(opp, &draft)
		}
		sort.SliceStable(opps, func(i, j int) bool {
			return scores[opps[i].ID] > scores[opps[j].ID]
		})

		fmt.Println(titleStyle.Render("Open Opportunities"))
		for i, opp := range opps {
			fmt.Printf("\n%d. %s at %s\n", i+1, opp.PositionName(), opp.Company.Name)
			fmt.Printf("   %s %s\n", labelStyle.Render("ID:"), opp.ID)
			if opp.Location != "" {
				fmt.Printf("   %s %s\n", labelStyle.Render("Location:"), opp.Location)
			}
			if opp.Deadline != "" {
				fmt.Printf("   %s %s\n", labelStyle.Render("Deadline:"), formatDeadline(opp.Deadline))
			}
			fmt.Printf("   %s %.0f%%\n", labelStyle.Render("Match:"), scores[opp.ID]*100)
			if opp.Description != "" {
				fmt.Printf("   %s\n", opp.Description)
			}
		}
		return nil
	},
}

var applyCmd = &cobra.Command{
	Use:   "apply <opportunity-id>",
	Short: "Apply to an opportunity",
	Args:  cobra.ExactArgs(1),
	Example: `  campusplace apply 66f1c2... --note "Available from June"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := appFromCmd(cmd)
		if err != nil {
			return err
		}

		if _, err := a.RequireSession(store.TokenKey); err != nil {
			return fmt.Errorf("log in first with 'campusplace login': %w", err)
		}

		opps, err := a.API.ListOpportunities(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load opportunities: %w", err)
		}

		var target *models.Opportunity
		for _, opp := range opps {
			if opp.ID == args[0] {
				target = opp
				break
			}
		}
		if target == nil {
			return fmt.Errorf("no opportunity with ID %q", args[0])
		}

		note, _ := cmd.Flags().GetString("note")
		if err := a.API.Apply(cmd.Context(), applyRequest(target, note)); err != nil {
			return fmt.Errorf("application failed: %w", err)
		}

		fmt.Printf("✓ Applied for %s at %s\n", target.PositionName(), target.Company.Name)
		return nil
	},
}

// applyRequest builds the application payload from a posting; the company
// ID and position live on the posting itself.
func applyRequest(opp *models.Opportunity, note string) *api.ApplyRequest {
	return &api.ApplyRequest{
		OpportunityID:  opp.ID,
		CompanyID:      opp.Company.ID,
		Position:       opp.PositionName(),
		AdditionalInfo: note,
	}
}

// formatDeadline renders a backend timestamp as a date, passing unparseable
// values through untouched.
func formatDeadline(raw string) string {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("Jan 2, 2006")
		}
	}
	return raw
}

func init() {
	rootCmd.AddCommand(opportunitiesCmd)
	rootCmd.AddCommand(applyCmd)

	applyCmd.Flags().String("note", "", "Additional information for the recruiter")
}
