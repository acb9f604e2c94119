package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adaobialike/ikeji-outreach/pkg/clients/apiclient"
	"github.com/adaobialike/ikeji-outreach/pkg/core/model"
	"github.com/adaobialike/ikeji-outreach/pkg/core/services"
)

// BeneficiariesCmd creates the beneficiaries command group
func BeneficiariesCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "beneficiaries",
		Short: "Browse sponsorship beneficiaries",
	}
	cmd.AddCommand(beneficiariesListCmd(app))
	return cmd
}

func beneficiariesListCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List beneficiaries as the public sponsorship page shows them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			category, _ := cmd.Flags().GetString("category")
			limit, _ := cmd.Flags().GetInt("limit")

			dash := services.NewDashboard("beneficiaries", app.Client.ListBeneficiaries, matchBeneficiary, app.Cache, app.Logger)
			err := dash.SetFilters(app.Ctx, apiclient.ListParams{Category: category, Limit: limit})
			if err != nil && dash.Source != services.SourceDegraded {
				return err
			}

			printDegradedBanner(dash.Source, dash.LastError)
			items := dash.Visible()
			fmt.Printf("\nFound %d beneficiaries:\n\n", len(items))
			for _, b := range items {
				sponsored := ""
				if b.IsSponsored != nil && *b.IsSponsored {
					sponsored = " [sponsored]"
				}
				fmt.Printf("- %s (%s, %s)%s — %.0f/month (%s)\n",
					b.Name, b.Category, b.Location, sponsored, b.MonthlyCost, b.ID)
				if pct := b.SupportProgressPercent(); pct > 0 {
					fmt.Printf("    support year %.0f%% covered\n", pct)
				}
			}
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().String("category", "", "Filter by category (orphan, widow, family)")
	cmd.Flags().Int("limit", 20, "Page size")
	return cmd
}

func matchBeneficiary(b model.Beneficiary, term string) bool {
	return services.ContainsFold(b.Name, term) ||
		services.ContainsFold(b.Location, term)
}
