package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adaobialike/ikeji-outreach/pkg/clients/apiclient"
	"github.com/adaobialike/ikeji-outreach/pkg/core/model"
	"github.com/adaobialike/ikeji-outreach/pkg/core/services"
)

// CampaignsCmd creates the campaigns command group
func CampaignsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "campaigns",
		Short: "Manage fundraising campaigns",
	}
	cmd.AddCommand(campaignsListCmd(app))
	cmd.AddCommand(campaignsFeatureCmd(app))
	cmd.AddCommand(campaignsShareCmd(app))
	return cmd
}

func campaignsListCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List campaigns with funding progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status, _ := cmd.Flags().GetString("status")
			category, _ := cmd.Flags().GetString("category")
			search, _ := cmd.Flags().GetString("search")

			dash := services.NewDashboard("campaigns", app.Client.ListCampaigns, matchCampaign, app.Cache, app.Logger)
			dash.SetSearch(search)
			err := dash.SetFilters(app.Ctx, apiclient.ListParams{Status: status, Category: category})
			if err != nil && dash.Source != services.SourceDegraded {
				return err
			}

			printDegradedBanner(dash.Source, dash.LastError)
			items := dash.Visible()
			fmt.Printf("\nFound %d campaigns:\n\n", len(items))
			for _, c := range items {
				featured := ""
				if c.IsFeatured {
					featured = " ★"
				}
				fmt.Printf("- [%s]%s %s (%s)\n", c.Status, featured, c.Title, c.ID)
				fmt.Printf("    %.0f / %.0f %s (%.1f%%)\n", c.CurrentAmount, c.GoalAmount, c.Currency, c.ProgressPercent())
			}
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().String("status", "", "Filter by status")
	cmd.Flags().String("category", "", "Filter by category")
	cmd.Flags().String("search", "", "Local search within the fetched page")
	return cmd
}

func campaignsFeatureCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feature <id>",
		Short: "Toggle a campaign's featured flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			off, _ := cmd.Flags().GetBool("off")

			if err := services.SetCampaignFeatured(app.Ctx, app.Client, app.Logger, args[0], !off); err != nil {
				return err
			}
			app.Cache.Invalidate("campaigns")

			if off {
				fmt.Printf("\n✓ Campaign %s unfeatured\n\n", args[0])
			} else {
				fmt.Printf("\n✓ Campaign %s featured\n\n", args[0])
			}
			return nil
		},
	}
	cmd.Flags().Bool("off", false, "Remove the featured flag instead")
	return cmd
}

func campaignsShareCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "share <id> <platform>",
		Short: "Record a campaign share (best effort, never fails)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			utmSource, _ := cmd.Flags().GetString("utm-source")
			utmMedium, _ := cmd.Flags().GetString("utm-medium")

			app.Client.TrackCampaignShare(app.Ctx, args[0], args[1], utmSource, utmMedium)
			fmt.Printf("\n✓ Share recorded for campaign %s on %s\n\n", args[0], args[1])
			return nil
		},
	}
	cmd.Flags().String("utm-source", "", "Override the derived utm_source")
	cmd.Flags().String("utm-medium", "", "Override the derived utm_medium")
	return cmd
}

func matchCampaign(c model.Campaign, term string) bool {
	return services.ContainsFold(c.Title, term) ||
		services.ContainsFold(c.Description, term) ||
		services.ContainsFold(c.Category, term)
}
