package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/adaobialike/ikeji-outreach/pkg/clients/apiclient"
	"github.com/adaobialike/ikeji-outreach/pkg/core/model"
	"github.com/adaobialike/ikeji-outreach/pkg/core/services"
)

// HomesCmd creates the homes command group
func HomesCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "homes",
		Short: "Manage sponsorship homes",
	}
	cmd.AddCommand(homesListCmd(app))
	cmd.AddCommand(homesActivityCmd(app))
	cmd.AddCommand(homesNeedsCmd(app))
	cmd.AddCommand(homesSupportCmd(app))
	cmd.AddCommand(homesScheduleCmd(app))
	return cmd
}

func homesListCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sponsorship homes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status, _ := cmd.Flags().GetString("status")
			search, _ := cmd.Flags().GetString("search")

			dash := services.NewDashboard("homes", app.Client.ListHomes, matchHome, app.Cache, app.Logger)
			dash.SetSearch(search)
			err := dash.SetFilters(app.Ctx, apiclient.ListParams{Status: status})
			if err != nil && dash.Source != services.SourceDegraded {
				return err
			}

			printDegradedBanner(dash.Source, dash.LastError)
			items := dash.Visible()
			fmt.Printf("\nFound %d homes:\n\n", len(items))
			for _, h := range items {
				operating := "operating"
				if !h.IsActive {
					operating = "paused"
				}
				fmt.Printf("- [%s/%s] %s, %s — %d children (%s)\n",
					h.Status, operating, h.Name, h.Location, h.OrphanCount, h.ID)
				if h.NextOutreachDate != "" {
					fmt.Printf("    next visit %s\n", h.NextOutreachDate)
				}
			}
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().String("status", "", "Filter by status")
	cmd.Flags().String("search", "", "Local search within the fetched page")
	return cmd
}

func homesActivityCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "activity <id>",
		Short: "Update a home's visibility status and/or operating flag",
		Long: `Update either or both of a home's activity signals. The two are
independent: --status controls whether the home is listed publicly, while
--operating records whether the partnership is currently running.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var status *model.HomeStatus
			var isActive *bool

			if cmd.Flags().Changed("status") {
				s, _ := cmd.Flags().GetString("status")
				hs := model.HomeStatus(s)
				status = &hs
			}
			if cmd.Flags().Changed("operating") {
				v, _ := cmd.Flags().GetBool("operating")
				isActive = &v
			}

			if err := services.SetHomeActivity(app.Ctx, app.Client, app.Logger, args[0], status, isActive); err != nil {
				return err
			}
			app.Cache.Invalidate("homes")
			fmt.Printf("\n✓ Home %s updated\n\n", args[0])
			return nil
		},
	}

	cmd.Flags().String("status", "", "Public visibility (active, inactive)")
	cmd.Flags().Bool("operating", true, "Whether the partnership is operating")
	return cmd
}

func homesNeedsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "needs <id> <need,need,...>",
		Short: "Replace a home's needs list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			needs := parseCSV(args[1])
			if err := services.UpdateHomeNeeds(app.Ctx, app.Client, app.Logger, args[0], needs); err != nil {
				return err
			}
			app.Cache.Invalidate("homes")
			fmt.Printf("\n✓ Needs updated for home %s (%d items)\n\n", args[0], len(needs))
			return nil
		},
	}
}

func homesSupportCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "support <id> <monthly_amount>",
		Short: "Record the monthly support amount for a home",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q", args[1])
			}
			if err := services.UpdateHomeSupport(app.Ctx, app.Client, app.Logger, args[0], amount); err != nil {
				return err
			}
			app.Cache.Invalidate("homes")
			fmt.Printf("\n✓ Monthly support for home %s set to %.2f\n\n", args[0], amount)
			return nil
		},
	}
}

func homesScheduleCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "schedule <id>",
		Short: "Derive and record the home's next visit from its recurrence rule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := services.ScheduleHomeVisit(app.Ctx, app.Client, app.Logger, args[0], time.Now())
			if err != nil {
				return err
			}
			app.Cache.Invalidate("homes")

			fmt.Printf("\n✓ Next visit to %s scheduled!\n\n", result.Home.Name)
			fmt.Printf("Upcoming visits:\n")
			for i, visit := range result.Upcoming {
				fmt.Printf("  %2d. %s\n", i+1, visit.Format("2006-01-02 (Monday)"))
			}
			fmt.Println()
			return nil
		},
	}
}

func matchHome(h model.SponsorshipHome, term string) bool {
	return services.ContainsFold(h.Name, term) ||
		services.ContainsFold(h.Location, term)
}
