package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adaobialike/ikeji-outreach/pkg/clients/apiclient"
	"github.com/adaobialike/ikeji-outreach/pkg/core/model"
	"github.com/adaobialike/ikeji-outreach/pkg/core/services"
)

// PartnershipsCmd creates the partnerships command group
func PartnershipsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "partnerships",
		Short: "Triage partnership applications",
	}
	cmd.AddCommand(partnershipsListCmd(app))
	cmd.AddCommand(partnershipsTriageCmd(app))
	return cmd
}

func partnershipsListCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List partnership applications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status, _ := cmd.Flags().GetString("status")
			priority, _ := cmd.Flags().GetString("priority")
			search, _ := cmd.Flags().GetString("search")

			dash := services.NewDashboard("partnerships", app.Client.ListPartnerships, matchPartnership, app.Cache, app.Logger)
			dash.SetSearch(search)
			err := dash.SetFilters(app.Ctx, apiclient.ListParams{Status: status, Priority: priority})
			if err != nil && dash.Source != services.SourceDegraded {
				return err
			}

			printDegradedBanner(dash.Source, dash.LastError)
			items := dash.Visible()
			fmt.Printf("\nFound %d applications:\n\n", len(items))
			for _, p := range items {
				assigned := p.AssignedTo
				if assigned == "" {
					assigned = "unassigned"
				}
				fmt.Printf("- [%s/%s] %s — %s <%s> (%s, %s)\n",
					p.Status, p.Priority, p.OrganizationName, p.ContactName, p.Email, assigned, p.ID)
			}
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().String("status", "", "Filter by status")
	cmd.Flags().String("priority", "", "Filter by priority")
	cmd.Flags().String("search", "", "Local search within the fetched page")
	return cmd
}

func partnershipsTriageCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "triage <id>",
		Short: "Apply a triage decision to an application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, _ := cmd.Flags().GetString("status")
			priority, _ := cmd.Flags().GetString("priority")
			assign, _ := cmd.Flags().GetString("assign")
			notes, _ := cmd.Flags().GetString("notes")

			triage := services.Triage{
				Status:     model.PartnershipStatus(status),
				Priority:   model.Priority(priority),
				AssignedTo: assign,
				Notes:      notes,
			}
			if err := services.TriagePartnership(app.Ctx, app.Client, app.Logger, args[0], triage); err != nil {
				return err
			}
			app.Cache.Invalidate("partnerships")
			fmt.Printf("\n✓ Application %s triaged\n\n", args[0])
			return nil
		},
	}

	cmd.Flags().String("status", "", "New status (new, under-review, approved, rejected, in-discussion)")
	cmd.Flags().String("priority", "", "New priority (low, medium, high)")
	cmd.Flags().String("assign", "", "Assignee")
	cmd.Flags().String("notes", "", "Triage notes")
	return cmd
}

func matchPartnership(p model.PartnershipApplication, term string) bool {
	return services.ContainsFold(p.OrganizationName, term) ||
		services.ContainsFold(p.ContactName, term) ||
		services.ContainsFold(p.Email, term)
}
