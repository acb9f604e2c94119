package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adaobialike/ikeji-outreach/pkg/clients/apiclient"
	"github.com/adaobialike/ikeji-outreach/pkg/core/model"
	"github.com/adaobialike/ikeji-outreach/pkg/core/services"
)

// TestimonialsCmd creates the testimonials command group
func TestimonialsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "testimonials",
		Short: "Moderate testimonials",
	}
	cmd.AddCommand(testimonialsListCmd(app))
	cmd.AddCommand(testimonialsModerateCmd(app, "approve", model.TestimonialApproved))
	cmd.AddCommand(testimonialsModerateCmd(app, "reject", model.TestimonialRejected))
	cmd.AddCommand(testimonialsFeatureCmd(app))
	return cmd
}

func testimonialsListCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List testimonials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status, _ := cmd.Flags().GetString("status")
			search, _ := cmd.Flags().GetString("search")

			dash := services.NewDashboard("testimonials", app.Client.ListTestimonials, matchTestimonial, app.Cache, app.Logger)
			dash.SetSearch(search)
			err := dash.SetFilters(app.Ctx, apiclient.ListParams{Status: status})
			if err != nil && dash.Source != services.SourceDegraded {
				return err
			}

			printDegradedBanner(dash.Source, dash.LastError)
			items := dash.Visible()
			fmt.Printf("\nFound %d testimonials:\n\n", len(items))
			for _, t := range items {
				featured := ""
				if t.IsFeatured {
					featured = " ★"
				}
				fmt.Printf("- [%s]%s %s (%s, %d/5) — %s\n", t.Status, featured, t.Name, t.Role, t.Rating, t.ID)
			}
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().String("status", "", "Filter by status (pending, approved, rejected)")
	cmd.Flags().String("search", "", "Local search within the fetched page")
	return cmd
}

func testimonialsModerateCmd(app *AppContext, verb string, decision model.TestimonialStatus) *cobra.Command {
	return &cobra.Command{
		Use:   verb + " <id>",
		Short: fmt.Sprintf("Mark a testimonial %s", decision),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := services.ModerateTestimonial(app.Ctx, app.Client, app.Logger, args[0], decision); err != nil {
				return err
			}
			app.Cache.Invalidate("testimonials")
			fmt.Printf("\n✓ Testimonial %s %s\n\n", args[0], decision)
			return nil
		},
	}
}

func testimonialsFeatureCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feature <id>",
		Short: "Feature an approved testimonial on the public site",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			off, _ := cmd.Flags().GetBool("off")

			// Featuring is gated on approval, so fetch the current record
			// to check its status client-side first.
			res, err := app.Client.ListTestimonials(app.Ctx, apiclient.ListParams{})
			if err != nil {
				return fmt.Errorf("failed to load testimonials: %w", err)
			}
			var target *model.Testimonial
			for i := range res.Items {
				if res.Items[i].ID == args[0] {
					target = &res.Items[i]
					break
				}
			}
			if target == nil {
				return fmt.Errorf("testimonial %s not found", args[0])
			}

			if err := services.SetTestimonialFeatured(app.Ctx, app.Client, app.Logger, target, !off); err != nil {
				return err
			}
			app.Cache.Invalidate("testimonials")
			fmt.Printf("\n✓ Testimonial %s updated\n\n", args[0])
			return nil
		},
	}
	cmd.Flags().Bool("off", false, "Remove the featured flag instead")
	return cmd
}

func matchTestimonial(t model.Testimonial, term string) bool {
	return services.ContainsFold(t.Name, term) ||
		services.ContainsFold(t.Role, term) ||
		services.ContainsFold(t.Content, term)
}
