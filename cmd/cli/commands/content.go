package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adaobialike/ikeji-outreach/pkg/clients/apiclient"
	"github.com/adaobialike/ikeji-outreach/pkg/core/model"
	"github.com/adaobialike/ikeji-outreach/pkg/core/services"
)

// ContentCmd creates the content command group
func ContentCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "content",
		Short: "Manage site content records",
	}
	cmd.AddCommand(contentListCmd(app))
	cmd.AddCommand(contentStatusCmd(app, "publish", model.StatusPublished))
	cmd.AddCommand(contentStatusCmd(app, "archive", model.StatusArchived))
	cmd.AddCommand(contentBulkCmd(app))
	cmd.AddCommand(contentDeleteCmd(app))
	return cmd
}

func contentStatusCmd(app *AppContext, verb string, status model.ContentStatus) *cobra.Command {
	return &cobra.Command{
		Use:   verb + " <id>",
		Short: "Set a single record's status to " + string(status),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Client.PatchContent(app.Ctx, args[0], map[string]any{"status": string(status)}); err != nil {
				return fmt.Errorf("failed to %s record: %w", verb, err)
			}
			app.Cache.Invalidate("content")
			fmt.Printf("\n✓ Record %s is now %s\n\n", args[0], status)
			return nil
		},
	}
}

func contentListCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List content records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			contentType, _ := cmd.Flags().GetString("type")
			status, _ := cmd.Flags().GetString("status")
			search, _ := cmd.Flags().GetString("search")
			limit, _ := cmd.Flags().GetInt("limit")

			dash := services.NewDashboard("content", app.Client.ListContent, matchContent, app.Cache, app.Logger)
			dash.SetSearch(search)
			err := dash.SetFilters(app.Ctx, apiclient.ListParams{
				Type:   contentType,
				Status: status,
				Limit:  limit,
			})
			if err != nil && dash.Source != services.SourceDegraded {
				return err
			}

			printDegradedBanner(dash.Source, dash.LastError)
			items := dash.Visible()
			fmt.Printf("\nFound %d of %d records:\n\n", len(items), dash.Total)
			for _, rec := range items {
				fmt.Printf("- [%s/%s] %s (%s)\n", rec.Type, rec.Status, rec.Title, rec.ID)
			}
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().String("type", "", "Filter by content type")
	cmd.Flags().String("status", "", "Filter by status")
	cmd.Flags().String("search", "", "Local search within the fetched page")
	cmd.Flags().Int("limit", 50, "Page size")
	return cmd
}

func contentBulkCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "bulk <publish|archive|delete> <id> [id...]",
		Short: "Apply an action to several records, one request per record",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			action := services.BulkAction(args[0])
			ids := args[1:]

			report, err := services.BulkContentAction(app.Ctx, app.Client, app.Logger, action, ids)
			if err != nil {
				return err
			}
			app.Cache.Invalidate("content")

			fmt.Printf("\nBatch %s finished\n\n", report.BatchID)
			for _, id := range report.Succeeded {
				fmt.Printf("  ✓ %s\n", id)
			}
			for _, f := range report.Failed {
				fmt.Printf("  ✗ %s: %v\n", f.ID, f.Err)
			}
			fmt.Println()

			if len(report.Failed) > 0 {
				return fmt.Errorf("%d of %d records failed", len(report.Failed), len(ids))
			}
			return nil
		},
	}
}

func contentDeleteCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a single content record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Client.DeleteContent(app.Ctx, args[0]); err != nil {
				return fmt.Errorf("failed to delete record: %w", err)
			}
			app.Cache.Invalidate("content")
			fmt.Printf("\n✓ Record %s deleted\n\n", args[0])
			return nil
		},
	}
}

func matchContent(rec model.ContentRecord, term string) bool {
	return services.ContainsFold(rec.Title, term) ||
		services.ContainsFold(rec.Slug, term) ||
		services.ContainsFold(rec.Excerpt, term)
}

func printDegradedBanner(source services.Source, lastErr error) {
	if source != services.SourceDegraded {
		return
	}
	fmt.Println("\n⚠️  DEGRADED: the API is unreachable; showing the last fetched page, which may be stale.")
	if lastErr != nil {
		fmt.Printf("   (%v)\n", lastErr)
	}
}

// parseCSV splits a comma-separated flag into trimmed values
func parseCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}
