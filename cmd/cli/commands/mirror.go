package commands

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/adaobialike/ikeji-outreach/pkg/core/services"
)

// MirrorCmd groups the local mirror operations. The mirror is optional; both
// subcommands fail cleanly when OUTREACH_MIRROR_DSN is not set.
func MirrorCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mirror",
		Short: "Sync and query the local reporting mirror",
	}
	cmd.AddCommand(mirrorSyncCmd(app))
	cmd.AddCommand(mirrorSummaryCmd(app))
	return cmd
}

var errNoMirror = errors.New("no mirror configured, set OUTREACH_MIRROR_DSN")

func mirrorSyncCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Pull current content and campaigns into the mirror",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Mirror == nil {
				return errNoMirror
			}
			report, err := services.SyncMirror(app.Ctx, app.Client, app.Mirror, app.Logger)
			if err != nil {
				return err
			}
			fmt.Printf("Synced %d content records and %d campaigns\n", report.ContentRecords, report.Campaigns)
			return nil
		},
	}
}

func mirrorSummaryCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Report mirrored content counts and fundraising totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Mirror == nil {
				return errNoMirror
			}

			counts, err := app.Mirror.ContentSummary(app.Ctx)
			if err != nil {
				return err
			}
			fmt.Println("Content:")
			for _, sc := range counts {
				fmt.Printf("  %-30s %d\n", sc.Group, sc.Count)
			}
			if len(counts) == 0 {
				fmt.Println("  (nothing mirrored yet)")
			}

			totals, err := app.Mirror.CampaignTotals(app.Ctx)
			if err != nil {
				return err
			}
			fmt.Println("Raised (active and completed campaigns):")
			currencies := make([]string, 0, len(totals))
			for currency := range totals {
				currencies = append(currencies, currency)
			}
			sort.Strings(currencies)
			for _, currency := range currencies {
				fmt.Printf("  %s %.2f\n", currency, totals[currency])
			}
			if len(totals) == 0 {
				fmt.Println("  (nothing mirrored yet)")
			}
			return nil
		},
	}
}
