package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/adaobialike/ikeji-outreach/pkg/clients/apiclient"
	"github.com/adaobialike/ikeji-outreach/pkg/core/editor"
	"github.com/adaobialike/ikeji-outreach/pkg/core/model"
	"github.com/adaobialike/ikeji-outreach/pkg/core/services"
	"github.com/adaobialike/ikeji-outreach/pkg/imaging"
)

// OutreachCmd creates the outreach command group
func OutreachCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "outreach",
		Short: "Manage outreach events",
	}
	cmd.AddCommand(outreachListCmd(app))
	cmd.AddCommand(outreachCreateCmd(app))
	cmd.AddCommand(outreachUpdateCmd(app))
	return cmd
}

// outreachForm is the YAML form file an operator fills in. The JSON
// sub-schema fields stay free text, exactly as they would in the web
// editor's textareas, and are only parsed at submit time.
type outreachForm struct {
	Title       string `yaml:"title"`
	Slug        string `yaml:"slug,omitempty"`
	Description string `yaml:"description"`
	Excerpt     string `yaml:"excerpt,omitempty"`
	Status      string `yaml:"status"` // draft | upcoming | ongoing | completed
	Author      string `yaml:"author,omitempty"`
	PublishDate string `yaml:"publishDate,omitempty"`

	Location          string `yaml:"location"`
	EventDate         string `yaml:"eventDate"`
	Time              string `yaml:"time,omitempty"`
	ExpectedAttendees string `yaml:"expectedAttendees,omitempty"`
	BudgetPlanned     string `yaml:"budgetPlanned,omitempty"`
	Activities        string `yaml:"activities,omitempty"`  // JSON array
	FuturePlans       string `yaml:"futurePlans,omitempty"` // JSON array
	Organizer         string `yaml:"organizer,omitempty"`
	ContactInfo       string `yaml:"contactInfo,omitempty"`
	VolunteersNeeded  string `yaml:"volunteersNeeded,omitempty"`

	ActualAttendees        string `yaml:"actualAttendees,omitempty"`
	BudgetActual           string `yaml:"budgetActual,omitempty"`
	VolunteersParticipated string `yaml:"volunteersParticipated,omitempty"`
	VolunteerHours         string `yaml:"volunteerHours,omitempty"`
	Impact                 string `yaml:"impact,omitempty"` // JSON array
}

func (ff *outreachForm) apply(f *editor.Form) {
	f.Title = ff.Title
	f.Slug = ff.Slug
	f.Content = ff.Description
	f.Excerpt = ff.Excerpt
	if ff.Status != "" {
		f.Status = ff.Status
	}
	f.Author = ff.Author
	f.PublishDate = ff.PublishDate
	f.Location = ff.Location
	f.EventDate = ff.EventDate
	f.Time = ff.Time
	f.ExpectedAttendees = ff.ExpectedAttendees
	f.BudgetPlanned = ff.BudgetPlanned
	if ff.Activities != "" {
		f.ActivitiesJSON = ff.Activities
	}
	if ff.FuturePlans != "" {
		f.FuturePlansJSON = ff.FuturePlans
	}
	f.Organizer = ff.Organizer
	f.ContactInfo = ff.ContactInfo
	f.VolunteersNeeded = ff.VolunteersNeeded
	f.ActualAttendees = ff.ActualAttendees
	f.BudgetActual = ff.BudgetActual
	f.VolunteersParticipated = ff.VolunteersParticipated
	f.VolunteerHours = ff.VolunteerHours
	if ff.Impact != "" {
		f.ImpactJSON = ff.Impact
	}
}

func outreachListCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List outreach events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status, _ := cmd.Flags().GetString("status")
			search, _ := cmd.Flags().GetString("search")

			dash := services.NewDashboard("outreaches", app.Client.ListOutreaches, matchContent, app.Cache, app.Logger)
			dash.SetSearch(search)
			err := dash.SetFilters(app.Ctx, apiclient.ListParams{Status: status})
			if err != nil && dash.Source != services.SourceDegraded {
				return err
			}

			printDegradedBanner(dash.Source, dash.LastError)
			items := dash.Visible()
			fmt.Printf("\nFound %d outreach events:\n\n", len(items))
			for _, rec := range items {
				phase := "?"
				location := ""
				date := ""
				if d := rec.OutreachDetails; d != nil {
					phase = string(d.Status)
					location = d.Location
					date = d.EventDate
				}
				fmt.Printf("- [%s] %s — %s on %s (%s)\n", phase, rec.Title, location, date, rec.ID)
			}
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().String("status", "", "Filter by status")
	cmd.Flags().String("search", "", "Local search within the fetched page")
	return cmd
}

func outreachCreateCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <form.yaml>",
		Short: "Create an outreach event from a form file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			form := editor.NewForm(model.TypeOutreach)
			if err := loadFormFile(args[0], form); err != nil {
				return err
			}
			return saveOutreach(app, cmd, form)
		},
	}
	cmd.Flags().String("image", "", "Image file to compress and attach")
	return cmd
}

func outreachUpdateCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id> <form.yaml>",
		Short: "Update an outreach event from a form file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := app.Client.GetContent(app.Ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to load outreach %s: %w", args[0], err)
			}
			if rec.Type != model.TypeOutreach {
				return fmt.Errorf("record %s is a %s, not an outreach", args[0], rec.Type)
			}

			form := editor.LoadForm(rec)
			if err := loadFormFile(args[1], form); err != nil {
				return err
			}
			return saveOutreach(app, cmd, form)
		},
	}
	cmd.Flags().String("image", "", "Image file to compress and attach")
	return cmd
}

func loadFormFile(path string, form *editor.Form) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read form file: %w", err)
	}
	var ff outreachForm
	if err := yaml.Unmarshal(data, &ff); err != nil {
		return fmt.Errorf("failed to parse form file: %w", err)
	}
	ff.apply(form)
	return nil
}

func saveOutreach(app *AppContext, cmd *cobra.Command, form *editor.Form) error {
	if imagePath, _ := cmd.Flags().GetString("image"); imagePath != "" {
		data, err := os.ReadFile(imagePath)
		if err != nil {
			return fmt.Errorf("failed to read image: %w", err)
		}
		compressed, err := imaging.Compress(app.Ctx, data)
		if err != nil {
			return fmt.Errorf("image rejected: %w", err)
		}
		form.FeaturedImage = compressed
		fmt.Printf("Image compressed to %d KB\n", imaging.DecodedSize(compressed)/1024)
	}

	if errs := form.Validate(); len(errs) > 0 {
		fmt.Println("\n✗ The form has problems:")
		for field, msg := range errs {
			fmt.Printf("  - %s: %s\n", field, msg)
		}
		fmt.Println()
		return fmt.Errorf("form validation failed")
	}

	saved, err := form.Save(app.Ctx, app.Client, app.Logger, func(*model.ContentRecord) {
		app.Cache.Invalidate("content")
		app.Cache.Invalidate("outreaches")
	})
	if err != nil {
		return err
	}

	fmt.Printf("\n✓ Outreach saved!\n\n")
	fmt.Printf("ID:     %s\n", saved.ID)
	fmt.Printf("Title:  %s\n", saved.Title)
	if d := saved.OutreachDetails; d != nil {
		fmt.Printf("Status: %s\n", d.Status)
		fmt.Printf("Date:   %s at %s\n", d.EventDate, d.Time)
	}
	fmt.Println()
	return nil
}
