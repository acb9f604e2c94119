package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adaobialike/ikeji-outreach/pkg/core/sponsor"
)

// SponsorCmd creates the interactive sponsorship session. It walks the same
// three-step flow the site modal does: beneficiary details, sponsor info,
// confirmation.
func SponsorCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "sponsor <beneficiary_id>",
		Short: "Walk through sponsoring a beneficiary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			beneficiary, err := app.Client.GetBeneficiary(app.Ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to load beneficiary: %w", err)
			}

			wizard := sponsor.NewWizard(*beneficiary, app.Logger)
			scanner := bufio.NewScanner(os.Stdin)

			// Step 1: details
			p := wizard.Profile()
			fmt.Printf("\n%s — %s, %s\n", p.Name, p.Category, p.Location)
			if p.Story != "" {
				fmt.Printf("\n%s\n", p.Story)
			}
			if len(p.Needs) > 0 {
				fmt.Printf("\nNeeds: %s\n", strings.Join(p.Needs, ", "))
			}
			fmt.Printf("\nMonthly support cost: %.0f\n", p.MonthlyCost)
			if !promptYes(scanner, "Continue to sponsorship details?") {
				wizard.Close()
				fmt.Println("No problem — nothing was submitted.")
				return nil
			}
			if err := wizard.Continue(); err != nil {
				return err
			}

			// Step 2: sponsor info and plan
			info := sponsor.Info{
				FullName: promptLine(scanner, "Your full name"),
				Email:    promptLine(scanner, "Your email"),
				Phone:    promptLine(scanner, "Phone (optional)"),
				Message:  promptLine(scanner, "Message (optional)"),
			}

			fmt.Printf("\nPlans:\n")
			fmt.Printf("  1. Monthly    — %.0f per month\n", sponsor.Selection{Kind: sponsor.PlanMonthly}.Amount(p.MonthlyCost))
			fmt.Printf("  2. One-time   — %.0f (six months)\n", sponsor.Selection{Kind: sponsor.PlanOneTime}.Amount(p.MonthlyCost))
			fmt.Printf("  3. Custom amount\n")

			var selection sponsor.Selection
			switch promptLine(scanner, "Pick a plan (1-3)") {
			case "2":
				selection = sponsor.Selection{Kind: sponsor.PlanOneTime}
			case "3":
				selection = sponsor.Selection{
					Kind:        sponsor.PlanCustom,
					CustomInput: promptLine(scanner, "Amount"),
				}
			default:
				selection = sponsor.Selection{Kind: sponsor.PlanMonthly}
			}

			if err := wizard.Submit(info, selection); err != nil {
				wizard.Close()
				return fmt.Errorf("could not submit: %w", err)
			}

			// Step 3: confirmation
			fmt.Printf("\nSponsoring %s for %.0f (%s plan)\n", p.Name, wizard.Amount(), selection.Kind)
			fmt.Printf("Reference: %s\n", wizard.Reference())
			if !promptYes(scanner, "Complete?") {
				wizard.Close()
				fmt.Println("Cancelled — nothing was submitted.")
				return nil
			}
			if err := wizard.Complete(); err != nil {
				return err
			}

			fmt.Printf("\n✓ Thank you! Keep reference %s for your records.\n\n", wizard.Reference())
			return nil
		},
	}
}

func promptLine(scanner *bufio.Scanner, prompt string) string {
	fmt.Printf("%s: ", prompt)
	if !scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}

func promptYes(scanner *bufio.Scanner, prompt string) bool {
	answer := strings.ToLower(promptLine(scanner, prompt+" (y/n)"))
	return answer == "y" || answer == "yes"
}
