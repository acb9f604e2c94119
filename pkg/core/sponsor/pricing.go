package sponsor

import (
	"strconv"
	"strings"
)

// PlanKind is the sponsorship pricing option a sponsor picks
type PlanKind string

const (
	PlanMonthly PlanKind = "monthly"
	PlanOneTime PlanKind = "one-time"
	PlanCustom  PlanKind = "custom"
)

func (k PlanKind) IsValid() bool {
	return k == PlanMonthly || k == PlanOneTime || k == PlanCustom
}

// oneTimeMonths is how many months a one-time gift covers
const oneTimeMonths = 6

// Selection is the sponsor's chosen plan plus, for custom plans, the raw
// text they typed into the amount box.
type Selection struct {
	Kind        PlanKind
	CustomInput string
}

// ParseCustomAmount parses the custom amount box: the integer the sponsor
// typed, or 0 for empty or invalid input. There is no currency conversion
// and no upper-bound check.
func ParseCustomAmount(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Amount computes the donation amount for the selection against the
// beneficiary's monthly cost: monthly is the cost itself, one-time is
// exactly six months, custom is whatever was typed.
func (s Selection) Amount(monthlyCost float64) float64 {
	switch s.Kind {
	case PlanOneTime:
		return monthlyCost * oneTimeMonths
	case PlanCustom:
		return float64(ParseCustomAmount(s.CustomInput))
	default:
		return monthlyCost
	}
}
