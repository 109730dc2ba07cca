// Package document renders the proposal as terminal text, a plain-text email
// summary, screen-share talking points, and an HTML page. Rendering is a pure
// function of the form state and the (possibly absent) projection; a nil
// projection renders placeholders, never an error.
package document

import (
	"fmt"
	"strings"

	"github.com/agencyforge/roi-proposal/internal/projection"
	"github.com/agencyforge/roi-proposal/internal/state"
	"github.com/agencyforge/roi-proposal/pkg/constants"
	"github.com/agencyforge/roi-proposal/pkg/format"
)

// Text renders the proposal for the terminal.
func Text(s state.FormState, p *projection.Projection) string {
	var b strings.Builder

	fmt.Fprintf(&b, "--- Ad Creative ROI Proposal for %s ---\n", s.ClientName)
	fmt.Fprintf(&b, "%s - Prepared by %s\n\n", s.ClientIndustry, s.YourAgencyName)

	fmt.Fprintf(&b, "Summary of Results\n")
	fmt.Fprintf(&b, "  Extra Leads / Month      | +%s\n", number(p, fieldExtraLeads, 0))
	fmt.Fprintf(&b, "  Extra Revenue / Month    | +%s\n", currency(s, p, fieldExtraRevenueMonth, 0))
	fmt.Fprintf(&b, "  ROI over %s months       | %s%%\n", s.TimeframeMonths, number(p, fieldRoiPercent, 1))
	fmt.Fprintf(&b, "  Return vs Fee            | ~%sx\n\n", number(p, fieldValueMultiple, 1))

	fmt.Fprintf(&b, "Based on your current numbers, by improving your ad creatives we estimate an additional %s leads per month, resulting in approximately %s in extra monthly revenue.\n\n",
		number(p, fieldExtraLeads, 0), currency(s, p, fieldExtraRevenueMonth, 0))
	fmt.Fprintf(&b, "Over %s months, that's an estimated %s in extra revenue. Our creative service fee over the same period would be %s, which means an estimated ROI of %s%% and a ~%sx return on your investment.\n\n",
		s.TimeframeMonths, currency(s, p, fieldExtraRevenueTotal, 0), currency(s, p, fieldServiceCost, 0),
		number(p, fieldRoiPercent, 1), number(p, fieldValueMultiple, 1))

	fmt.Fprintf(&b, "%s\n", s.PackageName)
	for _, bullet := range s.PackageBullets {
		fmt.Fprintf(&b, "  - %s\n", bullet)
	}

	if strings.TrimSpace(s.Notes) != "" {
		fmt.Fprintf(&b, "\nNotes: %s\n", s.Notes)
	}

	fmt.Fprintf(&b, "\nNext Steps\n")
	fmt.Fprintf(&b, "If these numbers make sense to you, the next step is simple: Let's schedule your start date, and we'll get your first batch of new creatives ready within the next 7 days.\n\n")
	fmt.Fprintf(&b, "%s - %s\n", s.YourName, s.YourAgencyName)

	return b.String()
}

// Summary builds the clipboard/email text from the computed projection. The
// caller guards against a nil projection; the only possibly-absent figures
// inside are the ratios.
func Summary(s state.FormState, p projection.Projection) string {
	text := fmt.Sprintf(`
Proposal for: %s

Key Projections (%s months):
- Extra Monthly Revenue: %s
- Total Extra Revenue: %s
- Total Service Cost: %s
- Net Gain: %s
- Estimated ROI: %s%%

This is based on an estimated %s extra leads per month from our %s.
      `,
		s.ClientName,
		s.TimeframeMonths,
		format.Currency(format.Ptr(p.ExtraRevenuePerMonth), s.CurrencySymbol, 2, constants.PlaceholderNotApplicable),
		format.Currency(format.Ptr(p.ExtraRevenueTimeframe), s.CurrencySymbol, 0, constants.PlaceholderNotApplicable),
		format.Currency(format.Ptr(p.ServiceCostTimeframe), s.CurrencySymbol, 0, constants.PlaceholderNotApplicable),
		format.Currency(format.Ptr(p.NetGainTimeframe), s.CurrencySymbol, 0, constants.PlaceholderNotApplicable),
		format.Number(p.RoiPercent, 1, constants.PlaceholderNotApplicable),
		format.Number(format.Ptr(p.ExtraLeadsPerMonth), 0, constants.PlaceholderNotApplicable),
		s.PackageName,
	)
	return strings.TrimSpace(text)
}

// Script returns the screen-share talking points used while walking a client
// through the calculator live. Figures not yet computed render as "...".
func Script(s state.FormState, p *projection.Projection) []string {
	pending := constants.PlaceholderPending
	saleValue := projection.CoerceFloat(s.AverageSaleValue)

	return []string{
		fmt.Sprintf(`"Okay, %s, let's plug in your current numbers together to see what's possible."`, s.ClientName),
		fmt.Sprintf(`"You mentioned you're getting around %s leads per month, with an average sale value of %s."`,
			s.CurrentMonthlyLeads, format.Currency(format.Ptr(saleValue), s.CurrencySymbol, 0, pending)),
		fmt.Sprintf(`"Here's what happens if we just improve your creatives by a conservative %s%%. This isn't about more ad spend, just better-performing ads."`,
			s.ExpectedLeadIncreasePercent),
		fmt.Sprintf(`"Based on that, we're looking at an extra %s leads per month."`,
			scriptNumber(p, fieldExtraLeads, 0)),
		fmt.Sprintf(`"Over %s months, that's an extra %s in revenue for your business."`,
			s.TimeframeMonths, scriptCurrency(s, p, fieldExtraRevenueTotal, 0)),
		fmt.Sprintf(`"My fee over the same period is %s. When you look at the total return, that's about a %sx return on your investment."`,
			scriptCurrency(s, p, fieldServiceCost, 0), scriptNumber(p, fieldValueMultiple, 1)),
		fmt.Sprintf(`"So, for every dollar you put in, you'd get about %s dollars back in new revenue. Does that kind of ROI make sense for your growth goals?"`,
			scriptNumber(p, fieldValueMultiple, 1)),
	}
}

// projection field selectors shared by the renderers

type field int

const (
	fieldExtraLeads field = iota
	fieldExtraRevenueMonth
	fieldExtraRevenueTotal
	fieldServiceCost
	fieldNetGain
	fieldRoiPercent
	fieldValueMultiple
)

func fieldValue(p *projection.Projection, f field) *float64 {
	if p == nil {
		return nil
	}
	switch f {
	case fieldExtraLeads:
		return format.Ptr(p.ExtraLeadsPerMonth)
	case fieldExtraRevenueMonth:
		return format.Ptr(p.ExtraRevenuePerMonth)
	case fieldExtraRevenueTotal:
		return format.Ptr(p.ExtraRevenueTimeframe)
	case fieldServiceCost:
		return format.Ptr(p.ServiceCostTimeframe)
	case fieldNetGain:
		return format.Ptr(p.NetGainTimeframe)
	case fieldRoiPercent:
		return p.RoiPercent
	case fieldValueMultiple:
		return p.ValueToFeeMultiple
	}
	return nil
}

func number(p *projection.Projection, f field, digits int) string {
	return format.Number(fieldValue(p, f), digits, constants.PlaceholderNotApplicable)
}

func currency(s state.FormState, p *projection.Projection, f field, digits int) string {
	return format.Currency(fieldValue(p, f), s.CurrencySymbol, digits, constants.PlaceholderNotApplicable)
}

func scriptNumber(p *projection.Projection, f field, digits int) string {
	return format.Number(fieldValue(p, f), digits, constants.PlaceholderPending)
}

func scriptCurrency(s state.FormState, p *projection.Projection, f field, digits int) string {
	return format.Currency(fieldValue(p, f), s.CurrencySymbol, digits, constants.PlaceholderPending)
}
