// Package projection computes the derived financial figures for a proposal
// from the client's business metrics.
package projection

import (
	"github.com/agencyforge/roi-proposal/internal/state"
	"github.com/agencyforge/roi-proposal/pkg/constants"
)

// MetricsInput is the numeric subset of the form consumed by Compute. All
// fields have already been coerced from their textual form values.
type MetricsInput struct {
	CurrentMonthlyLeads         float64
	ExpectedLeadIncreasePercent float64
	LeadToCustomerRate          float64
	AverageSaleValue            float64
	ServiceFeeMonthly           float64
	TimeframeMonths             int
}

// Projection holds the full set of derived financial figures for a given
// MetricsInput. RoiPercent and ValueToFeeMultiple are nil when the service
// cost over the timeframe is not positive; the ratios are undefined there and
// must render as "not applicable" rather than zero.
type Projection struct {
	ExtraLeadsPerMonth     float64  `json:"extraLeadsPerMonth"`
	ExtraCustomersPerMonth float64  `json:"extraCustomersPerMonth"`
	ExtraRevenuePerMonth   float64  `json:"extraRevenuePerMonth"`
	ExtraRevenueTimeframe  float64  `json:"extraRevenueTimeframe"`
	ServiceCostTimeframe   float64  `json:"serviceCostTimeframe"`
	NetGainTimeframe       float64  `json:"netGainTimeframe"`
	RoiPercent             *float64 `json:"roiPercent"`
	ValueToFeeMultiple     *float64 `json:"valueToFeeMultiple"`
}

// MetricsFromState extracts and coerces the numeric fields of the form.
// Unparseable values become zero; this never fails.
func MetricsFromState(s state.FormState) MetricsInput {
	return MetricsInput{
		CurrentMonthlyLeads:         CoerceFloat(s.CurrentMonthlyLeads),
		ExpectedLeadIncreasePercent: CoerceFloat(s.ExpectedLeadIncreasePercent),
		LeadToCustomerRate:          CoerceFloat(s.LeadToCustomerRate),
		AverageSaleValue:            CoerceFloat(s.AverageSaleValue),
		ServiceFeeMonthly:           CoerceFloat(s.ServiceFeeMonthly),
		TimeframeMonths:             CoerceInt(s.TimeframeMonths),
	}
}

// Compute derives the projection from the metrics. Pure and total: identical
// input always yields identical output, and no input can produce an error,
// Inf, or NaN in the ratio fields.
func Compute(in MetricsInput) Projection {
	extraLeadsPerMonth := in.CurrentMonthlyLeads * (in.ExpectedLeadIncreasePercent / constants.PercentageMultiplier)
	extraCustomersPerMonth := extraLeadsPerMonth * (in.LeadToCustomerRate / constants.PercentageMultiplier)
	extraRevenuePerMonth := extraCustomersPerMonth * in.AverageSaleValue
	months := float64(in.TimeframeMonths)
	extraRevenueTimeframe := extraRevenuePerMonth * months
	serviceCostTimeframe := in.ServiceFeeMonthly * months
	netGainTimeframe := extraRevenueTimeframe - serviceCostTimeframe

	p := Projection{
		ExtraLeadsPerMonth:     extraLeadsPerMonth,
		ExtraCustomersPerMonth: extraCustomersPerMonth,
		ExtraRevenuePerMonth:   extraRevenuePerMonth,
		ExtraRevenueTimeframe:  extraRevenueTimeframe,
		ServiceCostTimeframe:   serviceCostTimeframe,
		NetGainTimeframe:       netGainTimeframe,
	}

	if serviceCostTimeframe > 0 {
		roi := netGainTimeframe / serviceCostTimeframe * constants.PercentageMultiplier
		multiple := extraRevenueTimeframe / serviceCostTimeframe
		p.RoiPercent = &roi
		p.ValueToFeeMultiple = &multiple
	}

	return p
}
