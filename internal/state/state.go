// Package state defines the editable proposal form state and the reducer
// through which all mutations flow.
package state

// FormState holds every field the proposal editor exposes. Numeric-ish fields
// are kept as strings; coercion to numbers happens only when a projection is
// computed. The whole object is the unit of durable persistence.
type FormState struct {
	ClientName     string `json:"clientName"`
	ClientIndustry string `json:"clientIndustry"`
	ClientWebsite  string `json:"clientWebsite"`

	AverageSaleValue    string `json:"averageSaleValue"`
	CurrentMonthlyLeads string `json:"currentMonthlyLeads"`
	LeadToCustomerRate  string `json:"leadToCustomerRate"`

	ExpectedLeadIncreasePercent string `json:"expectedLeadIncreasePercent"`
	ServiceFeeMonthly           string `json:"serviceFeeMonthly"`

	CurrencySymbol  string `json:"currencySymbol"`
	TimeframeMonths string `json:"timeframeMonths"`

	ClientLogoURL  string   `json:"clientLogoUrl"`
	PackageName    string   `json:"packageName"`
	PackageBullets []string `json:"packageBullets"`
	Notes          string   `json:"notes"`

	YourName       string `json:"yourName"`
	YourAgencyName string `json:"yourAgencyName"`
}

// DefaultFormState returns the initial form contents used when no durable
// snapshot exists.
func DefaultFormState() FormState {
	return FormState{
		ClientName:                  "Prospect Inc.",
		ClientIndustry:              "eCommerce",
		ClientWebsite:               "",
		AverageSaleValue:            "2500",
		CurrentMonthlyLeads:         "50",
		LeadToCustomerRate:          "10",
		ExpectedLeadIncreasePercent: "30",
		ServiceFeeMonthly:           "3000",
		CurrencySymbol:              "$",
		TimeframeMonths:             "12",
		ClientLogoURL:               "",
		PackageName:                 "Ad Creative Growth Package",
		PackageBullets: []string{
			"Up to 30 new ad creatives per month",
			"Ongoing testing & optimization",
			"Creative strategy sessions",
		},
		Notes:          "",
		YourName:       "Your Name",
		YourAgencyName: "AdGenius Agency",
	}
}

// Clone returns a deep copy of the state. The bullets slice is the only
// reference-typed field.
func (s FormState) Clone() FormState {
	out := s
	out.PackageBullets = append([]string(nil), s.PackageBullets...)
	return out
}
