package state

// Field names accepted by SetField. These match the JSON keys of FormState so
// the web editor can dispatch updates using the same names it renders.
const (
	FieldClientName                  = "clientName"
	FieldClientIndustry              = "clientIndustry"
	FieldClientWebsite               = "clientWebsite"
	FieldAverageSaleValue            = "averageSaleValue"
	FieldCurrentMonthlyLeads         = "currentMonthlyLeads"
	FieldLeadToCustomerRate          = "leadToCustomerRate"
	FieldExpectedLeadIncreasePercent = "expectedLeadIncreasePercent"
	FieldServiceFeeMonthly           = "serviceFeeMonthly"
	FieldCurrencySymbol              = "currencySymbol"
	FieldTimeframeMonths             = "timeframeMonths"
	FieldClientLogoURL               = "clientLogoUrl"
	FieldPackageName                 = "packageName"
	FieldNotes                       = "notes"
	FieldYourName                    = "yourName"
	FieldYourAgencyName              = "yourAgencyName"
)

// Action is one editor mutation dispatched through Apply. The concrete types
// form a closed union.
type Action interface {
	isAction()
}

// SetField replaces a single named scalar field.
type SetField struct {
	Field string
	Value string
}

// SetBullet replaces the bullet at Index.
type SetBullet struct {
	Index int
	Value string
}

// AppendBullet appends a new empty bullet.
type AppendBullet struct{}

// RemoveBullet removes the bullet at Index, shifting subsequent bullets left.
type RemoveBullet struct {
	Index int
}

// Reset replaces the entire state with the defaults.
type Reset struct{}

func (SetField) isAction()     {}
func (SetBullet) isAction()    {}
func (AppendBullet) isAction() {}
func (RemoveBullet) isAction() {}
func (Reset) isAction()        {}

// Apply mutates s according to the action. Unknown field names and
// out-of-range bullet indexes are silent no-ops; an editor mistake must never
// surface as an error to the user.
func Apply(s *FormState, action Action) {
	switch a := action.(type) {
	case SetField:
		applyField(s, a.Field, a.Value)
	case SetBullet:
		if a.Index >= 0 && a.Index < len(s.PackageBullets) {
			s.PackageBullets[a.Index] = a.Value
		}
	case AppendBullet:
		s.PackageBullets = append(s.PackageBullets, "")
	case RemoveBullet:
		if a.Index >= 0 && a.Index < len(s.PackageBullets) {
			s.PackageBullets = append(s.PackageBullets[:a.Index], s.PackageBullets[a.Index+1:]...)
		}
	case Reset:
		*s = DefaultFormState()
	}
}

func applyField(s *FormState, field, value string) {
	switch field {
	case FieldClientName:
		s.ClientName = value
	case FieldClientIndustry:
		s.ClientIndustry = value
	case FieldClientWebsite:
		s.ClientWebsite = value
	case FieldAverageSaleValue:
		s.AverageSaleValue = value
	case FieldCurrentMonthlyLeads:
		s.CurrentMonthlyLeads = value
	case FieldLeadToCustomerRate:
		s.LeadToCustomerRate = value
	case FieldExpectedLeadIncreasePercent:
		s.ExpectedLeadIncreasePercent = value
	case FieldServiceFeeMonthly:
		s.ServiceFeeMonthly = value
	case FieldCurrencySymbol:
		s.CurrencySymbol = value
	case FieldTimeframeMonths:
		s.TimeframeMonths = value
	case FieldClientLogoURL:
		s.ClientLogoURL = value
	case FieldPackageName:
		s.PackageName = value
	case FieldNotes:
		s.Notes = value
	case FieldYourName:
		s.YourName = value
	case FieldYourAgencyName:
		s.YourAgencyName = value
	}
}
