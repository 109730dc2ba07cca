package document

import (
	"bytes"
	"html/template"

	"github.com/agencyforge/roi-proposal/internal/projection"
	"github.com/agencyforge/roi-proposal/internal/state"
)

var proposalTmpl = template.Must(template.New("proposal").Parse(proposalHTML))

type htmlData struct {
	State state.FormState

	ExtraLeads        string
	ExtraRevenueMonth string
	ExtraRevenueTotal string
	ServiceCost       string
	RoiPercent        string
	ValueMultiple     string
}

// HTML renders the full proposal page consumed by the web preview and the PDF
// export pipeline.
func HTML(s state.FormState, p *projection.Projection) (string, error) {
	data := htmlData{
		State:             s,
		ExtraLeads:        number(p, fieldExtraLeads, 0),
		ExtraRevenueMonth: currency(s, p, fieldExtraRevenueMonth, 0),
		ExtraRevenueTotal: currency(s, p, fieldExtraRevenueTotal, 0),
		ServiceCost:       currency(s, p, fieldServiceCost, 0),
		RoiPercent:        number(p, fieldRoiPercent, 1),
		ValueMultiple:     number(p, fieldValueMultiple, 1),
	}

	var buf bytes.Buffer
	if err := proposalTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

const proposalHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Proposal for {{.State.ClientName}}</title>
<style>
  body { font-family: Helvetica, Arial, sans-serif; color: #1e293b; background: #ffffff; margin: 0; }
  .page { max-width: 760px; margin: 0 auto; padding: 32px; }
  header { display: flex; justify-content: space-between; align-items: flex-start; border-bottom: 1px solid #e2e8f0; padding-bottom: 16px; margin-bottom: 24px; }
  header h1 { font-size: 24px; margin: 0; color: #0f172a; }
  header .meta { color: #64748b; margin-top: 4px; }
  header img.logo { max-height: 64px; max-width: 240px; object-fit: contain; }
  .stats { display: grid; grid-template-columns: 1fr 1fr; gap: 16px; margin-bottom: 24px; }
  .stat { background: #f8fafc; border-radius: 8px; padding: 16px; text-align: center; }
  .stat .label { font-size: 13px; color: #475569; }
  .stat .value { font-size: 28px; font-weight: bold; color: #f97316; }
  .narrative { color: #475569; line-height: 1.6; margin-bottom: 24px; }
  .narrative strong { color: #ea580c; }
  h2 { font-size: 18px; color: #1e293b; margin-bottom: 12px; }
  ul.bullets { color: #475569; }
  footer { font-size: 13px; color: #64748b; border-top: 1px solid #e2e8f0; padding-top: 16px; margin-top: 24px; }
</style>
</head>
<body>
<div class="page" id="proposal">
  <header>
    <div>
      <h1>Ad Creative ROI Proposal for {{.State.ClientName}}</h1>
      <div class="meta">{{.State.ClientIndustry}} - Prepared by {{.State.YourAgencyName}}</div>
    </div>
    {{if .State.ClientLogoURL}}<img class="logo" src="{{.State.ClientLogoURL}}" alt="{{.State.ClientName}} Logo" crossorigin="anonymous" onerror="this.style.display='none'">{{end}}
  </header>

  <section>
    <h2>Summary of Results</h2>
    <div class="stats">
      <div class="stat"><div class="label">Extra Leads / Month</div><div class="value">+{{.ExtraLeads}}</div></div>
      <div class="stat"><div class="label">Extra Revenue / Month</div><div class="value">+{{.ExtraRevenueMonth}}</div></div>
      <div class="stat"><div class="label">ROI over {{.State.TimeframeMonths}} months</div><div class="value">{{.RoiPercent}}%</div></div>
      <div class="stat"><div class="label">Return vs Fee</div><div class="value">~{{.ValueMultiple}}x</div></div>
    </div>
  </section>

  <section class="narrative">
    <p>Based on your current numbers, by improving your ad creatives we estimate an additional <strong>{{.ExtraLeads}}</strong> leads per month, resulting in approximately <strong>{{.ExtraRevenueMonth}}</strong> in extra monthly revenue.</p>
    <p>Over <strong>{{.State.TimeframeMonths}} months</strong>, that&rsquo;s an estimated <strong>{{.ExtraRevenueTotal}}</strong> in extra revenue. Our creative service fee over the same period would be <strong>{{.ServiceCost}}</strong>, which means an estimated ROI of <strong>{{.RoiPercent}}%</strong> and a <strong>~{{.ValueMultiple}}x</strong> return on your investment.</p>
  </section>

  <section>
    <h2>{{.State.PackageName}}</h2>
    <ul class="bullets">
      {{range .State.PackageBullets}}<li>{{.}}</li>
      {{end}}
    </ul>
  </section>

  {{if .State.Notes}}<section class="narrative"><p>{{.State.Notes}}</p></section>{{end}}

  <footer>
    <p><strong>Next Steps</strong></p>
    <p>If these numbers make sense to you, the next step is simple: Let&rsquo;s schedule your start date, and we&rsquo;ll get your first batch of new creatives ready within the next 7 days.</p>
    <p>{{.State.YourName}} - {{.State.YourAgencyName}}</p>
  </footer>
</div>
</body>
</html>
`
