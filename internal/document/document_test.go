package document

import (
	"strings"
	"testing"

	"github.com/agencyforge/roi-proposal/internal/projection"
	"github.com/agencyforge/roi-proposal/internal/state"
)

func computedProjection(t *testing.T) projection.Projection {
	t.Helper()
	return projection.Compute(projection.MetricsFromState(state.DefaultFormState()))
}

func TestSummaryTemplate(t *testing.T) {
	s := state.DefaultFormState()
	p := computedProjection(t)

	summary := Summary(s, p)

	expectations := []string{
		"Proposal for: Prospect Inc.",
		"Key Projections (12 months):",
		"- Extra Monthly Revenue: $3,750.00",
		"- Total Extra Revenue: $45,000",
		"- Total Service Cost: $36,000",
		"- Net Gain: $9,000",
		"- Estimated ROI: 25.0%",
		"This is based on an estimated 15 extra leads per month from our Ad Creative Growth Package.",
	}
	for _, expected := range expectations {
		if !strings.Contains(summary, expected) {
			t.Errorf("summary missing %q:\n%s", expected, summary)
		}
	}

	if strings.HasPrefix(summary, "\n") || strings.HasSuffix(summary, " ") {
		t.Errorf("summary not trimmed: %q", summary)
	}
}

func TestSummaryNilRatioRendersNotApplicable(t *testing.T) {
	s := state.DefaultFormState()
	s.TimeframeMonths = "0"
	p := projection.Compute(projection.MetricsFromState(s))

	summary := Summary(s, p)

	if !strings.Contains(summary, "Estimated ROI: N/A%") {
		t.Errorf("expected N/A ROI marker, got:\n%s", summary)
	}
	if strings.Contains(summary, "Estimated ROI: 0") {
		t.Errorf("nil ROI must never render as zero:\n%s", summary)
	}
}

func TestTextWithProjection(t *testing.T) {
	s := state.DefaultFormState()
	p := computedProjection(t)

	text := Text(s, &p)

	for _, expected := range []string{
		"Ad Creative ROI Proposal for Prospect Inc.",
		"eCommerce - Prepared by AdGenius Agency",
		"+15",
		"+$3,750",
		"25.0%",
		"~1.2x",
		"Up to 30 new ad creatives per month",
		"Your Name - AdGenius Agency",
	} {
		if !strings.Contains(text, expected) {
			t.Errorf("document missing %q:\n%s", expected, text)
		}
	}
}

func TestTextNilProjectionShowsPlaceholders(t *testing.T) {
	s := state.DefaultFormState()

	text := Text(s, nil)

	if !strings.Contains(text, "N/A") {
		t.Errorf("expected placeholder values for uncomputed projection:\n%s", text)
	}
	if strings.Contains(text, "+0 leads") {
		t.Errorf("placeholders must not render as zero:\n%s", text)
	}
}

func TestTextIncludesNotesWhenPresent(t *testing.T) {
	s := state.DefaultFormState()
	p := computedProjection(t)

	if text := Text(s, &p); strings.Contains(text, "Notes:") {
		t.Errorf("empty notes should be omitted:\n%s", text)
	}

	s.Notes = "Kickoff call pending"
	if text := Text(s, &p); !strings.Contains(text, "Notes: Kickoff call pending") {
		t.Errorf("notes missing from document")
	}
}

func TestScriptPlaceholders(t *testing.T) {
	s := state.DefaultFormState()

	lines := Script(s, nil)

	if len(lines) != 7 {
		t.Fatalf("got %d talking points, expected 7", len(lines))
	}
	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "...") {
		t.Errorf("expected pending markers for uncomputed projection:\n%s", joined)
	}
	if !strings.Contains(lines[0], "Prospect Inc.") {
		t.Errorf("opening line missing client name: %s", lines[0])
	}
	if !strings.Contains(lines[1], "$2,500") {
		t.Errorf("sale value line = %s, expected coerced currency", lines[1])
	}
}

func TestScriptWithProjection(t *testing.T) {
	s := state.DefaultFormState()
	p := computedProjection(t)

	lines := Script(s, &p)
	joined := strings.Join(lines, "\n")

	for _, expected := range []string{"$45,000", "$36,000", "1.2x"} {
		if !strings.Contains(joined, expected) {
			t.Errorf("script missing %q:\n%s", expected, joined)
		}
	}
}

func TestHTMLLogoOnlyWhenSet(t *testing.T) {
	s := state.DefaultFormState()
	p := computedProjection(t)

	html, err := HTML(s, &p)
	if err != nil {
		t.Fatalf("HTML failed: %v", err)
	}
	if strings.Contains(html, `class="logo"`) {
		t.Errorf("expected no logo element when ClientLogoURL is empty")
	}

	s.ClientLogoURL = "https://img.logo.test/acme.test?token=abc&size=200"
	html, err = HTML(s, &p)
	if err != nil {
		t.Fatalf("HTML failed: %v", err)
	}
	if !strings.Contains(html, `class="logo"`) || !strings.Contains(html, "acme.test") {
		t.Errorf("expected logo element with lookup URL")
	}
}

func TestHTMLEscapesUserInput(t *testing.T) {
	s := state.DefaultFormState()
	s.ClientName = `<script>alert("x")</script>`
	p := computedProjection(t)

	html, err := HTML(s, &p)
	if err != nil {
		t.Fatalf("HTML failed: %v", err)
	}
	if strings.Contains(html, `<script>alert`) {
		t.Errorf("client name not escaped in HTML output")
	}
}
