package report

import (
	"math"
	"strings"
	"testing"

	"company_valuation/pkg/core/lbo"
	"company_valuation/pkg/core/sensitivity"
	"company_valuation/pkg/core/utils"
)

func canonicalSheet(t *testing.T) *TearSheet {
	t.Helper()
	model, err := lbo.SimpleLBO(100, 10, 6, 0.08, 10, 5, 0.05, 0.15, 0.25)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	result, err := model.RunModel()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	return New("Acme Industrial", model, result)
}

func TestTearSheetMarkdownSections(t *testing.T) {
	md := canonicalSheet(t).Markdown()

	for _, section := range []string{
		"# LBO Analysis — Acme Industrial",
		"## Assumptions",
		"## Sources & Uses",
		"## Debt Schedule",
		"## Returns",
	} {
		if !strings.Contains(md, section) {
			t.Errorf("Missing section %q", section)
		}
	}

	// One schedule row per projection year plus the header rows.
	if got := strings.Count(md, "| 1 |"); got < 1 {
		t.Errorf("Expected a year-1 schedule row")
	}
	if !utils.ValidateMarkdown(md) {
		t.Errorf("Rendered tear sheet is not valid markdown")
	}
}

func TestTearSheetIDsAreUnique(t *testing.T) {
	a := canonicalSheet(t)
	b := canonicalSheet(t)
	if a.ID == "" || a.ID == b.ID {
		t.Errorf("Expected distinct non-empty run IDs, got %q and %q", a.ID, b.ID)
	}
}

func TestTearSheetWithSensitivity(t *testing.T) {
	sheet := canonicalSheet(t)
	model, err := lbo.SimpleLBO(100, 10, 6, 0.08, 10, 5, 0.05, 0.15, 0.25)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	table := sensitivity.LBOTable(model, []float64{9, 10, 11}, []float64{9, 10, 11})

	md := sheet.WithSensitivity(table).Markdown()
	if !strings.Contains(md, "## Sensitivity — Entry Multiple vs Exit Multiple") {
		t.Errorf("Missing sensitivity section")
	}
}

func TestTearSheetRendersNaNAsNotMeaningful(t *testing.T) {
	table := sensitivity.NewTable(func(r, c float64) float64 {
		return math.NaN()
	}, "A", "B", []float64{1}, []float64{1})

	md := canonicalSheet(t).WithSensitivity(table).Markdown()
	if !strings.Contains(md, "n/m") {
		t.Errorf("Expected NaN cells rendered as n/m")
	}
}

func TestTearSheetWithFootballField(t *testing.T) {
	field := sensitivity.Field{Bars: []sensitivity.Bar{
		{Method: "DCF", Low: 80, Mid: 95, High: 110},
		{Method: "Comps", Low: 90, Mid: 100, High: 120},
	}}

	md := canonicalSheet(t).WithFootballField(field).Markdown()
	if !strings.Contains(md, "## Football Field") {
		t.Errorf("Missing football field section")
	}
	// [80,110] and [90,120] overlap on [90,110].
	if !strings.Contains(md, "Consensus range: 90.0 – 110.0") {
		t.Errorf("Expected consensus range line, got:\n%s", md)
	}
}

func TestTearSheetHTML(t *testing.T) {
	html, err := canonicalSheet(t).HTML()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(html, "<table>") {
		t.Errorf("Expected tables in HTML output")
	}
	if !strings.Contains(html, "Acme Industrial") {
		t.Errorf("Expected company name in HTML output")
	}
}
