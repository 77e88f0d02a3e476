// Package report renders a completed LBO run as a Markdown tear sheet, with
// optional HTML output for sharing.
package report

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"company_valuation/pkg/core/lbo"
	"company_valuation/pkg/core/sensitivity"
	"company_valuation/pkg/core/utils"
)

// TearSheet is one rendered LBO analysis: the model assumptions, the run
// result, and optional sensitivity context. Each sheet carries a unique run
// ID so exported artifacts can be traced back to a specific analysis.
type TearSheet struct {
	ID          string
	GeneratedAt time.Time
	Company     string

	model  *lbo.LBOModel
	result *lbo.LBOResult

	irrTable *sensitivity.Table
	field    *sensitivity.Field
}

// New builds a tear sheet for a completed run.
func New(company string, model *lbo.LBOModel, result *lbo.LBOResult) *TearSheet {
	return &TearSheet{
		ID:          uuid.New().String(),
		GeneratedAt: time.Now().UTC(),
		Company:     company,
		model:       model,
		result:      result,
	}
}

// WithSensitivity attaches an IRR sensitivity grid to the sheet.
func (ts *TearSheet) WithSensitivity(t sensitivity.Table) *TearSheet {
	ts.irrTable = &t
	return ts
}

// WithFootballField attaches a cross-methodology valuation summary.
func (ts *TearSheet) WithFootballField(f sensitivity.Field) *TearSheet {
	ts.field = &f
	return ts
}

// Markdown renders the full tear sheet.
func (ts *TearSheet) Markdown() string {
	var b strings.Builder

	fmt.Fprintf(&b, "# LBO Analysis — %s\n\n", ts.Company)
	fmt.Fprintf(&b, "Run `%s`, generated %s\n\n", ts.ID, ts.GeneratedAt.Format(time.RFC3339))

	ts.writeAssumptions(&b)
	ts.writeSourcesAndUses(&b)
	ts.writeDebtSchedule(&b)
	ts.writeReturns(&b)

	if ts.irrTable != nil {
		writeSensitivity(&b, *ts.irrTable)
	}
	if ts.field != nil {
		writeFootballField(&b, *ts.field)
	}

	return b.String()
}

// HTML renders the tear sheet as standalone HTML.
func (ts *TearSheet) HTML() (string, error) {
	return utils.MarkdownToHTML(ts.Markdown())
}

func (ts *TearSheet) writeAssumptions(b *strings.Builder) {
	m := ts.model
	b.WriteString("## Assumptions\n\n")
	fmt.Fprintf(b, "| Entry EBITDA | Entry Multiple | Exit Multiple | Hold (yrs) |\n")
	fmt.Fprintf(b, "|---:|---:|---:|---:|\n")
	fmt.Fprintf(b, "| %.1f | %.2fx | %.2fx | %d |\n\n",
		m.EntryEBITDA, m.EntryMultiple, m.ExitMultiple, len(m.Projections))
}

func (ts *TearSheet) writeSourcesAndUses(b *strings.Builder) {
	su := ts.model.SourcesAndUses()
	b.WriteString("## Sources & Uses\n\n")
	b.WriteString("| Sources | | Uses | |\n|---|---:|---|---:|\n")
	fmt.Fprintf(b, "| Term Debt | %.1f | Equity Purchase | %.1f |\n", su.TermLoan, su.EquityPurchase)
	fmt.Fprintf(b, "| Revolver Draw | %.1f | Transaction Fees | %.1f |\n", su.RevolverDraw, su.TransactionFees)
	fmt.Fprintf(b, "| Sponsor Equity | %.1f | Financing Fees | %.1f |\n", su.SponsorEquity, su.FinancingFees)
	fmt.Fprintf(b, "| **Total** | **%.1f** | **Total** | **%.1f** |\n\n", su.TotalSources(), su.TotalUses())

	if !su.IsBalanced(lbo.DefaultBalanceTolerance) {
		fmt.Fprintf(b, "> Sources and uses do not balance (difference %.2f).\n\n",
			su.TotalSources()-su.TotalUses())
	}
}

func (ts *TearSheet) writeDebtSchedule(b *strings.Builder) {
	b.WriteString("## Debt Schedule\n\n")
	b.WriteString("| Year | EBITDA | Interest | FCF | Mandatory | Sweep | Revolver Δ | Ending Debt |\n")
	b.WriteString("|---:|---:|---:|---:|---:|---:|---:|---:|\n")
	for _, y := range ts.result.YearlyResults {
		fmt.Fprintf(b, "| %d | %.1f | %.1f | %.1f | %.1f | %.1f | %.1f | %.1f |\n",
			y.Year, y.EBITDA, y.InterestExpense, y.FCF,
			y.MandatoryAmortization, y.CashSweep, y.RevolverChange, y.EndingDebt)
	}
	b.WriteString("\n")
}

func (ts *TearSheet) writeReturns(b *strings.Builder) {
	r := ts.result
	b.WriteString("## Returns\n\n")
	b.WriteString("| Metric | Value |\n|---|---:|\n")
	fmt.Fprintf(b, "| Entry Equity | %.1f |\n", r.EntryEquity)
	fmt.Fprintf(b, "| Exit Enterprise Value | %.1f |\n", r.ExitEnterpriseValue)
	fmt.Fprintf(b, "| Exit Net Debt | %.1f |\n", r.ExitNetDebt)
	fmt.Fprintf(b, "| Exit Equity | %.1f |\n", r.ExitEquity)
	fmt.Fprintf(b, "| Total Debt Paydown | %.1f |\n", r.TotalDebtPaydown)
	fmt.Fprintf(b, "| MOIC | %.2fx |\n", r.MOIC)
	fmt.Fprintf(b, "| IRR | %.1f%% |\n\n", r.IRR*100)
}

func writeSensitivity(b *strings.Builder, t sensitivity.Table) {
	fmt.Fprintf(b, "## Sensitivity — %s vs %s\n\n", t.RowVariable, t.ColVariable)

	b.WriteString("| |")
	for _, c := range t.ColValues {
		fmt.Fprintf(b, " %.2f |", c)
	}
	b.WriteString("\n|---:|")
	for range t.ColValues {
		b.WriteString("---:|")
	}
	b.WriteString("\n")

	for i, rowVal := range t.RowValues {
		fmt.Fprintf(b, "| %.2f |", rowVal)
		for _, v := range t.Results[i] {
			if math.IsNaN(v) {
				b.WriteString(" n/m |")
			} else {
				fmt.Fprintf(b, " %.1f%% |", v*100)
			}
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func writeFootballField(b *strings.Builder, f sensitivity.Field) {
	b.WriteString("## Football Field\n\n")
	b.WriteString("| Method | Low | Mid | High |\n|---|---:|---:|---:|\n")
	for _, bar := range f.Bars {
		fmt.Fprintf(b, "| %s | %.1f | %.1f | %.1f |\n", bar.Method, bar.Low, bar.Mid, bar.High)
	}
	b.WriteString("\n")

	if low, high, ok := f.ConsensusRange(); ok {
		fmt.Fprintf(b, "Consensus range: %.1f – %.1f\n\n", low, high)
	} else if len(f.Bars) > 1 {
		b.WriteString("No consensus range: the methodologies do not overlap.\n\n")
	}
	if f.CurrentPrice > 0 {
		fmt.Fprintf(b, "Current price: %.1f\n\n", f.CurrentPrice)
	}
}
