// Package deal loads analyst-authored deal files and materializes them into
// LBO models. Files may be YAML or JSON/Hjson; the JSON path tolerates
// hand-editing artifacts (comments, trailing commas, unquoted keys).
package deal

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"

	"company_valuation/pkg/core/lbo"
	"company_valuation/pkg/core/utils"
)

// TrancheSpec describes one debt tranche in a deal file.
type TrancheSpec struct {
	Name               string  `yaml:"name" json:"name"`
	Amount             float64 `yaml:"amount" json:"amount"`
	InterestRate       float64 `yaml:"interest_rate" json:"interest_rate"`
	AmortizationRate   float64 `yaml:"amortization_rate" json:"amortization_rate"`
	Revolver           bool    `yaml:"revolver" json:"revolver"`
	RevolverCommitment float64 `yaml:"revolver_commitment" json:"revolver_commitment"`
	SweepPriority      int     `yaml:"sweep_priority" json:"sweep_priority"`
}

// YearSpec is one explicit projection year.
type YearSpec struct {
	Year         int     `yaml:"year" json:"year"`
	EBITDA       float64 `yaml:"ebitda" json:"ebitda"`
	Capex        float64 `yaml:"capex" json:"capex"`
	DeltaNWC     float64 `yaml:"delta_nwc" json:"delta_nwc"`
	TaxRate      float64 `yaml:"tax_rate" json:"tax_rate"`
	Depreciation float64 `yaml:"depreciation" json:"depreciation"`
}

// GrowthSpec is the shorthand alternative to explicit years: a geometric
// EBITDA ramp with capex and D&A as fixed percentages of EBITDA.
type GrowthSpec struct {
	HoldYears       int     `yaml:"hold_years" json:"hold_years"`
	EBITDAGrowth    float64 `yaml:"ebitda_growth" json:"ebitda_growth"`
	CapexPct        float64 `yaml:"capex_pct" json:"capex_pct"`
	TaxRate         float64 `yaml:"tax_rate" json:"tax_rate"`
	DepreciationPct float64 `yaml:"depreciation_pct" json:"depreciation_pct"`
}

// File is the deal-file schema.
type File struct {
	Company       string  `yaml:"company" json:"company"`
	EntryEBITDA   float64 `yaml:"entry_ebitda" json:"entry_ebitda"`
	EntryMultiple float64 `yaml:"entry_multiple" json:"entry_multiple"`
	ExitMultiple  float64 `yaml:"exit_multiple" json:"exit_multiple"`

	// Fee overrides; nil keeps the standard 2% assumptions.
	TransactionFeesPct *float64 `yaml:"transaction_fees_pct" json:"transaction_fees_pct"`
	FinancingFeesPct   *float64 `yaml:"financing_fees_pct" json:"financing_fees_pct"`

	Tranches []TrancheSpec `yaml:"tranches" json:"tranches"`

	// Exactly one of Years or Growth must be set.
	Years  []YearSpec  `yaml:"years" json:"years"`
	Growth *GrowthSpec `yaml:"growth" json:"growth"`
}

// Load reads and parses a deal file, dispatching on extension: .yaml/.yml
// use YAML, anything else goes through the tolerant JSON/Hjson chain.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("deal: read %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	return Parse(data, ext)
}

// Parse decodes deal-file bytes. ext selects the decoder (".yaml"/".yml"
// for YAML; ".json", ".hjson", or anything else for the tolerant chain).
func Parse(data []byte, ext string) (*File, error) {
	var f File
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("deal: parse yaml: %w", err)
		}
	default:
		if err := utils.SmartParse(data, &f); err != nil {
			return nil, fmt.Errorf("deal: parse: %w", err)
		}
	}
	return &f, nil
}

// Model validates the file and materializes an LBO model from it.
func (f *File) Model() (*lbo.LBOModel, error) {
	if len(f.Years) > 0 && f.Growth != nil {
		return nil, fmt.Errorf("deal: specify either explicit years or growth shorthand, not both")
	}
	if len(f.Years) == 0 && f.Growth == nil {
		return nil, fmt.Errorf("deal: projections are required (years or growth)")
	}

	tranches := make([]lbo.DebtTranche, 0, len(f.Tranches))
	for _, t := range f.Tranches {
		tranches = append(tranches, lbo.DebtTranche{
			Name:               t.Name,
			Amount:             t.Amount,
			InterestRate:       t.InterestRate,
			AmortizationRate:   t.AmortizationRate,
			IsRevolver:         t.Revolver,
			RevolverCommitment: t.RevolverCommitment,
			CashSweepPriority:  t.SweepPriority,
		})
	}

	var projections []lbo.LBOProjection
	if f.Growth != nil {
		g := f.Growth
		if g.HoldYears <= 0 {
			return nil, fmt.Errorf("deal: growth.hold_years must be positive, got %d", g.HoldYears)
		}
		depPct := g.DepreciationPct
		if depPct == 0 {
			depPct = 0.10
		}
		for year := 1; year <= g.HoldYears; year++ {
			ebitda := f.EntryEBITDA * math.Pow(1+g.EBITDAGrowth, float64(year))
			projections = append(projections, lbo.LBOProjection{
				Year:         year,
				EBITDA:       ebitda,
				Capex:        ebitda * g.CapexPct,
				TaxRate:      g.TaxRate,
				Depreciation: ebitda * depPct,
			})
		}
	} else {
		for _, y := range f.Years {
			projections = append(projections, lbo.LBOProjection{
				Year:         y.Year,
				EBITDA:       y.EBITDA,
				Capex:        y.Capex,
				DeltaNWC:     y.DeltaNWC,
				TaxRate:      y.TaxRate,
				Depreciation: y.Depreciation,
			})
		}
	}

	model, err := lbo.NewLBOModel(f.EntryEBITDA, f.EntryMultiple, tranches,
		projections, f.ExitMultiple)
	if err != nil {
		return nil, err
	}

	if f.TransactionFeesPct != nil {
		model.TransactionFeesPct = *f.TransactionFeesPct
	}
	if f.FinancingFeesPct != nil {
		model.FinancingFeesPct = *f.FinancingFeesPct
	}
	return model, nil
}
