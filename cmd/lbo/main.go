package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"company_valuation/pkg/core/deal"
	"company_valuation/pkg/core/lbo"
	"company_valuation/pkg/core/report"
	"company_valuation/pkg/core/sensitivity"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, assuming environment variables are set.")
	}

	dealPath := flag.String("deal", "", "path to deal file (.yaml, .json, .hjson)")
	targetIRR := flag.Float64("target-irr", 0, "solve for the max entry multiple hitting this IRR (e.g. 0.20)")
	outPath := flag.String("out", "", "write a Markdown tear sheet to this path")
	htmlOut := flag.Bool("html", false, "also write an HTML version of the tear sheet")
	withSens := flag.Bool("sensitivity", false, "include an entry/exit multiple IRR grid in the tear sheet")
	flag.Parse()

	if *dealPath == "" {
		log.Fatal("Error: -deal is required.")
	}

	dealFile, err := deal.Load(*dealPath)
	if err != nil {
		log.Fatalf("Failed to load deal file: %v", err)
	}
	model, err := dealFile.Model()
	if err != nil {
		log.Fatalf("Invalid deal configuration: %v", err)
	}

	fmt.Printf("=== LBO Analysis: %s ===\n\n", dealFile.Company)

	su := model.SourcesAndUses()
	fmt.Printf("Purchase Price:   %10.1f (%.2fx %.1f EBITDA)\n",
		model.PurchasePrice(), model.EntryMultiple, model.EntryEBITDA)
	fmt.Printf("Total Debt:       %10.1f\n", su.TotalDebt())
	fmt.Printf("Sponsor Equity:   %10.1f\n", su.SponsorEquity)
	if !su.IsBalanced(lbo.DefaultBalanceTolerance) {
		fmt.Printf("[WARNING] Sources and uses do not balance (diff %.2f)\n",
			su.TotalSources()-su.TotalUses())
	}

	result, err := model.RunModel()
	if err != nil {
		log.Fatalf("Model run failed: %v", err)
	}

	fmt.Println("\n--- Debt Schedule ---")
	fmt.Println("Year    EBITDA  Interest       FCF   Paydown  End Debt")
	for _, y := range result.YearlyResults {
		paydown := y.MandatoryAmortization + y.CashSweep - y.RevolverChange
		fmt.Printf("%4d  %8.1f  %8.1f  %8.1f  %8.1f  %8.1f\n",
			y.Year, y.EBITDA, y.InterestExpense, y.FCF, paydown, y.EndingDebt)
	}

	fmt.Println("\n--- Returns ---")
	fmt.Printf("Exit EV:      %10.1f (%.2fx exit)\n", result.ExitEnterpriseValue, model.ExitMultiple)
	fmt.Printf("Exit Equity:  %10.1f\n", result.ExitEquity)
	fmt.Printf("MOIC:         %10.2fx\n", result.MOIC)
	fmt.Printf("IRR:          %10.1f%%\n", result.IRR*100)

	if *targetIRR > 0 {
		fmt.Printf("\n--- Solver: max entry multiple for %.1f%% IRR ---\n", *targetIRR*100)
		multiple, err := model.SolveForEntryMultiple(*targetIRR, lbo.DefaultSolverOptions())
		if err != nil {
			fmt.Printf("Not achievable: %v\n", err)
		} else {
			fmt.Printf("Max entry multiple: %.2fx (price %.1f)\n",
				multiple, multiple*model.EntryEBITDA)
		}
	}

	if *outPath != "" {
		sheet := report.New(dealFile.Company, model, result)
		if *withSens {
			grid := sensitivity.LBOTable(model,
				spread(model.EntryMultiple, 1.0, 5),
				spread(model.ExitMultiple, 1.0, 5))
			sheet = sheet.WithSensitivity(grid)
		}

		if err := os.WriteFile(*outPath, []byte(sheet.Markdown()), 0o644); err != nil {
			log.Fatalf("Failed to write tear sheet: %v", err)
		}
		fmt.Printf("\nTear sheet written to %s (run %s)\n", *outPath, sheet.ID)

		if *htmlOut {
			html, err := sheet.HTML()
			if err != nil {
				log.Fatalf("Failed to render HTML: %v", err)
			}
			htmlPath := strippedExt(*outPath) + ".html"
			if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
				log.Fatalf("Failed to write HTML tear sheet: %v", err)
			}
			fmt.Printf("HTML tear sheet written to %s\n", htmlPath)
		}
	}
}

// spread builds count values centered on base, stepped by step/2.
func spread(base, step float64, count int) []float64 {
	values := make([]float64, 0, count)
	start := base - step*float64(count/2)/2
	for i := 0; i < count; i++ {
		values = append(values, start+step*float64(i)/2)
	}
	return values
}

func strippedExt(path string) string {
	return path[:len(path)-len(filepath.Ext(path))]
}
