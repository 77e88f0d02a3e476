package calc

import "math"

// OptionGrant is an option or warrant grant for Treasury Stock Method
// dilution.
type OptionGrant struct {
	Quantity    float64
	StrikePrice float64
}

// TreasuryStockMethod calculates additional dilutive shares. TSM assumes
// exercise proceeds are used to buy back shares at the current market price:
//
//	New Shares = Options x (1 - Strike/Price)
//
// Only in-the-money options (strike < price) are dilutive.
func TreasuryStockMethod(options []OptionGrant, currentPrice float64) float64 {
	if currentPrice <= 0 {
		return 0
	}

	totalDilution := 0.0
	for _, opt := range options {
		if opt.StrikePrice >= currentPrice {
			continue
		}
		proceeds := opt.Quantity * opt.StrikePrice
		repurchased := proceeds / currentPrice
		totalDilution += math.Max(0, opt.Quantity-repurchased)
	}
	return totalDilution
}

// DilutedShares is the fully diluted share count:
// basic shares + TSM dilution + RSUs.
func DilutedShares(basicShares float64, options []OptionGrant, currentPrice, rsus float64) float64 {
	return basicShares + TreasuryStockMethod(options, currentPrice) + rsus
}
