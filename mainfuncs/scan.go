package mainfuncs

import (
	"fmt"

	"github.com/schollz/progressbar/v3"

	"github.com/banachtech/optionmc/mc"
	"github.com/banachtech/optionmc/pricer"
)

// ScanRow holds one strike's prices under both simulation models.
type ScanRow struct {
	Strike  float64
	MCPrice float64
	MCErr   float64
	JDPrice float64
	JDErr   float64
}

// StrikeScan prices a ladder of strikes under the plain Monte Carlo and
// jump-diffusion models, holding the remaining contract terms fixed.
func StrikeScan(t mc.OptionType, spot, maturity, rate, dividend, vol float64, mcpar mc.MCParams, jump mc.JumpParams, strikes []float64) ([]ScanRow, error) {
	bar := progressBar(len(strikes))
	out := make([]ScanRow, 0, len(strikes))
	for _, k := range strikes {
		bar.Describe(fmt.Sprintf("strike %.2f", k))

		optMC, err := mc.NewEuropeanOption(t, spot, k, maturity, rate, dividend, vol, mc.MonteCarlo)
		if err != nil {
			return nil, err
		}
		optJD, err := mc.NewEuropeanOption(t, spot, k, maturity, rate, dividend, vol, mc.JumpDiffusion)
		if err != nil {
			return nil, err
		}

		row := ScanRow{Strike: k}
		row.MCPrice, row.MCErr = pricer.NewMonteCarlo(optMC, mcpar).Estimate()
		row.JDPrice, row.JDErr = pricer.NewJumpDiffusion(optJD, jump).Estimate()
		out = append(out, row)
		bar.Add(1)
	}
	bar.Finish()
	return out, nil
}

// progress bar initialization
func progressBar(length int) *progressbar.ProgressBar {
	bar := progressbar.NewOptions(
		length,
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionUseANSICodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(20),
		progressbar.OptionSetVisibility(true),
		progressbar.OptionShowDescriptionAtLineEnd(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
	return bar
}
