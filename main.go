package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"

	"github.com/banachtech/optionmc/api"
	"github.com/banachtech/optionmc/mainfuncs"
	"github.com/banachtech/optionmc/mc"
)

func main() {
	godotenv.Load()
	logger := logrus.New()

	if len(os.Args) > 1 && os.Args[1] == "serve" {
		address := os.Getenv("SERVER_ADDRESS")
		if address == "" {
			address = "0.0.0.0:8080"
		}
		server := api.NewServer(logger)
		logger.WithField("address", address).Info("starting pricing server")
		if err := server.Start(address); err != nil {
			logger.Fatal(err)
		}
		return
	}

	spot := envFloat("SCAN_SPOT", 100.0)
	vol := envFloat("SCAN_VOL", 0.20)
	maturity := envFloat("SCAN_MATURITY", 1.0)
	rate := envFloat("SCAN_RATE", 0.0)

	mcpar, err := mc.NewMCParams(mc.DefaultMCPaths)
	if err != nil {
		logger.Fatal(err)
	}
	jump, err := mc.NewJumpParams(1.0, -0.2, 0.2, mc.DefaultJumpSteps, mc.DefaultJumpPaths)
	if err != nil {
		logger.Fatal(err)
	}

	var strikes []float64
	for m := 0.80; m <= 1.201; m += 0.05 {
		strikes = append(strikes, m*spot)
	}

	rows, err := mainfuncs.StrikeScan(mc.Call, spot, maturity, rate, 0.0, vol, mcpar, jump, strikes)
	if err != nil {
		logger.Fatal(err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Strike", "MC Price", "MC StdErr", "JD Price", "JD StdErr"})
	for _, r := range rows {
		table.Append([]string{
			fmt.Sprintf("%.2f", r.Strike),
			fmt.Sprintf("%.4f", r.MCPrice),
			fmt.Sprintf("%.4f", r.MCErr),
			fmt.Sprintf("%.4f", r.JDPrice),
			fmt.Sprintf("%.4f", r.JDErr),
		})
	}
	table.Render()
}

func envFloat(key string, fallback float64) float64 {
	if s := os.Getenv(key); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			return v
		}
	}
	return fallback
}
