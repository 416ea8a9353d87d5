// cmd/analytics/main.go
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/NehaAnalyzes/Demand-forecasting/internal/config"
	"github.com/NehaAnalyzes/Demand-forecasting/internal/export"
	"github.com/NehaAnalyzes/Demand-forecasting/internal/forecast"
	"github.com/NehaAnalyzes/Demand-forecasting/internal/inventory"
	"github.com/NehaAnalyzes/Demand-forecasting/internal/procurement"
	"github.com/NehaAnalyzes/Demand-forecasting/pkg/logger"
)

func generatorParams(c *cli.Context, cfg *config.Config) inventory.GeneratorParams {
	params := inventory.GeneratorParams{
		Materials:        cfg.App.Materials,
		ItemsPerMaterial: cfg.App.ItemsPerMaterial,
		Seed:             cfg.App.Seed,
		ServiceLevel:     cfg.App.ServiceLevel,
		Policy:           inventory.DefaultStockPolicy(),
	}
	if c.IsSet("seed") {
		params.Seed = c.Int64("seed")
	}
	if c.IsSet("items") {
		params.ItemsPerMaterial = c.Int("items")
	}
	return params
}

func outputWriter(c *cli.Context) (*os.File, func(), error) {
	out := c.String("out")
	if out == "" {
		return os.Stdout, func() {}, nil
	}

	file, err := os.Create(out)
	if err != nil {
		return nil, nil, fmt.Errorf("create output file: %w", err)
	}
	return file, func() { file.Close() }, nil
}

func main() {
	if err := godotenv.Load(); err == nil {
		logger.Log.Debug().Msg("loaded .env file")
	}

	seedFlag := &cli.Int64Flag{Name: "seed", Usage: "Generator seed"}
	itemsFlag := &cli.IntFlag{Name: "items", Usage: "Items per material"}
	outFlag := &cli.StringFlag{Name: "out", Usage: "Write CSV to this file instead of stdout"}

	app := &cli.App{
		Name:  "analytics",
		Usage: "Materials planning analytics: replenishment metrics and demand forecasts",
		Commands: []*cli.Command{
			{
				Name:  "items",
				Usage: "Generate the synthetic inventory and print the item table",
				Flags: []cli.Flag{seedFlag, itemsFlag, outFlag},
				Action: func(c *cli.Context) error {
					w, done, err := outputWriter(c)
					if err != nil {
						return err
					}
					defer done()

					items := inventory.Generate(generatorParams(c, config.Load()))
					return export.WriteItems(w, items)
				},
			},
			{
				Name:  "summary",
				Usage: "Roll the inventory up by material category",
				Flags: []cli.Flag{seedFlag, itemsFlag, outFlag},
				Action: func(c *cli.Context) error {
					w, done, err := outputWriter(c)
					if err != nil {
						return err
					}
					defer done()

					summaries := inventory.Summarize(inventory.Generate(generatorParams(c, config.Load())))
					return export.WriteSummaries(w, summaries)
				},
			},
			{
				Name:  "alerts",
				Usage: "List items below their reorder point",
				Flags: []cli.Flag{seedFlag, itemsFlag},
				Action: func(c *cli.Context) error {
					alerts := inventory.Alerts(inventory.Generate(generatorParams(c, config.Load())))
					for _, alert := range alerts {
						fmt.Printf("%s (%s): %s, need %d units (est %.0f)\n",
							alert.ItemID, alert.Material, alert.Status, alert.QtyNeeded, alert.EstCost)
					}
					fmt.Printf("%d alerts\n", len(alerts))
					return nil
				},
			},
			{
				Name:  "forecast",
				Usage: "Fit the demand model over a procurement history CSV and project forward",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "history", Usage: "Procurement history CSV path"},
					&cli.IntFlag{Name: "horizon", Value: 12, Usage: "Months to project"},
					&cli.Float64Flag{Name: "confidence", Value: 0.95, Usage: "Confidence interval width"},
					outFlag,
				},
				Action: func(c *cli.Context) error {
					cfg := config.Load()
					historyPath := c.String("history")
					if historyPath == "" {
						historyPath = cfg.App.HistoryPath
					}

					records, err := procurement.LoadHistory(historyPath)
					if err != nil {
						return err
					}

					points, err := forecast.Forecast(procurement.MonthlyDemand(records), forecast.Config{
						Horizon:    c.Int("horizon"),
						Confidence: c.Float64("confidence"),
					})
					if err != nil {
						return err
					}

					w, done, err := outputWriter(c)
					if err != nil {
						return err
					}
					defer done()

					return export.WriteForecast(w, points)
				},
			},
			{
				Name:  "overview",
				Usage: "Print procurement planning metrics",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "history", Usage: "Procurement history CSV path"},
				},
				Action: func(c *cli.Context) error {
					cfg := config.Load()
					historyPath := c.String("history")
					if historyPath == "" {
						historyPath = cfg.App.HistoryPath
					}

					records, err := procurement.LoadHistory(historyPath)
					if err != nil {
						return err
					}

					overview := procurement.Overview(records)
					utilization := procurement.BudgetUtilization(overview, cfg.App.PlannedBudget)

					fmt.Printf("Records:          %d\n", overview.Records)
					fmt.Printf("States:           %d\n", overview.States)
					fmt.Printf("Project types:    %d\n", overview.ProjectTypes)
					fmt.Printf("Estimated budget: %.0f Cr\n", overview.EstimatedBudget)
					fmt.Printf("Avg GST rate:     %.1f%%\n", overview.AvgGSTRate)
					fmt.Printf("Budget utilized:  %d%%\n", utilization)
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Log.Fatal().Err(err).Msg("analytics command failed")
	}
}
