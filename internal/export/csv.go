// Package export renders analytics output as delimited text, the format
// the dashboard's download buttons serve.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/NehaAnalyzes/Demand-forecasting/internal/domain"
)

// WriteItems writes the item-level inventory table.
func WriteItems(w io.Writer, items []domain.ItemRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{
		"Material_ID", "Material", "Current_Stock", "Reorder_Point", "Safety_Stock",
		"Avg_Daily_Demand", "Lead_Time_Days", "Unit_Cost", "Supplier", "Status", "Service_Level",
	}); err != nil {
		return fmt.Errorf("write items header: %w", err)
	}

	for _, item := range items {
		row := []string{
			item.ID,
			item.Material,
			strconv.Itoa(item.CurrentStock),
			strconv.Itoa(item.ReorderPoint),
			strconv.Itoa(item.SafetyStock),
			strconv.FormatFloat(item.AvgDemand, 'f', -1, 64),
			strconv.Itoa(item.LeadTimeDays),
			strconv.FormatFloat(item.UnitCost, 'f', 2, 64),
			item.Supplier,
			string(item.Status),
			fmt.Sprintf("%.0f%%", item.ServiceLevel*100),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write item row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteSummaries writes the material-level rollup table.
func WriteSummaries(w io.Writer, summaries []domain.MaterialSummary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Material", "Stock", "Reorder_Point", "Status"}); err != nil {
		return fmt.Errorf("write summary header: %w", err)
	}

	for _, summary := range summaries {
		row := []string{
			summary.Material,
			strconv.Itoa(summary.TotalStock),
			strconv.Itoa(summary.ReorderPoint),
			string(summary.Status),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write summary row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteForecast writes the forecast table with one row per future month.
// Values are truncated to whole units, matching the dashboard table.
func WriteForecast(w io.Writer, points []domain.ForecastPoint) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Month", "Forecast", "Lower Bound", "Upper Bound"}); err != nil {
		return fmt.Errorf("write forecast header: %w", err)
	}

	for _, p := range points {
		row := []string{
			p.Period.Format("2006-01"),
			strconv.Itoa(int(p.Point)),
			strconv.Itoa(int(p.Lower)),
			strconv.Itoa(int(p.Upper)),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write forecast row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
