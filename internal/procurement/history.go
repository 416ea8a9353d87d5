// Package procurement loads the flat historical procurement record set
// and derives the monthly demand series consumed by the forecast engine.
package procurement

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/NehaAnalyzes/Demand-forecasting/internal/domain"
)

// Truncated or coded labels appearing in the raw export, mapped to their
// canonical names.
var projectTypeLabels = map[string]string{
	"transmissi":   "Transmission Project",
	"transmission": "Transmission Project",
	"0":            "Transmission Project",
	"substation":   "Substation Project",
	"1":            "Substation Project",
}

var stateLabels = map[string]string{
	"maharash":   "Maharashtra",
	"tamil nad":  "Tamil Nadu",
	"uttar prad": "Uttar Pradesh",
	"0":          "Gujarat",
	"1":          "Maharashtra",
	"2":          "Assam",
	"3":          "Tamil Nadu",
	"4":          "Uttar Pradesh",
}

var dateLayouts = []string{"2006-01-02", "02-01-2006", "01/02/2006", "2006-01"}

// budgetFactor converts procured quantity to an estimated spend in crores.
const budgetFactor = 0.002

// LoadHistory reads procurement records from a delimited file. Expected
// columns (matched case-insensitively after underscore-normalizing the
// header): Date, Quantity_Procured, State, Project_Type, GST_Rate. Rows
// with an unparseable date or quantity are skipped with a warning rather
// than failing the whole load.
func LoadHistory(path string) ([]domain.ProcurementRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open history file: %w", err)
	}
	defer file.Close()

	records, err := ReadHistory(file)
	if err != nil {
		return nil, fmt.Errorf("read history file %s: %w", path, err)
	}
	return records, nil
}

// ReadHistory parses procurement records from CSV data.
func ReadHistory(r io.Reader) ([]domain.ProcurementRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read CSV header: %w", err)
	}

	colMap := make(map[string]int)
	for i, col := range header {
		key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(col), " ", "_"))
		colMap[key] = i
	}
	for _, required := range []string{"date", "quantity_procured"} {
		if _, ok := colMap[required]; !ok {
			return nil, fmt.Errorf("%w: history missing column %q", domain.ErrInvalidParameter, required)
		}
	}

	var records []domain.ProcurementRecord
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read CSV record: %w", err)
		}
		line++

		date, err := parseDate(row[colMap["date"]])
		if err != nil {
			log.Warn().Int("line", line).Str("value", row[colMap["date"]]).Msg("skipping row with bad date")
			continue
		}

		qty, err := strconv.ParseFloat(strings.TrimSpace(row[colMap["quantity_procured"]]), 64)
		if err != nil {
			log.Warn().Int("line", line).Msg("skipping row with bad quantity")
			continue
		}

		rec := domain.ProcurementRecord{Date: date, Quantity: qty}
		if i, ok := colMap["state"]; ok {
			rec.State = normalizeLabel(row[i], stateLabels)
		}
		if i, ok := colMap["project_type"]; ok {
			rec.ProjectType = normalizeLabel(row[i], projectTypeLabels)
		}
		if i, ok := colMap["gst_rate"]; ok {
			if gst, err := strconv.ParseFloat(strings.TrimSpace(row[i]), 64); err == nil {
				rec.GSTRate = gst
			}
		}

		records = append(records, rec)
	}

	return records, nil
}

func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}

func normalizeLabel(raw string, labels map[string]string) string {
	trimmed := strings.TrimSpace(raw)
	if canonical, ok := labels[strings.ToLower(trimmed)]; ok {
		return canonical
	}
	return trimmed
}

// MonthlyDemand sums procured quantities into monthly buckets, ordered by
// month ascending. This is the series handed to the forecast engine.
func MonthlyDemand(records []domain.ProcurementRecord) []domain.DemandPoint {
	totals := make(map[time.Time]float64)
	for _, rec := range records {
		bucket := time.Date(rec.Date.Year(), rec.Date.Month(), 1, 0, 0, 0, 0, time.UTC)
		totals[bucket] += rec.Quantity
	}

	points := make([]domain.DemandPoint, 0, len(totals))
	for bucket, qty := range totals {
		points = append(points, domain.DemandPoint{Date: bucket, Quantity: qty})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })

	return points
}

// Overview computes the planning page header metrics from the loaded set.
func Overview(records []domain.ProcurementRecord) domain.ProcurementOverview {
	states := make(map[string]struct{})
	projects := make(map[string]struct{})
	var totalQty, totalGST float64
	gstRows := 0

	for _, rec := range records {
		if rec.State != "" {
			states[rec.State] = struct{}{}
		}
		if rec.ProjectType != "" {
			projects[rec.ProjectType] = struct{}{}
		}
		totalQty += rec.Quantity
		if rec.GSTRate > 0 {
			totalGST += rec.GSTRate
			gstRows++
		}
	}

	overview := domain.ProcurementOverview{
		Records:         len(records),
		States:          len(states),
		ProjectTypes:    len(projects),
		EstimatedBudget: totalQty * budgetFactor,
	}
	if gstRows > 0 {
		overview.AvgGSTRate = totalGST / float64(gstRows)
	}

	return overview
}

// BudgetUtilization reports estimated spend as a percentage of the
// planned budget, capped at 100.
func BudgetUtilization(overview domain.ProcurementOverview, plannedBudget float64) int {
	if plannedBudget <= 0 {
		return 0
	}
	pct := int((overview.EstimatedBudget / plannedBudget) * 100)
	if pct > 100 {
		pct = 100
	}
	return pct
}
