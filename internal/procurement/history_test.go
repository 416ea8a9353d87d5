package procurement

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NehaAnalyzes/Demand-forecasting/internal/domain"
)

const sampleCSV = `Date,Quantity_Procured,State,Project_Type,GST_Rate
2021-01-15,1200,Gujarat,Transmissi,18
2021-01-20,800,Maharash,Substation,12
2021-02-05,1500,Tamil Nad,Transmission,18
not-a-date,999,Assam,Substation,18
2021-03-10,2000,Uttar Prad,1,28
`

func TestReadHistory(t *testing.T) {
	records, err := ReadHistory(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, records, 4, "the bad-date row is skipped")

	assert.Equal(t, time.Date(2021, 1, 15, 0, 0, 0, 0, time.UTC), records[0].Date)
	assert.Equal(t, 1200.0, records[0].Quantity)
	assert.Equal(t, "Gujarat", records[0].State)
	assert.Equal(t, "Transmission Project", records[0].ProjectType)
	assert.Equal(t, 18.0, records[0].GSTRate)

	// truncated and coded labels normalize to canonical names
	assert.Equal(t, "Maharashtra", records[1].State)
	assert.Equal(t, "Substation Project", records[1].ProjectType)
	assert.Equal(t, "Tamil Nadu", records[2].State)
	assert.Equal(t, "Uttar Pradesh", records[3].State)
	assert.Equal(t, "Substation Project", records[3].ProjectType)
}

func TestReadHistoryMissingColumn(t *testing.T) {
	_, err := ReadHistory(strings.NewReader("Date,State\n2021-01-01,Assam\n"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)
}

func TestMonthlyDemand(t *testing.T) {
	records, err := ReadHistory(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	series := MonthlyDemand(records)

	require.Len(t, series, 3)
	assert.Equal(t, time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), series[0].Date)
	assert.Equal(t, 2000.0, series[0].Quantity, "two January rows sum into one bucket")
	assert.Equal(t, 1500.0, series[1].Quantity)
	assert.Equal(t, 2000.0, series[2].Quantity)
	assert.True(t, series[0].Date.Before(series[1].Date))
	assert.True(t, series[1].Date.Before(series[2].Date))
}

func TestOverview(t *testing.T) {
	records, err := ReadHistory(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	overview := Overview(records)

	assert.Equal(t, 4, overview.Records)
	assert.Equal(t, 4, overview.States)
	assert.Equal(t, 2, overview.ProjectTypes)
	assert.InDelta(t, 5500*0.002, overview.EstimatedBudget, 1e-9)
	assert.InDelta(t, (18.0+12+18+28)/4, overview.AvgGSTRate, 1e-9)
}

func TestBudgetUtilization(t *testing.T) {
	overview := domain.ProcurementOverview{EstimatedBudget: 1000}

	assert.Equal(t, 25, BudgetUtilization(overview, 4000))
	assert.Equal(t, 100, BudgetUtilization(overview, 500), "capped at 100")
	assert.Equal(t, 0, BudgetUtilization(overview, 0))
}
