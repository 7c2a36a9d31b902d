package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/nestegg/internal/domain"
)

func TestSeriesTable_Accumulation(t *testing.T) {
	result := buildTestProjection(t)

	yearly, err := SeriesTable(result, domain.PhaseAccumulation, domain.GranularityYearly)
	require.NoError(t, err)
	assert.Equal(t, []string{"Year", "Period Contribution", "Period Return", "Total Contributed", "Accumulated Gains", "Portfolio", "Portfolio (today)"}, yearly.Headers)
	require.Len(t, yearly.Rows, 3)

	last := yearly.Rows[2]
	assert.Equal(t, "3", last[0].String())
	assert.True(t, last[5].Money.Equal(result.AccumulationYearly[2].PortfolioValue))
	assert.True(t, last[5].Money.Equal(last[3].Money.Add(last[4].Money)), "portfolio is contributions plus gains")

	monthly, err := SeriesTable(result, domain.PhaseAccumulation, domain.GranularityMonthly)
	require.NoError(t, err)
	assert.Equal(t, "Month", monthly.Headers[1])
	require.Len(t, monthly.Rows, 36)
	assert.Equal(t, "12", monthly.Rows[11][1].String())
	assert.Equal(t, "Accumulation (monthly)", monthly.Title)
}

func TestSeriesTable_Retirement(t *testing.T) {
	result := buildTestProjection(t)

	table, err := SeriesTable(result, domain.PhaseRetirement, domain.GranularityMonthly)
	require.NoError(t, err)
	assert.Equal(t, []string{"Year", "Month", "Period Withdrawal", "Period Return", "Balance", "Balance (today)"}, table.Headers)
	assert.Len(t, table.Rows, 24)
	for _, row := range table.Rows {
		assert.Len(t, row, len(table.Headers))
	}
}

func TestSeriesTable_Errors(t *testing.T) {
	_, err := SeriesTable(nil, domain.PhaseAccumulation, domain.GranularityYearly)
	assert.Error(t, err)

	_, err = SeriesTable(buildTestProjection(t), domain.Phase("savings"), domain.GranularityYearly)
	assert.ErrorContains(t, err, "unknown phase")
}

func TestExportFileName(t *testing.T) {
	assert.Equal(t, "accumulation_yearly.xlsx", ExportFileName(domain.PhaseAccumulation, domain.GranularityYearly, "xlsx"))
	assert.Equal(t, "retirement_monthly.csv", ExportFileName(domain.PhaseRetirement, domain.GranularityMonthly, "csv"))
}
