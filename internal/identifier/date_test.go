package identifier

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateLiteralFullDate(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

	got, err := parseDateLiteral("2025-01-15", start, end)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), got)
}

func TestParseDateLiteralMonthDay(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

	got, err := parseDateLiteral("01-15", start, end)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), got)
}

func TestParseDateLiteralMonthDayAmbiguousAcrossYears(t *testing.T) {
	start := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)

	_, err := parseDateLiteral("01-15", start, end)
	assert.Error(t, err)
}

func TestParseDateLiteralDayOfMonth(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	got, err := parseDateLiteral("15", start, end)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), got)
}

func TestParseDateLiteralDayOfMonthAmbiguousAcrossMonths(t *testing.T) {
	start := time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)

	_, err := parseDateLiteral("5", start, end)
	assert.Error(t, err)
}

func TestParseDateLiteralUnrecognized(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

	_, err := parseDateLiteral("not-a-date", start, end)
	assert.Error(t, err)
}

func TestParseDateExprKeyword(t *testing.T) {
	dateOf := map[string][]int{"WEEKEND": {4, 5}}
	got, err := parseDateExpr("WEEKEND", dateOf, nil, time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5}, got)
}

func TestParseDateExprRange(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 7, 0, 0, 0, 0, time.UTC)
	dateIndex := map[time.Time]int{}
	for d := 0; d < 7; d++ {
		dateIndex[start.AddDate(0, 0, d)] = d
	}

	got, err := parseDateExpr("2025-01-02~2025-01-04", nil, dateIndex, start, end)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestParseDateExprSingleLiteral(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 7, 0, 0, 0, 0, time.UTC)
	dateIndex := map[time.Time]int{start: 0, start.AddDate(0, 0, 1): 1}

	got, err := parseDateExpr("2025-01-02", nil, dateIndex, start, end)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, got)
}

func TestParseDateExprOutsideHorizon(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 7, 0, 0, 0, 0, time.UTC)
	dateIndex := map[time.Time]int{}

	_, err := parseDateExpr("2025-02-01", nil, dateIndex, start, end)
	assert.Error(t, err)
}
