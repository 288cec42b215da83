package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/punchpoint/punchpoint-backend-go/internal/domain/attendance"
)

func workPeriod(start, end string) attendance.Period {
	return attendance.Period{Start: ts(start), End: ts(end), Kind: attendance.PeriodWork}
}

func breakPeriod(start, end string) attendance.Period {
	return attendance.Period{Start: ts(start), End: ts(end), Kind: attendance.PeriodBreak}
}

func TestAggregateSingleDay(t *testing.T) {
	periods := []attendance.Period{
		workPeriod("2026-01-05T09:00:00Z", "2026-01-05T12:00:00Z"),
		breakPeriod("2026-01-05T12:00:00Z", "2026-01-05T12:30:00Z"),
		workPeriod("2026-01-05T12:30:00Z", "2026-01-05T17:30:00Z"),
	}

	agg := Aggregate(periods, time.UTC, MaxShiftDuration, StandardDayDuration)

	require.Len(t, agg.Days, 1)
	day := agg.Days[0]
	assert.Equal(t, "2026-01-05", day.Date)
	assert.Equal(t, 8*time.Hour, day.Work)
	assert.Equal(t, 30*time.Minute, day.Break)
	assert.Equal(t, time.Duration(0), day.Overtime)
	assert.False(t, agg.WasCapped)
}

func TestAggregateOvernightAttributedToStartDay(t *testing.T) {
	periods := []attendance.Period{
		workPeriod("2026-01-01T22:00:00Z", "2026-01-02T01:30:00Z"),
	}

	agg := Aggregate(periods, time.UTC, MaxShiftDuration, StandardDayDuration)

	require.Len(t, agg.Days, 1)
	assert.Equal(t, "2026-01-01", agg.Days[0].Date)
	assert.Equal(t, 3*time.Hour+30*time.Minute, agg.Days[0].Work)
}

func TestAggregateDayAttributionFollowsTimezone(t *testing.T) {
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	// 23:00 UTC on Jan 5 is already 06:00 Jan 6 in Jakarta (UTC+7).
	periods := []attendance.Period{
		workPeriod("2026-01-05T23:00:00Z", "2026-01-06T03:00:00Z"),
	}

	agg := Aggregate(periods, jakarta, MaxShiftDuration, StandardDayDuration)

	require.Len(t, agg.Days, 1)
	assert.Equal(t, "2026-01-06", agg.Days[0].Date)
}

func TestAggregateCapsRunawayPeriod(t *testing.T) {
	// Forgotten signout reconciled two days later.
	periods := []attendance.Period{
		{Start: ts("2026-01-05T09:00:00Z"), End: ts("2026-01-07T09:00:00Z"), Kind: attendance.PeriodWork, Open: true},
	}

	agg := Aggregate(periods, time.UTC, MaxShiftDuration, StandardDayDuration)

	require.Len(t, agg.Days, 1)
	assert.Equal(t, 16*time.Hour, agg.Days[0].Work)
	assert.True(t, agg.Days[0].WasCapped)
	assert.True(t, agg.WasCapped)
	// Capped 16h day still earns overtime over the 8h standard.
	assert.Equal(t, 8*time.Hour, agg.Days[0].Overtime)
}

func TestAggregateOvertimePerDay(t *testing.T) {
	periods := []attendance.Period{
		workPeriod("2026-01-05T09:00:00Z", "2026-01-05T19:00:00Z"), // 10h
		workPeriod("2026-01-06T09:00:00Z", "2026-01-06T15:00:00Z"), // 6h
	}

	agg := Aggregate(periods, time.UTC, MaxShiftDuration, StandardDayDuration)

	require.Len(t, agg.Days, 2)
	assert.Equal(t, 2*time.Hour, agg.Days[0].Overtime)
	assert.Equal(t, time.Duration(0), agg.Days[1].Overtime)
}

func TestAggregateWeeksStartSunday(t *testing.T) {
	// 2026-01-03 is a Saturday, 2026-01-04 a Sunday.
	periods := []attendance.Period{
		workPeriod("2026-01-03T09:00:00Z", "2026-01-03T17:00:00Z"),
		workPeriod("2026-01-04T09:00:00Z", "2026-01-04T17:00:00Z"),
		workPeriod("2026-01-05T09:00:00Z", "2026-01-05T17:00:00Z"),
	}

	agg := Aggregate(periods, time.UTC, MaxShiftDuration, StandardDayDuration)

	require.Len(t, agg.Weeks, 2)
	assert.Equal(t, "2025-12-28", agg.Weeks[0].WeekStart)
	assert.Equal(t, 8*time.Hour, agg.Weeks[0].Work)
	assert.Equal(t, "2026-01-04", agg.Weeks[1].WeekStart)
	assert.Equal(t, 16*time.Hour, agg.Weeks[1].Work)
}

func TestAggregateMonthRollup(t *testing.T) {
	periods := []attendance.Period{
		workPeriod("2026-01-30T09:00:00Z", "2026-01-30T17:00:00Z"),
		workPeriod("2026-02-02T09:00:00Z", "2026-02-02T19:00:00Z"),
	}

	agg := Aggregate(periods, time.UTC, MaxShiftDuration, StandardDayDuration)

	require.Len(t, agg.Months, 2)
	assert.Equal(t, "2026-01", agg.Months[0].Month)
	assert.Equal(t, 8*time.Hour, agg.Months[0].Work)
	assert.Equal(t, "2026-02", agg.Months[1].Month)
	assert.Equal(t, 10*time.Hour, agg.Months[1].Work)
	assert.Equal(t, 2*time.Hour, agg.Months[1].Overtime)
}

func TestAggregateEmpty(t *testing.T) {
	agg := Aggregate(nil, time.UTC, MaxShiftDuration, StandardDayDuration)

	assert.Empty(t, agg.Days)
	assert.Empty(t, agg.Weeks)
	assert.Empty(t, agg.Months)
	assert.False(t, agg.WasCapped)
	assert.Equal(t, time.Duration(0), agg.TotalWork())
}
