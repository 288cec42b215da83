package attendance

import (
	"sort"
	"time"

	"github.com/punchpoint/punchpoint-backend-go/internal/domain/attendance"
)

// DayTotals is one org-local calendar day of summed period durations.
type DayTotals struct {
	Date      string // YYYY-MM-DD
	Work      time.Duration
	Break     time.Duration
	Overtime  time.Duration
	WasCapped bool
}

// WeekTotals rolls days into Sunday-start weeks.
type WeekTotals struct {
	WeekStart string // Sunday, YYYY-MM-DD
	Work      time.Duration
	Break     time.Duration
	Overtime  time.Duration
}

// MonthTotals rolls days into calendar months.
type MonthTotals struct {
	Month    string // YYYY-MM
	Work     time.Duration
	Break    time.Duration
	Overtime time.Duration
}

// Aggregation buckets reconciled periods into timezone-aware calendar days
// and rolls them up. Slices are sorted ascending by bucket key.
type Aggregation struct {
	Days      []DayTotals
	Weeks     []WeekTotals
	Months    []MonthTotals
	WasCapped bool
}

// Day looks up one day bucket by its YYYY-MM-DD key.
func (a Aggregation) Day(date string) (DayTotals, bool) {
	for _, d := range a.Days {
		if d.Date == date {
			return d, true
		}
	}
	return DayTotals{}, false
}

// TotalWork sums work time across all day buckets.
func (a Aggregation) TotalWork() time.Duration {
	var total time.Duration
	for _, d := range a.Days {
		total += d.Work
	}
	return total
}

// TotalBreak sums break time across all day buckets.
func (a Aggregation) TotalBreak() time.Duration {
	var total time.Duration
	for _, d := range a.Days {
		total += d.Break
	}
	return total
}

// Aggregate attributes each capped period to the calendar day of its start
// instant in loc. An overnight period therefore lands entirely on the day
// the shift began; it is never split at midnight. Overtime is computed per
// day against standardDay and only from work time; breaks never contribute.
func Aggregate(periods []attendance.Period, loc *time.Location, maxShift, standardDay time.Duration) Aggregation {
	days := make(map[string]*DayTotals)

	var agg Aggregation
	for _, p := range periods {
		d, capped := capDuration(p, maxShift)
		if capped {
			agg.WasCapped = true
		}

		date := p.Start.In(loc).Format("2006-01-02")
		bucket, ok := days[date]
		if !ok {
			bucket = &DayTotals{Date: date}
			days[date] = bucket
		}

		switch p.Kind {
		case attendance.PeriodWork:
			bucket.Work += d
		case attendance.PeriodBreak:
			bucket.Break += d
		}
		if capped {
			bucket.WasCapped = true
		}
	}

	dates := make([]string, 0, len(days))
	for date := range days {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	weeks := make(map[string]*WeekTotals)
	months := make(map[string]*MonthTotals)

	for _, date := range dates {
		bucket := days[date]
		if over := bucket.Work - standardDay; over > 0 {
			bucket.Overtime = over
		}
		agg.Days = append(agg.Days, *bucket)

		day, _ := time.ParseInLocation("2006-01-02", date, loc)

		weekKey := day.AddDate(0, 0, -int(day.Weekday())).Format("2006-01-02")
		week, ok := weeks[weekKey]
		if !ok {
			week = &WeekTotals{WeekStart: weekKey}
			weeks[weekKey] = week
		}
		week.Work += bucket.Work
		week.Break += bucket.Break
		week.Overtime += bucket.Overtime

		monthKey := day.Format("2006-01")
		month, ok := months[monthKey]
		if !ok {
			month = &MonthTotals{Month: monthKey}
			months[monthKey] = month
		}
		month.Work += bucket.Work
		month.Break += bucket.Break
		month.Overtime += bucket.Overtime
	}

	weekKeys := make([]string, 0, len(weeks))
	for k := range weeks {
		weekKeys = append(weekKeys, k)
	}
	sort.Strings(weekKeys)
	for _, k := range weekKeys {
		agg.Weeks = append(agg.Weeks, *weeks[k])
	}

	monthKeys := make([]string, 0, len(months))
	for k := range months {
		monthKeys = append(monthKeys, k)
	}
	sort.Strings(monthKeys)
	for _, k := range monthKeys {
		agg.Months = append(agg.Months, *months[k])
	}

	return agg
}
