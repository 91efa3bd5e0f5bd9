package usecase

import (
	"sort"
	"time"

	"github.com/epistat/casetrend/pkg/domain/model"
	"github.com/epistat/casetrend/pkg/domain/types"
)

// transitionWindow is the trailing window size of the daily moving average
const transitionWindow = 7

const countUnit = "cases"

// BuildDailyTransition builds the per-day series: a bar dataset of raw
// counts and a line dataset with the trailing 7-day average drawn in front.
// Input may arrive in any order; records dated at or after the cutoff are
// dropped so the current, incomplete day never shows up.
func BuildDailyTransition(records []model.DailyRecord, now time.Time) model.ChartSeries {
	sorted := make([]model.DailyRecord, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	dates := make([]model.DateSpan, 0, len(sorted))
	counts := make([]*float64, 0, len(sorted))
	averages := make([]*float64, 0, len(sorted))

	// Sliding accumulator over the trailing window: sum and count of the
	// defined subtotals only. Unreported days stay in the date sequence but
	// contribute to neither the sum nor the divisor.
	var windowSum float64
	var windowDefined int

	for i, rec := range sorted {
		if rec.Subtotal != nil {
			windowSum += float64(*rec.Subtotal)
			windowDefined++
		}
		if i >= transitionWindow {
			if old := sorted[i-transitionWindow].Subtotal; old != nil {
				windowSum -= float64(*old)
				windowDefined--
			}
		}

		var avg *float64
		if i >= transitionWindow-1 && windowDefined > 0 {
			v := windowSum / float64(windowDefined)
			avg = &v
		}

		day := model.NormalizeDate(rec.Date)
		if !day.Before(now) {
			continue
		}

		dates = append(dates, model.NewDate(rec.Date))
		counts = append(counts, intValue(rec.Subtotal))
		averages = append(averages, avg)
	}

	return model.ChartSeries{
		Dates: dates,
		Datasets: []model.Dataset{
			{
				Kind:      types.DatasetBar,
				Title:     "count",
				Unit:      countUnit,
				Values:    counts,
				DrawOrder: 2,
			},
			{
				Kind:      types.DatasetLine,
				Title:     "7-day average",
				Unit:      countUnit,
				Values:    averages,
				DrawOrder: 1,
			},
		},
	}
}

// BuildWeeklyTransition builds the per-week series from pre-bucketed weekly
// records. Input order is preserved as given; weekly bucketing and its
// ordering are an upstream responsibility.
func BuildWeeklyTransition(records []model.WeeklyRecord, now time.Time) model.ChartSeries {
	dates := make([]model.DateSpan, 0, len(records))
	values := make([]*float64, 0, len(records))

	for _, rec := range records {
		if !model.NormalizeDate(rec.StartDate).Before(now) {
			continue
		}
		v := float64(rec.Subtotal)
		dates = append(dates, model.NewDateRange(rec.StartDate, rec.EndDate))
		values = append(values, &v)
	}

	return model.ChartSeries{
		Dates: dates,
		Datasets: []model.Dataset{
			{
				Kind:      types.DatasetBar,
				Title:     "count",
				Unit:      countUnit,
				Values:    values,
				DrawOrder: 1,
			},
		},
	}
}

// BuildCumulative builds the running-total series from daily records.
// Input must already be chronologically ascending; each point is the sum of
// all surviving subtotals up to and including its day, with unreported days
// counted as 0.
func BuildCumulative(records []model.DailyRecord, now time.Time) model.ChartSeries {
	dates := make([]model.DateSpan, 0, len(records))
	values := make([]*float64, 0, len(records))

	var total float64
	for _, rec := range records {
		if !model.NormalizeDate(rec.Date).Before(now) {
			continue
		}
		if rec.Subtotal != nil {
			total += float64(*rec.Subtotal)
		}
		v := total
		dates = append(dates, model.NewDate(rec.Date))
		values = append(values, &v)
	}

	return model.ChartSeries{
		Dates: dates,
		Datasets: []model.Dataset{
			{
				Kind:      types.DatasetBar,
				Title:     "cumulative total",
				Unit:      countUnit,
				Values:    values,
				DrawOrder: 1,
			},
		},
	}
}

func intValue(v *int) *float64 {
	if v == nil {
		return nil
	}
	f := float64(*v)
	return &f
}
