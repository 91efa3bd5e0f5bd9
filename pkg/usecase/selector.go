package usecase

import (
	"time"

	"github.com/epistat/casetrend/pkg/domain/model"
	"github.com/epistat/casetrend/pkg/domain/types"
)

// SeriesSelector holds the three precomputed chart series and exposes the
// one matching the current mode. All aggregation happens once at
// construction; a refreshed input snapshot needs a new selector.
type SeriesSelector struct {
	mode   types.Mode
	series map[types.Mode]model.ChartSeries
}

// NewSeriesSelector runs the three aggregators over the given snapshot and
// caches their results keyed by mode
func NewSeriesSelector(daily []model.DailyRecord, weekly []model.WeeklyRecord, now time.Time) *SeriesSelector {
	return &SeriesSelector{
		mode: types.DefaultMode(),
		series: map[types.Mode]model.ChartSeries{
			types.ModeDailyTransition:  BuildDailyTransition(daily, now),
			types.ModeWeeklyTransition: BuildWeeklyTransition(weekly, now),
			types.ModeDailyCumulative:  BuildCumulative(daily, now),
		},
	}
}

// Mode returns the currently selected mode
func (s *SeriesSelector) Mode() types.Mode {
	return s.mode
}

// SetMode switches the active mode. Any value is accepted; an unknown mode
// simply resolves to an empty series. No recomputation happens.
func (s *SeriesSelector) SetMode(mode types.Mode) {
	s.mode = mode
}

// ActiveSeries returns the series for the current mode
func (s *SeriesSelector) ActiveSeries() model.ChartSeries {
	return s.SeriesByMode(s.mode)
}

// SeriesByMode returns the cached series for the given mode, or an empty
// series when the mode has no entry. It never fails.
func (s *SeriesSelector) SeriesByMode(mode types.Mode) model.ChartSeries {
	series, ok := s.series[mode]
	if !ok {
		return model.EmptyChartSeries()
	}
	return series
}

// Summary derives the display metrics from the current mode's series
func (s *SeriesSelector) Summary() model.Summary {
	return s.SummaryByMode(s.mode)
}

// SummaryByMode derives the display metrics from the given mode's series.
// The reference dataset is always the series' first dataset, so the daily
// summary reports raw counts, not the moving average.
func (s *SeriesSelector) SummaryByMode(mode types.Mode) model.Summary {
	series := s.SeriesByMode(mode)
	if len(series.Datasets) == 0 || len(series.Datasets[0].Values) == 0 {
		return model.EmptySummary()
	}

	ds := series.Datasets[0]
	n := len(ds.Values)
	latest := ds.Values[n-1]

	summary := model.Summary{
		LatestValue: model.FormatValue(latest),
		LatestLabel: series.Dates[n-1].Label(),
		Diff:        model.NoDataPlaceholder,
		Unit:        ds.Unit,
	}

	if n >= 2 {
		if prev := ds.Values[n-2]; latest != nil && prev != nil {
			summary.Diff = model.FormatSignedDifference(*latest - *prev)
		}
	}

	return summary
}
