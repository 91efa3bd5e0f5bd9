package model

import (
	"encoding/json"
	"time"

	"github.com/epistat/casetrend/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// DateLayout is the calendar-day format used for labels and JSON output
const DateLayout = "2006-01-02"

// DateSpan is either a single calendar day (End is zero) or an inclusive
// day range, as used by the weekly series
type DateSpan struct {
	Start time.Time
	End   time.Time
}

// NewDate creates a single-day span
func NewDate(t time.Time) DateSpan {
	return DateSpan{Start: NormalizeDate(t)}
}

// NewDateRange creates an inclusive day-range span
func NewDateRange(start, end time.Time) DateSpan {
	return DateSpan{Start: NormalizeDate(start), End: NormalizeDate(end)}
}

// IsRange returns true if the span covers more than a single day
func (s DateSpan) IsRange() bool {
	return !s.End.IsZero() && !s.End.Equal(s.Start)
}

// Label formats the span for display: "2020-03-01" for a single day,
// "2020-02-24 - 2020-03-01" for a range
func (s DateSpan) Label() string {
	if s.IsRange() {
		return s.Start.Format(DateLayout) + " - " + s.End.Format(DateLayout)
	}
	return s.Start.Format(DateLayout)
}

// MarshalJSON emits a date string for a single day and a two-element
// array for a range, so consumers see either a date or a date-pair
func (s DateSpan) MarshalJSON() ([]byte, error) {
	if s.IsRange() {
		return json.Marshal([2]string{
			s.Start.Format(DateLayout),
			s.End.Format(DateLayout),
		})
	}
	return json.Marshal(s.Start.Format(DateLayout))
}

// Dataset is one renderable value sequence of a chart series.
// A nil value means the point is undefined and marshals to null.
// Lower DrawOrder means drawn in front.
type Dataset struct {
	Kind      types.DatasetKind `json:"kind"`
	Title     string            `json:"title"`
	Unit      string            `json:"unit"`
	Values    []*float64        `json:"values"`
	DrawOrder int               `json:"drawOrder"`
}

// ChartSeries is the rendering-neutral output of the aggregation engine
type ChartSeries struct {
	Dates    []DateSpan `json:"dates"`
	Datasets []Dataset  `json:"datasets"`
}

// EmptyChartSeries returns a series with no dates and no datasets
func EmptyChartSeries() ChartSeries {
	return ChartSeries{
		Dates:    []DateSpan{},
		Datasets: []Dataset{},
	}
}

// Validate checks that every dataset is index-aligned with the date sequence
func (s *ChartSeries) Validate() error {
	for i, ds := range s.Datasets {
		if len(ds.Values) != len(s.Dates) {
			return goerr.New("dataset is not aligned with dates",
				goerr.V("dataset", i),
				goerr.V("title", ds.Title),
				goerr.V("dates", len(s.Dates)),
				goerr.V("values", len(ds.Values)))
		}
	}
	return nil
}
