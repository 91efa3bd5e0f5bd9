package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/epistat/casetrend/pkg/domain/model"
	"github.com/epistat/casetrend/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDateSpan(t *testing.T) {
	t.Run("single day label", func(t *testing.T) {
		span := model.NewDate(time.Date(2020, 3, 1, 14, 30, 0, 0, time.UTC))
		gt.False(t, span.IsRange())
		gt.Equal(t, span.Label(), "2020-03-01")
	})

	t.Run("range label joins both days", func(t *testing.T) {
		span := model.NewDateRange(date(2020, 2, 24), date(2020, 3, 1))
		gt.True(t, span.IsRange())
		gt.Equal(t, span.Label(), "2020-02-24 - 2020-03-01")
	})

	t.Run("normalization discards time of day", func(t *testing.T) {
		span := model.NewDate(time.Date(2020, 3, 1, 23, 59, 59, 0, time.UTC))
		gt.Equal(t, span.Start, date(2020, 3, 1))
	})

	t.Run("single day marshals to a date string", func(t *testing.T) {
		raw, err := json.Marshal(model.NewDate(date(2020, 3, 1)))
		gt.NoError(t, err)
		gt.Equal(t, string(raw), `"2020-03-01"`)
	})

	t.Run("range marshals to a date pair", func(t *testing.T) {
		span := model.NewDateRange(date(2020, 2, 24), date(2020, 3, 1))
		raw, err := json.Marshal(span)
		gt.NoError(t, err)
		gt.Equal(t, string(raw), `["2020-02-24","2020-03-01"]`)
	})
}

func TestChartSeriesValidate(t *testing.T) {
	value := func(v float64) *float64 { return &v }

	t.Run("aligned series is valid", func(t *testing.T) {
		series := model.ChartSeries{
			Dates: []model.DateSpan{model.NewDate(date(2020, 3, 1))},
			Datasets: []model.Dataset{
				{Kind: types.DatasetBar, Title: "count", Values: []*float64{value(1)}},
				{Kind: types.DatasetLine, Title: "7-day average", Values: []*float64{nil}},
			},
		}
		gt.NoError(t, series.Validate())
	})

	t.Run("error when a dataset is shorter than dates", func(t *testing.T) {
		series := model.ChartSeries{
			Dates: []model.DateSpan{
				model.NewDate(date(2020, 3, 1)),
				model.NewDate(date(2020, 3, 2)),
			},
			Datasets: []model.Dataset{
				{Kind: types.DatasetBar, Title: "count", Values: []*float64{value(1)}},
			},
		}
		gt.Error(t, series.Validate())
	})

	t.Run("empty series is valid", func(t *testing.T) {
		series := model.EmptyChartSeries()
		gt.NoError(t, series.Validate())
		gt.Equal(t, len(series.Dates), 0)
		gt.Equal(t, len(series.Datasets), 0)
	})

	t.Run("undefined values marshal to null", func(t *testing.T) {
		ds := model.Dataset{
			Kind:   types.DatasetLine,
			Values: []*float64{nil, value(4)},
		}
		raw, err := json.Marshal(ds.Values)
		gt.NoError(t, err)
		gt.Equal(t, string(raw), `[null,4]`)
	})
}
