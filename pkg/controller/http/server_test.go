package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	controller "github.com/epistat/casetrend/pkg/controller/http"
	"github.com/epistat/casetrend/pkg/domain/model"
	"github.com/epistat/casetrend/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func day(d int) time.Time {
	return time.Date(2020, 3, d, 0, 0, 0, 0, time.UTC)
}

func intPtr(v int) *int {
	return &v
}

func newTestServer(t *testing.T) *controller.Server {
	t.Helper()

	daily := []model.DailyRecord{
		{Date: day(1), Subtotal: intPtr(10)},
		{Date: day(2), Subtotal: intPtr(20)},
	}
	weekly := []model.WeeklyRecord{
		{StartDate: day(2), EndDate: day(8), Subtotal: 50},
	}
	selector := usecase.NewSeriesSelector(daily, weekly, day(10))

	return controller.NewServer(context.Background(), "localhost:0", selector)
}

func TestHealthEndpoint(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	server.Handler.ServeHTTP(w, req)

	gt.Equal(t, w.Code, http.StatusOK)

	var body map[string]string
	gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	gt.Equal(t, body["status"], "healthy")
	gt.Equal(t, body["service"], "casetrend")
}

func TestModesEndpoint(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/modes", nil)
	w := httptest.NewRecorder()
	server.Handler.ServeHTTP(w, req)

	gt.Equal(t, w.Code, http.StatusOK)

	var body struct {
		Modes []struct {
			Mode    string `json:"mode"`
			Default bool   `json:"default"`
		} `json:"modes"`
	}
	gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	gt.Equal(t, len(body.Modes), 3)
	gt.Equal(t, body.Modes[0].Mode, "daily-transition")
	gt.True(t, body.Modes[0].Default)
	gt.False(t, body.Modes[1].Default)
}

func TestSeriesEndpoint(t *testing.T) {
	type seriesBody struct {
		Dates    []json.RawMessage `json:"dates"`
		Datasets []struct {
			Kind      string     `json:"kind"`
			Title     string     `json:"title"`
			Unit      string     `json:"unit"`
			Values    []*float64 `json:"values"`
			DrawOrder int        `json:"drawOrder"`
		} `json:"datasets"`
	}

	t.Run("defaults to the daily transition series", func(t *testing.T) {
		server := newTestServer(t)

		req := httptest.NewRequest(http.MethodGet, "/api/series", nil)
		w := httptest.NewRecorder()
		server.Handler.ServeHTTP(w, req)

		gt.Equal(t, w.Code, http.StatusOK)

		var body seriesBody
		gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		gt.Equal(t, len(body.Dates), 2)
		gt.Equal(t, string(body.Dates[0]), `"2020-03-01"`)
		gt.Equal(t, len(body.Datasets), 2)
		gt.Equal(t, body.Datasets[0].Kind, "bar")
		gt.Equal(t, body.Datasets[1].Kind, "line")
		gt.Equal(t, *body.Datasets[0].Values[1], 20.0)
		gt.Nil(t, body.Datasets[1].Values[1])
	})

	t.Run("weekly mode emits date pairs", func(t *testing.T) {
		server := newTestServer(t)

		req := httptest.NewRequest(http.MethodGet, "/api/series?mode=weekly-transition", nil)
		w := httptest.NewRecorder()
		server.Handler.ServeHTTP(w, req)

		gt.Equal(t, w.Code, http.StatusOK)

		var body seriesBody
		gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		gt.Equal(t, len(body.Dates), 1)
		gt.Equal(t, string(body.Dates[0]), `["2020-03-02","2020-03-08"]`)
		gt.Equal(t, *body.Datasets[0].Values[0], 50.0)
	})

	t.Run("unknown mode is rejected with 400", func(t *testing.T) {
		server := newTestServer(t)

		req := httptest.NewRequest(http.MethodGet, "/api/series?mode=monthly", nil)
		w := httptest.NewRecorder()
		server.Handler.ServeHTTP(w, req)

		gt.Equal(t, w.Code, http.StatusBadRequest)

		var body map[string]string
		gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		gt.S(t, body["error"]).Contains("unsupported mode")
	})
}

func TestSummaryEndpoint(t *testing.T) {
	t.Run("daily summary from the count dataset", func(t *testing.T) {
		server := newTestServer(t)

		req := httptest.NewRequest(http.MethodGet, "/api/summary", nil)
		w := httptest.NewRecorder()
		server.Handler.ServeHTTP(w, req)

		gt.Equal(t, w.Code, http.StatusOK)

		var summary model.Summary
		gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
		gt.Equal(t, summary.LatestValue, "20")
		gt.Equal(t, summary.LatestLabel, "2020-03-02")
		gt.Equal(t, summary.Diff, "+10")
		gt.Equal(t, summary.Unit, "cases")
	})

	t.Run("cumulative summary by mode query", func(t *testing.T) {
		server := newTestServer(t)

		req := httptest.NewRequest(http.MethodGet, "/api/summary?mode=daily-cumulative", nil)
		w := httptest.NewRecorder()
		server.Handler.ServeHTTP(w, req)

		gt.Equal(t, w.Code, http.StatusOK)

		var summary model.Summary
		gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
		gt.Equal(t, summary.LatestValue, "30")
		gt.Equal(t, summary.Diff, "+20")
	})

	t.Run("unknown mode is rejected with 400", func(t *testing.T) {
		server := newTestServer(t)

		req := httptest.NewRequest(http.MethodGet, "/api/summary?mode=monthly", nil)
		w := httptest.NewRecorder()
		server.Handler.ServeHTTP(w, req)

		gt.Equal(t, w.Code, http.StatusBadRequest)
	})

	t.Run("empty snapshot returns the placeholder summary", func(t *testing.T) {
		selector := usecase.NewSeriesSelector(nil, nil, day(1))
		server := controller.NewServer(context.Background(), "localhost:0", selector)

		req := httptest.NewRequest(http.MethodGet, "/api/summary", nil)
		w := httptest.NewRecorder()
		server.Handler.ServeHTTP(w, req)

		gt.Equal(t, w.Code, http.StatusOK)

		var summary model.Summary
		gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
		gt.Equal(t, summary, model.EmptySummary())
	})
}
