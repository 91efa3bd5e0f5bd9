package usecase

import (
	"github.com/epistat/casetrend/pkg/domain/model"
	"github.com/epistat/casetrend/pkg/domain/types"
)

// ChartData defines the read surface consumed by the HTTP controller
type ChartData interface {
	// Mode returns the currently selected mode
	Mode() types.Mode

	// SeriesByMode returns the precomputed series for a mode
	SeriesByMode(mode types.Mode) model.ChartSeries

	// SummaryByMode derives the display metrics for a mode
	SummaryByMode(mode types.Mode) model.Summary
}
