// Package arcmodel builds the energy-curve polyline and per-stop arc
// contribution scores described in §4.4 of the engine spec.
package arcmodel

import (
	"github.com/ideadate/journey-engine/pkg/ideadate/mathx"
	"github.com/ideadate/journey-engine/pkg/ideadate/model"
	"github.com/ideadate/journey-engine/pkg/ideadate/scoring"
)

// Build constructs the ArcModel polyline and flags from an energy series
// and the fatigue result already computed over it (so the peak/taper
// analysis is shared rather than recomputed).
func Build(energy []float64, fatigue scoring.FatigueResult) model.ArcModel {
	n := len(energy)
	points := make([]model.Point, n)
	for i := 0; i < n; i++ {
		x := 0.0
		if n > 1 {
			x = float64(i) / float64(n-1)
		}
		y := 0.2 + 0.6*mathx.Clamp01(energy[i])
		points[i] = model.Point{X: x, Y: y}
	}

	return model.ArcModel{
		Points:          points,
		PeakEarly:       fatigue.ActualPeakIndex < fatigue.IdealPeakIndex,
		PeakLate:        fatigue.ActualPeakIndex > fatigue.IdealPeakIndex,
		DoublePeak:      fatigue.DoublePeak,
		NoTaper:         fatigue.NoTaper,
		PeakIndexIdeal:  fatigue.IdealPeakIndex,
		PeakIndexActual: fatigue.ActualPeakIndex,
	}
}
