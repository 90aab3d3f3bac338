package scoring

import (
	"math"

	"github.com/ideadate/journey-engine/pkg/ideadate/mathx"
)

// FatigueResult holds the fatigue penalty and its subcomponents.
type FatigueResult struct {
	Penalty         float64
	IdealPeakIndex  int
	ActualPeakIndex int
	PeakDeviation   float64
	DoublePeak      bool
	NoTaper         bool
}

// EnergySeries returns the given energy levels unchanged, in order. Kept
// separate from arcmodel so scoring has no dependency on it.
func EnergySeries(levels []float64) []float64 {
	return levels
}

// ComputeFatigue implements the §4.1 fatigue penalty over an energy series.
func ComputeFatigue(e []float64) FatigueResult {
	n := len(e)
	if n == 0 {
		return FatigueResult{}
	}

	idealPeakIndex := int(math.Round(float64(n) * 0.5))

	peakValue := e[0]
	actualPeakIndex := 0
	doublePeakCount := 0
	for i := 1; i < n; i++ {
		if e[i] > peakValue {
			peakValue = e[i]
			actualPeakIndex = i
		}
	}
	for i := 0; i < n; i++ {
		if e[i] == peakValue {
			doublePeakCount++
		}
	}
	doublePeak := doublePeakCount > 1

	peakDeviation := math.Abs(float64(actualPeakIndex-idealPeakIndex)) / float64(n)
	noTaper := e[n-1] >= peakValue

	doublePeakF := 0.0
	if doublePeak {
		doublePeakF = 1.0
	}
	noTaperF := 0.0
	if noTaper {
		noTaperF = 1.0
	}

	penalty := mathx.Clamp01(0.5*peakDeviation + 0.3*doublePeakF + 0.2*noTaperF)

	return FatigueResult{
		Penalty:         penalty,
		IdealPeakIndex:  idealPeakIndex,
		ActualPeakIndex: actualPeakIndex,
		PeakDeviation:   peakDeviation,
		DoublePeak:      doublePeak,
		NoTaper:         noTaper,
	}
}
