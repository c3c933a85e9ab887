package analytics

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"

	"stream-anomaly-detector/models"
)

// AnomalyDetector flags samples that deviate from the rolling mean of
// the trailing window by more than threshold standard deviations.
type AnomalyDetector struct {
	window    *RollingWindow
	threshold float64
}

func NewAnomalyDetector(windowSize int, threshold float64) (*AnomalyDetector, error) {
	if windowSize <= 0 {
		return nil, errors.New("window size must be positive")
	}
	if threshold <= 0 {
		return nil, errors.New("threshold must be positive")
	}
	return &AnomalyDetector{
		window:    NewRollingWindow(windowSize),
		threshold: threshold,
	}, nil
}

// Classify judges one sample against the window of the N values that
// preceded it, then admits the sample. The incoming value is excluded
// from the mean/deviation baseline so a large spike cannot mask itself.
// While the window is still filling, every sample is accepted as normal:
// there is not enough history to judge.
//
// A zero-variance window flags any non-zero deviation from the mean;
// division by zero never happens.
func (ad *AnomalyDetector) Classify(sample models.Sample) models.AnomalyVerdict {
	verdict := models.AnomalyVerdict{
		Index: sample.Index,
		Value: sample.Value,
	}

	if ad.window.Full() {
		values := ad.window.Values()
		mean := stat.Mean(values, nil)
		stdDev := stat.StdDev(values, nil)
		if math.IsNaN(stdDev) { // sample deviation is undefined for a single value
			stdDev = 0
		}
		deviation := math.Abs(sample.Value - mean)

		if stdDev == 0 {
			verdict.IsAnomaly = deviation > 0
		} else {
			verdict.Score = deviation / stdDev
			verdict.IsAnomaly = verdict.Score > ad.threshold
		}
	}

	ad.window.Add(sample.Value)
	return verdict
}

// WindowLen reports how much history the detector has accumulated,
// capped at the window size.
func (ad *AnomalyDetector) WindowLen() int {
	return ad.window.Len()
}
