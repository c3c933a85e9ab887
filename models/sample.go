package models

// Sample is a single point of the generated stream.
type Sample struct {
	Index int     `json:"index"`
	Value float64 `json:"value"`
}

// AnomalyVerdict is the classification result for one sample.
// Score is the absolute z-score against the detection window; it is 0
// during warm-up and when the window has zero variance.
type AnomalyVerdict struct {
	Index     int     `json:"index"`
	Value     float64 `json:"value"`
	IsAnomaly bool    `json:"is_anomaly"`
	Score     float64 `json:"score"`
}
