package analytics

import (
	"errors"
	"log"

	"stream-anomaly-detector/models"
	"stream-anomaly-detector/output"
)

// SampleSource yields stream samples one at a time.
type SampleSource interface {
	Next() models.Sample
}

type AnomalyCallback func(verdict models.AnomalyVerdict)

// Engine drives the pipeline: pull a sample, classify it, print the
// verdict, notify the callback on anomalies. Everything runs strictly in
// sequence per sample; the engine is the single owner of the generator
// and detector state.
type Engine struct {
	source    SampleSource
	detector  *AnomalyDetector
	printer   *output.ConsolePrinter
	onAnomaly AnomalyCallback
}

func NewEngine(source SampleSource, detector *AnomalyDetector, printer *output.ConsolePrinter, onAnomaly AnomalyCallback) *Engine {
	return &Engine{
		source:    source,
		detector:  detector,
		printer:   printer,
		onAnomaly: onAnomaly,
	}
}

// Run processes the requested number of samples and returns the verdicts
// in stream order, ready for the plot sink.
func (e *Engine) Run(steps int) ([]models.AnomalyVerdict, error) {
	if steps <= 0 {
		return nil, errors.New("steps must be positive")
	}

	verdicts := make([]models.AnomalyVerdict, 0, steps)
	for i := 0; i < steps; i++ {
		sample := e.source.Next()
		verdict := e.detector.Classify(sample)
		e.printer.Print(verdict.Index, verdict.Value, verdict.IsAnomaly)

		if verdict.IsAnomaly {
			log.Printf("ANOMALY DETECTED: index=%d, value=%.4f, z_score=%.2f",
				verdict.Index, verdict.Value, verdict.Score)

			if e.onAnomaly != nil {
				e.onAnomaly(verdict)
			}
		}

		verdicts = append(verdicts, verdict)
	}

	return verdicts, nil
}
