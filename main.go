package main

import (
	"log"
	"os"
	"time"

	"stream-anomaly-detector/analytics"
	"stream-anomaly-detector/generator"
	"stream-anomaly-detector/metrics"
	"stream-anomaly-detector/models"
	"stream-anomaly-detector/output"
)

// Run parameters are fixed at construction; there are no flags, env vars
// or config files.
const (
	streamLength = 100
	windowSize   = 20
	sensitivity  = 3.0 // anomaly threshold in standard deviations
	printDelay   = 50 * time.Millisecond
	plotFile     = "stream.png"
)

func main() {
	cfg := generator.DefaultConfig()
	cfg.Seed = time.Now().UnixNano()

	gen, err := generator.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create stream generator: %v", err)
	}

	detector, err := analytics.NewAnomalyDetector(windowSize, sensitivity)
	if err != nil {
		log.Fatalf("Failed to create anomaly detector: %v", err)
	}

	printer := output.NewConsolePrinter(os.Stdout, printDelay)

	onAnomaly := func(verdict models.AnomalyVerdict) {
		metrics.AnomaliesDetected.Inc()
		metrics.AnomalyZScore.Observe(verdict.Score)
	}

	engine := analytics.NewEngine(gen, detector, printer, onAnomaly)

	verdicts, err := engine.Run(streamLength)
	if err != nil {
		log.Fatalf("Stream processing failed: %v", err)
	}
	metrics.SamplesProcessed.Add(float64(len(verdicts)))

	anomalies := 0
	for _, v := range verdicts {
		if v.IsAnomaly {
			anomalies++
		}
	}
	log.Printf("Processed %d samples, detected %d anomalies", len(verdicts), anomalies)

	sink := output.NewPlotSink(plotFile)
	if err := sink.Render(verdicts); err != nil {
		log.Fatalf("Failed to render plot: %v", err)
	}
	log.Printf("Plot saved to %s", plotFile)
}
