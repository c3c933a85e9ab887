package output

import (
	"fmt"
	"io"
	"time"
)

// AnomalyMarker is appended to console lines for flagged samples.
const AnomalyMarker = "<-- Anomaly"

// ConsolePrinter writes one line per sample, marking anomalies.
// A non-zero delay paces the output so the stream reads like a live feed.
type ConsolePrinter struct {
	w     io.Writer
	delay time.Duration
}

func NewConsolePrinter(w io.Writer, delay time.Duration) *ConsolePrinter {
	return &ConsolePrinter{w: w, delay: delay}
}

func (p *ConsolePrinter) Print(index int, value float64, isAnomaly bool) {
	if isAnomaly {
		fmt.Fprintf(p.w, "%d: %.4f %s\n", index, value, AnomalyMarker)
	} else {
		fmt.Fprintf(p.w, "%d: %.4f\n", index, value)
	}
	if p.delay > 0 {
		time.Sleep(p.delay)
	}
}
