package generator

import (
	"errors"
	"math"
	"math/rand"

	"stream-anomaly-detector/models"
)

// Config holds the fixed stream parameters. All values are set at
// construction; the generator is not reconfigurable afterwards.
type Config struct {
	Amplitude     float64 // peak of the periodic base signal
	Period        int     // samples per full cycle of the base signal
	NoiseScale    float64 // noise is drawn uniformly from [-NoiseScale, NoiseScale]
	AnomalyChance float64 // per-step probability of injecting an outlier
	MinOffset     float64 // smallest injected outlier magnitude
	MaxOffset     float64 // largest injected outlier magnitude
	Seed          int64
}

// DefaultConfig returns the standard stream parameters.
func DefaultConfig() Config {
	return Config{
		Amplitude:     1.0,
		Period:        20,
		NoiseScale:    0.5,
		AnomalyChance: 0.1,
		MinOffset:     5.0,
		MaxOffset:     10.0,
	}
}

// StreamGenerator produces a lazy sequence of samples: a sinusoidal base
// signal plus uniform noise, with occasional large-magnitude outliers of
// random sign. Each instance owns its RNG, so two generators built with
// the same seed emit identical streams.
type StreamGenerator struct {
	cfg   Config
	rng   *rand.Rand
	index int
}

func New(cfg Config) (*StreamGenerator, error) {
	if cfg.Period <= 0 {
		return nil, errors.New("period must be positive")
	}
	if cfg.Amplitude < 0 {
		return nil, errors.New("amplitude must be non-negative")
	}
	if cfg.NoiseScale < 0 {
		return nil, errors.New("noise scale must be non-negative")
	}
	if cfg.AnomalyChance < 0 || cfg.AnomalyChance > 1 {
		return nil, errors.New("anomaly chance must be between 0 and 1")
	}
	if cfg.MinOffset <= 0 || cfg.MaxOffset < cfg.MinOffset {
		return nil, errors.New("anomaly offset range must satisfy 0 < min <= max")
	}

	return &StreamGenerator{
		cfg: cfg,
		rng: rand.New(rand.NewSource(cfg.Seed)),
	}, nil
}

// Next produces the sample at the current index and advances the stream.
// The sequence is logically infinite; the caller decides how many samples
// to draw.
func (g *StreamGenerator) Next() models.Sample {
	i := g.index
	g.index++

	base := g.cfg.Amplitude * math.Sin(2*math.Pi*float64(i)/float64(g.cfg.Period))
	noise := g.uniform(-g.cfg.NoiseScale, g.cfg.NoiseScale)
	value := base + noise

	if g.rng.Float64() < g.cfg.AnomalyChance {
		offset := g.uniform(g.cfg.MinOffset, g.cfg.MaxOffset)
		if g.rng.Float64() < 0.5 {
			offset = -offset
		}
		value += offset
	}

	return models.Sample{Index: i, Value: value}
}

func (g *StreamGenerator) uniform(low, high float64) float64 {
	return low + g.rng.Float64()*(high-low)
}
