package analytics

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"stream-anomaly-detector/models"
	"stream-anomaly-detector/output"
)

// scriptedSource replays a fixed series of values as the sample stream.
type scriptedSource struct {
	values []float64
	index  int
}

func (s *scriptedSource) Next() models.Sample {
	sample := models.Sample{Index: s.index, Value: s.values[s.index]}
	s.index++
	return sample
}

func TestEngine_FlagsSpikeInConstantStream(t *testing.T) {
	source := &scriptedSource{values: []float64{10, 10, 10, 10, 10, 10, 50, 10}}

	detector, err := NewAnomalyDetector(4, 2.0)
	require.NoError(t, err)

	var buf bytes.Buffer
	printer := output.NewConsolePrinter(&buf, 0)

	var flagged []models.AnomalyVerdict
	engine := NewEngine(source, detector, printer, func(v models.AnomalyVerdict) {
		flagged = append(flagged, v)
	})

	verdicts, err := engine.Run(len(source.values))
	require.NoError(t, err)
	require.Len(t, verdicts, 8)

	for _, v := range verdicts {
		if v.Index == 6 {
			require.True(t, v.IsAnomaly, "spike at index 6 not flagged")
		} else {
			require.False(t, v.IsAnomaly, "constant sample %d flagged", v.Index)
		}
	}

	require.Len(t, flagged, 1)
	require.Equal(t, 6, flagged[0].Index)
	require.Equal(t, 50.0, flagged[0].Value)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 8)
	require.Equal(t, "0: 10.0000", lines[0])
	require.Equal(t, "6: 50.0000 "+output.AnomalyMarker, lines[6])
	for i, line := range lines {
		if i != 6 {
			require.NotContains(t, line, output.AnomalyMarker)
		}
	}
}

func TestEngine_VerdictsPreserveStreamOrder(t *testing.T) {
	source := &scriptedSource{values: []float64{1, 2, 3, 4, 5}}

	detector, err := NewAnomalyDetector(3, 2.0)
	require.NoError(t, err)

	engine := NewEngine(source, detector, output.NewConsolePrinter(&bytes.Buffer{}, 0), nil)

	verdicts, err := engine.Run(5)
	require.NoError(t, err)

	for i, v := range verdicts {
		require.Equal(t, i, v.Index)
		require.Equal(t, source.values[i], v.Value)
	}
}

func TestEngine_RejectsNonPositiveSteps(t *testing.T) {
	detector, err := NewAnomalyDetector(3, 2.0)
	require.NoError(t, err)

	engine := NewEngine(&scriptedSource{}, detector, output.NewConsolePrinter(&bytes.Buffer{}, 0), nil)

	_, err = engine.Run(0)
	require.Error(t, err)

	_, err = engine.Run(-10)
	require.Error(t, err)
}
