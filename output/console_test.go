package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConsolePrinter_FormatsNormalSample(t *testing.T) {
	var buf bytes.Buffer
	p := NewConsolePrinter(&buf, 0)

	p.Print(3, 1.23456, false)
	require.Equal(t, "3: 1.2346\n", buf.String())
}

func TestConsolePrinter_MarksAnomalies(t *testing.T) {
	var buf bytes.Buffer
	p := NewConsolePrinter(&buf, 0)

	p.Print(7, -0.5, true)
	require.Equal(t, "7: -0.5000 <-- Anomaly\n", buf.String())
}

func TestConsolePrinter_OneLinePerSample(t *testing.T) {
	var buf bytes.Buffer
	p := NewConsolePrinter(&buf, 0)

	p.Print(0, 0.1, false)
	p.Print(1, 0.2, true)
	p.Print(2, 0.3, false)

	require.Equal(t, "0: 0.1000\n1: 0.2000 <-- Anomaly\n2: 0.3000\n", buf.String())
}
