package analytics

// RollingWindow is a fixed-capacity FIFO buffer over the most recent
// values, backed by a ring buffer with a running sum.
type RollingWindow struct {
	windowSize int
	values     []float64
	index      int
	count      int
	sum        float64
}

func NewRollingWindow(size int) *RollingWindow {
	return &RollingWindow{
		windowSize: size,
		values:     make([]float64, size),
	}
}

// Add admits a value, evicting the oldest once the window is full.
func (rw *RollingWindow) Add(value float64) {
	if rw.count < rw.windowSize {
		rw.count++
	} else {
		rw.sum -= rw.values[rw.index]
	}
	rw.values[rw.index] = value
	rw.sum += value
	rw.index = (rw.index + 1) % rw.windowSize
}

func (rw *RollingWindow) Len() int {
	return rw.count
}

func (rw *RollingWindow) Full() bool {
	return rw.count == rw.windowSize
}

func (rw *RollingWindow) Average() float64 {
	if rw.count == 0 {
		return 0.0
	}
	return rw.sum / float64(rw.count)
}

// Values returns a copy of the window contents, oldest first.
func (rw *RollingWindow) Values() []float64 {
	out := make([]float64, 0, rw.count)
	if rw.count < rw.windowSize {
		return append(out, rw.values[:rw.count]...)
	}
	out = append(out, rw.values[rw.index:]...)
	return append(out, rw.values[:rw.index]...)
}
