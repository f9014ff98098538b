// Package ensemble: contention-free progress accounting. Each worker
// owns one padded counter slot; fractions are merged across slots only
// when a callback fires, the scheme of thread-local progress counters
// combined on read.

package ensemble

import "sync/atomic"

// cacheLinePad keeps neighboring counters off one cache line.
const cacheLinePad = 64 - 8

type counterSlot struct {
	n atomic.Int64
	_ [cacheLinePad]byte
}

type meter struct {
	slots []counterSlot
	total int
	cb    func(float64)
}

func newMeter(workers, total int, cb func(float64)) *meter {
	return &meter{
		slots: make([]counterSlot, workers),
		total: total,
		cb:    cb,
	}
}

// done records one completed unit for the given worker and reports the
// merged fraction. The callback may fire concurrently from several
// workers; it must be safe for concurrent use.
func (m *meter) done(worker int) {
	m.slots[worker].n.Add(1)
	if m.cb == nil {
		return
	}
	m.cb(m.fraction())
}

// fraction merges all worker slots on read.
func (m *meter) fraction() float64 {
	var sum int64
	for i := range m.slots {
		sum += m.slots[i].n.Load()
	}

	return float64(sum) / float64(m.total)
}

// finish emits the mandatory final fraction-1.0 report.
func (m *meter) finish() {
	if m.cb != nil {
		m.cb(1.0)
	}
}
