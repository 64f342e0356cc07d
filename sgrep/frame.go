package sgrep

import "fmt"

// FrameRateHz is the canonical tick rate used to interpret frame counters
// (Design Notes Open Question (a): resolved to 1024 Hz ticks, not
// milliseconds).
const FrameRateHz = 1024

// Frame is a monotonic record-envelope counter, in 1024 Hz ticks.
type Frame int64

// Seconds returns the frame expressed as elapsed seconds.
func (f Frame) Seconds() float64 {
	return float64(f) / FrameRateHz
}

// String formats the frame as mm:ss.
func (f Frame) String() string {
	total := int64(f.Seconds())
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// FormatFrame formats f as mm:ss, or "00:00" if f is nil.
func FormatFrame(f *Frame) string {
	if f == nil {
		return "00:00"
	}
	return f.String()
}
