package replayparser

import "github.com/sgreplay/sgreplay/sgrep"

// computeDuration is the maximum sync_1 value observed across SYNC events,
// converted to seconds; if no SYNC event carries one it falls back to the
// latest frame seen across all events.
func computeDuration(events []sgrep.ActionEvent) float64 {
	var maxSync uint64
	foundSync := false
	var maxFrame sgrep.Frame

	for _, ev := range events {
		if ev.Frame > maxFrame {
			maxFrame = ev.Frame
		}
		if ev.Category != sgrep.CategorySync {
			continue
		}
		if v, ok := ev.SyncValues[1]; ok {
			if !foundSync || v > maxSync {
				maxSync = v
				foundSync = true
			}
		}
	}

	if foundSync {
		return float64(maxSync) / sgrep.FrameRateHz
	}
	return maxFrame.Seconds()
}
