package timeline

import "time"

// LocateToday returns the offset of today inside the window, or false when the marker
// should not be drawn.
func LocateToday(today time.Time, w Window) (float64, bool) {
	if !w.Contains(today) {
		return 0, false
	}
	return w.ToOffsetClamped(today), true
}
