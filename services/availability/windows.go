package availability

import (
	"sort"

	"alabraar/models"
)

type interval struct {
	start int
	end   int
}

// subtractReserved removes the reserved intervals from each template window
// and returns the remaining free intervals, ascending by start. All ranges
// are half-open [start, end).
func subtractReserved(windows, reserved []interval) []interval {
	sort.Slice(reserved, func(a, b int) bool { return reserved[a].start < reserved[b].start })

	var free []interval
	for _, w := range windows {
		cursor := w.start
		for _, r := range reserved {
			if r.end <= cursor || r.start >= w.end {
				continue
			}
			if r.start > cursor {
				free = append(free, interval{start: cursor, end: r.start})
			}
			if r.end > cursor {
				cursor = r.end
			}
		}
		if cursor < w.end {
			free = append(free, interval{start: cursor, end: w.end})
		}
	}

	sort.Slice(free, func(a, b int) bool { return free[a].start < free[b].start })
	return free
}

// contains reports whether [start, end) fits entirely inside one window and
// touches none of the reserved intervals.
func contains(windows, reserved []interval, start, end int) bool {
	inWindow := false
	for _, w := range windows {
		if start >= w.start && end <= w.end {
			inWindow = true
			break
		}
	}
	if !inWindow {
		return false
	}
	for _, r := range reserved {
		if start < r.end && r.start < end {
			return false
		}
	}
	return true
}

func toWindows(date string, intervals []interval) []models.TimeWindow {
	out := make([]models.TimeWindow, 0, len(intervals))
	for _, iv := range intervals {
		out = append(out, models.TimeWindow{
			Date:      date,
			StartTime: FormatClock(iv.start),
			EndTime:   FormatClock(iv.end),
			Start:     iv.start,
			End:       iv.end,
		})
	}
	return out
}
